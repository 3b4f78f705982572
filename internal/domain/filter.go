package domain

import "github.com/google/uuid"

// ProjectFilter contains filtering/pagination parameters for project listings.
type ProjectFilter struct {
	Keyword *string
	Status  *ProjectStatus
	OwnerID *uuid.UUID
	Limit   int
	Offset  int
}
