package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ListProjectComments returns the comments of a project in the order they
// were written. viewerID may be uuid.Nil for anonymous readers, in which case
// no entry is marked as the viewer's own.
func (s *Service) ListProjectComments(ctx context.Context, projectID, viewerID uuid.UUID) ([]CommentWithProfile, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("comment.ListProjectComments: %w", err)
	}

	rows, err := s.comments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListProjectComments: %w", err)
	}

	authorIDs := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		authorIDs[i] = row.Comment.UserID
	}

	profiles, err := s.profiles.LoadProfiles(ctx, authorIDs)
	if err != nil {
		// The joined nickname and avatar key are enough to render the list.
		s.log.WarnContext(ctx, "load comment author profiles",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()),
		)
		profiles = nil
	}

	result := make([]CommentWithProfile, 0, len(rows))
	for _, row := range rows {
		item := CommentWithProfile{
			Comment:  row.Comment,
			Nickname: row.AuthorNickname,
			IsMine:   viewerID != uuid.Nil && row.Comment.IsAuthoredBy(viewerID),
		}

		if p, ok := profiles[row.Comment.UserID]; ok {
			item.Nickname = p.Nickname
			item.AvatarURL = p.AvatarURL
			item.Tier = p.Tier
		} else {
			avatar, err := s.media.AvatarURL(row.AuthorAvatarKey)
			if err != nil {
				return nil, fmt.Errorf("comment.ListProjectComments: %w", err)
			}
			item.AvatarURL = avatar
		}

		result = append(result, item)
	}

	return result, nil
}

// ListUserComments returns every comment written by userID, newest first,
// annotated with the project it was left on.
func (s *Service) ListUserComments(ctx context.Context, userID uuid.UUID) ([]MyPageComment, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("comment.ListUserComments: %w", err)
	}

	rows, err := s.comments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListUserComments: %w", err)
	}

	result := make([]MyPageComment, len(rows))
	for i, row := range rows {
		result[i] = MyPageComment{
			Comment:      row.Comment,
			ProjectID:    row.Comment.ProjectID,
			ProjectTitle: row.ProjectTitle,
			TeamName:     row.TeamName,
		}
	}
	return result, nil
}

// CountSinceLastLogout counts comments left on userID's projects after the
// user last logged out. A user who never logged out gets the count of every
// comment on their projects.
func (s *Service) CountSinceLastLogout(ctx context.Context, userID uuid.UUID) (int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("comment.CountSinceLastLogout: %w", err)
	}

	n, err := s.comments.CountForOwnerSince(ctx, userID, user.LastLogoutAt)
	if err != nil {
		return 0, fmt.Errorf("comment.CountSinceLastLogout: %w", err)
	}
	return n, nil
}
