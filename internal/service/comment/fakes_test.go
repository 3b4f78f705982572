package comment

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// In-memory store shared by the repo fakes. RunInTx snapshots it and restores
// the snapshot when the unit of work fails, mirroring a database rollback.
// ---------------------------------------------------------------------------

type store struct {
	mu       sync.Mutex
	projects map[uuid.UUID]domain.Project
	comments map[uuid.UUID]domain.ProjectComment
	users    map[uuid.UUID]domain.User
	order    []uuid.UUID

	failUpdateScore error
	txCount         int
	rollbacks       int
}

func newStore() *store {
	return &store{
		projects: make(map[uuid.UUID]domain.Project),
		comments: make(map[uuid.UUID]domain.ProjectComment),
		users:    make(map[uuid.UUID]domain.User),
	}
}

func (s *store) addUser(nickname string) domain.User {
	u := domain.User{ID: uuid.New(), Nickname: nickname, Tier: "BRONZE"}
	s.users[u.ID] = u
	return u
}

func (s *store) addProject(ownerID uuid.UUID) domain.Project {
	now := time.Now().UTC()
	p := domain.Project{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     "project",
		TeamName:  "team",
		Status:    domain.ProjectStatusInProgress,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 7),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.projects[p.ID] = p
	return p
}

func (s *store) project(id uuid.UUID) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects[id]
}

func (s *store) liveSum(projectID uuid.UUID) (float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	var n int
	for _, c := range s.comments {
		if c.ProjectID == projectID {
			sum += c.Score
			n++
		}
	}
	return sum, n
}

type snapshot struct {
	projects map[uuid.UUID]domain.Project
	comments map[uuid.UUID]domain.ProjectComment
	order    []uuid.UUID
}

// ---------------------------------------------------------------------------
// txManager
// ---------------------------------------------------------------------------

type fakeTx struct{ s *store }

func (f fakeTx) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	f.s.mu.Lock()
	f.s.txCount++
	snap := snapshot{
		projects: maps.Clone(f.s.projects),
		comments: maps.Clone(f.s.comments),
		order:    slices.Clone(f.s.order),
	}
	f.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		f.s.mu.Lock()
		f.s.projects, f.s.comments, f.s.order = snap.projects, snap.comments, snap.order
		f.s.rollbacks++
		f.s.mu.Unlock()
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// projectRepo
// ---------------------------------------------------------------------------

type fakeProjects struct{ s *store }

func (f fakeProjects) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f fakeProjects) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return f.GetByID(ctx, id)
}

func (f fakeProjects) UpdateScore(_ context.Context, p *domain.Project) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.failUpdateScore != nil {
		return f.s.failUpdateScore
	}
	cur, ok := f.s.projects[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.ScoreSum, cur.CommentCount, cur.Score = p.ScoreSum, p.CommentCount, p.Score
	f.s.projects[p.ID] = cur
	return nil
}

// ---------------------------------------------------------------------------
// commentRepo
// ---------------------------------------------------------------------------

type fakeComments struct{ s *store }

func (f fakeComments) GetByID(_ context.Context, id uuid.UUID) (*domain.ProjectComment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f fakeComments) Create(_ context.Context, c *domain.ProjectComment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.projects[c.ProjectID]; !ok {
		return domain.ErrNotFound
	}
	f.s.comments[c.ID] = *c
	f.s.order = append(f.s.order, c.ID)
	return nil
}

func (f fakeComments) Update(_ context.Context, c *domain.ProjectComment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.comments[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.s.comments[c.ID] = *c
	return nil
}

func (f fakeComments) Delete(_ context.Context, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.s.comments, id)
	f.s.order = slices.DeleteFunc(f.s.order, func(x uuid.UUID) bool { return x == id })
	return nil
}

func (f fakeComments) ListByProject(_ context.Context, projectID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]domain.CommentWithAuthor, 0)
	for _, id := range f.s.order {
		c := f.s.comments[id]
		if c.ProjectID != projectID {
			continue
		}
		u := f.s.users[c.UserID]
		out = append(out, domain.CommentWithAuthor{Comment: c, AuthorNickname: u.Nickname, AuthorAvatarKey: u.AvatarKey})
	}
	return out, nil
}

func (f fakeComments) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.CommentWithProject, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]domain.CommentWithProject, 0)
	for i := len(f.s.order) - 1; i >= 0; i-- {
		c := f.s.comments[f.s.order[i]]
		if c.UserID != userID {
			continue
		}
		p := f.s.projects[c.ProjectID]
		out = append(out, domain.CommentWithProject{Comment: c, ProjectTitle: p.Title, TeamName: p.TeamName})
	}
	return out, nil
}

func (f fakeComments) CountForOwnerSince(_ context.Context, ownerID uuid.UUID, since *time.Time) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n := 0
	for _, c := range f.s.comments {
		if f.s.projects[c.ProjectID].UserID != ownerID {
			continue
		}
		if since == nil || c.CreatedAt.After(*since) {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// userRepo, profileResolver, mediaURLs, mutationRecorder
// ---------------------------------------------------------------------------

type fakeUsers struct{ s *store }

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

type fakeProfiles struct {
	s       *store
	loadErr error
}

func (f fakeProfiles) summary(u domain.User) domain.ProfileSummary {
	return domain.ProfileSummary{UserID: u.ID, Nickname: u.Nickname, Tier: u.Tier, AvatarURL: "profile/" + u.Nickname}
}

func (f fakeProfiles) GetProfile(_ context.Context, id uuid.UUID) (*domain.ProfileSummary, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := f.summary(u)
	return &p, nil
}

func (f fakeProfiles) LoadProfiles(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.ProfileSummary, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make(map[uuid.UUID]domain.ProfileSummary)
	for _, id := range ids {
		if u, ok := f.s.users[id]; ok {
			out[id] = f.summary(u)
		}
	}
	return out, nil
}

type fakeMedia struct{}

func (fakeMedia) AvatarURL(key *string) (string, error) {
	if key == nil {
		return "default.png", nil
	}
	return "media/" + *key, nil
}

type recordedMutation struct {
	op      string
	outcome domain.Outcome
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []recordedMutation
}

func (r *fakeRecorder) ObserveCommentMutation(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, recordedMutation{op: op, outcome: domain.OutcomeOf(err)})
}

var errBoom = errors.New("boom")
