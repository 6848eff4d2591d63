package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/dbx"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	tasksrepo "github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
)

// --- in-memory users repository ---

type memUsersRepo struct {
	mu        sync.Mutex
	byID      map[string]*models.User
	forcedErr error
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byID: make(map[string]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (r *memUsersRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return common.ErrEmailTaken
		}
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := cloneUser(u)
	c.PasswordHash = ""
	return c, nil
}

func (r *memUsersRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	stored, ok := r.byID[user.ID]
	if !ok {
		return common.ErrNotFound
	}
	for id, u := range r.byID {
		if id != user.ID && u.Email == user.Email {
			return common.ErrEmailTaken
		}
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

// --- in-memory tasks repository (owner scoping only; filter and sort
// behavior is covered by the postgres repository tests) ---

type memTasksRepo struct {
	mu        sync.Mutex
	byID      map[string]*models.Task
	forcedErr error
}

func newMemTasksRepo() *memTasksRepo {
	return &memTasksRepo{byID: make(map[string]*models.Task)}
}

func cloneTask(t *models.Task) *models.Task {
	c := *t
	return &c
}

func (r *memTasksRepo) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	r.byID[task.ID] = cloneTask(task)
	return nil
}

func (r *memTasksRepo) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	var result []*models.Task
	for _, t := range r.byID {
		if t.UserID == userID {
			result = append(result, cloneTask(t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *memTasksRepo) Get(ctx context.Context, id, userID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	t, ok := r.byID[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	return cloneTask(t), nil
}

func (r *memTasksRepo) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	stored, ok := r.byID[task.ID]
	if !ok || stored.UserID != task.UserID {
		return common.ErrNotFound
	}
	r.byID[task.ID] = cloneTask(task)
	return nil
}

func (r *memTasksRepo) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return r.forcedErr
	}
	t, ok := r.byID[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memTasksRepo) DeleteBatch(ctx context.Context, ids []string, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return 0, r.forcedErr
	}
	var n int64
	for _, id := range ids {
		if t, ok := r.byID[id]; ok && t.UserID == userID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *memTasksRepo) CountByStatus(ctx context.Context, userID string) (map[models.TaskStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedErr != nil {
		return nil, r.forcedErr
	}
	counts := make(map[models.TaskStatus]int64)
	for _, t := range r.byID {
		if t.UserID == userID {
			counts[t.Status]++
		}
	}
	return counts, nil
}

func (r *memTasksRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*models.Task, error) {
	all, err := r.List(ctx, userID, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// --- fake repository manager ---

type fakeRepoManager struct {
	users *memUsersRepo
	tasks *memTasksRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newMemUsersRepo(), tasks: newMemTasksRepo()}
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository { return m.tasks }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
