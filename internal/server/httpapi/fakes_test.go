package httpapi

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

const testSecret = "httpapi-test-secret"

// stubUserService is an in-memory UserService. Tokens it mints are real
// HS256 tokens signed with testSecret, so the auth gateway verifies them
// the same way it would in production.
type stubUserService struct {
	mu        sync.Mutex
	byID      map[string]*models.User
	passwords map[string]string
	forcedErr error
}

func newStubUserService() *stubUserService {
	return &stubUserService{
		byID:      make(map[string]*models.User),
		passwords: make(map[string]string),
	}
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, "", s.forcedErr
	}

	email = services.NormalizeEmail(email)
	for _, u := range s.byID {
		if u.Email == email {
			return nil, "", common.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user := &models.User{ID: uuid.NewString(), Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	s.byID[user.ID] = user
	s.passwords[user.ID] = password

	token, err := auth.GenerateToken(user.ID, []byte(testSecret), time.Hour)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, "", s.forcedErr
	}

	email = services.NormalizeEmail(email)
	for id, u := range s.byID {
		if u.Email == email {
			if s.passwords[id] != password {
				return nil, "", common.ErrUnauthorized
			}
			token, err := auth.GenerateToken(id, []byte(testSecret), time.Hour)
			if err != nil {
				return nil, "", err
			}
			return u, token, nil
		}
	}
	return nil, "", common.ErrUnauthorized
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, id string, update services.ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if update.Email != nil {
		email := services.NormalizeEmail(*update.Email)
		for otherID, other := range s.byID {
			if otherID != id && other.Email == email {
				return nil, common.ErrEmailTaken
			}
		}
		u.Email = email
	}
	if update.Name != nil {
		u.Name = strings.TrimSpace(*update.Name)
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

// stubTaskService is an in-memory TaskService with the same owner scoping
// rules as the real one.
type stubTaskService struct {
	mu        sync.Mutex
	byID      map[string]*models.Task
	forcedErr error
}

func newStubTaskService() *stubTaskService {
	return &stubTaskService{byID: make(map[string]*models.Task)}
}

func (s *stubTaskService) Create(ctx context.Context, userID, title, description string, status models.TaskStatus, priority models.TaskPriority) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	if status == "" {
		status = models.TaskStatusPending
	}
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.byID[task.ID] = task
	return task, nil
}

func (s *stubTaskService) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	var result []*models.Task
	for _, t := range s.byID {
		if t.UserID != userID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.Title), needle) &&
				!strings.Contains(strings.ToLower(t.Description), needle) {
				continue
			}
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (s *stubTaskService) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	t, ok := s.byID[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (s *stubTaskService) Update(ctx context.Context, userID, id string, update services.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	t, ok := s.byID[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
	t.UpdatedAt = time.Now().UTC()
	return t, nil
}

func (s *stubTaskService) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return s.forcedErr
	}
	t, ok := s.byID[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubTaskService) DeleteBatch(ctx context.Context, userID string, ids []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forcedErr != nil {
		return 0, s.forcedErr
	}
	var n int64
	for _, id := range ids {
		if t, ok := s.byID[id]; ok && t.UserID == userID {
			delete(s.byID, id)
			n++
		}
	}
	return n, nil
}

func (s *stubTaskService) Stats(ctx context.Context, userID string) (*models.TaskStats, error) {
	if s.forcedErr != nil {
		return nil, s.forcedErr
	}
	all, err := s.List(ctx, userID, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	byStatus := map[models.TaskStatus]int64{
		models.TaskStatusPending:    0,
		models.TaskStatusInProgress: 0,
		models.TaskStatusCompleted:  0,
	}
	for _, t := range all {
		byStatus[t.Status]++
	}
	recent := all
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return &models.TaskStats{Total: int64(len(all)), ByStatus: byStatus, Recent: recent}, nil
}
