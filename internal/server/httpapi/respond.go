package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// FieldError points a validation failure at the offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// envelope is the response shape shared by every endpoint:
// {"success": bool} plus message, data or field errors.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: true, Message: message})
}

// respondList includes the item count next to the data array.
func respondList(w http.ResponseWriter, status int, count int, data any) {
	respondJSON(w, status, envelope{Success: true, Count: &count, Data: data})
}

func respondFailure(w http.ResponseWriter, status int, message string, fields []FieldError) {
	respondJSON(w, status, envelope{Success: false, Message: message, Errors: fields})
}

// userResponse is the client-visible identity shape. The password hash
// never appears here.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// authResponse is userResponse plus a freshly minted bearer token.
type authResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func newAuthResponse(u *models.User, token string) authResponse {
	return authResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt, Token: token}
}

type taskResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	UserID      string              `json:"userId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskResponseList(tasks []*models.Task) []taskResponse {
	result := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, newTaskResponse(t))
	}
	return result
}

type statsResponse struct {
	Total       int64                       `json:"total"`
	ByStatus    map[models.TaskStatus]int64 `json:"byStatus"`
	RecentTasks []taskResponse              `json:"recentTasks"`
}

func newStatsResponse(s *models.TaskStats) statsResponse {
	return statsResponse{
		Total:       s.Total,
		ByStatus:    s.ByStatus,
		RecentTasks: newTaskResponseList(s.Recent),
	}
}
