package httpapi

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

const (
	minNameLen     = 2
	minPasswordLen = 6
)

// decodeJSON parses the request body into dst. A body that is not valid
// JSON for dst is a client error.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest("Invalid request payload")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *registerRequest) Validate() []FieldError {
	var fields []FieldError
	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) < minNameLen {
		fields = append(fields, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if !validEmail(services.NormalizeEmail(req.Email)) {
		fields = append(fields, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen {
		fields = append(fields, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return fields
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) Validate() []FieldError {
	var fields []FieldError
	if strings.TrimSpace(req.Email) == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	}
	return fields
}

// profileRequest is a partial update; absent fields stay unchanged.
type profileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (req *profileRequest) Validate() []FieldError {
	var fields []FieldError
	if req.Name != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Name)) < minNameLen {
		fields = append(fields, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if req.Email != nil && !validEmail(services.NormalizeEmail(*req.Email)) {
		fields = append(fields, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	return fields
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func (req *createTaskRequest) Validate() []FieldError {
	var fields []FieldError
	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		fields = append(fields, FieldError{Field: "title", Message: "Title is required"})
	case utf8.RuneCountInString(title) > models.TaskTitleMaxLen:
		fields = append(fields, FieldError{Field: "title", Message: "Title cannot exceed 100 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Description)) > models.TaskDescriptionMaxLen {
		fields = append(fields, FieldError{Field: "description", Message: "Description cannot exceed 500 characters"})
	}
	if req.Status != "" && !models.TaskStatus(req.Status).Valid() {
		fields = append(fields, FieldError{Field: "status", Message: "Invalid status value"})
	}
	if req.Priority != "" && !models.TaskPriority(req.Priority).Valid() {
		fields = append(fields, FieldError{Field: "priority", Message: "Invalid priority value"})
	}
	return fields
}

// updateTaskRequest is a partial update; absent fields stay unchanged.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (req *updateTaskRequest) Validate() []FieldError {
	var fields []FieldError
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		switch {
		case title == "":
			fields = append(fields, FieldError{Field: "title", Message: "Title is required"})
		case utf8.RuneCountInString(title) > models.TaskTitleMaxLen:
			fields = append(fields, FieldError{Field: "title", Message: "Title cannot exceed 100 characters"})
		}
	}
	if req.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Description)) > models.TaskDescriptionMaxLen {
		fields = append(fields, FieldError{Field: "description", Message: "Description cannot exceed 500 characters"})
	}
	if req.Status != nil && !models.TaskStatus(*req.Status).Valid() {
		fields = append(fields, FieldError{Field: "status", Message: "Invalid status value"})
	}
	if req.Priority != nil && !models.TaskPriority(*req.Priority).Valid() {
		fields = append(fields, FieldError{Field: "priority", Message: "Invalid priority value"})
	}
	return fields
}

type batchDeleteRequest struct {
	TaskIDs []string `json:"taskIds"`
}

func (req *batchDeleteRequest) Validate() []FieldError {
	if len(req.TaskIDs) == 0 {
		return []FieldError{{Field: "taskIds", Message: "taskIds must be a non-empty array"}}
	}
	return nil
}

// taskFilterFromQuery builds the list filter from query parameters.
// Unknown status/priority/sort values are rejected rather than ignored.
func taskFilterFromQuery(r *http.Request) (models.TaskFilter, []FieldError) {
	var fields []FieldError
	q := r.URL.Query()

	filter := models.TaskFilter{Search: strings.TrimSpace(q.Get("search"))}

	if v := q.Get("status"); v != "" {
		if !models.TaskStatus(v).Valid() {
			fields = append(fields, FieldError{Field: "status", Message: "Invalid status value"})
		} else {
			filter.Status = models.TaskStatus(v)
		}
	}
	if v := q.Get("priority"); v != "" {
		if !models.TaskPriority(v).Valid() {
			fields = append(fields, FieldError{Field: "priority", Message: "Invalid priority value"})
		} else {
			filter.Priority = models.TaskPriority(v)
		}
	}
	if v := q.Get("sort"); v != "" {
		if !models.TaskSort(v).Valid() {
			fields = append(fields, FieldError{Field: "sort", Message: "Invalid sort value"})
		} else {
			filter.Sort = models.TaskSort(v)
		}
	}

	return filter, fields
}
