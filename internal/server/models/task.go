package models

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority orders tasks by urgency: high > medium > low.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Validation limits enforced before persistence.
const (
	TaskTitleMaxLen       = 100
	TaskDescriptionMaxLen = 500
)

// Task is a single to-do item owned by exactly one user. UserID always
// comes from the authenticated identity, never from client input.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskSort names the supported list orderings.
type TaskSort string

const (
	TaskSortNewest   TaskSort = "newest"
	TaskSortOldest   TaskSort = "oldest"
	TaskSortTitle    TaskSort = "title"
	TaskSortPriority TaskSort = "priority"
)

func (s TaskSort) Valid() bool {
	switch s {
	case TaskSortNewest, TaskSortOldest, TaskSortTitle, TaskSortPriority:
		return true
	}
	return false
}

// TaskFilter narrows a list query. Zero values mean "no constraint";
// the owner scope is applied separately and unconditionally.
type TaskFilter struct {
	Search   string
	Status   TaskStatus
	Priority TaskPriority
	Sort     TaskSort
}

// TaskStats aggregates a user's tasks: total count, per-status counts,
// and the most recently created tasks.
type TaskStats struct {
	Total    int64
	ByStatus map[TaskStatus]int64
	Recent   []*Task
}
