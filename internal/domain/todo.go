package domain

import "time"

type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "PENDING"
	TodoStatusCompleted TodoStatus = "COMPLETED"
)

// Valid reports whether the status is one of the known enum values.
func (s TodoStatus) Valid() bool {
	return s == TodoStatusPending || s == TodoStatusCompleted
}

// Todo represents a single task item owned by exactly one user.
type Todo struct {
	ID          string
	Title       string
	Description string
	Status      TodoStatus
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
