package employee

import (
	"time"
)

type Employee struct {
	ID          string
	FullName    string
	Email       string
	Designation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
