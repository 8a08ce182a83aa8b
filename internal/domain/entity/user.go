package entity

import (
	"time"
)

// User is an investor. Users are reference data here; only their portfolio relation changes.
type User struct {
	ID        uint64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
