package user

import "time"

// Role matches the persisted role_type enum.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	// Salary is the period-level gross pay in minor currency units.
	Salary    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
