package entity

type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleGuest UserRole = "guest"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStaff, RoleGuest:
		return true
	}
	return false
}

func (r UserRole) IsStaff() bool {
	return r == RoleStaff
}

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Name         string   `db:"name"`
	Role         UserRole `db:"role"`
}
