package model

// Role is the enumerated account role carried in bearer tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name         string  `db:"name" json:"name"`
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password" json:"-"`
	Phone        *string `db:"phone" json:"phone"`
	Role         Role    `db:"role" json:"role"`
	Avatar       *string `db:"avatar" json:"avatar"`
}
