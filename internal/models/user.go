package models

// Role separates customers from back-office staff.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered customer or admin.
type User struct {
	BaseModel
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"column:password;not null" json:"-"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string  `gorm:"uniqueIndex;not null" json:"phone"`
	Address      *string `json:"address"`
	Role         Role    `gorm:"type:varchar(16);not null;default:USER" json:"role"`
	Points       int64   `gorm:"not null;default:0" json:"points"`
}

// IsAdmin reports whether the user may use the back office.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
