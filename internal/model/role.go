package model

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Seeded role ids.
const (
	RoleAdminID uint = 1
	RoleUserID  uint = 2
)

type Role struct {
	Base
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
}
