package model

type User struct {
	Base
	Name            string `gorm:"type:varchar(80);not null" json:"name"`
	Email           string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password        string `gorm:"type:varchar(80);not null" json:"-"`
	RoleID          uint   `gorm:"index;not null" json:"id_role"`
	IsActive        bool   `gorm:"not null;default:true" json:"is_active"`
	AlertsActivated bool   `gorm:"not null;default:true" json:"alerts_activated"`

	Role *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT" json:"-"`
}

// RoleName returns the name of the preloaded role, or "" when Role was not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
