package model

// Role names seeded at startup. "USER" is the default signup role.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Role struct {
	RoleID int    `gorm:"column:role_id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

func (Role) TableName() string {
	return "roles"
}
