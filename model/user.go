package model

type User struct {
	UserID    int    `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;size:255;not null"`
	LastName  string `gorm:"column:last_name;size:255;not null"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex"`
	Password  string `gorm:"column:password;size:255;not null"`
	RoleID    int    `gorm:"column:role_id;not null"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID;references:RoleID;constraint:OnUpdate:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

// FullName is what the views show in user listings.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
