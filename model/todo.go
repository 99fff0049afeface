package model

import (
	"time"
)

type ToDo struct {
	TodoID    int       `gorm:"column:todo_id;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	OwnerID   int       `gorm:"column:owner_id;not null"`

	// Relations
	Owner         User   `gorm:"foreignKey:OwnerID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Collaborators []User `gorm:"many2many:todo_collaborators;foreignKey:TodoID;joinForeignKey:TodoID;references:UserID;joinReferences:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (ToDo) TableName() string {
	return "todos"
}
