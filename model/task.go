package model

type Task struct {
	TaskID   int      `gorm:"column:task_id;primaryKey;autoIncrement"`
	Name     string   `gorm:"column:name;size:255;not null"`
	Priority Priority `gorm:"column:priority;size:16;not null"`
	TodoID   int      `gorm:"column:todo_id;not null"`
	StateID  int      `gorm:"column:state_id;not null"`

	// Relations
	Todo  ToDo  `gorm:"foreignKey:TodoID;references:TodoID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	State State `gorm:"foreignKey:StateID;references:StateID;constraint:OnUpdate:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}
