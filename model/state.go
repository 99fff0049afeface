package model

// StateNew is the workflow state every task is created in.
const StateNew = "New"

type State struct {
	StateID int    `gorm:"column:state_id;primaryKey;autoIncrement"`
	Name    string `gorm:"column:name;size:255;not null;uniqueIndex"`
}

func (State) TableName() string {
	return "states"
}
