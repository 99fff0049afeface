package dto

// TaskRequest is the form shape for creating and updating tasks. Foreign
// keys travel as bare ids and the priority as its name; the transformer
// resolves them into the persisted shape.
type TaskRequest struct {
	ID       int    `form:"id"`
	Name     string `form:"name" binding:"required,notblank"`
	Priority string `form:"priority" binding:"required"`
	TodoID   int    `form:"todoId"`
	StateID  int    `form:"stateId"`
}
