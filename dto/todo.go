package dto

// TodoRequest is the form shape for creating and updating todo lists. Owner
// and collaborators are deliberately absent: both are server-controlled.
type TodoRequest struct {
	ID    int    `form:"id"`
	Title string `form:"title" binding:"required,notblank"`
}
