package dto

// UserRequest is the form shape for signup and profile update. RoleID is
// only honored on update, and only when the role-change guard allows it.
type UserRequest struct {
	ID        int    `form:"id"`
	FirstName string `form:"firstName" binding:"required,notblank"`
	LastName  string `form:"lastName" binding:"required,notblank"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password"`
	RoleID    int    `form:"roleId"`
}
