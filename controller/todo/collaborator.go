package todo

import (
	"fmt"
	"log"
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// CollaboratorController registers the add/remove collaborator flows. Both
// are link mutations at the data-store boundary, not read-modify-write of
// the whole collaborator set. GET aliases keep old links working.
func CollaboratorController(router *gin.Engine, todos *service.ToDoService, users *service.UserService) {
	add := func(c *gin.Context) {
		AddCollaborator(c, todos, users)
	}
	remove := func(c *gin.Context) {
		RemoveCollaborator(c, todos, users)
	}
	router.POST("/todos/:id/add", add)
	router.GET("/todos/:id/add", add)
	router.POST("/todos/:id/remove", remove)
	router.GET("/todos/:id/remove", remove)
}

func AddCollaborator(c *gin.Context, todos *service.ToDoService, users *service.UserService) {
	todoID, userID, ok := collaboratorParams(c)
	if !ok {
		return
	}
	user, err := users.ReadByID(userID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	if err := todos.AddCollaborator(todoID, user.UserID); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("collaborator with id %d was added to todo with id %d", userID, todoID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/%d/tasks", todoID))
}

func RemoveCollaborator(c *gin.Context, todos *service.ToDoService, users *service.UserService) {
	todoID, userID, ok := collaboratorParams(c)
	if !ok {
		return
	}
	user, err := users.ReadByID(userID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	if err := todos.RemoveCollaborator(todoID, user.UserID); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("collaborator with id %d was removed from todo with id %d", userID, todoID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/%d/tasks", todoID))
}

func collaboratorParams(c *gin.Context) (todoID, userID int, ok bool) {
	todoID, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return 0, 0, false
	}
	userID, err = controller.QueryID(c, "user_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return 0, 0, false
	}
	return todoID, userID, true
}
