package todo

import (
	"fmt"
	"log"
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// DeleteTodoController registers the delete flow; the GET alias keeps old
// links working.
func DeleteTodoController(router *gin.Engine, todos *service.ToDoService) {
	handler := func(c *gin.Context) {
		DeleteTodo(c, todos)
	}
	router.POST("/todos/:id/delete/users/:owner_id", handler)
	router.GET("/todos/:id/delete/users/:owner_id", handler)
}

// DeleteTodo removes the todo with its tasks and collaborator links.
func DeleteTodo(c *gin.Context, todos *service.ToDoService) {
	id, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	ownerID, err := controller.PathID(c, "owner_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	if err := todos.Delete(id); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("todo with id %d was deleted", id)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/all/users/%d", ownerID))
}
