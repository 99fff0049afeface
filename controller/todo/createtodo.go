package todo

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"todolists/controller"
	"todolists/dto"
	"todolists/model"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

func CreateTodoController(router *gin.Engine, todos *service.ToDoService, users *service.UserService) {
	router.GET("/todos/create/users/:owner_id", func(c *gin.Context) {
		CreateTodoForm(c)
	})
	router.POST("/todos/create/users/:owner_id", func(c *gin.Context) {
		CreateTodo(c, todos, users)
	})
}

func CreateTodoForm(c *gin.Context) {
	ownerID, err := controller.PathID(c, "owner_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	c.HTML(http.StatusOK, "create-todo.html", gin.H{
		"todo":    dto.TodoRequest{},
		"ownerId": ownerID,
	})
}

// CreateTodo stamps owner and creation time server-side; the form only
// carries the title.
func CreateTodo(c *gin.Context, todos *service.ToDoService, users *service.UserService) {
	ownerID, err := controller.PathID(c, "owner_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	var req dto.TodoRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("invalid input for creating a todo for user %d: %v", ownerID, err)
		c.HTML(http.StatusOK, "create-todo.html", gin.H{
			"todo":    req,
			"ownerId": ownerID,
			"errors":  dto.FieldErrors(err),
		})
		return
	}
	owner, err := users.ReadByID(ownerID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	created, err := todos.Create(model.ToDo{
		Title:     req.Title,
		CreatedAt: time.Now(),
		OwnerID:   owner.UserID,
	})
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("todo with id %d was created for user %d", created.TodoID, ownerID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/all/users/%d", ownerID))
}
