package todo

import (
	"fmt"
	"log"
	"net/http"

	"todolists/controller"
	"todolists/dto"
	"todolists/model"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

func UpdateTodoController(router *gin.Engine, todos *service.ToDoService) {
	router.GET("/todos/:id/update/users/:owner_id", func(c *gin.Context) {
		UpdateTodoForm(c, todos)
	})
	router.POST("/todos/:id/update/users/:owner_id", func(c *gin.Context) {
		UpdateTodo(c, todos)
	})
}

func UpdateTodoForm(c *gin.Context, todos *service.ToDoService) {
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
	todo, err := todos.ReadByID(id)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "update-todo.html", gin.H{
		"todo":    dto.TodoToRequest(todo),
		"ownerId": ownerID,
	})
}

// UpdateTodo writes only the title. Owner and collaborator set stay as
// stored, whatever the form submits.
func UpdateTodo(c *gin.Context, todos *service.ToDoService) {
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
	var req dto.TodoRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("invalid input for updating todo with id %d: %v", id, err)
		req.ID = id
		c.HTML(http.StatusOK, "update-todo.html", gin.H{
			"todo":    req,
			"ownerId": ownerID,
			"errors":  dto.FieldErrors(err),
		})
		return
	}
	if _, err := todos.ReadByID(id); err != nil {
		controller.RenderError(c, err)
		return
	}
	if _, err := todos.Update(model.ToDo{TodoID: id, Title: req.Title}); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("todo with id %d was updated", id)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/all/users/%d", ownerID))
}
