package task

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

func CreateTaskController(router *gin.Engine, tasks *service.TaskService, todos *service.ToDoService, states *service.StateService) {
	router.GET("/tasks/create/todos/:todo_id", func(c *gin.Context) {
		CreateTaskForm(c, todos)
	})
	router.POST("/tasks/create/todos/:todo_id", func(c *gin.Context) {
		CreateTask(c, tasks, todos, states)
	})
}

func CreateTaskForm(c *gin.Context, todos *service.ToDoService) {
	todoID, err := controller.PathID(c, "todo_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	todo, err := todos.ReadByID(todoID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "create-task.html", gin.H{
		"task":       dto.TaskRequest{TodoID: todoID},
		"todo":       todo,
		"priorities": model.Priorities(),
	})
}

// CreateTask persists a new task. Whatever the form says, a new task starts
// in the "New" state; the submitted todo id is resolved through the service
// before anything is written.
func CreateTask(c *gin.Context, tasks *service.TaskService, todos *service.ToDoService, states *service.StateService) {
	todoID, err := controller.PathID(c, "todo_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	var req dto.TaskRequest
	if err := c.ShouldBind(&req); err != nil {
		todo, terr := todos.ReadByID(todoID)
		if terr != nil {
			controller.RenderError(c, terr)
			return
		}
		log.Printf("invalid input for creating a task in todo %d: %v", todoID, err)
		c.HTML(http.StatusOK, "create-task.html", gin.H{
			"task":       req,
			"todo":       todo,
			"priorities": model.Priorities(),
			"errors":     dto.FieldErrors(err),
		})
		return
	}

	todo, err := todos.ReadByID(req.TodoID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	state, err := states.GetByName(model.StateNew)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	entity, err := dto.TaskToEntity(req, todo, state)
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	created, err := tasks.Create(entity)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("task with id %d was created in todo %d", created.TaskID, todo.TodoID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/%d/tasks", todoID))
}
