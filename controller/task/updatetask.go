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

func UpdateTaskController(router *gin.Engine, tasks *service.TaskService, todos *service.ToDoService, states *service.StateService) {
	router.GET("/tasks/:task_id/update/todos/:todo_id", func(c *gin.Context) {
		UpdateTaskForm(c, tasks, states)
	})
	router.POST("/tasks/:task_id/update/todos/:todo_id", func(c *gin.Context) {
		UpdateTask(c, tasks, todos, states)
	})
}

func UpdateTaskForm(c *gin.Context, tasks *service.TaskService, states *service.StateService) {
	taskID, err := controller.PathID(c, "task_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	task, err := tasks.ReadByID(taskID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	allStates, err := states.GetAll()
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "update-task.html", gin.H{
		"task":       dto.TaskToRequest(task),
		"priorities": model.Priorities(),
		"states":     allStates,
	})
}

// UpdateTask resolves the submitted todo and state ids through the services
// and writes the merged task.
func UpdateTask(c *gin.Context, tasks *service.TaskService, todos *service.ToDoService, states *service.StateService) {
	taskID, err := controller.PathID(c, "task_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	todoID, err := controller.PathID(c, "todo_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	var req dto.TaskRequest
	if err := c.ShouldBind(&req); err != nil {
		allStates, serr := states.GetAll()
		if serr != nil {
			controller.RenderError(c, serr)
			return
		}
		log.Printf("invalid input for updating task with id %d: %v", taskID, err)
		req.ID = taskID
		c.HTML(http.StatusOK, "update-task.html", gin.H{
			"task":       req,
			"priorities": model.Priorities(),
			"states":     allStates,
			"errors":     dto.FieldErrors(err),
		})
		return
	}

	todo, err := todos.ReadByID(req.TodoID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	state, err := states.ReadByID(req.StateID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	req.ID = taskID
	entity, err := dto.TaskToEntity(req, todo, state)
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	if _, err := tasks.Update(entity); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("task with id %d was updated", taskID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/%d/tasks", todoID))
}
