package task

import (
	"fmt"
	"log"
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// DeleteTaskController registers the delete flow; the GET alias keeps old
// links working.
func DeleteTaskController(router *gin.Engine, tasks *service.TaskService) {
	handler := func(c *gin.Context) {
		DeleteTask(c, tasks)
	}
	router.POST("/tasks/:task_id/delete/todos/:todo_id", handler)
	router.GET("/tasks/:task_id/delete/todos/:todo_id", handler)
}

// DeleteTask removes the task; the parent todo is untouched.
func DeleteTask(c *gin.Context, tasks *service.TaskService) {
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
	if err := tasks.Delete(taskID); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("task with id %d was deleted", taskID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/%d/tasks", todoID))
}
