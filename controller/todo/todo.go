package todo

import (
	"net/http"

	"todolists/controller"
	"todolists/model"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// ToDoController registers the read-only todo routes: a user's listing and
// the task view of a single todo.
func ToDoController(router *gin.Engine, todos *service.ToDoService, tasks *service.TaskService, users *service.UserService) {
	router.GET("/todos/all/users/:user_id", func(c *gin.Context) {
		AllTodos(c, todos, users)
	})
	router.GET("/todos/:id/tasks", func(c *gin.Context) {
		TodoTasks(c, todos, tasks, users)
	})
}

// AllTodos lists every todo the user owns or collaborates on.
func AllTodos(c *gin.Context, todos *service.ToDoService, users *service.UserService) {
	userID, err := controller.PathID(c, "user_id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	user, err := users.ReadByID(userID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	list, err := todos.GetByUserID(userID)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "todos-user.html", gin.H{
		"todos": list,
		"user":  user,
	})
}

// TodoTasks shows the todo's tasks together with every user except the
// owner, the candidates for collaboration.
func TodoTasks(c *gin.Context, todos *service.ToDoService, tasks *service.TaskService, users *service.UserService) {
	id, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	todo, err := todos.ReadByID(id)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	todoTasks, err := tasks.GetByTodoID(id)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	all, err := users.GetAll()
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	others := make([]model.User, 0, len(all))
	for _, u := range all {
		if u.UserID != todo.OwnerID {
			others = append(others, u)
		}
	}
	c.HTML(http.StatusOK, "todo-tasks.html", gin.H{
		"todo":  todo,
		"tasks": todoTasks,
		"users": others,
	})
}
