package connection

import (
	"log"

	"todolists/config"
	"todolists/controller/home"
	"todolists/controller/task"
	"todolists/controller/todo"
	"todolists/controller/user"
	"todolists/middleware"
	"todolists/repository"
	"todolists/scheduler"
	"todolists/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine: templates, middleware and every
// controller registration. It is the seam the handler tests use.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(cfg.TemplatesGlob)

	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	roles := service.NewRoleService(repository.NewRoleRepository(db))
	todos := service.NewToDoService(repository.NewToDoRepository(db))
	tasks := service.NewTaskService(repository.NewTaskRepository(db))
	states := service.NewStateService(repository.NewStateRepository(db))

	home.HomeController(router, users)

	user.UserController(router, users)
	user.CreateUserController(router, users, roles)
	user.UpdateUserController(router, users, roles)
	user.DeleteUserController(router, users)

	todo.ToDoController(router, todos, tasks, users)
	todo.CreateTodoController(router, todos, users)
	todo.UpdateTodoController(router, todos)
	todo.DeleteTodoController(router, todos)
	todo.CollaboratorController(router, todos, users)

	task.CreateTaskController(router, tasks, todos, states)
	task.UpdateTaskController(router, tasks, todos, states)
	task.DeleteTaskController(router, tasks)

	return router
}

// StartServer wires config, database, scheduler and router, then serves.
func StartServer() {
	cfg := config.Load()

	db, err := DBConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := scheduler.StartScheduler(db, cfg.SummarySchedule); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	router := NewRouter(db, cfg)
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
