package user

import (
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// UserController registers the read-only user routes. The mutating flows
// live in createuser.go, updateuser.go and deleteuser.go.
func UserController(router *gin.Engine, users *service.UserService) {
	router.GET("/users/all", func(c *gin.Context) {
		AllUsers(c, users)
	})
	router.GET("/users/:id/read", func(c *gin.Context) {
		ReadUser(c, users)
	})
}

func AllUsers(c *gin.Context, users *service.UserService) {
	all, err := users.GetAll()
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "users-list.html", gin.H{"users": all})
}

func ReadUser(c *gin.Context, users *service.UserService) {
	id, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	user, err := users.ReadByID(id)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "user-info.html", gin.H{"user": user})
}
