package home

import (
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

func HomeController(router *gin.Engine, users *service.UserService) {
	router.GET("/", func(c *gin.Context) {
		Home(c, users)
	})
	router.GET("/home", func(c *gin.Context) {
		Home(c, users)
	})
}

// Home lists every registered user.
func Home(c *gin.Context, users *service.UserService) {
	all, err := users.GetAll()
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"users": all})
}
