package user

import (
	"log"
	"net/http"

	"todolists/controller"
	"todolists/service"

	"github.com/gin-gonic/gin"
)

// DeleteUserController registers the delete flow. POST is the real route;
// the GET alias keeps old links working.
func DeleteUserController(router *gin.Engine, users *service.UserService) {
	handler := func(c *gin.Context) {
		DeleteUser(c, users)
	}
	router.POST("/users/:id/delete", handler)
	router.GET("/users/:id/delete", handler)
}

func DeleteUser(c *gin.Context, users *service.UserService) {
	id, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	if err := users.Delete(id); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("user with id %d was deleted", id)
	c.Redirect(http.StatusFound, "/users/all")
}
