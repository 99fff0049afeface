package user

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

func CreateUserController(router *gin.Engine, users *service.UserService, roles *service.RoleService) {
	router.GET("/users/create", func(c *gin.Context) {
		CreateUserForm(c)
	})
	router.POST("/users/create", func(c *gin.Context) {
		CreateUser(c, users, roles)
	})
}

func CreateUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create-user.html", gin.H{"user": dto.UserRequest{}})
}

// CreateUser handles signup. New users always get the non-privileged "USER"
// role; the submitted roleId is ignored here.
func CreateUser(c *gin.Context, users *service.UserService, roles *service.RoleService) {
	var req dto.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("invalid input for creating new user: %v", err)
		c.HTML(http.StatusOK, "create-user.html", gin.H{
			"user":   req,
			"errors": dto.FieldErrors(err),
		})
		return
	}
	if req.Password == "" {
		c.HTML(http.StatusOK, "create-user.html", gin.H{
			"user":   req,
			"errors": map[string]string{"Password": "The 'password' cannot be empty"},
		})
		return
	}

	role, err := roles.GetByName(model.RoleUser)
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	created, err := users.Create(model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    role.RoleID,
	})
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("user with id %d was created", created.UserID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/todos/all/users/%d", created.UserID))
}
