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

func UpdateUserController(router *gin.Engine, users *service.UserService, roles *service.RoleService) {
	router.GET("/users/:id/update", func(c *gin.Context) {
		UpdateUserForm(c, users, roles)
	})
	router.POST("/users/:id/update", func(c *gin.Context) {
		UpdateUser(c, users, roles)
	})
}

func UpdateUserForm(c *gin.Context, users *service.UserService, roles *service.RoleService) {
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
	allRoles, err := roles.GetAll()
	if err != nil {
		controller.RenderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "update-user.html", gin.H{
		"user":  dto.UserToRequest(user),
		"roles": allRoles,
	})
}

// UpdateUser applies the submitted profile fields. The role-change guard is
// asymmetric on purpose: when the stored role is "USER" the submitted roleId
// is silently ignored and the stored role kept; otherwise the submitted role
// is resolved and applied.
func UpdateUser(c *gin.Context, users *service.UserService, roles *service.RoleService) {
	id, err := controller.PathID(c, "id")
	if err != nil {
		controller.RenderBadRequest(c, err)
		return
	}
	old, err := users.ReadByID(id)
	if err != nil {
		controller.RenderError(c, err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		allRoles, rerr := roles.GetAll()
		if rerr != nil {
			controller.RenderError(c, rerr)
			return
		}
		log.Printf("invalid input for updating user with id %d: %v", id, err)
		req.ID = id
		c.HTML(http.StatusOK, "update-user.html", gin.H{
			"user":   req,
			"roles":  allRoles,
			"errors": dto.FieldErrors(err),
		})
		return
	}

	roleID := old.RoleID
	if old.Role.Name != model.RoleUser {
		role, err := roles.ReadByID(req.RoleID)
		if err != nil {
			controller.RenderError(c, err)
			return
		}
		roleID = role.RoleID
	} else {
		log.Printf("user with id %d keeps the %q role", id, model.RoleUser)
	}

	if _, err := users.Update(model.User{
		UserID:    id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    roleID,
	}); err != nil {
		controller.RenderError(c, err)
		return
	}
	log.Printf("user with id %d was updated", id)
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d/read", id))
}
