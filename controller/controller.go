// Package controller holds helpers shared by the per-entity handler
// packages: path/query id parsing and the error page rendering that the
// services' not-found failures funnel into.
package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"todolists/service"

	"github.com/gin-gonic/gin"
)

// PathID parses a numeric path parameter.
func PathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

// QueryID parses a numeric query parameter.
func QueryID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Query(name))
	}
	return id, nil
}

// RenderError maps a failure to the error view: not-found lookups become
// 404, everything else 500.
func RenderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if service.NotFound(err) {
		status = http.StatusNotFound
	}
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": err.Error(),
	})
}

// RenderBadRequest is for malformed ids and other unparseable input.
func RenderBadRequest(c *gin.Context, err error) {
	log.Printf("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusBadRequest, "error.html", gin.H{
		"status":  http.StatusBadRequest,
		"message": err.Error(),
	})
}
