// controllers/alert.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListarAlertas is a stub kept for frontend compatibility; alert
// generation moved to the planner inbox.
func ListarAlertas(c *gin.Context) {
	c.JSON(http.StatusOK, []any{})
}
