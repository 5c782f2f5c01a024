// controllers/inbox.go
package controllers

import (
	"net/http"

	"bodaplanner-backend/models"

	"github.com/gin-gonic/gin"
)

// InboxController exposes the planner inbox to the planner dashboard.
type InboxController struct {
	Inbox *models.Inbox
}

func (ic *InboxController) ListarNotas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ic.Inbox.Notes()})
}
