// controllers/guest.go
package controllers

import (
	"net/http"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type CrearInvitadoInput struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

func ListarInvitados(c *gin.Context) {
	var invitados []models.Guest
	if err := config.DB.Where("user_id = ?", c.Param("userId")).Find(&invitados).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": invitados})
}

func CrearInvitado(c *gin.Context) {
	var input CrearInvitadoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invitado := models.Guest{UserID: input.UserID, Name: input.Name}
	if err := config.DB.Create(&invitado).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
