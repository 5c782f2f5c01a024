// controllers/document.go
package controllers

import (
	"net/http"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type CrearDocumentoInput struct {
	UserID   string `json:"userId" binding:"required"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileURL  string `json:"fileUrl"`
	EventID  string `json:"eventId"`
}

// CrearDocumento stores a document reference. Everything uploaded through
// this route is shared with the planner.
func CrearDocumento(c *gin.Context) {
	var input CrearDocumentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	documento := models.Documento{
		DuenoID:           input.UserID,
		NombreArchivo:     input.FileName,
		Tipo:              input.FileType,
		URL:               input.FileURL,
		EventID:           input.EventID,
		CompartidoPlanner: true,
	}
	if err := config.DB.Create(&documento).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
