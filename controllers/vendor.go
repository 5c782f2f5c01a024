// controllers/vendor.go
package controllers

import (
	"errors"
	"net/http"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/services"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SeleccionarProveedorInput struct {
	UserID      string `json:"userId" binding:"required"`
	ProveedorID int    `json:"proveedorId" binding:"required"`
}

// ListarProveedores returns the full vendor catalog with estilo expanded
// into a list.
func ListarProveedores(c *gin.Context) {
	var proveedores []models.Proveedor
	if err := config.DB.Find(&proveedores).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := make([]models.ProveedorView, 0, len(proveedores))
	for _, p := range proveedores {
		data = append(data, p.View())
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Recomendaciones ranks the catalog for the bride. Without a stored
// profile there is nothing to score against, so the catalog comes back
// unscored in storage order; that is a fallback, not an error.
func Recomendaciones(c *gin.Context) {
	userID := c.Param("userId")

	var perfil models.WeddingProfile
	err := config.DB.First(&perfil, "user_id = ?", userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	sinPerfil := errors.Is(err, gorm.ErrRecordNotFound)

	var proveedores []models.Proveedor
	if err := config.DB.Find(&proveedores).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if sinPerfil {
		data := make([]models.ProveedorView, 0, len(proveedores))
		for _, p := range proveedores {
			data = append(data, p.View())
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": services.Recomendar(perfil, proveedores)})
}

// SeleccionarProveedor marks a catalog vendor as hired by the bride.
func SeleccionarProveedor(c *gin.Context) {
	var input SeleccionarProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	seleccion := models.ProveedorSeleccionado{
		UserID:      input.UserID,
		ProveedorID: input.ProveedorID,
	}
	if err := config.DB.Create(&seleccion).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
