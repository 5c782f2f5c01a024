// controllers/profile.go
package controllers

import (
	"net/http"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type GuardarPerfilInput struct {
	UserID      string  `json:"userId" binding:"required"`
	WeddingDate string  `json:"weddingDate"`
	BudgetLimit float64 `json:"budgetLimit"`
	Estilos     string  `json:"estilos"`
}

type GuardarPerfilCompletoInput struct {
	UserID       string  `json:"userId"`
	Nombre       string  `json:"nombre"`
	Pareja       string  `json:"pareja"`
	FechaBoda    string  `json:"fecha_boda"`
	Presupuesto  float64 `json:"presupuesto"`
	Estilo       string  `json:"estilo"`
	AvatarBase64 string  `json:"avatarBase64"`
}

// GuardarPerfil upserts the basic planning trio (date, budget, styles).
// Partner name and avatar saved through the full route are left intact.
func GuardarPerfil(c *gin.Context) {
	var input GuardarPerfilInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	perfil := models.WeddingProfile{
		UserID:            input.UserID,
		WeddingDate:       input.WeddingDate,
		BudgetLimit:       input.BudgetLimit,
		EstilosPreferidos: input.Estilos,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"wedding_date", "budget_limit", "estilos_preferidos"}),
	}).Create(&perfil).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GuardarPerfilCompleto upserts the bride's extended profile, including
// partner name and avatar.
func GuardarPerfilCompleto(c *gin.Context) {
	var input GuardarPerfilCompletoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Falta el ID de usuario"})
		return
	}

	perfil := models.WeddingProfile{
		UserID:            input.UserID,
		WeddingDate:       input.FechaBoda,
		BudgetLimit:       input.Presupuesto,
		EstilosPreferidos: input.Estilo,
		PartnerName:       input.Pareja,
		Avatar:            input.AvatarBase64,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wedding_date", "budget_limit", "estilos_preferidos", "partner_name", "avatar",
		}),
	}).Create(&perfil).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Perfil guardado correctamente"})
}
