// controllers/budget.go
package controllers

import (
	"errors"
	"net/http"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PagarInput struct {
	ID     int     `json:"id" binding:"required"`
	Amount float64 `json:"amount"`
}

// PagarPresupuesto registers a payment against a budget line and derives
// its status from the new paid total. The read-then-write pair is not
// atomic: two concurrent payments on the same line can lose one update.
func PagarPresupuesto(c *gin.Context) {
	var input PagarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var linea models.BudgetLine
	if err := config.DB.First(&linea, "id = ?", input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	newPaid := linea.PaidAmount + input.Amount
	newStatus := models.BudgetPendiente
	if newPaid >= linea.EstimatedCost {
		newStatus = models.BudgetPagado
	}

	err := config.DB.Model(&linea).Updates(map[string]interface{}{
		"paid_amount": newPaid,
		"status":      newStatus,
	}).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "newPaid": newPaid, "newStatus": newStatus})
}
