// controllers/checklist.go
package controllers

import (
	"net/http"
	"strconv"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type CrearTareaInput struct {
	UserID   string `json:"userId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Priority string `json:"priority"`
}

type CompletarTareaInput struct {
	Completed *bool `json:"completed" binding:"required"`
}

// ListarChecklist returns the user's tasks, newest first.
func ListarChecklist(c *gin.Context) {
	userID := c.Param("userId")

	var items []models.ChecklistItem
	if err := config.DB.Where("user_id = ?", userID).Order("id DESC").Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, items)
}

func CrearTarea(c *gin.Context) {
	var input CrearTareaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Priority == "" {
		input.Priority = "Normal"
	}

	item := models.ChecklistItem{
		UserID:   input.UserID,
		TaskText: input.Text,
		Priority: input.Priority,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": item.ID})
}

// CompletarTarea flips the completion flag of one task.
func CompletarTarea(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var input CompletarTareaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	err = config.DB.Model(&models.ChecklistItem{}).
		Where("id = ?", id).
		Update("is_completed", *input.Completed).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func EliminarTarea(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	if err := config.DB.Delete(&models.ChecklistItem{}, "id = ?", id).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
