// controllers/event.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// ExtendedProps is the calendar's grab-bag of extra event fields. The
// frontend sends them either nested here or flat on the event body.
type ExtendedProps struct {
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type GuardarEventoInput struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Start         string         `json:"start"`
	Color         string         `json:"color"`
	BrideID       string         `json:"brideId"`
	ExtendedProps *ExtendedProps `json:"extendedProps"`

	// Flat fallbacks when extendedProps is absent.
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type eventoResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Start         string        `json:"start"`
	Color         string        `json:"color"`
	BrideID       string        `json:"brideId"`
	ExtendedProps ExtendedProps `json:"extendedProps"`
}

// ListarEventos returns the bride's calendar with extended fields nested
// under extendedProps.
func ListarEventos(c *gin.Context) {
	brideID := c.Query("brideId")

	var eventos []models.Evento
	if err := config.DB.Where("bride_id = ?", brideID).Find(&eventos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respuesta := make([]eventoResponse, 0, len(eventos))
	for _, ev := range eventos {
		respuesta = append(respuesta, eventoResponse{
			ID:      ev.ID,
			Title:   ev.Title,
			Start:   ev.StartDate,
			Color:   ev.Color,
			BrideID: ev.BrideID,
			ExtendedProps: ExtendedProps{
				Target:      ev.Target,
				Deadline:    ev.Deadline,
				Description: ev.Description,
				Link:        ev.Link,
			},
		})
	}

	c.JSON(http.StatusOK, respuesta)
}

// GuardarEvento upserts one calendar event. A missing id is synthesized
// from the current timestamp, and a conflicting id overwrites the prior
// version atomically instead of duplicating it.
func GuardarEvento(c *gin.Context) {
	var input GuardarEventoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Title == "" || input.Start == "" || input.BrideID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Faltan datos obligatorios")
		return
	}

	id := input.ID
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	evento := models.Evento{
		ID:          id,
		Title:       input.Title,
		StartDate:   input.Start,
		Color:       input.Color,
		BrideID:     input.BrideID,
		Target:      firstNonEmpty(extended(input).Target, "General"),
		Deadline:    extended(input).Deadline,
		Description: extended(input).Description,
		Link:        extended(input).Link,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&evento).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// extended resolves the nested-vs-flat duplication: nested values win
// field by field, empty nested fields fall back to the flat ones.
func extended(input GuardarEventoInput) ExtendedProps {
	props := ExtendedProps{
		Target:      input.Target,
		Deadline:    input.Deadline,
		Description: input.Description,
		Link:        input.Link,
	}
	if input.ExtendedProps != nil {
		props.Target = firstNonEmpty(input.ExtendedProps.Target, props.Target)
		props.Deadline = firstNonEmpty(input.ExtendedProps.Deadline, props.Deadline)
		props.Description = firstNonEmpty(input.ExtendedProps.Description, props.Description)
		props.Link = firstNonEmpty(input.ExtendedProps.Link, props.Link)
	}
	return props
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
