// controllers/chat.go
package controllers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"bodaplanner-backend/models"
	"bodaplanner-backend/services"
	"bodaplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatFileData carries an attached file for the model, either nested the
// way the Gemini web SDK shapes it or flat.
type ChatFileData struct {
	InlineData *InlineData `json:"inlineData"`
	MimeType   string      `json:"mimeType"`
	Data       string      `json:"data"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type SummaryData struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type ChatInput struct {
	Messages    []ChatMessage `json:"messages"`
	Message     string        `json:"message"`
	IsNovia     bool          `json:"isNovia"`
	UserName    string        `json:"userName"`
	FileData    *ChatFileData `json:"fileData"`
	SaveToInbox bool          `json:"saveToInbox"`
	SummaryData *SummaryData  `json:"summaryData"`
	Role        string        `json:"role"`
}

// ChatController proxies the conversational endpoint. AI failures never
// surface as HTTP errors; the user gets an apologetic reply instead.
type ChatController struct {
	AI    services.Generator
	Inbox *models.Inbox
}

func (ct *ChatController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Inbox intent short-circuits the whole flow: no AI call is made.
	if input.SaveToInbox && input.SummaryData != nil {
		noteType := models.InboxTypeInsight
		if input.FileData != nil {
			noteType = models.InboxTypeDocument
		}
		category := input.SummaryData.Category
		if category == "" {
			category = "General"
		}
		user := input.UserName
		if user == "" {
			user = "Usuario"
		}
		ct.Inbox.Append(noteType, category, input.SummaryData.Text, user)
		c.JSON(http.StatusOK, gin.H{"success": true, "response": "¡Listo! Información guardada en el Dashboard."})
		return
	}

	// The refusal fires only when no message field is present at all; a
	// history whose last entry is empty still goes to the model.
	var ultimoMensaje string
	switch {
	case len(input.Messages) > 0:
		ultimoMensaje = input.Messages[len(input.Messages)-1].Content
	case input.Message != "":
		ultimoMensaje = input.Message
	default:
		c.JSON(http.StatusOK, gin.H{"success": false, "response": "..."})
		return
	}

	role := services.RoleFromString(input.Role)
	parts := []genai.Part{
		genai.Text(role.Instruction(input.UserName)),
		genai.Text("Usuario: " + ultimoMensaje),
	}
	if blob, ok := input.FileData.Blob(); ok {
		parts = append(parts, blob)
	}

	if ct.AI == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "response": "IA iniciando..."})
		return
	}

	respuesta, err := ct.AI.Generate(c.Request.Context(), parts...)
	if err != nil {
		slog.Error("Gemini error", "error", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "response": "Tuve un problema de conexión. ¿Intenta de nuevo?"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": respuesta})
}

// Blob converts the attached file into a model part. Undecodable or
// absent payloads are dropped silently.
func (f *ChatFileData) Blob() (genai.Blob, bool) {
	if f == nil {
		return genai.Blob{}, false
	}
	mimeType, data := f.MimeType, f.Data
	if f.InlineData != nil {
		mimeType, data = f.InlineData.MimeType, f.InlineData.Data
	}
	if data == "" {
		return genai.Blob{}, false
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return genai.Blob{}, false
	}
	return genai.Blob{MIMEType: mimeType, Data: raw}, true
}
