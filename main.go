package main

import (
	"context"
	"log/slog"
	"os"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
	"bodaplanner-backend/routes"
	"bodaplanner-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}
	config.SetupLogging()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Proveedor{},
		&models.Documento{},
		&models.Evento{},
		&models.Guest{},
		&models.WeddingProfile{},
		&models.BudgetLine{},
		&models.ChecklistItem{},
		&models.ProveedorSeleccionado{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	users := models.SeedUserStore()
	inbox := models.NewInbox()

	var ai services.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, chat runs in fallback mode")
	} else if client, err := services.NewGeminiClient(context.Background(), apiKey); err != nil {
		slog.Error("Failed to connect Gemini", "error", err)
	} else {
		slog.Info("Gemini connected")
		ai = client
	}

	reminders := services.NewReminderService(config.DB, inbox)
	reminders.StartScheduler()

	r := routes.SetupRouter(users, inbox, ai)

	slog.Info("Server starting", "port", port, "users", users.Count())
	r.Run(":" + port)
}
