// services/reminder_service.go
package services

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"bodaplanner-backend/models"
	"bodaplanner-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Deadlines within this many days generate a reminder.
const deadlineWindowDays = 7

type ReminderService struct {
	db           *gorm.DB
	inbox        *models.Inbox
	client       *twilio.RestClient
	fromNumber   string
	plannerPhone string
}

func NewReminderService(db *gorm.DB, inbox *models.Inbox) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{
		db:           db,
		inbox:        inbox,
		client:       client,
		fromNumber:   os.Getenv("TWILIO_WHATSAPP_FROM"),
		plannerPhone: os.Getenv("PLANNER_WHATSAPP_TO"),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.ProcessDeadlines)

	c.Start()
	slog.Info("Reminder scheduler started")
}

// ProcessDeadlines scans calendar events whose deadline falls within the
// next seven days and drops an insight note for each into the planner
// inbox, optionally notifying the planner over WhatsApp.
func (s *ReminderService) ProcessDeadlines() {
	slog.Info("Starting deadline reminder processing")

	var eventos []models.Evento
	if err := s.db.Where("deadline <> ''").Find(&eventos).Error; err != nil {
		slog.Error("Failed to fetch events", "error", err)
		return
	}

	now := time.Now()
	for _, ev := range eventos {
		deadline, err := time.Parse("2006-01-02", ev.Deadline)
		if err != nil {
			// Deadlines are free text from the frontend; skip what we can't read.
			continue
		}

		days := utils.DaysBetween(now, deadline)
		if days < 0 || days > deadlineWindowDays {
			continue
		}

		text := fmt.Sprintf("La tarea '%s' de %s vence el %s.", ev.Title, ev.BrideID, ev.Deadline)
		s.inbox.Append(models.InboxTypeInsight, ev.Target, text, ev.BrideID)
		s.notifyPlanner(text)
	}

	slog.Info("Deadline reminder processing completed")
}

func (s *ReminderService) notifyPlanner(text string) {
	if s.client == nil || s.fromNumber == "" || s.plannerPhone == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.fromNumber)
	params.SetTo("whatsapp:" + s.plannerPhone)
	params.SetBody(text)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		slog.Error("Failed to send WhatsApp reminder", "error", err)
	}
}
