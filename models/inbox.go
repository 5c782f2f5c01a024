package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Inbox note types.
const (
	InboxTypeDocument = "document"
	InboxTypeInsight  = "insight"
)

// InboxNote is a planner-facing note generated from chat interactions.
// Notes live for the process lifetime only; nothing is persisted.
type InboxNote struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Text     string `json:"text"`
	User     string `json:"user"`
	Date     string `json:"date"`
}

// Inbox is the process-scoped planner inbox. Gin serves requests on
// multiple goroutines, so access is mutex-guarded.
type Inbox struct {
	mu    sync.RWMutex
	notes []InboxNote
}

func NewInbox() *Inbox {
	return &Inbox{}
}

// Append adds a note, filling in its id and date.
func (i *Inbox) Append(noteType, category, text, user string) InboxNote {
	note := InboxNote{
		ID:       uuid.NewString(),
		Type:     noteType,
		Category: category,
		Text:     text,
		User:     user,
		Date:     time.Now().Format("2006-01-02"),
	}
	i.mu.Lock()
	i.notes = append(i.notes, note)
	i.mu.Unlock()
	return note
}

// Notes returns a copy of the current notes, newest last.
func (i *Inbox) Notes() []InboxNote {
	i.mu.RLock()
	defer i.mu.RUnlock()
	out := make([]InboxNote, len(i.notes))
	copy(out, i.notes)
	return out
}
