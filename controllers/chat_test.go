package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"bodaplanner-backend/models"

	"github.com/google/generative-ai-go/genai"
)

// fakeGenerator records the prompt it was given and replies or fails.
type fakeGenerator struct {
	parts []genai.Part
	reply string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, parts ...genai.Part) (string, error) {
	f.parts = parts
	return f.reply, f.err
}

func TestChat(t *testing.T) {
	t.Run("save to inbox short-circuits the AI", func(t *testing.T) {
		ai := &fakeGenerator{reply: "no debería llamarse"}
		r, inbox := setupRouter(t, ai)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"saveToInbox": true,
			"summaryData": map[string]any{"category": "Flores", "text": "Quiere peonías"},
			"userName":    "Erika",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["response"] != "¡Listo! Información guardada en el Dashboard." {
			t.Errorf("unexpected response: %v", body["response"])
		}
		if ai.parts != nil {
			t.Error("AI must not be called on inbox saves")
		}

		notes := inbox.Notes()
		if len(notes) != 1 {
			t.Fatalf("expected 1 inbox note, got %d", len(notes))
		}
		if notes[0].Type != models.InboxTypeInsight || notes[0].Category != "Flores" || notes[0].User != "Erika" {
			t.Errorf("unexpected note: %+v", notes[0])
		}
	})

	t.Run("inbox note with file data is a document", func(t *testing.T) {
		r, inbox := setupRouter(t, nil)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"saveToInbox": true,
			"summaryData": map[string]any{"text": "Contrato del venue"},
			"fileData":    map[string]any{"mimeType": "application/pdf", "data": "ZGF0YQ=="},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		notes := inbox.Notes()
		if len(notes) != 1 || notes[0].Type != models.InboxTypeDocument {
			t.Fatalf("expected one document note, got %+v", notes)
		}
		if notes[0].Category != "General" || notes[0].User != "Usuario" {
			t.Errorf("defaults not applied: %+v", notes[0])
		}
	})

	t.Run("no message at all", func(t *testing.T) {
		r, _ := setupRouter(t, &fakeGenerator{})

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{})
		body := decodeBody(t, w)
		if body["success"] != false || body["response"] != "..." {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("history with an empty last message still reaches the model", func(t *testing.T) {
		ai := &fakeGenerator{reply: "¿en qué te ayudo?"}
		r, _ := setupRouter(t, ai)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"messages": []map[string]any{
				{"role": "user", "content": ""},
			},
		})
		body := decodeBody(t, w)
		if body["success"] != true || body["response"] != "¿en qué te ayudo?" {
			t.Errorf("unexpected body: %v", body)
		}
		if len(ai.parts) != 2 {
			t.Fatalf("expected 2 prompt parts, got %d", len(ai.parts))
		}
		if string(ai.parts[1].(genai.Text)) != "Usuario: " {
			t.Errorf("expected an empty user message, got %q", ai.parts[1])
		}
	})

	t.Run("nil client answers with the startup message", func(t *testing.T) {
		r, _ := setupRouter(t, nil)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"message": "hola",
		})
		body := decodeBody(t, w)
		if body["success"] != true || body["response"] != "IA iniciando..." {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("AI failure becomes an apologetic success", func(t *testing.T) {
		r, _ := setupRouter(t, &fakeGenerator{err: errors.New("quota exceeded")})

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"message": "hola",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("AI failures must not become HTTP errors, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["response"] != "Tuve un problema de conexión. ¿Intenta de nuevo?" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("prompt carries the role instruction and the last message", func(t *testing.T) {
		ai := &fakeGenerator{reply: "claro"}
		r, _ := setupRouter(t, ai)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"role": "guest",
			"messages": []map[string]any{
				{"role": "user", "content": "hola"},
				{"role": "assistant", "content": "hola, ¿en qué ayudo?"},
				{"role": "user", "content": "¿qué me pongo?"},
			},
		})
		body := decodeBody(t, w)
		if body["response"] != "claro" {
			t.Fatalf("unexpected response: %v", body)
		}

		if len(ai.parts) != 2 {
			t.Fatalf("expected 2 prompt parts, got %d", len(ai.parts))
		}
		instruction := string(ai.parts[0].(genai.Text))
		if !strings.Contains(instruction, "invitados") {
			t.Errorf("expected guest instruction, got %q", instruction)
		}
		if string(ai.parts[1].(genai.Text)) != "Usuario: ¿qué me pongo?" {
			t.Errorf("expected the last message, got %q", ai.parts[1])
		}
	})

	t.Run("attached file is appended as a blob", func(t *testing.T) {
		ai := &fakeGenerator{reply: "recibido"}
		r, _ := setupRouter(t, ai)

		w := performRequest(t, r, http.MethodPost, "/api/ia/chat", map[string]any{
			"message": "mira este contrato",
			"fileData": map[string]any{
				"inlineData": map[string]any{"mimeType": "application/pdf", "data": "ZGF0YQ=="},
			},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if len(ai.parts) != 3 {
			t.Fatalf("expected 3 prompt parts, got %d", len(ai.parts))
		}
		blob, ok := ai.parts[2].(genai.Blob)
		if !ok || blob.MIMEType != "application/pdf" || string(blob.Data) != "data" {
			t.Errorf("unexpected blob part: %#v", ai.parts[2])
		}
	})
}
