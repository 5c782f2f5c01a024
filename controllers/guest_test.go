package controllers_test

import (
	"net/http"
	"testing"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
)

func TestInvitados(t *testing.T) {
	r, _ := setupRouter(t, nil)

	w := performRequest(t, r, http.MethodPost, "/api/guests", map[string]any{
		"userId": "novia_test",
		"name":   "Tía Rosa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var invitado models.Guest
	if err := config.DB.First(&invitado, "user_id = ?", "novia_test").Error; err != nil {
		t.Fatalf("guest not stored: %v", err)
	}
	if invitado.Status != "Pendiente" {
		t.Errorf("status = %q, want default Pendiente", invitado.Status)
	}

	w = performRequest(t, r, http.MethodGet, "/api/guests/novia_test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	data, _ := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 guest, got %d", len(data))
	}
	first, _ := data[0].(map[string]any)
	if first["name"] != "Tía Rosa" {
		t.Errorf("name = %v", first["name"])
	}
}
