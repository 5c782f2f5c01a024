package controllers_test

import (
	"net/http"
	"testing"

	"bodaplanner-backend/config"
	"bodaplanner-backend/models"
)

func TestGuardarEvento(t *testing.T) {
	r, _ := setupRouter(t, nil)

	t.Run("missing title is rejected before any write", func(t *testing.T) {
		w := performRequest(t, r, http.MethodPost, "/api/events", map[string]any{
			"start":   "2026-10-01",
			"brideId": "novia_test",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var count int64
		config.DB.Model(&models.Evento{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no rows written, found %d", count)
		}
	})

	t.Run("missing id is synthesized", func(t *testing.T) {
		w := performRequest(t, r, http.MethodPost, "/api/events", map[string]any{
			"title":   "Prueba de vestido",
			"start":   "2026-10-01",
			"brideId": "novia_test",
			"color":   "#ff0000",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		id, _ := body["id"].(string)
		if id == "" {
			t.Fatal("expected a synthesized id in the response")
		}

		var ev models.Evento
		if err := config.DB.First(&ev, "id = ?", id).Error; err != nil {
			t.Fatalf("event not stored: %v", err)
		}
		if ev.Target != "General" {
			t.Errorf("target = %q, want default General", ev.Target)
		}
	})

	t.Run("same id upserts one row with the latest values", func(t *testing.T) {
		first := map[string]any{
			"id":      "ev-1",
			"title":   "Cata de menú",
			"start":   "2026-11-05",
			"brideId": "novia_test",
			"extendedProps": map[string]any{
				"target":      "Catering",
				"description": "primera versión",
			},
		}
		if w := performRequest(t, r, http.MethodPost, "/api/events", first); w.Code != http.StatusOK {
			t.Fatalf("first save failed: %d %s", w.Code, w.Body.String())
		}

		second := map[string]any{
			"id":      "ev-1",
			"title":   "Cata de menú (final)",
			"start":   "2026-11-12",
			"brideId": "novia_test",
			"target":  "Catering",
		}
		if w := performRequest(t, r, http.MethodPost, "/api/events", second); w.Code != http.StatusOK {
			t.Fatalf("second save failed: %d %s", w.Code, w.Body.String())
		}

		var count int64
		config.DB.Model(&models.Evento{}).Where("id = ?", "ev-1").Count(&count)
		if count != 1 {
			t.Fatalf("expected exactly one row for ev-1, found %d", count)
		}

		var ev models.Evento
		config.DB.First(&ev, "id = ?", "ev-1")
		if ev.Title != "Cata de menú (final)" || ev.StartDate != "2026-11-12" {
			t.Errorf("second write not visible: %+v", ev)
		}
	})

	t.Run("flat extended fields are accepted", func(t *testing.T) {
		w := performRequest(t, r, http.MethodPost, "/api/events", map[string]any{
			"id":       "ev-2",
			"title":    "Pagar florista",
			"start":    "2026-09-20",
			"brideId":  "novia_test",
			"deadline": "2026-09-18",
			"link":     "https://flores.example",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}

		var ev models.Evento
		config.DB.First(&ev, "id = ?", "ev-2")
		if ev.Deadline != "2026-09-18" || ev.Link != "https://flores.example" {
			t.Errorf("flat fields not stored: %+v", ev)
		}
	})
}

func TestListarEventos(t *testing.T) {
	r, _ := setupRouter(t, nil)

	seed := map[string]any{
		"id":      "ev-10",
		"title":   "Ensayo",
		"start":   "2026-12-01",
		"brideId": "novia_test",
		"extendedProps": map[string]any{
			"target":   "Ceremonia",
			"deadline": "2026-11-28",
		},
	}
	if w := performRequest(t, r, http.MethodPost, "/api/events", seed); w.Code != http.StatusOK {
		t.Fatalf("seed failed: %d", w.Code)
	}

	w := performRequest(t, r, http.MethodGet, "/api/events?brideId=novia_test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var eventos []map[string]any
	if err := jsonUnmarshal(w.Body.Bytes(), &eventos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(eventos) != 1 {
		t.Fatalf("expected 1 event, got %d", len(eventos))
	}
	if eventos[0]["start"] != "2026-12-01" {
		t.Errorf("start = %v, want 2026-12-01", eventos[0]["start"])
	}
	props, _ := eventos[0]["extendedProps"].(map[string]any)
	if props == nil || props["deadline"] != "2026-11-28" {
		t.Errorf("extendedProps not nested: %v", eventos[0])
	}

	// Other brides see nothing.
	w = performRequest(t, r, http.MethodGet, "/api/events?brideId=otra", nil)
	var vacios []map[string]any
	if err := jsonUnmarshal(w.Body.Bytes(), &vacios); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vacios) != 0 {
		t.Errorf("expected no events for another bride, got %d", len(vacios))
	}
}
