package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "medtrack_flash"

// Flash is a one-shot user-facing notice: rendered once, then gone.
// Category is "success" or "danger" and maps to a CSS class.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// setFlash queues a notice for the next rendered page. The notice rides in a
// short-lived cookie rather than ambient server state, so each request
// carries its own pending notices explicitly.
func setFlash(w http.ResponseWriter, category, message string) {
	payload, err := json.Marshal([]Flash{{Category: category, Message: message}})
	if err != nil {
		return // a notice is best-effort; nothing useful to do here
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlashes returns any pending notices and clears them so they render
// exactly once. Must be called before the response body is written.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}
