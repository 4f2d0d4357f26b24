// Package web serves the HTML form surface of the application: registration,
// login, the dashboard, and the inventory/medication add forms.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medtrack/internal/auth"
	"medtrack/internal/middleware"
	"medtrack/internal/schedule"
	"medtrack/internal/storage"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server holds the dependencies of the route layer.
type Server struct {
	store        storage.Store
	auth         *auth.PasswordAuthenticator
	sessions     *auth.SessionManager
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
	tmpl         *template.Template
}

// New creates the route layer over the given store and session manager.
// cookieSecure marks the session cookie Secure; leave it off only for local
// plain-http development.
func New(store storage.Store, sessions *auth.SessionManager, cookieName string, cookieSecure bool, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		store:        store,
		auth:         auth.NewPasswordAuthenticator(store),
		sessions:     sessions,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger,
		tmpl:         tmpl,
	}, nil
}

// Routes builds the route table. The session gate wraps every route that
// reads or writes tracked data; only the landing, about, register and login
// pages are public.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	guard := middleware.RequireSession(s.sessions, s.cookieName, http.HandlerFunc(s.unauthorized))

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)

	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegisterSubmit)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLoginSubmit)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.Handle("GET /dashboard", guard(http.HandlerFunc(s.handleDashboard)))
	mux.Handle("GET /inventory/add", guard(http.HandlerFunc(s.handleInventoryForm)))
	mux.Handle("POST /inventory/add", guard(http.HandlerFunc(s.handleInventorySubmit)))
	mux.Handle("GET /medication/add", guard(http.HandlerFunc(s.handleMedicationForm)))
	mux.Handle("POST /medication/add", guard(http.HandlerFunc(s.handleMedicationSubmit)))

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// viewData is the explicit per-request context handed to every template:
// the session identity, pending notices, and any form state to re-render.
type viewData struct {
	Title     string
	LoggedIn  bool
	Username  string
	Flashes   []Flash
	Errors    map[string]string
	Form      map[string]string
	Dashboard *schedule.Dashboard
}

// render executes the named page template. Flashes are popped here so a
// notice set by the previous request displays exactly once. Notices already
// in data.Flashes belong to the current response; they render after the
// popped ones and must never ride the cookie, which only survives a
// redirect.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data *viewData) {
	if data == nil {
		data = &viewData{}
	}
	data.Flashes = append(popFlashes(w, r), data.Flashes...)
	if session := middleware.GetSession(r.Context()); session != nil {
		data.LoggedIn = true
		data.Username = session.Username
	}
	if data.Errors == nil {
		data.Errors = map[string]string{}
	}
	if data.Form == nil {
		data.Form = map[string]string{}
	}

	// Render to a buffer first so a template fault cannot emit half a page.
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// unauthorized is what the session gate runs when a guarded route is hit
// without a live session.
func (s *Server) unauthorized(w http.ResponseWriter, r *http.Request) {
	setFlash(w, "danger", "Unauthorized, please login")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// formValues snapshots the submitted values for the given field names so a
// failed form re-renders with what the user typed. Passwords are never
// echoed back.
func formValues(r *http.Request, names ...string) map[string]string {
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = r.FormValue(name)
	}
	return values
}
