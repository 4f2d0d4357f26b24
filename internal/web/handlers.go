package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"medtrack/internal/auth"
	"medtrack/internal/forms"
	"medtrack/internal/models"
	"medtrack/internal/schedule"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home.html", &viewData{Title: "MedTrack"})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "about.html", &viewData{Title: "About"})
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register.html", &viewData{Title: "Register"})
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	errs := forms.Register().Validate(r.FormValue)
	if len(errs) > 0 {
		s.render(w, r, "register.html", &viewData{
			Title:  "Register",
			Errors: errs.ByField(),
			Form:   formValues(r, "name", "email", "username"),
		})
		return
	}

	_, err := s.auth.Register(r.Context(),
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("username"),
		r.FormValue("password"),
		r.FormValue("confirm"),
	)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			s.render(w, r, "register.html", &viewData{
				Title:  "Register",
				Errors: map[string]string{"username": "That username is already registered."},
				Form:   formValues(r, "name", "email", "username"),
			})
			return
		}
		s.logger.Error("Registration failed", "username", r.FormValue("username"), "error", err)
		setFlash(w, "danger", "Something went wrong, please try again")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	s.logger.Info("Admin registered", "username", r.FormValue("username"))
	setFlash(w, "success", "You are now registered and can log in")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.html", &viewData{Title: "Login"})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := s.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			setFlash(w, "danger", "Username not found")
		case errors.Is(err, auth.ErrBadPassword):
			setFlash(w, "danger", "Incorrect password")
		default:
			s.logger.Error("Login failed", "username", username, "error", err)
			setFlash(w, "danger", "Something went wrong, please try again")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := s.sessions.Issue(r.Context(), username)
	if err != nil {
		s.logger.Error("Session issue failed", "username", username, "error", err)
		setFlash(w, "danger", "Something went wrong, please try again")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Info("Admin logged in", "username", username)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		if err := s.sessions.Revoke(r.Context(), cookie.Value); err != nil && !errors.Is(err, auth.ErrInvalidSession) {
			s.logger.Warn("Session revoke failed", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
	})
	setFlash(w, "success", "You are now logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := &viewData{Title: "Dashboard"}

	meds, err := s.store.ListMedications(r.Context())
	if err != nil {
		s.logger.Error("Listing medications failed", "error", err)
		// Render the notice directly; a cookie flash would only show up
		// on the next request, not this response.
		data.Flashes = append(data.Flashes, Flash{Category: "danger", Message: "Could not load medications, please try again"})
		meds = nil
	}

	dashboard := schedule.Classify(time.Now(), meds)
	data.Dashboard = &dashboard
	s.render(w, r, "dashboard.html", data)
}

func (s *Server) handleInventoryForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "inventory_add.html", &viewData{Title: "Add Inventory"})
}

func (s *Server) handleInventorySubmit(w http.ResponseWriter, r *http.Request) {
	errs := forms.Inventory().Validate(r.FormValue)
	if len(errs) > 0 {
		s.render(w, r, "inventory_add.html", &viewData{
			Title:  "Add Inventory",
			Errors: errs.ByField(),
			Form:   formValues(r, "quantity", "brand", "category", "medication_time"),
		})
		return
	}

	quantity, _ := strconv.Atoi(r.FormValue("quantity")) // validated above
	receivedDate := r.FormValue("medication_time")
	if receivedDate == "" {
		receivedDate = time.Now().Format("2006-01-02")
	}

	batch := &models.InventoryBatch{
		Quantity:     quantity,
		Brand:        r.FormValue("brand"),
		Category:     r.FormValue("category"),
		ReceivedDate: receivedDate,
	}
	if err := s.store.CreateBatch(r.Context(), batch); err != nil {
		s.logger.Error("Creating inventory batch failed", "error", err)
		setFlash(w, "danger", "Could not save the batch, please try again")
		http.Redirect(w, r, "/inventory/add", http.StatusSeeOther)
		return
	}

	s.logger.Info("Inventory batch added", "batch_id", batch.ID, "brand", batch.Brand)
	setFlash(w, "success", "New batch added")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleMedicationForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "medication_add.html", &viewData{Title: "Add Medication"})
}

func (s *Server) handleMedicationSubmit(w http.ResponseWriter, r *http.Request) {
	errs := forms.Medication().Validate(r.FormValue)
	if len(errs) > 0 {
		s.render(w, r, "medication_add.html", &viewData{
			Title:  "Add Medication",
			Errors: errs.ByField(),
			Form: formValues(r, "medication_name", "description", "price",
				"inv_id", "dosage", "medication_time", "frequency"),
		})
		return
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64) // validated above

	med := &models.Medication{
		Name:        r.FormValue("medication_name"),
		Description: r.FormValue("description"),
		Price:       price,
		InventoryID: r.FormValue("inv_id"),
		Dosage:      r.FormValue("dosage"),
		Frequency:   r.FormValue("frequency"),
	}
	if v := r.FormValue("medication_time"); v != "" {
		timeOfDay, err := models.ParseTimeOfDay(v) // validated above
		if err == nil {
			med.TimeOfDay = &timeOfDay
		}
	}

	if err := s.store.CreateMedication(r.Context(), med); err != nil {
		s.logger.Error("Creating medication failed", "error", err)
		setFlash(w, "danger", "Could not save the medication, please try again")
		http.Redirect(w, r, "/medication/add", http.StatusSeeOther)
		return
	}

	s.logger.Info("Medication added", "medication_id", med.ID, "name", med.Name)
	setFlash(w, "success", "Medication added successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("Readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "db": "down"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "db": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
