package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/ahsanfayaz52/noteservice/internal/auth"
	"github.com/ahsanfayaz52/noteservice/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

func RegisterHandler(authSvc *auth.Service) http.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/register.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{"Username": ""})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		_, err := authSvc.Register(username, password)
		switch {
		case errors.Is(err, auth.ErrValidation):
			w.WriteHeader(http.StatusBadRequest)
			tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{
				"Error":    "Please fill out all the fields.",
				"Username": username,
			})
			return
		case errors.Is(err, store.ErrDuplicateUsername):
			w.WriteHeader(http.StatusBadRequest)
			tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{
				"Error":    "User already exists.",
				"Username": username,
			})
			return
		case err != nil:
			http.Error(w, "Error creating user", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func LoginHandler(authSvc *auth.Service, jwtService *auth.JWTService) http.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/login.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			// Already logged in: go straight to the notes list.
			if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
				if _, err := jwtService.ValidateToken(cookie.Value); err == nil {
					http.Redirect(w, r, "/notes", http.StatusSeeOther)
					return
				}
			}
			tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{"Username": ""})
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		user, err := authSvc.Login(username, password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{
				"Error":    "Invalid username or password",
				"Username": username,
			})
			return
		}
		if err != nil {
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		token, err := jwtService.GenerateToken(user.ID)
		if err != nil {
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.SessionCookie,
			Value:    token,
			HttpOnly: true,
			Path:     "/",
			Expires:  time.Now().Add(jwtService.TTL()),
		})

		http.Redirect(w, r, "/notes", http.StatusSeeOther)
	}
}

func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.SessionCookie,
			Value:    "",
			HttpOnly: true,
			Path:     "/",
			MaxAge:   -1,
		})

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
