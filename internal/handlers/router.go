package handlers

import (
	"github.com/ahsanfayaz52/noteservice/internal/auth"
	"github.com/ahsanfayaz52/noteservice/internal/middleware"
	"github.com/ahsanfayaz52/noteservice/internal/notes"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route to its handler. The /notes subtree and /logout
// sit behind the session guard; register and login are open.
func NewRouter(authSvc *auth.Service, notesSvc *notes.Service, jwtService *auth.JWTService, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(log))

	r.HandleFunc("/register", RegisterHandler(authSvc)).Methods("GET", "POST")
	r.HandleFunc("/", LoginHandler(authSvc, jwtService)).Methods("GET", "POST")

	requireSession := auth.RequireSession(jwtService)

	r.Handle("/logout", requireSession(LogoutHandler())).Methods("GET")

	s := r.PathPrefix("/notes").Subrouter()
	s.Use(requireSession)
	s.HandleFunc("", ListNotesHandler(notesSvc)).Methods("GET")
	s.HandleFunc("", CreateNoteHandler(notesSvc)).Methods("POST")
	s.HandleFunc("/{id}", ViewNoteHandler(notesSvc)).Methods("GET")
	s.HandleFunc("/{id}", UpdateNoteHandler(notesSvc)).Methods("POST")
	s.HandleFunc("/{id}/delete", DeleteNoteHandler(notesSvc)).Methods("GET")

	return r
}
