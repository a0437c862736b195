package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/ahsanfayaz52/noteservice/internal/auth"
	"github.com/ahsanfayaz52/noteservice/internal/notes"
	"github.com/gorilla/mux"
)

func ListNotesHandler(notesSvc *notes.Service) http.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/index.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		list, err := notesSvc.ListMine(userID)
		if err != nil {
			http.Error(w, "Failed to fetch notes", http.StatusInternalServerError)
			return
		}

		tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{
			"Notes": list,
		})
	}
}

func CreateNoteHandler(notesSvc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		title := r.FormValue("title")
		content := r.FormValue("content")

		_, err := notesSvc.Create(userID, title, content)
		if errors.Is(err, notes.ErrValidation) {
			http.Error(w, "Title and content are required", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "Failed to save note", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/notes", http.StatusSeeOther)
	}
}

func ViewNoteHandler(notesSvc *notes.Service) http.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/note.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		note, err := notesSvc.Get(userID, noteID)
		if !writeNoteError(w, r, err) {
			return
		}

		tmpl.ExecuteTemplate(w, "base.html", map[string]interface{}{
			"Note": note,
		})
	}
}

func UpdateNoteHandler(notesSvc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		title := r.FormValue("title")
		content := r.FormValue("content")

		_, err = notesSvc.Update(userID, noteID, title, content)
		if errors.Is(err, notes.ErrValidation) {
			http.Error(w, "Title and content are required", http.StatusBadRequest)
			return
		}
		if !writeNoteError(w, r, err) {
			return
		}

		http.Redirect(w, r, "/notes", http.StatusSeeOther)
	}
}

func DeleteNoteHandler(notesSvc *notes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if !writeNoteError(w, r, notesSvc.Delete(userID, noteID)) {
			return
		}

		http.Redirect(w, r, "/notes", http.StatusSeeOther)
	}
}

// writeNoteError maps Note Service failures to responses. It reports whether
// the caller may proceed.
func writeNoteError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, notes.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, notes.ErrForbidden):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
	return false
}
