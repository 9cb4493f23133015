package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sreejan-22/Memes4u/internal/feed"
	"github.com/Sreejan-22/Memes4u/internal/repository"
	"github.com/Sreejan-22/Memes4u/internal/service"
)

// Signup handles account registration. Validation runs in a fixed order
// and the first failure wins.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name, ok := stringField(body, "name")
	if !ok {
		jsonError(w, http.StatusBadRequest, "Invalid name")
		return
	}
	username, ok := stringField(body, "username")
	if !ok {
		jsonError(w, http.StatusBadRequest, "Invalid username")
		return
	}
	password, ok := stringField(body, "password")
	if !ok {
		jsonError(w, http.StatusBadRequest, "Invalid password")
		return
	}
	if len(password) < 6 {
		jsonError(w, http.StatusBadRequest, "Password must contain atleast 6 characters")
		return
	}
	if len(password) > 32 {
		jsonError(w, http.StatusBadRequest, "Password cannot have more than 32 characters")
		return
	}

	_, err = h.svc.Signup(name, username, password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		jsonError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, service.ErrExistenceCheck):
		h.log.Errorf("Signup failed: %v", err)
		jsonError(w, http.StatusInternalServerError, "Sign up failed!!")
	case err != nil:
		h.log.Errorf("Signup failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		jsonOK(w, http.StatusCreated)
	}
}

// Login authenticates a user and returns a session token. An unknown
// username and a wrong password get the same message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username, _ := stringField(body, "username")
	password, _ := stringField(body, "password")

	token, err := h.svc.Login(username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		jsonError(w, http.StatusBadRequest, "Invalid username/password")
	case err != nil:
		h.log.Errorf("Login failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"username": username,
			"token":    token,
		})
	}
}

// CreateMeme stores a new meme.
func (h *Handler) CreateMeme(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	caption, capOK := stringField(body, "caption")
	url, urlOK := stringField(body, "url")
	if !capOK || !urlOK {
		jsonError(w, http.StatusBadRequest, "Please enter valid caption and image url")
		return
	}
	username, _ := stringField(body, "username")

	if _, err := h.svc.CreateMeme(username, caption, url); err != nil {
		h.log.Errorf("Meme creation failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	jsonOK(w, http.StatusCreated)
}

// ListMemes renders the front page with all memes, newest first.
func (h *Handler) ListMemes(w http.ResponseWriter, r *http.Request) {
	memes, err := h.svc.ListMemes()
	if err != nil {
		h.log.Errorf("Listing memes failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.renderPage(w, http.StatusOK, "index.html", map[string]interface{}{
		"Title": "Memes4u",
		"Memes": memes,
	})
}

// MyMemes renders the memes posted by one user.
func (h *Handler) MyMemes(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	memes, err := h.svc.MemesByUser(username)
	if err != nil {
		h.log.Errorf("Listing memes for %s failed: %v", username, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.renderPage(w, http.StatusOK, "mymemes.html", map[string]interface{}{
		"Title":    "Memes4u | My Memes",
		"Username": username,
		"Memes":    memes,
	})
}

// MemeByID renders a single meme's detail page.
func (h *Handler) MemeByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	meme, err := h.svc.GetMeme(id)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Errorf("Fetching meme %s failed: %v", id, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.renderPage(w, http.StatusOK, "onememe.html", map[string]interface{}{
		"Title": "Memes4u",
		"Meme":  meme,
	})
}

// DeleteMeme deletes a meme by id. Succeeds whether or not the meme existed.
func (h *Handler) DeleteMeme(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.DeleteMeme(id); err != nil {
		h.log.Errorf("Deleting meme %s failed: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
		return
	}
	jsonOK(w, http.StatusOK)
}

// Feed serves the Atom feed of recent memes.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	memes, err := h.svc.ListMemes()
	if err != nil {
		h.log.Errorf("Listing memes for feed failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	out, err := feed.Atom(memes, h.baseURL)
	if err != nil {
		h.log.Errorf("Building feed failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	w.Write(out)
}
