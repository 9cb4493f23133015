package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Sreejan-22/Memes4u/internal/render"
	"github.com/Sreejan-22/Memes4u/internal/service"
)

type Handler struct {
	svc       *service.Service
	renderer  *render.Renderer
	staticDir string
	baseURL   string
	log       *logrus.Logger
}

func NewHandler(svc *service.Service, renderer *render.Renderer, staticDir, baseURL string, log *logrus.Logger) *Handler {
	return &Handler{
		svc:       svc,
		renderer:  renderer,
		staticDir: staticDir,
		baseURL:   baseURL,
		log:       log,
	}
}

// Router registers all routes. Unmatched paths and mismatched methods both
// fall through to the rendered 404 page.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/memes", h.ListMemes).Methods("GET")
	r.HandleFunc("/memes", h.CreateMeme).Methods("POST")
	r.HandleFunc("/memes/{id}", h.MemeByID).Methods("GET")
	r.HandleFunc("/mymemes/{username}", h.MyMemes).Methods("GET")
	r.HandleFunc("/signup", h.SignupPage).Methods("GET")
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.LoginPage).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/create", h.CreatePage).Methods("GET")
	r.HandleFunc("/delete/{id}", h.DeleteMeme).Methods("DELETE")
	r.HandleFunc("/feed", h.Feed).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.NotFound)
	return r
}

// Home redirects to the meme listing.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/memes", http.StatusFound)
}

// SignupPage renders the signup form.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "signup.html", map[string]interface{}{
		"Title": "Memes4u | Sign Up",
	})
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "login.html", map[string]interface{}{
		"Title": "Memes4u | Login",
	})
}

// CreatePage renders the meme creation form.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "create.html", map[string]interface{}{
		"Title": "Memes4u | Create",
	})
}

// NotFound renders the 404 page for any unmatched route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusNotFound, "404.html", map[string]interface{}{
		"Title": "404 Not Found",
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, name string, data interface{}) {
	if err := h.renderer.Page(w, status, name, data); err != nil {
		h.log.Errorf("Render failed: %v", err)
	}
}
