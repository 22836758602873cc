package library

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gracemobile/backend/internal/model/library"
	"github.com/gracemobile/backend/pkg/utils"
)

// devotionalPageSize caps the devotionals list, as in the mobile feed.
const devotionalPageSize = 10

// Handler exposes the reference-data reads over HTTP.
type Handler struct {
	store library.Store
}

// New creates the library handler.
func New(store library.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the reference-data routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bible/verse/{book}/{chapter}/{verse}", h.handleGetVerse)
	r.Get("/prayers", h.handleListPrayers)
	r.Get("/devotionals", h.handleListDevotionals)
}

func (h *Handler) handleGetVerse(w http.ResponseWriter, r *http.Request) {
	book := chi.URLParam(r, "book")

	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "chapter must be a number")
		return
	}
	verse, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "verse must be a number")
		return
	}

	found, ok := h.store.FindVerse(book, chapter, verse)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "verse not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, found)
}

func (h *Handler) handleListPrayers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	utils.RespondJSON(w, http.StatusOK, h.store.ListPrayers(category))
}

func (h *Handler) handleListDevotionals(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.ListDevotionals(devotionalPageSize))
}
