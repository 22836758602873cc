package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gracemobile/backend/internal/config"
	chatHandler "github.com/gracemobile/backend/internal/handler/chat"
	libraryHandler "github.com/gracemobile/backend/internal/handler/library"
	middlewarePkg "github.com/gracemobile/backend/internal/middleware"
	libraryModel "github.com/gracemobile/backend/internal/model/library"
	chatService "github.com/gracemobile/backend/internal/service/chat"
	"github.com/gracemobile/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cors config.CORSConfig, chatSvc *chatService.Service, libraryStore libraryModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cors.AllowedOrigins))

	r.Get("/", handleHealth)

	chat := chatHandler.New(chatSvc)
	library := libraryHandler.New(libraryStore)

	r.Route("/api", func(api chi.Router) {
		chat.RegisterRoutes(api)
		library.RegisterRoutes(api)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "GraceMobile API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
