package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sso-jung/lolchat/internal/api/handlers"
	"github.com/sso-jung/lolchat/internal/game"
)

func NewRouter(gameService *game.Service) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})

	commandHandler := handlers.NewCommandHandler(gameService)
	kakaoHandler := handlers.NewKakaoHandler(gameService)

	r.Post("/dev/command", commandHandler.Handle)
	r.Post("/kakao/skill", kakaoHandler.Handle)

	return r
}
