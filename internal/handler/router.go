/*
Package handler provides the HTTP handlers and routing setup for the direct-messaging server.

This file defines the main Router, applying middleware like logging, CORS, and
request size limiting before delegating requests to the operation handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"dmchat/internal/configs"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/req"
	"dmchat/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// Registration and login are public; every other operation sits behind the
// token-verifying auth middleware. When the local storage backend is active,
// the image directory is served under /img.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(req.LimitBody(deps.Config.MaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"status":  "ok",
			"service": "dmchat-server",
		})
	})

	r.Post("/register", HandleRegister(deps))
	r.Post("/login", HandleLogin(deps))

	r.Group(func(protected chi.Router) {
		protected.Use(jwt.RequireAuth(deps.Config.JWTSecret))

		protected.Get("/users", HandleListUsers(deps))
		protected.Put("/users", HandleUpdateAvatar(deps))

		protected.Post("/messages", HandleSendMessage(deps))
		protected.Get("/messages/{id}", HandleListMessages(deps))
		protected.Delete("/messages/{id}", HandleDeleteMessage(deps))
	})

	if deps.Config.StorageBackend == configs.StorageBackendLocal {
		imageServer := http.StripPrefix("/img/", http.FileServer(http.Dir(deps.Config.ImageDir)))
		r.Get("/img/*", imageServer.ServeHTTP)
	}

	return r
}
