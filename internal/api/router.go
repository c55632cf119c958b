package api

import (
	"net/http"

	"github.com/dom/superhero-pets/internal/api/handlers"
	"github.com/dom/superhero-pets/internal/api/middleware"
	"github.com/dom/superhero-pets/internal/config"
	_ "github.com/dom/superhero-pets/internal/docs"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/dom/superhero-pets/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.User)
	petHandler := handlers.NewPetHandler(services.Pet)
	adoptionHandler := handlers.NewAdoptionHandler(services.Adoption)
	heroHandler := handlers.NewHeroHandler(services.Hero)
	itemHandler := handlers.NewItemHandler(services.Item)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	requireAuth := middleware.Auth(services.Auth)
	seedGuard := middleware.Optional(cfg.SeedRequiresAuth, requireAuth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/usuarios", func(r chi.Router) {
			r.Post("/registro", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/ranking", authHandler.Ranking)
			r.With(requireAuth).Get("/perfil", authHandler.Profile)
		})

		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", heroHandler.List)
			r.Get("/{id}", heroHandler.Get)
			r.With(seedGuard).Post("/poblar", heroHandler.Seed)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", heroHandler.Create)
				r.Put("/{id}", heroHandler.Update)
				r.Delete("/{id}", heroHandler.Delete)
				r.Post("/{id}/adoptar", heroHandler.AssignPet)
				r.Post("/{id}/abandonar", heroHandler.ReleasePet)
			})
		})

		r.Route("/mascotas", func(r chi.Router) {
			r.With(seedGuard).Post("/poblar", petHandler.Seed)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/", petHandler.List)
				r.Post("/", petHandler.Create)
				r.Get("/{id}", petHandler.Get)
				r.Put("/{id}", petHandler.Update)
				r.Delete("/{id}", petHandler.Delete)

				// Actions
				r.Post("/{id}/alimentar", petHandler.Feed)
				r.Post("/{id}/pasear", petHandler.Walk)
				r.Post("/{id}/personalizar", petHandler.Customize)
				r.Post("/{id}/enfermar", petHandler.Sicken)
				r.Post("/{id}/curar", petHandler.Cure)
				r.Post("/{id}/revivir", petHandler.Revive)
				r.Post("/{id}/matar", petHandler.Kill)
				r.Post("/{id}/pocion-vida", petHandler.LifePotion)
			})
		})

		r.Route("/adopcion", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/disponibles", adoptionHandler.Available)
			r.Get("/adoptadas", adoptionHandler.Adopted)
			r.Get("/mis-mascotas", adoptionHandler.Mine)
			r.Post("/adoptar/{id}", adoptionHandler.Adopt)
			r.Post("/abandonar/{id}", adoptionHandler.Abandon)
			r.Get("/estadisticas", adoptionHandler.Stats)
		})

		r.Route("/items", func(r chi.Router) {
			r.With(seedGuard).Post("/poblar", itemHandler.Seed)
			r.With(seedGuard).Post("/poblar30", itemHandler.Seed)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/", itemHandler.List)
				r.Post("/", itemHandler.Create)
				r.Get("/{id}", itemHandler.Get)
				r.Put("/{id}", itemHandler.Update)
				r.Delete("/{id}", itemHandler.Delete)
			})
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
