package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Elyse-t/ecormmerce-api/docs"
	"github.com/Elyse-t/ecormmerce-api/internal/api/auth"
	"github.com/Elyse-t/ecormmerce-api/internal/api/health"
	"github.com/Elyse-t/ecormmerce-api/internal/api/product"
	"github.com/Elyse-t/ecormmerce-api/internal/store"
)

func SetupRoutes(st store.Store, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	authHandler := auth.NewAuthHandler(jwtSecret, st)
	productHandler := product.NewHandler(st)

	r.Get("/health", health.HealthHandler)

	// public auth routes
	r.Post("/api/signup", authHandler.Signup)
	r.Post("/api/login", authHandler.Login)

	// protected product routes
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Post("/api/products", productHandler.Create)
		r.Get("/api/products", productHandler.List)
		r.Get("/api/products/{id}", productHandler.Get)
		r.Put("/api/products/{id}", productHandler.Update)
		r.Patch("/api/products/{id}", productHandler.UpdateQuantity)
		r.Delete("/api/products/{id}", productHandler.Delete)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
