package main

import (
	"log"
	"net/http"
	"time"

	"club-management-platform/internal/config"
	"club-management-platform/internal/database"
	"club-management-platform/internal/handlers"
	"club-management-platform/internal/middleware"
	"club-management-platform/internal/repositories"
	"club-management-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	productRepo := repositories.NewProductRepository(db.DB)
	matchRepo := repositories.NewMatchRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	catalogService := services.NewCatalogService(productRepo, ticketRepo, matchRepo)
	cartService := services.NewCartService(cartRepo, productRepo, ticketRepo)
	checkoutService := services.NewCheckoutService(cartRepo, productRepo, ticketRepo, orderRepo)
	orderService := services.NewOrderService(orderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cartService, sessionStore)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(catalogService, orderService)

	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	loginLimiter := middleware.NewLoginRateLimiter(5, time.Minute)

	r := chi.NewRouter()

	r.Use(middleware.RecoverMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)

	// Public catalog
	r.Get("/products", catalogHandler.ListProducts)
	r.Get("/products/{id}", catalogHandler.GetProduct)
	r.Get("/matches", catalogHandler.ListMatches)
	r.Get("/matches/{id}", catalogHandler.GetMatch)
	r.Get("/matches/{id}/tickets", catalogHandler.ListMatchTickets)

	// Auth
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.With(loginLimiter.Middleware).Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	// Cart and checkout, authenticated only
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items", cartHandler.UpdateQuantity)
			r.Delete("/items", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Get("/orders", orderHandler.ListMyOrders)
		r.Get("/orders/{id}", orderHandler.GetOrder)
	})

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Patch("/orders/{id}/status", orderHandler.UpdateStatus)
		r.Patch("/products/{id}/stock", adminHandler.UpdateProductStock)
		r.Patch("/tickets/{id}/availability", adminHandler.UpdateTicketAvailability)
		r.Get("/users/{id}/orders", adminHandler.GetUserOrders)
	})

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
