package main

import (
	"context"
	"log"

	"amashuri/config"
	"amashuri/gateway"
	"amashuri/middleware"
	"amashuri/routes"
	"amashuri/seed"
	"amashuri/store"
	"amashuri/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Pick the remote data gateway
	var gw gateway.Gateway
	switch cfg.Gateway {
	case config.GatewayMemory:
		gw = gateway.NewMemory()
	default:
		db, err := utils.InitDB(cfg.GatewayURL)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		gw, err = gateway.NewRemote(db, cfg.GatewayKey)
		if err != nil {
			log.Fatalf("Error initializing gateway: %v", err)
		}
	}

	// Demo logins resolve locally and never reach the gateway
	var ids store.IdentityProvider
	if cfg.TestLogins {
		ids = store.TestIdentities()
	}

	session := store.NewSession(gw, ids, logger)
	catalog := store.NewCatalog(store.CatalogConfig{
		Gateway: gw,
		Seed:    seed.Courses(),
		Latency: cfg.FetchLatency,
		Logger:  logger,
	})

	// Resolve any existing remote session and load the catalog up front
	ctx := context.Background()
	if err := session.CheckSession(ctx); err != nil {
		logger.Printf("session check failed: %v", err)
	}
	if err := catalog.FetchCourses(ctx); err != nil {
		logger.Printf("initial catalog fetch failed: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		Session: session,
		Catalog: catalog,
		Gateway: gw,
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
