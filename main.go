package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"crmbackend/clients/anthropic"
	"crmbackend/config"
	"crmbackend/db"
	"crmbackend/handlers"
	"crmbackend/middleware"
	"crmbackend/services/actions"
	"crmbackend/services/companies"
	"crmbackend/services/contacts"
	"crmbackend/services/email"
	"crmbackend/services/opportunities"
	"crmbackend/services/pipelines"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbConn.Close()
	log.Printf("✅ Connected to database")

	contactsRepo := db.NewPostgresContactsRepository(dbConn, cfg.DatabaseSchema)
	companiesRepo := db.NewPostgresCompaniesRepository(dbConn, cfg.DatabaseSchema)
	pipelinesRepo := db.NewPostgresPipelinesRepository(dbConn, cfg.DatabaseSchema)
	opportunitiesRepo := db.NewPostgresOpportunitiesRepository(dbConn, cfg.DatabaseSchema)
	emailsRepo := db.NewPostgresEmailsRepository(dbConn, cfg.DatabaseSchema)

	contactsService := contacts.NewContactsService(contactsRepo)
	companiesService := companies.NewCompaniesService(companiesRepo)
	pipelinesService := pipelines.NewPipelinesService(pipelinesRepo)
	opportunitiesService := opportunities.NewOpportunitiesService(opportunitiesRepo)
	emailService := email.NewEmailService(emailsRepo)

	actionsService := actions.NewActionsService(
		contactsService,
		companiesService,
		pipelinesService,
		opportunitiesService,
		emailService,
		time.Duration(cfg.ActionTimeoutSecs)*time.Second,
	)

	assistantClient := anthropic.NewAnthropicClient(
		cfg.AnthropicConfig.APIKey, cfg.AnthropicConfig.Model)

	apiHandler := handlers.NewAssistantAPIHandler(assistantClient, actionsService)
	httpHandler := handlers.NewAssistantHTTPHandler(apiHandler)

	errorAlerting := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  os.Getenv("ALERT_WEBHOOK_URL"),
		Environment: cfg.Environment,
		AppName:     "crmbackend",
	})

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	}).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(middleware.WorkspaceMiddleware)
	httpHandler.RegisterRoutes(api)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.WorkspaceHeader},
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: errorAlerting.HTTPMiddleware(corsHandler.Handler(router)),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on http://localhost:%s", cfg.Port)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("📋 Received %v, shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("failed to shut down gracefully: %w", err)
		}
	}

	return nil
}
