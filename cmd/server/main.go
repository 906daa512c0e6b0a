package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/swiftalliance/backend/docs"
	"github.com/swiftalliance/backend/internal/audit"
	"github.com/swiftalliance/backend/internal/config"
	"github.com/swiftalliance/backend/internal/dispatch"
	"github.com/swiftalliance/backend/internal/ledger"
	mW "github.com/swiftalliance/backend/internal/middleware"
	"github.com/swiftalliance/backend/internal/schema"
	"github.com/swiftalliance/backend/internal/services"
	"github.com/swiftalliance/backend/internal/settlement"
)

// @title SWIFT Alliance Gateway API
// @version 1.0
// @description REST gateway for SWIFT MT103 and ISO 20022 payment messaging over a banking ledger
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env
	viper.ReadInConfig()        // read .env file

	// Set environment variable prefix
	viper.SetEnvPrefix("")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")
	viper.BindEnv("argon2.salt_length", "ARGON2_SALT_LENGTH")

	viper.BindEnv("operator.username", "OPERATOR_USERNAME")
	viper.BindEnv("operator.password", "OPERATOR_PASSWORD")

	viper.BindEnv("assets.dir", "ASSETS_DIR")
	viper.BindEnv("assets.config_file", "ASSETS_CONFIG_FILE")
	viper.BindEnv("ledger.snapshot_path", "LEDGER_SNAPSHOT_PATH")
	viper.BindEnv("ledger.seed_demo", "LEDGER_SEED_DEMO")
	viper.BindEnv("dispatch.send_log", "DISPATCH_SEND_LOG")
	viper.BindEnv("institution.bic", "INSTITUTION_BIC")

	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("argon2.time", 1)
	viper.SetDefault("argon2.memory", 64*1024)
	viper.SetDefault("argon2.threads", 4)
	viper.SetDefault("argon2.key_length", 32)
	viper.SetDefault("argon2.salt_length", 16)
	viper.SetDefault("assets.dir", "./assets")
	viper.SetDefault("assets.config_file", "swift_config.json")
	viper.SetDefault("ledger.snapshot_path", "./data/ledger.json")
	viper.SetDefault("ledger.seed_demo", false)
	viper.SetDefault("dispatch.send_log", "swift_send_log.txt")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "SWIFT Alliance Gateway API"
	docs.SwaggerInfo.Description = "REST gateway for SWIFT MT103 and ISO 20022 payment messaging over a banking ledger"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Initialize services
	store := ledger.Open(viper.GetString("ledger.snapshot_path"))
	if viper.GetBool("ledger.seed_demo") {
		if err := store.SeedDemoData(); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	assetsDir := viper.GetString("assets.dir")
	defaultSchema, err := schema.EnsureDefaultSchema(assetsDir)
	if err != nil {
		log.Fatalf("Failed to set up bundled schema: %v", err)
	}
	assets := config.NewAssetStore(viper.GetString("assets.config_file"))

	redisClient := dispatch.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	sendLog := dispatch.NewSendLog(viper.GetString("dispatch.send_log"), redisClient)
	auditLogger := audit.NewAuditLogger()
	validator := services.NewValidationHelper()

	authService, err := services.NewAuthService(redisClient, validator)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	ledgerService := services.NewLedgerService(store, validator, auditLogger)
	messageService := services.NewMessageService(validator, assets, sendLog, auditLogger, defaultSchema)
	exporter := settlement.NewExporter(viper.GetString("institution.bic"))
	settlementService := services.NewSettlementService(store, exporter, validator, auditLogger)
	configService := services.NewConfigService(assets, validator, assetsDir, defaultSchema)
	bankService := services.NewBankService()

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Institution logo for receipts and UI headers
	r.Get("/static/logo", mW.LogoServer(func() string {
		return assets.Get().LogoPath
	}).ServeHTTP)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/login", authService.Login)
		r.Post("/auth/logout", authService.Logout)
		r.Get("/banks", bankService.GetAllBanks)
		r.Get("/banks/{bic}", bankService.GetBank)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/auth/operator", authService.CurrentOperator)

			// Ledger endpoints
			r.Post("/customers", ledgerService.RegisterCustomer)
			r.Get("/customers", ledgerService.ListCustomers)
			r.Get("/customers/{customerID}", ledgerService.GetCustomer)
			r.Post("/accounts", ledgerService.CreateAccount)
			r.Get("/accounts", ledgerService.ListAccounts)
			r.Get("/accounts/{accountNumber}", ledgerService.GetAccount)
			r.Post("/accounts/deposit", ledgerService.Deposit)
			r.Post("/accounts/withdraw", ledgerService.Withdraw)
			r.Post("/accounts/transfer", ledgerService.Transfer)
			r.Get("/accounts/{accountNumber}/transactions", ledgerService.TransactionHistory)
			r.Post("/loans", ledgerService.ApplyLoan)
			r.Get("/loans", ledgerService.ListLoans)
			r.Post("/interest/accrue", ledgerService.AccrueInterest)

			// Message endpoints
			r.Post("/messages/payment", messageService.BuildPayment)
			r.Post("/messages/mt103", messageService.GenerateMT103)
			r.Post("/messages/mt103/validate", messageService.ValidateMT103)
			r.Post("/messages/pain001", messageService.GeneratePain001)
			r.Post("/messages/pain001/validate", messageService.ValidatePain001)
			r.Post("/messages/epc-qr", messageService.GenerateEPCQR)
			r.Post("/messages/dispatch", messageService.Dispatch)

			// Settlement endpoints
			r.Post("/settlement/pacs008", settlementService.ExportPacs008)
			r.Post("/settlement/pacs002", settlementService.ExportPacs002)

			// Config endpoints
			r.Get("/config/assets", configService.GetAssets)
			r.Put("/config/schema", configService.SetSchemaPath)
			r.Post("/config/schema/upload", configService.UploadSchema)
			r.Post("/config/logo/upload", configService.UploadLogo)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
