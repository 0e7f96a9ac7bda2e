package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/meridianfund/meridian-api/apps/api/handlers"
	apiservices "github.com/meridianfund/meridian-api/apps/api/services"
	"github.com/meridianfund/meridian-api/libs/go/client/auth"
	awsclient "github.com/meridianfund/meridian-api/libs/go/client/aws"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	accountHandler      *handlers.AccountHandler
	investorHandler     *handlers.InvestorHandler
	fundHandler         *handlers.FundHandler
	capitalCallHandler  *handlers.CapitalCallHandler
	distributionHandler *handlers.DistributionHandler
	notificationHandler *handlers.NotificationHandler
	apiKeyHandler       *handlers.APIKeyHandler
	healthHandler       *handlers.HealthHandler

	// Database
	dbQueries *db.Queries

	// Clients
	authClient *auth.AuthClient

	// Services
	commonServices *handlers.CommonServices
	handlerFactory *handlers.HandlerFactory
	overdueSweeper *apiservices.OverdueSweeper
)

func InitializeHandlers() {
	var dsn string // Database Source Name (connection string)

	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))

		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret

		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
		logger.Info("Constructed DSN from Secrets Manager credentials")

	} else {
		// --- Local Development Environment (stage == helpers.StageLocal) ---
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development")
		}
	}

	// --- Portal Auth Configuration ---
	authJWKSEndpoint, err := secretsClient.GetSecretString(ctx, "AUTH_JWKS_ENDPOINT_ARN", "AUTH_JWKS_ENDPOINT")
	if err != nil || authJWKSEndpoint == "" {
		logger.Fatal("Failed to get auth JWKS endpoint", zap.Error(err))
	}

	authIssuer, err := secretsClient.GetSecretString(ctx, "AUTH_ISSUER_ARN", "AUTH_ISSUER")
	if err != nil || authIssuer == "" {
		logger.Fatal("Failed to get auth issuer", zap.Error(err))
	}

	authAudience, err := secretsClient.GetSecretString(ctx, "AUTH_AUDIENCE_ARN", "AUTH_AUDIENCE")
	if err != nil || authAudience == "" {
		logger.Fatal("Failed to get auth audience", zap.Error(err))
	}

	// Set environment variables for AuthClient
	os.Setenv("AUTH_JWKS_ENDPOINT", authJWKSEndpoint)
	os.Setenv("AUTH_ISSUER", authIssuer)
	os.Setenv("AUTH_AUDIENCE", authAudience)

	// --- Auth Client ---
	authClient = auth.NewAuthClient()

	// --- Resend API Key ---
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Log.Warn("Failed to get Resend API Key. Email functionality will be disabled.", zap.Error(err))
		resendAPIKey = "" // Allow initialization but email sending will fail
	} else {
		logger.Log.Info("Successfully retrieved Resend API Key")
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30 // Shorter lifetime to prevent cached plan issues
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(dbpool)

	// --- Notification Queue Client ---
	// Optional: without a queue the API still serves requests, but lifecycle
	// events do not fan out to the notification processor.
	var publisher *awsclient.QueueClient
	if os.Getenv("NOTIFICATION_QUEUE_URL") != "" {
		publisher, err = awsclient.NewQueueClient(ctx, stage)
		if err != nil {
			logger.Fatal("Unable to create notification queue client", zap.Error(err))
		}
	} else {
		logger.Warn("NOTIFICATION_QUEUE_URL not set, lifecycle events will not be published")
	}

	// Get additional configurations
	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "notices@meridianfund.com"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Meridian Fund Services"
	}

	// Create the handler factory with all dependencies.
	// A nil interface must stay nil: only pass the queue client through when
	// it was actually constructed.
	if publisher != nil {
		handlerFactory = handlers.CreateDefaultFactory(dbQueries, dbpool, resendAPIKey, fromEmail, fromName, publisher)
	} else {
		handlerFactory = handlers.CreateDefaultFactory(dbQueries, dbpool, resendAPIKey, fromEmail, fromName, nil)
	}

	// Get common services from factory
	commonServices = handlerFactory.GetCommonServices()

	// API Handler initialization using factory
	accountHandler = handlerFactory.NewAccountHandler()
	investorHandler = handlerFactory.NewInvestorHandler()
	fundHandler = handlerFactory.NewFundHandler()
	capitalCallHandler = handlerFactory.NewCapitalCallHandler()
	distributionHandler = handlerFactory.NewDistributionHandler()
	notificationHandler = handlerFactory.NewNotificationHandler()
	apiKeyHandler = handlerFactory.NewAPIKeyHandler()
	healthHandler = handlerFactory.NewHealthHandler()
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Add enhanced logging in development mode
	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))

	// Add basic request logging for production
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// Start the overdue allocation sweeper
	overdueSweeper = apiservices.NewOverdueSweeper(handlerFactory.GetCapitalCallService(), time.Hour)
	overdueSweeper.Start()

	// Ensure we gracefully stop the sweeper when the server shuts down
	router.GET("/shutdown", func(c *gin.Context) {
		go func() {
			time.Sleep(1 * time.Second)
			overdueSweeper.Stop()
			logger.Info("Server is shutting down...")
			os.Exit(0)
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Server is shutting down..."})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (authentication required)
		protected := v1.Group("/")
		authAdapter := handlers.NewAuthServicesAdapter(commonServices)
		protected.Use(authClient.EnsureValidAPIKeyOrToken(authAdapter))
		{
			// Admin-only routes
			admin := protected.Group("/admin")
			admin.Use(authClient.RequireRoles("admin"))
			{
				// Account management
				admin.GET("/accounts", accountHandler.ListAccounts)
				admin.POST("/accounts", middleware.StrictRateLimiter.Middleware(), accountHandler.CreateAccount)

				// Manual overdue processing (normally driven by the sweeper)
				admin.POST("/capital-calls/process-overdue", capitalCallHandler.ProcessOverdueAllocations)
			}

			// Current account routes
			accounts := protected.Group("/accounts")
			{
				accounts.GET("/:account_id", accountHandler.GetAccount)
			}

			// Investors
			investors := protected.Group("/investors")
			{
				investors.GET("", investorHandler.ListInvestors)
				investors.POST("", middleware.ValidateInput(middleware.CreateInvestorValidation), investorHandler.RegisterInvestor)
				investors.GET("/:investor_id", investorHandler.GetInvestor)
				investors.PUT("/:investor_id", middleware.ValidateInput(middleware.UpdateInvestorValidation), investorHandler.UpdateInvestor)
				investors.PATCH("/:investor_id/kyc-status", middleware.ValidateInput(middleware.UpdateKYCStatusValidation), investorHandler.UpdateKYCStatus)
				investors.PATCH("/:investor_id/accreditation-status", investorHandler.UpdateAccreditationStatus)
				investors.DELETE("/:investor_id", investorHandler.DeleteInvestor)

				// Investor commitments across funds
				investors.GET("/:investor_id/commitments", fundHandler.ListInvestorCommitments)
			}

			// Funds
			funds := protected.Group("/funds")
			{
				funds.GET("", fundHandler.ListFunds)
				funds.POST("", middleware.ValidateInput(middleware.CreateFundValidation), fundHandler.CreateFund)
				funds.GET("/:fund_id", fundHandler.GetFund)
				funds.PATCH("/:fund_id/status", fundHandler.UpdateFundStatus)

				// Commitments
				funds.GET("/:fund_id/commitments", fundHandler.ListCommitments)
				funds.POST("/:fund_id/commitments", middleware.ValidateInput(middleware.CreateCommitmentValidation), fundHandler.CreateCommitment)

				// Capital calls are drafted against a fund
				funds.GET("/:fund_id/capital-calls", capitalCallHandler.ListCapitalCalls)
				funds.POST("/:fund_id/capital-calls", middleware.ValidateInput(middleware.CreateCapitalCallValidation), capitalCallHandler.CreateCapitalCall)

				// Distributions are declared against a fund
				funds.GET("/:fund_id/distributions", distributionHandler.ListDistributions)
				funds.POST("/:fund_id/distributions", middleware.ValidateInput(middleware.CreateDistributionValidation), distributionHandler.CreateDistribution)
			}

			// Capital calls
			capitalCalls := protected.Group("/capital-calls")
			{
				capitalCalls.GET("/:call_id", capitalCallHandler.GetCapitalCall)
				capitalCalls.GET("/:call_id/allocations", capitalCallHandler.ListAllocations)
				capitalCalls.POST("/:call_id/issue", capitalCallHandler.IssueCapitalCall)
				capitalCalls.POST("/:call_id/confirm-wire", middleware.ValidateInput(middleware.ConfirmWireValidation), capitalCallHandler.ConfirmWire)
				capitalCalls.POST("/:call_id/rescind", capitalCallHandler.RescindCapitalCall)
			}

			// Distributions
			distributions := protected.Group("/distributions")
			{
				distributions.GET("/:distribution_id", distributionHandler.GetDistribution)
				distributions.GET("/:distribution_id/allocations", distributionHandler.ListAllocations)
				distributions.POST("/:distribution_id/mark-paid", distributionHandler.MarkAllocationPaid)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.GET("/kinds", notificationHandler.ListKinds)
				notifications.POST("/send", middleware.ValidateInput(middleware.SendNotificationValidation), notificationHandler.SendNotification)
				notifications.POST("/preview", middleware.ValidateInput(middleware.PreviewNotificationValidation), notificationHandler.PreviewNotification)
			}

			// API Keys
			apiKeys := protected.Group("/api-keys")
			{
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.POST("", middleware.ValidateInput(middleware.CreateAPIKeyValidation), apiKeyHandler.CreateAPIKey)
				apiKeys.GET("/:api_key_id", apiKeyHandler.GetAPIKeyByID)
				apiKeys.DELETE("/:api_key_id", apiKeyHandler.DeleteAPIKey)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Account-ID", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	} else {
		// Default exposed headers including rate limit headers
		corsConfig.ExposeHeaders = []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"Retry-After",
			"X-Correlation-ID",
		}
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
