package handlers

import (
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	// Database
	db db.Querier

	// Common services
	commonServices *CommonServices

	// Services
	accountService      interfaces.AccountService
	investorService     interfaces.InvestorService
	fundService         interfaces.FundService
	capitalCallService  interfaces.CapitalCallService
	distributionService interfaces.DistributionService
	notificationService interfaces.NotificationService
	emailService        interfaces.EmailService
	APIKeyService       interfaces.APIKeyService

	// Logger
	logger *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	// Database
	DB db.Querier

	// Optional: for transaction support
	DBPool *pgxpool.Pool

	// Services - pass concrete implementations that satisfy the interfaces
	AccountService      interfaces.AccountService
	InvestorService     interfaces.InvestorService
	FundService         interfaces.FundService
	CapitalCallService  interfaces.CapitalCallService
	DistributionService interfaces.DistributionService
	NotificationService interfaces.NotificationService
	EmailService        interfaces.EmailService
	APIKeyService       interfaces.APIKeyService

	// Logger
	Logger *zap.Logger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	if config.Logger == nil {
		config.Logger = zap.L()
	}

	commonServices := NewCommonServices(CommonServicesConfig{
		DB:            config.DB,
		DBPool:        config.DBPool,
		APIKeyService: config.APIKeyService,
		Logger:        config.Logger,
	})

	return &HandlerFactory{
		db:                  config.DB,
		commonServices:      commonServices,
		accountService:      config.AccountService,
		investorService:     config.InvestorService,
		fundService:         config.FundService,
		capitalCallService:  config.CapitalCallService,
		distributionService: config.DistributionService,
		notificationService: config.NotificationService,
		emailService:        config.EmailService,
		APIKeyService:       config.APIKeyService,
		logger:              config.Logger,
	}
}

// CreateDefaultFactory creates a factory with concrete service implementations.
// The queue publisher may be nil, in which case domain events are not
// published and notifications are only sent through the direct endpoints.
func CreateDefaultFactory(
	db *db.Queries,
	dbPool *pgxpool.Pool,
	resendAPIKey string,
	fromEmail string,
	fromName string,
	publisher interfaces.QueuePublisher,
) *HandlerFactory {
	logger := zap.L()

	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName, logger)
	notificationService := services.NewNotificationService(db, emailService)
	accountService := services.NewAccountService(db)
	investorService := services.NewInvestorService(db, publisher)
	fundService := services.NewFundService(db)
	capitalCallService := services.NewCapitalCallService(db, publisher)
	distributionService := services.NewDistributionService(db, publisher)
	apiKeyService := services.NewAPIKeyService(db)

	return NewHandlerFactory(HandlerFactoryConfig{
		DB:                  db,
		DBPool:              dbPool,
		AccountService:      accountService,
		InvestorService:     investorService,
		FundService:         fundService,
		CapitalCallService:  capitalCallService,
		DistributionService: distributionService,
		NotificationService: notificationService,
		EmailService:        emailService,
		APIKeyService:       apiKeyService,
		Logger:              logger,
	})
}

// Handler creation methods

// NewAccountHandler creates a new account handler
func (f *HandlerFactory) NewAccountHandler() *AccountHandler {
	return NewAccountHandler(f.commonServices, f.accountService)
}

// NewInvestorHandler creates a new investor handler
func (f *HandlerFactory) NewInvestorHandler() *InvestorHandler {
	return NewInvestorHandler(f.commonServices, f.investorService)
}

// NewFundHandler creates a new fund handler
func (f *HandlerFactory) NewFundHandler() *FundHandler {
	return NewFundHandler(f.commonServices, f.fundService)
}

// NewCapitalCallHandler creates a new capital call handler
func (f *HandlerFactory) NewCapitalCallHandler() *CapitalCallHandler {
	return NewCapitalCallHandler(f.commonServices, f.capitalCallService)
}

// NewDistributionHandler creates a new distribution handler
func (f *HandlerFactory) NewDistributionHandler() *DistributionHandler {
	return NewDistributionHandler(f.commonServices, f.distributionService)
}

// NewNotificationHandler creates a new notification handler
func (f *HandlerFactory) NewNotificationHandler() *NotificationHandler {
	return NewNotificationHandler(f.commonServices, f.notificationService)
}

// NewAPIKeyHandler creates a new API key handler
func (f *HandlerFactory) NewAPIKeyHandler() *APIKeyHandler {
	return NewAPIKeyHandler(f.commonServices, f.logger)
}

// NewHealthHandler creates a new health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler()
}

// GetCommonServices returns the common services instance
func (f *HandlerFactory) GetCommonServices() *CommonServices {
	return f.commonServices
}

// GetDB returns the database querier
func (f *HandlerFactory) GetDB() db.Querier {
	return f.db
}

// GetLogger returns the logger
func (f *HandlerFactory) GetLogger() *zap.Logger {
	return f.logger
}

// GetCapitalCallService returns the capital call service interface
func (f *HandlerFactory) GetCapitalCallService() interfaces.CapitalCallService {
	return f.capitalCallService
}
