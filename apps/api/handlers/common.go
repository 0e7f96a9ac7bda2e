package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db db.Querier
	// dbPool is kept separate for transaction support
	dbPool        *pgxpool.Pool
	APIKeyService interfaces.APIKeyService
	logger        *zap.Logger
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB            db.Querier
	DBPool        *pgxpool.Pool // Optional: for transaction support
	APIKeyService interfaces.APIKeyService
	Logger        *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		db:            config.DB,
		dbPool:        config.DBPool,
		APIKeyService: config.APIKeyService,
		logger:        config.Logger,
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetDBPool returns the underlying database pool
func (s *CommonServices) GetDBPool() (*pgxpool.Pool, error) {
	if s.dbPool != nil {
		return s.dbPool, nil
	}
	return nil, errors.New("pool not available - please provide DBPool in CommonServicesConfig")
}

// WithTx creates a new db.Queries instance that uses the provided transaction
func (s *CommonServices) WithTx(tx pgx.Tx) *db.Queries {
	if queries, ok := s.db.(*db.Queries); ok {
		return queries.WithTx(tx)
	}
	return nil
}

// BeginTx starts a transaction and returns the transaction object (caller is
// responsible for committing or rolling back) together with a db.Queries
// instance bound to it.
func (s *CommonServices) BeginTx(ctx context.Context) (pgx.Tx, *db.Queries, error) {
	if s.dbPool == nil {
		return nil, nil, errors.New("database pool not configured - please provide DBPool in CommonServicesConfig")
	}

	tx, err := s.dbPool.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}

	qtx := s.WithTx(tx)
	if qtx == nil {
		_ = tx.Rollback(ctx)
		return nil, nil, errors.New("failed to create queries with transaction")
	}

	return tx, qtx, nil
}

// RunInTransaction executes a function within a database transaction.
// It automatically handles commit/rollback and provides a queries instance
// that uses the transaction.
func (s *CommonServices) RunInTransaction(ctx context.Context, fn func(qtx *db.Queries) error) error {
	pool, err := s.GetDBPool()
	if err != nil {
		return err
	}

	return helpers.WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		qtx := s.WithTx(tx)
		return fn(qtx)
	})
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// GetAPIKeyService returns the API key service interface
func (s *CommonServices) GetAPIKeyService() interfaces.APIKeyService {
	return s.APIKeyService
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	// Get correlation ID from context
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	// Include correlation ID in error response for debugging
	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// handleDBError is a helper function that handles database errors and returns appropriate HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Object     string      `json:"object"`
	HasMore    bool        `json:"has_more"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// sendPaginatedSuccess sends a successful paginated response
func sendPaginatedSuccess(c *gin.Context, statusCode int, data interface{}, page, limit, total int) {
	hasMore := (total+limit-1)/limit > page
	response := PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: hasMore,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  (total + limit - 1) / limit,
		},
	}
	c.JSON(statusCode, response)
}

// requestAccountID reads the authenticated account ID placed in the context
// by the auth middleware.
func requestAccountID(c *gin.Context) (uuid.UUID, error) {
	accountID := c.GetString("accountID")
	if accountID == "" {
		return uuid.Nil, errors.New("no account ID in request context")
	}
	return uuid.Parse(accountID)
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// CreateMockCommonServices creates a CommonServices instance with mock
// interfaces for testing handlers without a database connection.
func CreateMockCommonServices(db db.Querier, apiKeyService interfaces.APIKeyService) *CommonServices {
	return &CommonServices{
		db:            db,
		dbPool:        nil, // No pool for mocks
		APIKeyService: apiKeyService,
		logger:        zap.NewNop(), // No-op logger for tests
	}
}
