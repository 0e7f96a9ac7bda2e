package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"go.uber.org/zap"
)

// Common validation configurations for different endpoints

// Investor validation rules
var CreateInvestorValidation = ValidationConfig{
	MaxBodySize: 64 * 1024, // 64KB
	Rules: []ValidationRule{
		{
			Field:     "email",
			Type:      "email",
			Required:  true,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:     "legal_name",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:         "entity_type",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{"individual", "entity", "trust", "retirement_plan"},
		},
	},
}

var UpdateInvestorValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:     "email",
			Type:      "email",
			Required:  false,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:     "legal_name",
			Type:      "string",
			Required:  false,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:         "entity_type",
			Type:          "string",
			Required:      false,
			AllowedValues: []string{"individual", "entity", "trust", "retirement_plan"},
		},
	},
}

var UpdateKYCStatusValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:         "status",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{"pending", "approved", "rejected", "expired"},
		},
		{
			Field:     "reason",
			Type:      "string",
			Required:  false,
			MaxLength: 1000,
			Sanitize:  true,
		},
	},
}

// Fund validation rules
var CreateFundValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:     "name",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:     "manager_name",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:    "currency",
			Type:     "string",
			Required: false,
			Pattern:  `^[A-Z]{3}$`,
		},
		{
			Field:    "vintage_year",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1980),
			Max:      float64Ptr(2100),
		},
	},
}

var CreateCommitmentValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:    "investor_id",
			Type:     "uuid",
			Required: true,
		},
		{
			Field:    "committed_cents",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
		},
	},
}

// Capital call validation rules
var CreateCapitalCallValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:    "total_amount_cents",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
		},
		{
			Field:    "due_date",
			Type:     "string",
			Required: true,
			Pattern:  `^\d{4}-\d{2}-\d{2}$`,
		},
		{
			Field:     "purpose",
			Type:      "string",
			Required:  false,
			MaxLength: 1000,
			Sanitize:  true,
		},
		{
			Field:    "wire_instructions",
			Type:     "object",
			Required: false,
		},
	},
}

var ConfirmWireValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:    "investor_id",
			Type:     "uuid",
			Required: true,
		},
		{
			Field:     "wire_reference",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
			Sanitize:  true,
		},
	},
}

// Distribution validation rules
var CreateDistributionValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:    "total_amount_cents",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
		},
		{
			Field:    "payment_date",
			Type:     "string",
			Required: true,
			Pattern:  `^\d{4}-\d{2}-\d{2}$`,
		},
		{
			Field:     "source",
			Type:      "string",
			Required:  false,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:         "classification",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{"return_of_capital", "capital_gain", "income"},
		},
		{
			Field:    "recallable",
			Type:     "boolean",
			Required: false,
		},
		{
			Field:    "withholding_bps",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
			Max:      float64Ptr(10000),
		},
	},
}

// API Key validation rules
var CreateAPIKeyValidation = ValidationConfig{
	MaxBodySize: 64 * 1024,
	Rules: []ValidationRule{
		{
			Field:     "name",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:     "description",
			Type:      "string",
			Required:  false,
			MaxLength: 200,
			Sanitize:  true,
		},
		{
			Field:         "access_level",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{"read", "write", "admin"},
		},
		{
			Field:    "expires_at",
			Type:     "string",
			Required: false,
			Pattern:  `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})$`, // ISO 8601
		},
	},
}

// Notification validation rules
var SendNotificationValidation = ValidationConfig{
	MaxBodySize: 256 * 1024, // template data can carry report tables
	Rules: []ValidationRule{
		{
			Field:     "kind",
			Type:      "string",
			Required:  true,
			MinLength: 3,
			MaxLength: 100,
			Pattern:   `^[a-z_]+\.[a-z0-9_]+$`,
		},
		{
			Field:     "recipient",
			Type:      "email",
			Required:  true,
			MaxLength: 255,
		},
		{
			Field:    "investor_id",
			Type:     "uuid",
			Required: false,
		},
		{
			Field:    "data",
			Type:     "object",
			Required: true,
		},
	},
}

var PreviewNotificationValidation = ValidationConfig{
	MaxBodySize: 256 * 1024,
	Rules: []ValidationRule{
		{
			Field:     "kind",
			Type:      "string",
			Required:  true,
			MinLength: 3,
			MaxLength: 100,
			Pattern:   `^[a-z_]+\.[a-z0-9_]+$`,
		},
		{
			Field:    "data",
			Type:     "object",
			Required: true,
		},
	},
}

// Search/Filter validation
var ListQueryValidation = ValidationConfig{
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "limit",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
			Max:      float64Ptr(100),
		},
		{
			Field:    "offset",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
		},
		{
			Field:    "page",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
		},
	},
}

// ValidateQueryParams creates validation for URL query parameters
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse query parameters into a map
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				if num, err := strconv.ParseFloat(values[0], 64); err == nil {
					params[key] = num
				} else {
					params[key] = values[0]
				}
			}
		}

		// Validate fields
		errors := validateFields(params, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			logger.Log.Error("Query validation failed",
				zap.Any("errors", errors),
				zap.String("correlation_id", c.GetHeader("X-Correlation-ID")),
			)
			c.JSON(http.StatusBadRequest, ValidationErrors{Errors: errors})
			c.Abort()
			return
		}

		// Store validated params in context
		c.Set("validatedQuery", params)
		c.Next()
	}
}
