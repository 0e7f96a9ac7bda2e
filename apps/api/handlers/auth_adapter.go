package handlers

import (
	"github.com/meridianfund/meridian-api/libs/go/client/auth"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
)

// AuthServicesAdapter adapts CommonServices to auth.CommonServicesInterface
type AuthServicesAdapter struct {
	common *CommonServices
}

// NewAuthServicesAdapter creates a new adapter
func NewAuthServicesAdapter(common *CommonServices) auth.CommonServicesInterface {
	return &AuthServicesAdapter{
		common: common,
	}
}

// GetDB returns the database querier
func (a *AuthServicesAdapter) GetDB() db.Querier {
	return a.common.db
}

// GetAPIKeyService returns the API key service interface
func (a *AuthServicesAdapter) GetAPIKeyService() interfaces.APIKeyService {
	return a.common.APIKeyService
}
