package auth

import (
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
)

// CommonServicesInterface defines the interface for common services used by auth middleware
type CommonServicesInterface interface {
	GetDB() db.Querier
	GetAPIKeyService() interfaces.APIKeyService
}
