package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meridianfund/meridian-api/libs/go/db"
)

// AccountService handles business logic for account operations
type AccountService struct {
	db db.Querier
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(database db.Querier) *AccountService {
	return &AccountService{
		db: database,
	}
}

// CreateAccount creates a manager account.
func (s *AccountService) CreateAccount(ctx context.Context, name, contactEmail string) (*db.Account, error) {
	account, err := s.db.CreateAccount(ctx, db.CreateAccountParams{
		Name:         name,
		ContactEmail: contactEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*db.Account, error) {
	account, err := s.db.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts retrieves all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]db.Account, error) {
	return s.db.ListAccounts(ctx)
}
