// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lineconnect/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when a unique account attribute is taken.
	ErrAccountExists = errors.New("account already exists")
)

// AccountRepository is the host site's account store.
type AccountRepository interface {
	// Create persists a new account and fills its ID.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID returns ErrAccountNotFound when the account does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail returns ErrAccountNotFound when no account owns the email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// UpdateProfile writes the given profile fields only.
	UpdateProfile(ctx context.Context, id int64, fields map[entity.ProfileField]string) error
}
