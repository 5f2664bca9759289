package postgres

import (
	"context"
	"time"

	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type bindingRepository struct {
	db *gorm.DB
}

// NewBindingRepository is the constructor for bindingRepository.
func NewBindingRepository(db *gorm.DB) repository.BindingRepository {
	return &bindingRepository{db: db}
}

func (repo *bindingRepository) FindByAccountID(ctx context.Context, provider entity.ProviderType, accountID int64) (*entity.IdentityBinding, error) {
	return repo.findOne(ctx, "provider = ? AND account_id = ?", provider.String(), accountID)
}

func (repo *bindingRepository) FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.IdentityBinding, error) {
	return repo.findOne(ctx, "provider = ? AND external_id = ?", provider.String(), externalID)
}

func (repo *bindingRepository) findOne(ctx context.Context, query string, args ...any) (*entity.IdentityBinding, error) {
	var m model.IdentityBindingModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBindingNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBindingDomain(&m), nil
}

func (repo *bindingRepository) Create(ctx context.Context, binding *entity.IdentityBinding) error {
	m := fromBindingDomain(binding)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrBindingConflict, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity binding")
	}

	binding.ID = m.ID

	return nil
}

func (repo *bindingRepository) Touch(ctx context.Context, id int64, linkedAt time.Time, registeredAt *time.Time) error {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.IdentityBindingModel{}).Where("id = ?", id).Update("linked_at", linkedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to refresh identity binding")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBindingNotFound
	}

	if registeredAt != nil {
		// registered_at is write-once
		err := db.Model(&model.IdentityBindingModel{}).
			Where("id = ? AND registered_at IS NULL", id).
			Update("registered_at", *registeredAt).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to set registration timestamp")
		}
	}

	return nil
}

func (repo *bindingRepository) DeleteByAccountID(ctx context.Context, provider entity.ProviderType, accountID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("provider = ? AND account_id = ?", provider.String(), accountID).
		Delete(&model.IdentityBindingModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete identity binding")
	}

	return result.RowsAffected > 0, nil
}

func toBindingDomain(m *model.IdentityBindingModel) *entity.IdentityBinding {
	if m == nil {
		return nil
	}

	return &entity.IdentityBinding{
		ID:           m.ID,
		Provider:     entity.ProviderType(m.Provider),
		AccountID:    m.AccountID,
		ExternalID:   m.ExternalID,
		LinkedAt:     m.LinkedAt,
		RegisteredAt: m.RegisteredAt,
	}
}

func fromBindingDomain(b *entity.IdentityBinding) *model.IdentityBindingModel {
	if b == nil {
		return nil
	}

	return &model.IdentityBindingModel{
		ID:           b.ID,
		Provider:     b.Provider.String(),
		AccountID:    b.AccountID,
		ExternalID:   b.ExternalID,
		LinkedAt:     b.LinkedAt,
		RegisteredAt: b.RegisteredAt,
	}
}
