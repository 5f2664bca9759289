package postgres

import (
	"context"

	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrAccountExists, "create account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required account information").WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = m.ID
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var m model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&m), nil
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if email == "" {
		return nil, repository.ErrAccountNotFound
	}

	var m model.AccountModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&m), nil
}

func (repo *accountRepository) UpdateProfile(ctx context.Context, id int64, fields map[entity.ProfileField]string) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make(map[string]any, len(fields))
	for field, value := range fields {
		switch field {
		case entity.FieldDisplayName:
			updates["display_name"] = value
		case entity.FieldAvatarURL:
			updates["avatar_url"] = value
		case entity.FieldEmail:
			updates["email"] = nullableString(value)
		}
	}

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrAccountExists, "update account profile")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	account := &entity.Account{
		ID:           m.ID,
		Login:        m.Login,
		DisplayName:  m.DisplayName,
		AvatarURL:    m.AvatarURL,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(m.Roles),
		Capabilities: []string(m.Capabilities),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Email != nil {
		account.Email = *m.Email
	}

	return account
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	if a == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           a.ID,
		Login:        a.Login,
		Email:        nullableString(a.Email),
		DisplayName:  a.DisplayName,
		AvatarURL:    a.AvatarURL,
		PasswordHash: a.PasswordHash,
		Roles:        datatypes.JSONSlice[string](a.Roles.ToStrings()),
		Capabilities: datatypes.JSONSlice[string](a.Capabilities),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
