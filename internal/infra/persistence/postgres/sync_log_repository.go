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

type syncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository is the constructor for syncLogRepository.
func NewSyncLogRepository(db *gorm.DB) repository.SyncLogRepository {
	return &syncLogRepository{db: db}
}

// Append inserts the entry and prunes older entries inside one transaction.
func (repo *syncLogRepository) Append(ctx context.Context, entry *entity.SyncLogEntry, keep int) error {
	m := fromSyncLogDomain(entry)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append sync log")
		}
		entry.ID = m.ID

		if keep <= 0 {
			return nil
		}

		var keepIDs []int64
		err := tx.Model(&model.SyncLogModel{}).
			Where("account_id = ? AND kind = ?", m.AccountID, m.Kind).
			Order("created_at DESC, id DESC").
			Limit(keep).
			Pluck("id", &keepIDs).Error
		if err != nil {
			return errors.WithStack(err)
		}

		err = tx.Where("account_id = ? AND kind = ? AND id NOT IN ?", m.AccountID, m.Kind, keepIDs).
			Delete(&model.SyncLogModel{}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to prune sync log")
		}

		return nil
	})
}

func (repo *syncLogRepository) List(ctx context.Context, accountID int64, kind entity.SyncLogKind) ([]*entity.SyncLogEntry, error) {
	var rows []model.SyncLogModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND kind = ?", accountID, string(kind)).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.SyncLogEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toSyncLogDomain(&rows[i]))
	}

	return entries, nil
}

func toSyncLogDomain(m *model.SyncLogModel) *entity.SyncLogEntry {
	return &entity.SyncLogEntry{
		ID:        m.ID,
		AccountID: m.AccountID,
		Kind:      entity.SyncLogKind(m.Kind),
		Action:    entity.SyncAction(m.Action),
		Fields:    []string(m.Fields),
		OldValues: m.OldValues.Data(),
		NewValues: m.NewValues.Data(),
		CreatedAt: m.CreatedAt,
	}
}

func fromSyncLogDomain(e *entity.SyncLogEntry) *model.SyncLogModel {
	return &model.SyncLogModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Kind:      string(e.Kind),
		Action:    string(e.Action),
		Fields:    datatypes.JSONSlice[string](e.Fields),
		OldValues: datatypes.NewJSONType(e.OldValues),
		NewValues: datatypes.NewJSONType(e.NewValues),
		CreatedAt: e.CreatedAt,
	}
}
