package postgres

import (
	"context"

	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{db: db}
}

func (repo *deliveryLogRepository) Append(ctx context.Context, log *entity.DeliveryLog) error {
	m := &model.DeliveryLogModel{
		AccountID:   log.AccountID,
		ExternalID:  log.ExternalID,
		Kind:        string(log.Kind),
		Status:      string(log.Status),
		StatusCode:  log.StatusCode,
		Attempts:    log.Attempts,
		ErrorDetail: log.ErrorDetail,
		CreatedAt:   log.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append delivery log")
	}
	log.ID = m.ID

	return nil
}

func (repo *deliveryLogRepository) ListByAccountID(ctx context.Context, accountID int64, limit int) ([]*entity.DeliveryLog, error) {
	var rows []model.DeliveryLogModel
	q := repo.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	logs := make([]*entity.DeliveryLog, 0, len(rows))
	for _, m := range rows {
		logs = append(logs, &entity.DeliveryLog{
			ID:          m.ID,
			AccountID:   m.AccountID,
			ExternalID:  m.ExternalID,
			Kind:        entity.DeliveryKind(m.Kind),
			Status:      entity.DeliveryStatus(m.Status),
			StatusCode:  m.StatusCode,
			Attempts:    m.Attempts,
			ErrorDetail: m.ErrorDetail,
			CreatedAt:   m.CreatedAt,
		})
	}

	return logs, nil
}
