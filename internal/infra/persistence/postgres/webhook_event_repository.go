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

type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

func (repo *webhookEventRepository) Append(ctx context.Context, record *entity.WebhookEventRecord) error {
	m := &model.WebhookEventModel{
		EventType:      record.EventType,
		MessageType:    record.MessageType,
		ExternalID:     record.ExternalID,
		AccountID:      record.AccountID,
		WebhookEventID: record.WebhookEventID,
		Redelivery:     record.Redelivery,
		ReceivedAt:     record.ReceivedAt,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append webhook event")
	}
	record.ID = m.ID

	return nil
}

func (repo *webhookEventRepository) ListByExternalID(ctx context.Context, externalID string, limit int) ([]*entity.WebhookEventRecord, error) {
	var rows []model.WebhookEventModel
	q := repo.db.WithContext(ctx).Where("external_id = ?", externalID).Order("received_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	records := make([]*entity.WebhookEventRecord, 0, len(rows))
	for _, m := range rows {
		records = append(records, &entity.WebhookEventRecord{
			ID:             m.ID,
			EventType:      m.EventType,
			MessageType:    m.MessageType,
			ExternalID:     m.ExternalID,
			AccountID:      m.AccountID,
			WebhookEventID: m.WebhookEventID,
			Redelivery:     m.Redelivery,
			ReceivedAt:     m.ReceivedAt,
		})
	}

	return records, nil
}
