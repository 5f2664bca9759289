package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityLedger implements the IdentityLedger interface on top of the
// binding repository. The repository's unique indexes are the final word on
// conflicts; the lookups before the insert only make the common case cheap.
type identityLedger struct {
	bindings repository.BindingRepository
	provider entity.ProviderType
	metrics  service.Metrics
	now      func() time.Time
	logger   *slog.Logger
}

// IdentityLedgerParams holds dependencies for IdentityLedger, injected by Fx.
type IdentityLedgerParams struct {
	fx.In

	Bindings repository.BindingRepository
	Metrics  service.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewIdentityLedger creates the binding ledger for the LINE provider.
func NewIdentityLedger(params IdentityLedgerParams) usecase.IdentityLedger {
	return newIdentityLedger(params)
}

func newIdentityLedger(params IdentityLedgerParams) *identityLedger {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &identityLedger{
		bindings: params.Bindings,
		provider: entity.ProviderLine,
		metrics:  metrics,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (l *identityLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *identityLedger) FindAccountByExternalID(ctx context.Context, externalID string) (*int64, error) {
	binding, err := l.GetBindingByExternalID(ctx, externalID)
	if err != nil || binding == nil {
		return nil, err
	}

	accountID := binding.AccountID

	return &accountID, nil
}

func (l *identityLedger) FindExternalIDByAccount(ctx context.Context, accountID int64) (string, error) {
	binding, err := l.GetBinding(ctx, accountID)
	if err != nil || binding == nil {
		return "", err
	}

	return binding.ExternalID, nil
}

func (l *identityLedger) IsLinked(ctx context.Context, accountID int64) (bool, error) {
	binding, err := l.GetBinding(ctx, accountID)
	if err != nil {
		return false, err
	}

	return binding != nil, nil
}

func (l *identityLedger) GetBinding(ctx context.Context, accountID int64) (*entity.IdentityBinding, error) {
	binding, err := l.bindings.FindByAccountID(ctx, l.provider, accountID)
	if errors.Is(err, repository.ErrBindingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find binding by account")
	}

	return binding, nil
}

func (l *identityLedger) GetBindingByExternalID(ctx context.Context, externalID string) (*entity.IdentityBinding, error) {
	if externalID == "" {
		return nil, nil
	}

	binding, err := l.bindings.FindByExternalID(ctx, l.provider, externalID)
	if errors.Is(err, repository.ErrBindingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find binding by external id")
	}

	return binding, nil
}

// Link binds accountID to externalID unless either side is already bound elsewhere.
func (l *identityLedger) Link(ctx context.Context, accountID int64, externalID string, isRegistration bool) (*usecase.LinkResult, error) {
	if accountID <= 0 || externalID == "" {
		return nil, errors.Errorf("invalid link request: account %d, external id %q", accountID, externalID)
	}

	result, err := l.resolveExisting(ctx, accountID, externalID, isRegistration)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result, err = l.insert(ctx, accountID, externalID, isRegistration)
		if err != nil {
			return nil, err
		}
	}

	l.metrics.Link(string(result.Outcome))
	logger := l.log(ctx).With(
		slog.Int64("accountID", accountID),
		slog.String("externalID", externalID),
		slog.String("outcome", string(result.Outcome)))
	if result.OK() {
		logger.Info("Identity linked")
	} else {
		logger.Warn("Identity link rejected", slog.Int64("boundAccountID", result.Binding.AccountID))
	}

	return result, nil
}

// resolveExisting returns nil when neither side is bound yet.
func (l *identityLedger) resolveExisting(ctx context.Context, accountID int64, externalID string, isRegistration bool) (*usecase.LinkResult, error) {
	byExternal, err := l.GetBindingByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if byExternal != nil {
		if byExternal.AccountID != accountID {
			return &usecase.LinkResult{Outcome: usecase.LinkOutcomeExternalIDTaken, Binding: byExternal}, nil
		}

		return l.refresh(ctx, byExternal, isRegistration)
	}

	byAccount, err := l.GetBinding(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if byAccount != nil {
		return &usecase.LinkResult{Outcome: usecase.LinkOutcomeAccountTaken, Binding: byAccount}, nil
	}

	return nil, nil
}

func (l *identityLedger) insert(ctx context.Context, accountID int64, externalID string, isRegistration bool) (*usecase.LinkResult, error) {
	now := l.now().UTC()
	binding := &entity.IdentityBinding{
		Provider:   l.provider,
		AccountID:  accountID,
		ExternalID: externalID,
		LinkedAt:   now,
	}
	if isRegistration {
		binding.RegisteredAt = &now
	}

	err := l.bindings.Create(ctx, binding)
	if err == nil {
		return &usecase.LinkResult{Outcome: usecase.LinkOutcomeLinked, Binding: binding}, nil
	}
	if !errors.Is(err, repository.ErrBindingConflict) {
		return nil, errors.Wrap(err, "failed to create binding")
	}

	// Lost a race with a concurrent link; the row that won decides the outcome.
	l.log(ctx).Debug("Binding insert hit unique index, re-reading", slog.Int64("accountID", accountID))
	result, err := l.resolveExisting(ctx, accountID, externalID, isRegistration)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("binding conflict vanished before it could be resolved")
	}

	return result, nil
}

func (l *identityLedger) refresh(ctx context.Context, binding *entity.IdentityBinding, isRegistration bool) (*usecase.LinkResult, error) {
	now := l.now().UTC()

	var registeredAt *time.Time
	if isRegistration {
		registeredAt = &now
	}

	if err := l.bindings.Touch(ctx, binding.ID, now, registeredAt); err != nil {
		return nil, errors.Wrap(err, "failed to refresh binding")
	}

	binding.LinkedAt = now
	if binding.RegisteredAt == nil {
		binding.RegisteredAt = registeredAt
	}

	return &usecase.LinkResult{Outcome: usecase.LinkOutcomeRefreshed, Binding: binding}, nil
}

// Unlink hard-deletes the account's binding.
func (l *identityLedger) Unlink(ctx context.Context, accountID int64) (bool, error) {
	deleted, err := l.bindings.DeleteByAccountID(ctx, l.provider, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete binding")
	}

	l.log(ctx).Info("Identity unlinked", slog.Int64("accountID", accountID), slog.Bool("existed", deleted))

	return deleted, nil
}
