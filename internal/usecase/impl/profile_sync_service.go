package impl

import (
	"context"
	"log/slog"
	"time"

	"lineconnect/config"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileSyncService implements the ProfileSynchronizer interface.
type profileSyncService struct {
	accounts    repository.AccountRepository
	syncLogs    repository.SyncLogRepository
	policy      entity.ConflictPolicy
	syncOnLogin bool
	now         func() time.Time
	logger      *slog.Logger
}

// ProfileSyncServiceParams holds dependencies for ProfileSyncService, injected by Fx.
type ProfileSyncServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	SyncLogs repository.SyncLogRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProfileSyncService creates the profile synchronizer with the configured policy.
func NewProfileSyncService(params ProfileSyncServiceParams) usecase.ProfileSynchronizer {
	return newProfileSyncService(params)
}

func newProfileSyncService(params ProfileSyncServiceParams) *profileSyncService {
	srv := &profileSyncService{
		accounts: params.Accounts,
		syncLogs: params.SyncLogs,
		policy:   entity.PolicyRemotePriority,
		now:      time.Now,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Sync != nil {
		if policy := entity.ConflictPolicy(params.Config.Sync.ConflictPolicy); policy.IsValid() {
			srv.policy = policy
		}
		srv.syncOnLogin = params.Config.Sync.SyncOnLogin
	}

	return srv
}

func (srv *profileSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ShouldUpdateField decides what happens to one field during a sync.
func ShouldUpdateField(current, remote string, policy entity.ConflictPolicy, action entity.SyncAction, syncOnLogin bool) usecase.FieldDecision {
	if remote == "" || current == remote {
		return usecase.DecisionSkip
	}

	// A new account takes whatever the platform knows about the user.
	if action == entity.SyncActionRegister {
		return usecase.DecisionUpdate
	}

	if action == entity.SyncActionLogin && !syncOnLogin {
		return usecase.DecisionSkip
	}

	if current == "" {
		return usecase.DecisionUpdate
	}

	switch policy {
	case entity.PolicyRemotePriority:
		return usecase.DecisionUpdate
	case entity.PolicyManual:
		return usecase.DecisionConflict
	default:
		return usecase.DecisionSkip
	}
}

// Sync merges the remote profile into the account according to the policy.
func (srv *profileSyncService) Sync(ctx context.Context, accountID int64, profile *entity.RemoteProfile, action entity.SyncAction) (*usecase.SyncResult, error) {
	if profile == nil || !action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile and a valid sync action are required")
	}

	account, err := srv.accounts.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for sync")
	}

	result := &usecase.SyncResult{}
	for _, field := range entity.SyncFields {
		change := usecase.FieldChange{Field: field, OldValue: account.Field(field), NewValue: profile.Field(field)}

		switch ShouldUpdateField(change.OldValue, change.NewValue, srv.policy, action, srv.syncOnLogin) {
		case usecase.DecisionUpdate:
			if field == entity.FieldEmail {
				taken, err := srv.emailOwnedByOther(ctx, accountID, change.NewValue)
				if err != nil {
					return nil, err
				}
				if taken {
					srv.log(ctx).Info("Skipping remote email owned by another account", slog.Int64("accountID", accountID))
					result.EmailSkipped = true

					continue
				}
			}
			result.Updated = append(result.Updated, change)
		case usecase.DecisionConflict:
			result.Conflicts = append(result.Conflicts, change)
		case usecase.DecisionSkip:
		}
	}

	if len(result.Updated) > 0 {
		fields := make(map[entity.ProfileField]string, len(result.Updated))
		for _, change := range result.Updated {
			fields[change.Field] = change.NewValue
		}
		if err := srv.accounts.UpdateProfile(ctx, accountID, fields); err != nil {
			return nil, errors.Wrap(err, "failed to update account profile")
		}
		srv.appendLog(ctx, accountID, entity.SyncLogKindSync, action, result.Updated)
	}

	if len(result.Conflicts) > 0 {
		srv.appendLog(ctx, accountID, entity.SyncLogKindConflict, action, result.Conflicts)
	}

	srv.log(ctx).Debug("Profile synchronized",
		slog.Int64("accountID", accountID),
		slog.String("action", string(action)),
		slog.Int("updated", len(result.Updated)),
		slog.Int("conflicts", len(result.Conflicts)))

	return result, nil
}

func (srv *profileSyncService) emailOwnedByOther(ctx context.Context, accountID int64, email string) (bool, error) {
	owner, err := srv.accounts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check email ownership")
	}

	return owner.ID != accountID, nil
}

// appendLog records the history entry; a failed audit write never undoes the sync.
func (srv *profileSyncService) appendLog(ctx context.Context, accountID int64, kind entity.SyncLogKind, action entity.SyncAction, changes []usecase.FieldChange) {
	entry := &entity.SyncLogEntry{
		AccountID: accountID,
		Kind:      kind,
		Action:    action,
		Fields:    make([]string, 0, len(changes)),
		OldValues: make(map[string]string, len(changes)),
		NewValues: make(map[string]string, len(changes)),
		CreatedAt: srv.now().UTC(),
	}
	for _, change := range changes {
		name := string(change.Field)
		entry.Fields = append(entry.Fields, name)
		entry.OldValues[name] = change.OldValue
		entry.NewValues[name] = change.NewValue
	}

	if err := srv.syncLogs.Append(ctx, entry, entity.SyncLogMaxEntries); err != nil {
		srv.log(ctx).Warn("Failed to append sync log",
			slog.Int64("accountID", accountID),
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	}
}
