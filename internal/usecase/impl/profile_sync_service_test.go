package impl

import (
	"context"
	"testing"

	"lineconnect/config"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/infra/persistence/postgres"
	mockRepo "lineconnect/internal/mocks/repository"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileSyncFixtures struct {
	service  *profileSyncService
	accounts *mockRepo.MockAccountRepository
	syncLogs *mockRepo.MockSyncLogRepository
}

func createTestProfileSyncService(t *testing.T, policy entity.ConflictPolicy, syncOnLogin bool) profileSyncFixtures {
	accounts := mockRepo.NewMockAccountRepository(t)
	syncLogs := mockRepo.NewMockSyncLogRepository(t)

	srv := newProfileSyncService(ProfileSyncServiceParams{
		Accounts: accounts,
		SyncLogs: syncLogs,
		Config: &config.Config{
			Sync: &config.SyncConfig{ConflictPolicy: string(policy), SyncOnLogin: syncOnLogin},
		},
		Logger: newDiscardLogger(),
	})

	return profileSyncFixtures{service: srv, accounts: accounts, syncLogs: syncLogs}
}

func TestShouldUpdateField(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		remote      string
		policy      entity.ConflictPolicy
		action      entity.SyncAction
		syncOnLogin bool
		want        usecase.FieldDecision
	}{
		{"register overwrites under local priority", "Old", "New", entity.PolicyLocalPriority, entity.SyncActionRegister, false, usecase.DecisionUpdate},
		{"register ignores empty remote", "Old", "", entity.PolicyRemotePriority, entity.SyncActionRegister, false, usecase.DecisionSkip},
		{"login without sync never writes", "", "New", entity.PolicyRemotePriority, entity.SyncActionLogin, false, usecase.DecisionSkip},
		{"login with sync fills empty", "", "New", entity.PolicyLocalPriority, entity.SyncActionLogin, true, usecase.DecisionUpdate},
		{"empty current is filled", "", "New", entity.PolicyLocalPriority, entity.SyncActionLink, false, usecase.DecisionUpdate},
		{"equal values are a no-op", "Same", "Same", entity.PolicyRemotePriority, entity.SyncActionLink, false, usecase.DecisionSkip},
		{"remote priority overwrites", "Old", "New", entity.PolicyRemotePriority, entity.SyncActionLink, false, usecase.DecisionUpdate},
		{"local priority keeps", "Old", "New", entity.PolicyLocalPriority, entity.SyncActionLink, false, usecase.DecisionSkip},
		{"manual records conflict", "Old", "New", entity.PolicyManual, entity.SyncActionLink, false, usecase.DecisionConflict},
		{"manual on login with sync", "Old", "New", entity.PolicyManual, entity.SyncActionLogin, true, usecase.DecisionConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldUpdateField(tt.current, tt.remote, tt.policy, tt.action, tt.syncOnLogin))
		})
	}
}

func TestProfileSyncService_Sync_RegisterOverwritesUnderLocalPriority(t *testing.T) {
	fx := createTestProfileSyncService(t, entity.PolicyLocalPriority, false)
	ctx := context.Background()

	fx.accounts.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Account{ID: 1, DisplayName: "line_U1", AvatarURL: "https://old"}, nil).Once()
	fx.accounts.EXPECT().
		UpdateProfile(ctx, int64(1), map[entity.ProfileField]string{
			entity.FieldDisplayName: "Ann",
			entity.FieldAvatarURL:   "https://new",
		}).
		Return(nil).Once()
	fx.syncLogs.EXPECT().
		Append(ctx, mock.MatchedBy(func(e *entity.SyncLogEntry) bool {
			return e.Kind == entity.SyncLogKindSync && e.Action == entity.SyncActionRegister &&
				e.OldValues["display_name"] == "line_U1" && e.NewValues["display_name"] == "Ann"
		}), entity.SyncLogMaxEntries).
		Return(nil).Once()

	result, err := fx.service.Sync(ctx, 1, &entity.RemoteProfile{ExternalID: "U1", DisplayName: "Ann", AvatarURL: "https://new"}, entity.SyncActionRegister)

	require.NoError(t, err)
	assert.Len(t, result.Updated, 2)
	assert.True(t, result.Changed())
}

func TestProfileSyncService_Sync_LoginWithoutSyncOnLogin(t *testing.T) {
	for _, policy := range []entity.ConflictPolicy{entity.PolicyRemotePriority, entity.PolicyLocalPriority, entity.PolicyManual} {
		t.Run(string(policy), func(t *testing.T) {
			fx := createTestProfileSyncService(t, policy, false)
			ctx := context.Background()

			fx.accounts.EXPECT().
				FindByID(ctx, int64(1)).
				Return(&entity.Account{ID: 1, DisplayName: "Old"}, nil).Once()

			result, err := fx.service.Sync(ctx, 1, &entity.RemoteProfile{DisplayName: "New", Email: "n@example.com", AvatarURL: "a"}, entity.SyncActionLogin)

			require.NoError(t, err)
			assert.False(t, result.Changed())
			assert.Empty(t, result.Conflicts)
		})
	}
}

func TestProfileSyncService_Sync_ManualPolicyLogsConflict(t *testing.T) {
	fx := createTestProfileSyncService(t, entity.PolicyManual, true)
	ctx := context.Background()

	fx.accounts.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Account{ID: 1, DisplayName: "Local"}, nil).Once()
	fx.syncLogs.EXPECT().
		Append(ctx, mock.MatchedBy(func(e *entity.SyncLogEntry) bool {
			return e.Kind == entity.SyncLogKindConflict && e.NewValues["display_name"] == "Remote"
		}), entity.SyncLogMaxEntries).
		Return(nil).Once()

	result, err := fx.service.Sync(ctx, 1, &entity.RemoteProfile{DisplayName: "Remote"}, entity.SyncActionLink)

	require.NoError(t, err)
	assert.False(t, result.Changed())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "Local", result.Conflicts[0].OldValue)
}

func TestProfileSyncService_Sync_EmailOwnedByOtherAccountSkipped(t *testing.T) {
	fx := createTestProfileSyncService(t, entity.PolicyRemotePriority, true)
	ctx := context.Background()

	fx.accounts.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Account{ID: 1, DisplayName: "Ann"}, nil).Once()
	fx.accounts.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.Account{ID: 2}, nil).Once()

	result, err := fx.service.Sync(ctx, 1, &entity.RemoteProfile{DisplayName: "Ann", Email: "taken@example.com"}, entity.SyncActionLink)

	require.NoError(t, err)
	assert.True(t, result.EmailSkipped)
	assert.False(t, result.Changed())
}

func TestProfileSyncService_Sync_AccountNotFound(t *testing.T) {
	fx := createTestProfileSyncService(t, entity.PolicyRemotePriority, true)
	ctx := context.Background()

	fx.accounts.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrAccountNotFound).Once()

	_, err := fx.service.Sync(ctx, 404, &entity.RemoteProfile{DisplayName: "x"}, entity.SyncActionLink)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestProfileSyncService_Sync_LogFailureDoesNotFailSync(t *testing.T) {
	fx := createTestProfileSyncService(t, entity.PolicyRemotePriority, true)
	ctx := context.Background()

	fx.accounts.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Account{ID: 1}, nil).Once()
	fx.accounts.EXPECT().UpdateProfile(ctx, int64(1), mock.Anything).Return(nil).Once()
	fx.syncLogs.EXPECT().Append(ctx, mock.Anything, entity.SyncLogMaxEntries).Return(errors.New("disk full")).Once()

	result, err := fx.service.Sync(ctx, 1, &entity.RemoteProfile{DisplayName: "Ann"}, entity.SyncActionLink)

	require.NoError(t, err)
	assert.True(t, result.Changed())
}

func TestProfileSyncService_Sync_SyncLogCappedAtTen(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	accounts := postgres.NewAccountRepository(db)
	syncLogs := postgres.NewSyncLogRepository(db)

	account := &entity.Account{Login: "ann", DisplayName: "v0"}
	require.NoError(t, accounts.Create(ctx, account))

	srv := newProfileSyncService(ProfileSyncServiceParams{
		Accounts: accounts,
		SyncLogs: syncLogs,
		Config:   &config.Config{Sync: &config.SyncConfig{ConflictPolicy: string(entity.PolicyRemotePriority)}},
		Logger:   newDiscardLogger(),
	})

	for i := 1; i <= 12; i++ {
		name := "v" + string(rune('a'+i))
		_, err := srv.Sync(ctx, account.ID, &entity.RemoteProfile{DisplayName: name}, entity.SyncActionLink)
		require.NoError(t, err)
	}

	entries, err := syncLogs.List(ctx, account.ID, entity.SyncLogKindSync)
	require.NoError(t, err)
	assert.Len(t, entries, entity.SyncLogMaxEntries)
	assert.Equal(t, "vm", entries[0].NewValues["display_name"])

	stored, err := accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "vm", stored.DisplayName)
}
