package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lineconnect/config"
	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const registeredLoginPrefix = "line_"

// chatLoginService implements the ChatLoginUsecase interface. It decides
// between linking, logging in and registering once a handshake completes.
type chatLoginService struct {
	auth              usecase.AuthorizationFlow
	ledger            usecase.IdentityLedger
	synchronizer      usecase.ProfileSynchronizer
	txManager         repository.TransactionManager
	accounts          repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	allowRegistration bool
	now               func() time.Time
	logger            *slog.Logger
}

// ChatLoginServiceParams holds dependencies for ChatLoginService, injected by Fx.
type ChatLoginServiceParams struct {
	fx.In

	Auth         usecase.AuthorizationFlow
	Ledger       usecase.IdentityLedger
	Synchronizer usecase.ProfileSynchronizer
	TxManager    repository.TransactionManager
	Accounts     repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewChatLoginService creates the login orchestration.
func NewChatLoginService(params ChatLoginServiceParams) usecase.ChatLoginUsecase {
	return newChatLoginService(params)
}

func newChatLoginService(params ChatLoginServiceParams) *chatLoginService {
	srv := &chatLoginService{
		auth:         params.Auth,
		ledger:       params.Ledger,
		synchronizer: params.Synchronizer,
		txManager:    params.TxManager,
		accounts:     params.Accounts,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		now:          time.Now,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Sync != nil {
		srv.allowRegistration = params.Config.Sync.AllowRegistration
	}

	return srv
}

func (srv *chatLoginService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteLogin finishes the handshake and signs the account in.
func (srv *chatLoginService) CompleteLogin(ctx context.Context, code, state string) (*usecase.ChatLoginOutput, error) {
	callback, err := srv.auth.HandleCallback(ctx, code, state)
	if err != nil {
		return nil, err
	}

	profile := callback.Profile
	output := &usecase.ChatLoginOutput{RedirectURL: callback.Handshake.ReturnURL}

	switch {
	case callback.Handshake.IsLinkFlow():
		output.AccountID = *callback.Handshake.AccountID
		output.Action = entity.SyncActionLink
	default:
		accountID, err := srv.ledger.FindAccountByExternalID(ctx, profile.ExternalID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve chat identity")
		}

		switch {
		case accountID != nil:
			output.AccountID = *accountID
			output.Action = entity.SyncActionLogin
		case srv.allowRegistration:
			output.Action = entity.SyncActionRegister
		default:
			srv.log(ctx).Info("Chat identity is not linked and registration is disabled", slog.String("externalID", profile.ExternalID))

			return nil, domainerrors.ErrAccountNotLinked.WithDetails("sign in and link your LINE account first")
		}
	}

	if output.Action == entity.SyncActionRegister {
		accountID, err := srv.register(ctx, profile)
		if err != nil {
			return nil, err
		}
		output.AccountID = accountID
	} else {
		// Refreshes linked_at on login and enforces the bijection on link.
		link, err := srv.ledger.Link(ctx, output.AccountID, profile.ExternalID, false)
		if err != nil {
			return nil, errors.Wrap(err, "failed to link chat identity")
		}
		if !link.OK() {
			output.Conflict = link

			return output, nil
		}
	}

	// A failed sync leaves a linked but stale account, which the next login repairs.
	syncResult, err := srv.synchronizer.Sync(ctx, output.AccountID, profile, output.Action)
	if err != nil {
		srv.log(ctx).Warn("Profile sync failed after login", slog.Int64("accountID", output.AccountID), slog.Any("error", err))
	}
	output.Sync = syncResult

	if err := srv.issueSession(ctx, output); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Chat login completed",
		slog.Int64("accountID", output.AccountID),
		slog.String("action", string(output.Action)))

	return output, nil
}

// register creates the account and its binding in one transaction. When a
// concurrent registration for the same identity wins, its account is used.
func (srv *chatLoginService) register(ctx context.Context, profile *entity.RemoteProfile) (int64, error) {
	secret, err := newStateToken()
	if err != nil {
		return 0, err
	}
	hash, err := srv.hasher.Hash(secret)
	if err != nil {
		return 0, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	// The suffix keeps logins unique when an unlinked identity registers again.
	suffix, err := newStateToken()
	if err != nil {
		return 0, err
	}

	now := srv.now().UTC()
	account := &entity.Account{
		Login:        registeredLoginPrefix + strings.ToLower(profile.ExternalID) + "_" + suffix[:6],
		DisplayName:  profile.DisplayName,
		PasswordHash: hash,
		Roles:        entity.Roles{entity.RoleCustomer},
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAccountRepository().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return factory.NewBindingRepository().Create(ctx, &entity.IdentityBinding{
			Provider:     entity.ProviderLine,
			AccountID:    account.ID,
			ExternalID:   profile.ExternalID,
			LinkedAt:     now,
			RegisteredAt: &now,
		})
	})

	if errors.Is(err, repository.ErrBindingConflict) || errors.Is(err, repository.ErrAccountExists) {
		binding, lookupErr := srv.ledger.GetBindingByExternalID(ctx, profile.ExternalID)
		if lookupErr != nil {
			return 0, lookupErr
		}
		if binding != nil {
			srv.log(ctx).Info("Concurrent registration won, signing into its account", slog.Int64("accountID", binding.AccountID))

			return binding.AccountID, nil
		}
	}
	if err != nil {
		srv.log(ctx).Error("Failed to register chat account", slog.String("externalID", profile.ExternalID), slog.Any("error", err))

		return 0, domainerrors.ErrTransactionFailed.WithCause(err)
	}

	srv.log(ctx).Info("Registered account through chat login", slog.Int64("accountID", account.ID))

	return account.ID, nil
}

func (srv *chatLoginService) issueSession(ctx context.Context, output *usecase.ChatLoginOutput) error {
	account, err := srv.accounts.FindByID(ctx, output.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WithDetails(fmt.Sprintf("account %d", output.AccountID))
	}
	if err != nil {
		return errors.Wrap(err, "failed to load account for session")
	}

	token, expiresAt, err := srv.tokenService.GenerateSessionToken(account.ID, account.Roles.ToStrings())
	if err != nil {
		return errors.Wrap(err, "failed to issue session token")
	}

	output.SessionToken = token
	output.SessionExpiresAt = expiresAt

	return nil
}

// LinkStatus reports the account's binding.
func (srv *chatLoginService) LinkStatus(ctx context.Context, accountID int64) (*usecase.LinkStatus, error) {
	binding, err := srv.ledger.GetBinding(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		return &usecase.LinkStatus{}, nil
	}

	linkedAt := binding.LinkedAt

	return &usecase.LinkStatus{
		Linked:           true,
		ExternalID:       binding.ExternalID,
		LinkedAt:         &linkedAt,
		RegisteredByChat: binding.RegisteredAt != nil,
	}, nil
}

// Unlink removes the account's binding.
func (srv *chatLoginService) Unlink(ctx context.Context, accountID int64) error {
	deleted, err := srv.ledger.Unlink(ctx, accountID)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrAccountNotLinked
	}

	return nil
}
