package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

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

const (
	defaultMaxAttempts     = 3
	defaultBackoffUnit     = 2 * time.Second
	defaultRequestDeadline = 60 * time.Second
	maxErrorDetailLength   = 512
)

// messengerService implements the OutboundMessenger interface.
type messengerService struct {
	client       service.MessagingClient
	ledger       usecase.IdentityLedger
	deliveryLogs repository.DeliveryLogRepository
	metrics      service.Metrics
	maxAttempts  int
	backoffUnit  time.Duration
	deadline     time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
	logger       *slog.Logger
}

// MessengerServiceParams holds dependencies for MessengerService, injected by Fx.
type MessengerServiceParams struct {
	fx.In

	Client       service.MessagingClient
	Ledger       usecase.IdentityLedger
	DeliveryLogs repository.DeliveryLogRepository
	Metrics      service.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMessengerService creates the outbound messenger.
func NewMessengerService(params MessengerServiceParams) usecase.OutboundMessenger {
	return newMessengerService(params)
}

func newMessengerService(params MessengerServiceParams) *messengerService {
	srv := &messengerService{
		client:       params.Client,
		ledger:       params.Ledger,
		deliveryLogs: params.DeliveryLogs,
		metrics:      params.Metrics,
		maxAttempts:  defaultMaxAttempts,
		backoffUnit:  defaultBackoffUnit,
		deadline:     defaultRequestDeadline,
		sleep:        sleepContext,
		logger:       params.Logger,
	}
	if srv.metrics == nil {
		srv.metrics = service.NopMetrics{}
	}
	if params.Config != nil && params.Config.Line != nil {
		if n := params.Config.Line.Messaging.MaxAttempts; n > 0 {
			srv.maxAttempts = n
		}
		if d := params.Config.Line.Messaging.RequestDeadline; d > 0 {
			srv.deadline = d
		}
	}

	return srv
}

func (srv *messengerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Push sends messages to a linked chat user.
func (srv *messengerService) Push(ctx context.Context, externalID string, messages []entity.Message) (*usecase.DeliveryResult, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	accountID, err := srv.ledger.FindAccountByExternalID(ctx, externalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve push recipient")
	}
	if accountID == nil {
		return nil, domainerrors.ErrAccountNotLinked.WithDetails("no account is linked to " + externalID)
	}

	return srv.push(ctx, *accountID, externalID, messages)
}

// PushToAccount sends messages to the chat identity bound to accountID.
func (srv *messengerService) PushToAccount(ctx context.Context, accountID int64, messages []entity.Message) (*usecase.DeliveryResult, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	externalID, err := srv.ledger.FindExternalIDByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve push recipient")
	}
	if externalID == "" {
		return nil, domainerrors.ErrAccountNotLinked.WithDetails(fmt.Sprintf("account %d has no linked chat identity", accountID))
	}

	return srv.push(ctx, accountID, externalID, messages)
}

func (srv *messengerService) push(ctx context.Context, accountID int64, externalID string, messages []entity.Message) (*usecase.DeliveryResult, error) {
	body := map[string]any{"to": externalID, "messages": messages}
	record := &entity.DeliveryLog{AccountID: &accountID, ExternalID: externalID, Kind: entity.DeliveryKindPush}

	return srv.sendRequest(ctx, service.MessagingPushPath, body, record)
}

// Reply answers an inbound event from the user identified by to.
func (srv *messengerService) Reply(ctx context.Context, replyToken string, to usecase.Recipient, messages []entity.Message) (*usecase.DeliveryResult, error) {
	if replyToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reply token is required")
	}
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	body := map[string]any{"replyToken": replyToken, "messages": messages}
	record := &entity.DeliveryLog{AccountID: to.AccountID, ExternalID: to.ExternalID, Kind: entity.DeliveryKindReply}

	return srv.sendRequest(ctx, service.MessagingReplyPath, body, record)
}

// sendRequest posts body with bounded retry. Transport errors, 429 and 5xx
// are retried after attempt*backoffUnit; any other failure is final.
func (srv *messengerService) sendRequest(ctx context.Context, path string, body any, record *entity.DeliveryLog) (*usecase.DeliveryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.deadline)
	defer cancel()

	result := &usecase.DeliveryResult{Status: entity.DeliveryStatusFailed}
	var finalErr error

	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		result.Attempts = attempt

		resp, err := srv.client.Post(ctx, path, body)
		if resp != nil {
			result.StatusCode = resp.StatusCode
			result.RequestID = resp.RequestID
		}

		retryable := false
		switch {
		case errors.Is(err, domainerrors.ErrMissingCredentials):
			finalErr = err
		case err != nil:
			retryable = true
			result.StatusCode = 0
			finalErr = domainerrors.ErrRetryableDeliveryFailure.WithDetails(err.Error()).WithCause(err)
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			result.Status = entity.DeliveryStatusSuccess
			finalErr = nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			retryable = true
			finalErr = domainerrors.ErrRetryableDeliveryFailure.WithDetails(statusDetail(resp))
		default:
			finalErr = domainerrors.ErrTerminalDeliveryFailure.WithDetails(statusDetail(resp))
		}

		if !retryable || attempt == srv.maxAttempts {
			break
		}

		delay := time.Duration(attempt) * srv.backoffUnit
		srv.log(ctx).Warn("Messaging API request failed, retrying",
			slog.String("path", path),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", delay),
			slog.Any("error", finalErr))

		if err := srv.sleep(ctx, delay); err != nil {
			finalErr = domainerrors.ErrRetryableDeliveryFailure.WithDetails("retry aborted: " + err.Error()).WithCause(err)

			break
		}
	}

	srv.record(ctx, record, result, finalErr)

	return result, finalErr
}

// record writes the delivery log even when the caller's context is already done.
func (srv *messengerService) record(ctx context.Context, record *entity.DeliveryLog, result *usecase.DeliveryResult, sendErr error) {
	record.Status = result.Status
	record.StatusCode = result.StatusCode
	record.Attempts = result.Attempts
	if sendErr != nil {
		record.ErrorDetail = truncate(sendErr.Error(), maxErrorDetailLength)
	}

	srv.metrics.Delivery(record.Kind, record.Status, record.Attempts)

	logger := srv.log(ctx).With(
		slog.String("kind", string(record.Kind)),
		slog.String("status", string(record.Status)),
		slog.Int("statusCode", record.StatusCode),
		slog.Int("attempts", record.Attempts),
		slog.String("requestID", result.RequestID))
	if sendErr != nil {
		logger.Error("Message delivery failed", slog.Any("error", sendErr))
	} else {
		logger.Info("Message delivered")
	}

	if err := srv.deliveryLogs.Append(context.WithoutCancel(ctx), record); err != nil {
		logger.Warn("Failed to append delivery log", slog.Any("error", err))
	}
}

func validateMessages(messages []entity.Message) error {
	if len(messages) == 0 || len(messages) > entity.MaxMessagesPerRequest {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("between 1 and %d messages are required, got %d", entity.MaxMessagesPerRequest, len(messages)))
	}
	for i, msg := range messages {
		if t, _ := msg["type"].(string); t == "" {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("message %d has no type", i))
		}
	}

	return nil
}

func statusDetail(resp *service.MessagingResponse) string {
	if resp.Body == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	return fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(resp.Body, maxErrorDetailLength))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return strings.ToValidUTF8(s[:n], "")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
