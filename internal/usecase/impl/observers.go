package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/repository"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentEventsLimit = 20

// Chat commands understood by the command observer.
const (
	commandStatus = "/status"
	commandStats  = "/stats"
)

// ObserverParams holds what the built-in observers need, injected by Fx.
type ObserverParams struct {
	fx.In

	Dispatcher usecase.WebhookDispatcher
	Messenger  usecase.OutboundMessenger
	Events     repository.WebhookEventRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// RegisterObservers subscribes the built-in observers to the dispatcher.
func RegisterObservers(params ObserverParams) {
	welcome := ""
	if params.Config != nil && params.Config.Line != nil {
		welcome = params.Config.Line.Messaging.WelcomeMessage
	}

	if welcome != "" {
		params.Dispatcher.Subscribe(usecase.TopicForEvent(entity.EventTypeFollow), &followGreeter{
			messenger: params.Messenger,
			welcome:   welcome,
		})
	}

	params.Dispatcher.Subscribe(usecase.TopicForMessage(entity.MessageTypeText), &commandObserver{
		permissions: params.Dispatcher,
		messenger:   params.Messenger,
		events:      params.Events,
		logger:      params.Logger,
	})
}

// followGreeter replies to new followers with the configured welcome text.
type followGreeter struct {
	messenger usecase.OutboundMessenger
	welcome   string
}

func (g *followGreeter) Name() string { return "follow-greeter" }

func (g *followGreeter) Handle(ctx context.Context, n *usecase.Notification) error {
	if n.Event.ReplyToken == "" {
		return nil
	}

	_, err := g.messenger.Reply(ctx, n.Event.ReplyToken, recipientOf(n), []entity.Message{entity.NewTextMessage(g.welcome)})

	return errors.Wrap(err, "failed to greet follower")
}

func recipientOf(n *usecase.Notification) usecase.Recipient {
	return usecase.Recipient{ExternalID: n.ExternalID, AccountID: n.AccountID}
}

// permissionChecker is the part of the dispatcher the command observer needs.
type permissionChecker interface {
	HasPermission(ctx context.Context, accountID *int64, capability string) (bool, error)
}

// commandObserver answers slash commands sent as text messages.
type commandObserver struct {
	permissions permissionChecker
	messenger   usecase.OutboundMessenger
	events      repository.WebhookEventRepository
	logger      *slog.Logger
}

func (o *commandObserver) Name() string { return "chat-commands" }

func (o *commandObserver) Handle(ctx context.Context, n *usecase.Notification) error {
	if n.Event.Message == nil || n.Event.ReplyToken == "" {
		return nil
	}

	command := strings.ToLower(strings.TrimSpace(n.Event.Message.Text))

	var reply string
	switch command {
	case commandStatus:
		reply = o.status(n)
	case commandStats:
		text, err := o.stats(ctx, n)
		if err != nil {
			return err
		}
		reply = text
	default:
		return nil
	}

	o.logger.Debug("Answering chat command", slog.String("command", command), slog.String("externalID", n.ExternalID))
	_, err := o.messenger.Reply(ctx, n.Event.ReplyToken, recipientOf(n), []entity.Message{entity.NewTextMessage(reply)})

	return errors.Wrapf(err, "failed to answer %s", command)
}

func (o *commandObserver) status(n *usecase.Notification) string {
	if n.AccountID == nil {
		return "This LINE account is not linked to a site account yet."
	}

	return fmt.Sprintf("This LINE account is linked to site account #%d.", *n.AccountID)
}

func (o *commandObserver) stats(ctx context.Context, n *usecase.Notification) (string, error) {
	allowed, err := o.permissions.HasPermission(ctx, n.AccountID, constants.CapabilityViewReports)
	if err != nil {
		return "", errors.Wrap(err, "failed to check permission")
	}
	if !allowed {
		return "You do not have permission to view reports.", nil
	}

	records, err := o.events.ListByExternalID(ctx, n.ExternalID, recentEventsLimit)
	if err != nil {
		return "", errors.Wrap(err, "failed to load recent events")
	}

	counts := map[string]int{}
	for _, record := range records {
		counts[record.EventType]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your last %d events:", len(records))
	for _, eventType := range []string{entity.EventTypeMessage, entity.EventTypeFollow, entity.EventTypePostback} {
		fmt.Fprintf(&b, "\n%s: %d", eventType, counts[eventType])
	}

	return b.String(), nil
}
