package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dsikarwar-ops/expense-tracker/internal/config"
	"github.com/dsikarwar-ops/expense-tracker/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to expense lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventExpenseCreated, n.handleExpenseCreated)
	n.dispatcher.Subscribe(events.EventExpenseStatusChanged, n.handleExpenseStatusChanged)
	n.dispatcher.Subscribe(events.EventExpenseDeleted, n.handleExpenseDeleted)
}

func (n *NotificationService) handleExpenseCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ExpenseCreated", zap.String("expense_id", event.ExpenseID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleExpenseStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ExpenseStatusChanged", zap.String("expense_id", event.ExpenseID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleExpenseDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ExpenseDeleted", zap.String("expense_id", event.ExpenseID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("expense_id", event.ExpenseID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("expense_id", event.ExpenseID),
		zap.String("event_type", string(event.Type)))
}
