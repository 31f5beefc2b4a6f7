package customs_response

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	customsservice "github.com/shauritanga/rtexpress-sub000/internal/service/customs"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Handler struct {
	customsService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, customsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		customsService:           customsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("customs.response: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("customs.response: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event decisionEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("customs.response handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("declaration", event.DeclarationID),
		logger.NewField("decision", event.Decision),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("customs.response processing")

	var declaration *entities.CustomsDeclaration

	switch event.Decision {
	case decisionApproved:
		declaration, err = h.customsService.Approve(ctx, event.DeclarationID, event.ApprovedBy, event.CustomsReference)
	case decisionRejected:
		declaration, err = h.customsService.Reject(ctx, event.DeclarationID, event.Reason)
	default:
		msgLog.Warn("customs.response handler unknown decision for declaration")
		sess.MarkMessage(message, "")
		return false
	}

	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("customs.response handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, customsservice.ErrDeclarationNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("customs.response handler declaration not found")

		case errors.Is(err, customsservice.ErrInvalidStateTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("customs.response handler illegal transition for declaration")

		case errors.Is(err, customsservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("customs.response handler missing fields in decision")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("customs.response handler failed to process declaration")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("declaration", declaration.ID),
		logger.NewField("decision", event.Decision),
		logger.NewField("current_status", declaration.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("customs.response: processed")

	sess.MarkMessage(message, "")
	return false
}
