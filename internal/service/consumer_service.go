package service

import (
	"context"
	"encoding/json"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventForwarder sends activity outside the process, e.g. to NATS JetStream.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	activityLogger logger.ILogger
	forwarder      EventForwarder
	logger         logger.ILogger
}

// NewConsumerService builds the activity consumer. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	activityLogger logger.ILogger,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		activityLogger: activityLogger,
		forwarder:      forwarder,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. Activity is best-effort and a retry would only
// duplicate log lines.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var activity dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &activity); err != nil {
		cs.logger.Error("activity", "Failed to unmarshal activity message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	data := activityData(&activity)
	cs.activityLogger.Info("activity", activity.Type, data)

	if cs.forwarder == nil {
		return
	}
	if err := cs.forwarder.Publish(ctx, events.New(activity.Type, data, activity.OccurredAt)); err != nil {
		cs.logger.Warn("activity", "Failed to forward activity", map[string]interface{}{
			"type":  activity.Type,
			"error": err.Error(),
		})
	}
}

func activityData(activity *dto.ActivityMessage) map[string]interface{} {
	data := map[string]interface{}{
		"user_id":     activity.UserId.String(),
		"occurred_at": activity.OccurredAt,
	}
	if activity.NotebookId != nil {
		data["notebook_id"] = activity.NotebookId.String()
	}
	if activity.PageId != nil {
		data["page_id"] = activity.PageId.String()
	}
	return data
}
