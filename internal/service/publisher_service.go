package service

import (
	"context"
	"encoding/json"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, activity *dto.ActivityMessage) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (s *publisherService) Publish(ctx context.Context, activity *dto.ActivityMessage) error {
	payload, err := json.Marshal(activity)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.publisher.Publish(s.topicName, msg)
}

// activityRecorder publishes after commit. The mutation already happened, so
// a failed publish is logged and never returned to the caller.
type activityRecorder struct {
	publisher IPublisherService
	logger    logger.ILogger
}

func (r activityRecorder) record(ctx context.Context, activity dto.ActivityMessage) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, &activity); err != nil {
		r.logger.Warn("activity", "Failed to publish activity", map[string]interface{}{
			"type":  activity.Type,
			"error": err.Error(),
		})
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
