package engagement

import (
	"campus-connect/internal/model"
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// RegisterForEvent 幂等报名。首次报名在同一事务内写入报名、10 积分和一条 event_registered 动态；
// 重复报名返回已有记录且 created 为 false，不产生任何副作用。
// 活动不存在时返回 gorm.ErrRecordNotFound
func (s *Service) RegisterForEvent(ctx context.Context, eventID, userID uint) (*model.EventRegistration, bool, error) {
	ctx, span := s.tracer.Start(ctx, "engagement.RegisterForEvent", trace.WithAttributes(
		attribute.Int64("event.id", int64(eventID)),
		attribute.Int64("user.id", int64(userID)),
	))
	defer span.End()

	reg := &model.EventRegistration{EventID: eventID, UserID: userID}
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Select("id", "title").First(&event, eventID).Error; err != nil {
			return err
		}

		reg.RegisteredAt = s.now()
		var err error
		created, err = insertOnce(tx, reg, "event_id = ? AND user_id = ?", eventID, userID)
		if err != nil || !created {
			return err
		}

		points := EventRegistrationPoints
		if err := AwardPoints(tx, userID, points, model.PointTypeEventRegistration, eventID, "Registered for an event"); err != nil {
			return err
		}
		return RecordActivity(tx, userID, model.ActivityEventRegistered, eventID, event.Title, &points)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	span.SetAttributes(attribute.Bool("created", created))
	return reg, created, nil
}
