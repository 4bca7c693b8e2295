package engagement

import (
	"campus-connect/internal/model"
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// JoinClub 幂等入社，首次加入奖励 15 积分并写入 club_joined 动态
func (s *Service) JoinClub(ctx context.Context, clubID, userID uint) (*model.ClubMembership, bool, error) {
	ctx, span := s.tracer.Start(ctx, "engagement.JoinClub", trace.WithAttributes(
		attribute.Int64("club.id", int64(clubID)),
		attribute.Int64("user.id", int64(userID)),
	))
	defer span.End()

	membership := &model.ClubMembership{ClubID: clubID, UserID: userID}
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club model.Club
		if err := tx.Select("id", "name").First(&club, clubID).Error; err != nil {
			return err
		}

		membership.JoinedAt = s.now()
		var err error
		created, err = insertOnce(tx, membership, "club_id = ? AND user_id = ?", clubID, userID)
		if err != nil || !created {
			return err
		}

		points := ClubMembershipPoints
		if err := AwardPoints(tx, userID, points, model.PointTypeClubMembership, clubID, "Joined a club"); err != nil {
			return err
		}
		return RecordActivity(tx, userID, model.ActivityClubJoined, clubID, club.Name, &points)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	span.SetAttributes(attribute.Bool("created", created))
	return membership, created, nil
}
