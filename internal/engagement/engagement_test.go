package engagement

import (
	"campus-connect/internal/model"
	"campus-connect/test"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count[T any](t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(new(T)).Where(query, args...).Count(&n).Error)
	return n
}

func TestRegisterForEventIsIdempotent(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()
	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	event := test.CreateEvent(t, db, "Spring Career Fair", time.Now().Add(7*24*time.Hour), "career")

	first, created, err := svc.RegisterForEvent(ctx, event.ID, user.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.NotZero(t, first.ID)

	second, created, err := svc.RegisterForEvent(ctx, event.ID, user.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	require.EqualValues(t, 1, count[model.EventRegistration](t, db, "user_id = ?", user.ID))
	require.EqualValues(t, 1, count[model.ActivityPoint](t, db, "user_id = ? AND points = ?", user.ID, EventRegistrationPoints))
	require.EqualValues(t, 1, count[model.UserActivity](t, db, "user_id = ?", user.ID))

	var point model.ActivityPoint
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&point).Error)
	require.Equal(t, model.PointTypeEventRegistration, point.ActivityType)
	require.Equal(t, "Registered for an event", point.Description)
	require.Equal(t, event.ID, point.EntityID)
}

func TestJoinClubIsIdempotent(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()
	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	club := test.CreateClub(t, db, "Chess Club", "chess")

	first, created, err := svc.JoinClub(ctx, club.ID, user.ID)
	require.NoError(t, err)
	require.True(t, created)
	second, created, err := svc.JoinClub(ctx, club.ID, user.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	total, err := svc.TotalPoints(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, ClubMembershipPoints, total)
	require.EqualValues(t, 1, count[model.ClubMembership](t, db, "user_id = ?", user.ID))

	activities, err := svc.ListActivities(ctx, user.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, model.ActivityClubJoined, activities[0].ActivityType)
	require.Equal(t, "Chess Club", activities[0].EntityName)
	require.Equal(t, ClubMembershipPoints, *activities[0].Points)
}

func TestConcurrentRegistrationAwardsOnce(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	event := test.CreateEvent(t, db, "Hackathon", time.Now().Add(48*time.Hour))

	const workers = 8
	var wg sync.WaitGroup
	ids := make([]uint, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, _, err := svc.RegisterForEvent(context.Background(), event.ID, user.ID)
			errs[i] = err
			if err == nil {
				ids[i] = reg.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i])
	}
	total, err := svc.TotalPoints(context.Background(), user.ID)
	require.NoError(t, err)
	require.EqualValues(t, EventRegistrationPoints, total)
	require.EqualValues(t, 1, count[model.EventRegistration](t, db, "event_id = ?", event.ID))
}

func TestRegisterForMissingEvent(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	user := test.CreateUser(t, db, "alice", model.RoleStudent)

	_, _, err := svc.RegisterForEvent(context.Background(), 999, user.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, _, err = svc.JoinClub(context.Background(), 999, user.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.EqualValues(t, 0, count[model.ActivityPoint](t, db, "user_id = ?", user.ID))
}

func TestRegistrationRollsBackWhenActivityWriteFails(t *testing.T) {
	db := test.NewDB(t)
	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	event := test.CreateEvent(t, db, "Robotics Demo", time.Now().Add(time.Hour))

	boom := errors.New("activity store unavailable")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_activity", func(tx *gorm.DB) {
		if tx.Statement.Table == "user_activity" {
			_ = tx.AddError(boom)
		}
	}))

	_, _, err := New(db).RegisterForEvent(context.Background(), event.ID, user.ID)
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 0, count[model.EventRegistration](t, db, "user_id = ?", user.ID))
	require.EqualValues(t, 0, count[model.ActivityPoint](t, db, "user_id = ?", user.ID))
}

func TestAwardPointsRejectsNonPositive(t *testing.T) {
	db := test.NewDB(t)
	require.ErrorIs(t, AwardPoints(db, 1, 0, "bonus", 1, "nothing"), ErrInvalidPoints)
	require.ErrorIs(t, AwardPoints(db, 1, -5, "bonus", 1, "deduction"), ErrInvalidPoints)
	require.EqualValues(t, 0, count[model.ActivityPoint](t, db, "user_id = ?", 1))
}

func TestTotalPointsEqualsLedgerSum(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()

	total, err := svc.TotalPoints(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, total)

	for _, p := range []int{10, 15, 3} {
		require.NoError(t, AwardPoints(db, 1, p, "bonus", 1, "manual"))
	}
	require.NoError(t, AwardPoints(db, 2, 100, "bonus", 1, "someone else"))

	total, err = svc.TotalPoints(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 28, total)
}

func TestListActivitiesOrderAndPaging(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&model.UserActivity{
			UserID:       1,
			ActivityType: model.ActivityEventRegistered,
			EntityID:     uint(i + 1),
			EntityName:   "event",
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
	// 相同时间戳按 id 倒序
	require.NoError(t, db.Create(&model.UserActivity{
		UserID: 1, ActivityType: model.ActivityClubJoined, EntityID: 99, EntityName: "tie",
		Timestamp: base.Add(14 * time.Minute),
	}).Error)

	page, err := svc.ListActivities(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, page, DefaultActivityLimit)
	require.EqualValues(t, 99, page[0].EntityID)
	require.EqualValues(t, 15, page[1].EntityID)
	for i := 1; i < len(page); i++ {
		require.False(t, page[i].Timestamp.After(page[i-1].Timestamp))
	}

	rest, err := svc.ListActivities(ctx, 1, 10, 10)
	require.NoError(t, err)
	require.Len(t, rest, 6)
	require.EqualValues(t, 1, rest[len(rest)-1].EntityID)

	capped, err := svc.ListActivities(ctx, 1, 1000, 0)
	require.NoError(t, err)
	require.Len(t, capped, 16)
}

func TestUserStats(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()
	now := time.Now().UTC()
	user := test.CreateUser(t, db, "alice", model.RoleStudent)

	empty, err := svc.UserStats(ctx, user.ID, now)
	require.NoError(t, err)
	require.Equal(t, &UserStats{}, empty)

	past := test.CreateEvent(t, db, "Orientation", now.Add(-48*time.Hour))
	later := test.CreateEvent(t, db, "Alumni Talk", now.Add(14*24*time.Hour))
	soon := test.CreateEvent(t, db, "Spring Career Fair", now.Add(7*24*time.Hour))
	club := test.CreateClub(t, db, "Chess Club", "chess")

	for _, e := range []*model.Event{past, later, soon} {
		_, _, err := svc.RegisterForEvent(ctx, e.ID, user.ID)
		require.NoError(t, err)
	}
	_, _, err = svc.JoinClub(ctx, club.ID, user.ID)
	require.NoError(t, err)

	stats, err := svc.UserStats(ctx, user.ID, now)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.RegisteredEvents)
	require.EqualValues(t, 1, stats.ClubMemberships)
	require.EqualValues(t, 3*EventRegistrationPoints+ClubMembershipPoints, stats.ActivityPoints)
	require.EqualValues(t, 2, stats.UpcomingEvents)
	require.Equal(t, "Spring Career Fair", *stats.NextEventName)
	require.Equal(t, soon.ID, *stats.NextEventID)
	require.WithinDuration(t, soon.Date, *stats.NextEventDate, time.Second)

	// 注入的 now 决定哪些活动仍算即将开始
	stats, err = svc.UserStats(ctx, user.ID, now.Add(10*24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.UpcomingEvents)
	require.Equal(t, "Alumni Talk", *stats.NextEventName)
}

func TestActivityNameIsSnapshot(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	ctx := context.Background()
	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	event := test.CreateEvent(t, db, "Spring Career Fair", time.Now().Add(time.Hour))

	_, _, err := svc.RegisterForEvent(ctx, event.ID, user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(event).Update("title", "Renamed Fair").Error)

	activities, err := svc.ListActivities(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, "Spring Career Fair", activities[0].EntityName)
}
