package catalog

import (
	"campus-connect/internal/engagement"
	"campus-connect/internal/model"
	"campus-connect/test"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMeetingText(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) // 周四

	require.Equal(t, "Today, 4:00 PM", MeetingText(now.Add(7*time.Hour), "4:00 PM", now))
	require.Equal(t, "Tomorrow, 5:00 PM", MeetingText(now.Add(24*time.Hour), "5:00 PM", now))
	require.Equal(t, "Monday, 6:00 PM", MeetingText(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC), "6:00 PM", now))
}

func TestCalendarColor(t *testing.T) {
	require.Equal(t, "secondary", CalendarColor([]string{"career", "workshop"}))
	require.Equal(t, "accent", CalendarColor([]string{"cultural", "career"}))
	require.Equal(t, "destructive", CalendarColor([]string{"career"}))
	require.Equal(t, "primary", CalendarColor([]string{"sports"}))
	require.Equal(t, "primary", CalendarColor(nil))
}

func TestUserViews(t *testing.T) {
	db := test.NewDB(t)
	svc := New(db)
	reg := engagement.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	user := test.CreateUser(t, db, "alice", model.RoleStudent)
	later := test.CreateEvent(t, db, "Culture Fest", now.Add(72*time.Hour), "cultural")
	sooner := test.CreateEvent(t, db, "CV Clinic", now.Add(24*time.Hour), "workshop")
	test.CreateEvent(t, db, "Not Registered", now.Add(time.Hour))
	for _, e := range []*model.Event{later, sooner} {
		_, _, err := reg.RegisterForEvent(ctx, e.ID, user.ID)
		require.NoError(t, err)
	}

	events, err := svc.UserEvents(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "CV Clinic", events[0].Title)
	require.True(t, events[0].IsRegistered)
	require.False(t, events[0].RegisteredAt.IsZero())

	calendar, err := svc.Calendar(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []CalendarEvent{
		{ID: sooner.ID, Title: "CV Clinic", Date: events[0].Date, Time: "10:00 AM", Color: "secondary"},
		{ID: later.ID, Title: "Culture Fest", Date: events[1].Date, Time: "10:00 AM", Color: "accent"},
	}, calendar)

	club := test.CreateClub(t, db, "Chess Club", "chess")
	test.CreateMeeting(t, db, club.ID, now.Add(time.Hour), "8:00 PM")
	_, _, err = reg.JoinClub(ctx, club.ID, user.ID)
	require.NoError(t, err)

	clubs, err := svc.UserClubs(ctx, user.ID, now)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	require.Equal(t, "Chess Club", clubs[0].Name)
	require.EqualValues(t, 1, clubs[0].MemberCount)
	require.True(t, clubs[0].IsMember)
	require.Equal(t, MeetingText(now.Add(time.Hour), "8:00 PM", now), clubs[0].NextMeeting)
	require.False(t, clubs[0].JoinedAt.IsZero())
}
