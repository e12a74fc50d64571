package scheduler

import (
	"context"
	"errors"
	"testing"

	"duty-rotation-service/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource struct {
	reminders []entities.Reminder
	err       error
}

func (s *staticSource) DueReminders(_ context.Context) ([]entities.Reminder, error) {
	return s.reminders, s.err
}

type recordingNotifier struct {
	failFor   map[int64]bool
	delivered []int64
}

func (n *recordingNotifier) Notify(_ context.Context, memberID int64, _ string) error {
	if n.failFor[memberID] {
		return errors.New("gateway unavailable")
	}
	n.delivered = append(n.delivered, memberID)
	return nil
}

func TestTickDeliversToEachMember(t *testing.T) {
	source := &staticSource{reminders: []entities.Reminder{
		{MemberID: 1, Message: "duty"},
		{MemberID: 2, Message: "duty"},
	}}
	notifier := &recordingNotifier{}
	s := New(zap.NewNop().Sugar(), "@daily", source, notifier)

	s.tick()
	require.Equal(t, []int64{1, 2}, notifier.delivered)
}

func TestTickContinuesPastFailedDelivery(t *testing.T) {
	source := &staticSource{reminders: []entities.Reminder{
		{MemberID: 1, Message: "duty"},
		{MemberID: 2, Message: "duty"},
		{MemberID: 3, Message: "duty"},
	}}
	notifier := &recordingNotifier{failFor: map[int64]bool{2: true}}
	s := New(zap.NewNop().Sugar(), "@daily", source, notifier)

	s.tick()
	require.Equal(t, []int64{1, 3}, notifier.delivered)
}

func TestTickSourceFailure(t *testing.T) {
	source := &staticSource{err: errors.New("storage down")}
	notifier := &recordingNotifier{}
	s := New(zap.NewNop().Sugar(), "@daily", source, notifier)

	s.tick()
	require.Empty(t, notifier.delivered)
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := New(zap.NewNop().Sugar(), "not a cron spec", &staticSource{}, &recordingNotifier{})
	require.Error(t, s.Start())
}
