// Package domain contains application services orchestrating domain logic by reminders.
package domain

import (
	"context"

	"duty-rotation-service/internal/entities"
)

// DueReminders produces one notification intent per on-duty member.
// It only reads state; delivery is the gateway's concern.
func (u *Usecase) DueReminders(ctx context.Context) ([]entities.Reminder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	status, err := u.repo.CurrentDuty(ctx)
	if err != nil {
		return nil, err
	}
	reminders := make([]entities.Reminder, 0, len(status.Members))
	for _, m := range status.Members {
		reminders = append(reminders, entities.Reminder{
			MemberID: m.ID,
			Message:  u.reminderText,
		})
	}
	return reminders, nil
}
