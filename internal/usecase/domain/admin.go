// Package domain contains application services orchestrating domain logic by admin config.
package domain

import (
	"context"
	"fmt"

	"duty-rotation-service/internal/entities"
)

// IsAdmin reports whether the identifier is on the admin allow-list.
func (u *Usecase) IsAdmin(ctx context.Context, memberID int64) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	settings, err := u.repo.Settings(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsAdmin(memberID), nil
}

// SetDutyDuration changes the rotation interval for future draws.
func (u *Usecase) SetDutyDuration(ctx context.Context, actorID int64, days int) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if days <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of days", entities.ErrInvalidArgument)
	}
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if err := u.repo.SetDutyDuration(ctx, days); err != nil {
		return err
	}
	u.log.Infow("duty duration changed", "actor_id", actorID, "days", days)
	return nil
}
