// Package domain contains application services orchestrating domain logic by rotation.
package domain

import (
	"context"
	"fmt"

	"duty-rotation-service/internal/entities"
)

// DrawNext runs the automatic draw on behalf of an admin.
func (u *Usecase) DrawNext(ctx context.Context, actorID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	selected, err := u.repo.DrawDuty(ctx, dutyTeamSize)
	if err != nil {
		return nil, err
	}
	u.log.Infow("new duty drawn", "actor_id", actorID, "count", len(selected))
	return selected, nil
}

// SetDutyManually replaces the current duty with an admin-chosen list.
// Unknown identifiers are rejected rather than silently dropped.
func (u *Usecase) SetDutyManually(ctx context.Context, actorID int64, memberIDs []int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if len(memberIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one member id is required", entities.ErrInvalidArgument)
	}
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	assigned, err := u.repo.SetDuty(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	u.log.Infow("duty set manually", "actor_id", actorID, "member_ids", memberIDs)
	return assigned, nil
}

// CurrentDuty returns the active shift with days remaining.
func (u *Usecase) CurrentDuty(ctx context.Context) (entities.DutyStatus, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.CurrentDuty(ctx)
}

// History returns past assignments, newest first.
func (u *Usecase) History(ctx context.Context, limit int) ([]entities.HistoryEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.History(ctx, limit)
}

// StartManualPick opens a pick session for the admin, dropping any
// earlier unfinished one.
func (u *Usecase) StartManualPick(ctx context.Context, actorID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	u.sessions.Start(actorID)
	return nil
}

// PickManual adds one member to the admin's open pick session.
func (u *Usecase) PickManual(ctx context.Context, actorID, memberID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := u.repo.GetMember(ctx, memberID); err != nil {
		return err
	}
	return u.sessions.Append(actorID, memberID)
}

// FinishManualPick applies the accumulated picks as the current duty
// and closes the session.
func (u *Usecase) FinishManualPick(ctx context.Context, actorID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	picks, err := u.sessions.Complete(actorID)
	if err != nil {
		return nil, err
	}
	return u.SetDutyManually(ctx, actorID, picks)
}

// CancelManualPick discards the admin's open pick session.
func (u *Usecase) CancelManualPick(ctx context.Context, actorID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	u.sessions.Cancel(actorID)
	return nil
}
