// Package domain contains application services orchestrating domain logic by roster.
package domain

import (
	"context"
	"fmt"

	"duty-rotation-service/internal/entities"
)

// Join registers the member, or opts an existing one back into the
// availability pool. Returns true when a new member was created.
func (u *Usecase) Join(ctx context.Context, m entities.Member) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.ID == 0 {
		return false, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	created, err := u.repo.UpsertMember(ctx, m)
	if err != nil {
		return false, err
	}
	u.log.Infow("join", "member_id", m.ID, "created", created)
	return created, nil
}

// Leave removes the member from roster, pool and current duty. Leaving
// while unknown is a no-op; self-removal needs no admin rights.
func (u *Usecase) Leave(ctx context.Context, memberID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID == 0 {
		return fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveMember(ctx, memberID)
}

// Rename updates the target's display name everywhere except history.
func (u *Usecase) Rename(ctx context.Context, actorID, targetID int64, firstName string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if firstName == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	m, err := u.repo.RenameMember(ctx, targetID, firstName)
	if err != nil {
		return nil, err
	}
	u.log.Infow("member renamed", "member_id", targetID, "actor_id", actorID)
	return m, nil
}

// RemoveMember is the admin-targeted removal of an arbitrary member.
func (u *Usecase) RemoveMember(ctx context.Context, actorID, targetID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := u.repo.GetMember(ctx, targetID); err != nil {
		return err
	}
	if err := u.repo.RemoveMember(ctx, targetID); err != nil {
		return err
	}
	u.log.Infow("member removed", "member_id", targetID, "actor_id", actorID)
	return nil
}

// Member returns a roster member by identifier.
func (u *Usecase) Member(ctx context.Context, memberID int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.GetMember(ctx, memberID)
}

// Members lists the roster for an admin.
func (u *Usecase) Members(ctx context.Context, actorID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return u.repo.ListMembers(ctx)
}
