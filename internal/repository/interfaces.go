// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"duty-rotation-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes roster mutations and reads.
type RosterInterface interface {
	// UpsertMember registers a new member or re-adds an existing one to
	// the availability pool. Returns true when a new member was created.
	UpsertMember(ctx context.Context, m entities.Member) (bool, error)
	// RemoveMember deletes the identifier from roster, availability pool
	// and current duty. Removing an unknown identifier is a no-op.
	RemoveMember(ctx context.Context, id int64) error
	// RenameMember updates the display name everywhere except history.
	RenameMember(ctx context.Context, id int64, firstName string) (*entities.Member, error)
	GetMember(ctx context.Context, id int64) (*entities.Member, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
}

// RotationInterface exposes duty assignment operations.
type RotationInterface interface {
	// DrawDuty refills the pool from the roster when empty, samples up to
	// count members without replacement, consumes them from the pool,
	// replaces current duty, advances the schedule and appends history.
	DrawDuty(ctx context.Context, count int) ([]entities.Member, error)
	// SetDuty replaces current duty with the resolved members and appends
	// history. The availability pool is left untouched.
	SetDuty(ctx context.Context, memberIDs []int64) ([]entities.Member, error)
	CurrentDuty(ctx context.Context) (entities.DutyStatus, error)
	History(ctx context.Context, limit int) ([]entities.HistoryEntry, error)
}

// SettingsInterface exposes the admin configuration document.
type SettingsInterface interface {
	Settings(ctx context.Context) (entities.AdminSettings, error)
	SetDutyDuration(ctx context.Context, days int) error
}
