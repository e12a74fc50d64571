package usecase

import (
	"context"

	"duty-rotation-service/internal/entities"
)

// RosterUsecaseInterface abstracts roster operations for delivery layer.
type RosterUsecaseInterface interface {
	Join(ctx context.Context, m entities.Member) (bool, error)
	Leave(ctx context.Context, memberID int64) error
	Rename(ctx context.Context, actorID, targetID int64, firstName string) (*entities.Member, error)
	RemoveMember(ctx context.Context, actorID, targetID int64) error
	Member(ctx context.Context, memberID int64) (*entities.Member, error)
	Members(ctx context.Context, actorID int64) ([]entities.Member, error)
}

// RotationUsecaseInterface abstracts duty assignment operations.
type RotationUsecaseInterface interface {
	DrawNext(ctx context.Context, actorID int64) ([]entities.Member, error)
	SetDutyManually(ctx context.Context, actorID int64, memberIDs []int64) ([]entities.Member, error)
	CurrentDuty(ctx context.Context) (entities.DutyStatus, error)
	History(ctx context.Context, limit int) ([]entities.HistoryEntry, error)

	StartManualPick(ctx context.Context, actorID int64) error
	PickManual(ctx context.Context, actorID, memberID int64) error
	FinishManualPick(ctx context.Context, actorID int64) ([]entities.Member, error)
	CancelManualPick(ctx context.Context, actorID int64) error
}

// ReminderUsecaseInterface abstracts reminder intent production.
type ReminderUsecaseInterface interface {
	DueReminders(ctx context.Context) ([]entities.Reminder, error)
}

// AdminUsecaseInterface abstracts admin configuration operations.
type AdminUsecaseInterface interface {
	IsAdmin(ctx context.Context, memberID int64) (bool, error)
	SetDutyDuration(ctx context.Context, actorID int64, days int) error
}
