package usecase

import (
	"context"
	"time"

	"duty-rotation-service/internal/repository"
	"duty-rotation-service/internal/session"
	"duty-rotation-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RosterUsecaseInterface
	RotationUsecaseInterface
	ReminderUsecaseInterface
	AdminUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, sessions *session.Manager, timeout time.Duration, reminderText string) InterfaceUsecase {
	return domain.New(log, ctx, repo, sessions, timeout, reminderText)
}
