package domain

import (
	"context"
	"fmt"
	"time"

	"duty-rotation-service/internal/entities"
	"duty-rotation-service/internal/repository"
	"duty-rotation-service/internal/session"

	"go.uber.org/zap"
)

// dutyTeamSize is how many members an automatic draw selects: a lead
// and a support, fewer when the pool is smaller.
const dutyTeamSize = 2

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx          context.Context
	log          *zap.SugaredLogger
	repo         repository.Repository
	sessions     *session.Manager
	timeout      time.Duration
	reminderText string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	sessions *session.Manager,
	timeout time.Duration,
	reminderText string,
) *Usecase {
	return &Usecase{
		ctx:          ctx,
		log:          log,
		repo:         repo,
		sessions:     sessions,
		timeout:      timeout,
		reminderText: reminderText,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// requireAdmin gates admin-only operations on the allow-list.
func (u *Usecase) requireAdmin(ctx context.Context, actorID int64) error {
	settings, err := u.repo.Settings(ctx)
	if err != nil {
		return err
	}
	if !settings.IsAdmin(actorID) {
		return fmt.Errorf("%w: user %d", entities.ErrPermissionDenied, actorID)
	}
	return nil
}
