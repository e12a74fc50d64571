// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"duty-rotation-service/config"
	"duty-rotation-service/internal/repository/jsonfile"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	RosterInterface
	RotationInterface
	SettingsInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "jsonfile":
		return jsonfile.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
