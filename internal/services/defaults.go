package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
)

// MinGradientDistance is the minimum integer distance between the two gradient colors.
const MinGradientDistance = 10000

//go:generate mockgen -source=defaults.go -destination=defaults_mock_test.go -package=services

// DefaultsWriter persists backfilled profile defaults.
type DefaultsWriter interface {
	UpdateDefaults(ctx context.Context, userID uuid.UUID, gradient models.StringList, xpNeeded int) error
}

// Backfiller fills in missing gradients and stale xp_needed values before serialization.
type Backfiller interface {
	EnsureUser(ctx context.Context, user *models.UserDB) error
	EnsureFriends(ctx context.Context, friends []models.FriendDB) error
}

// GenerateGradient returns two random 6-digit hex colors at least MinGradientDistance apart.
func GenerateGradient() models.StringList {
	first := rand.Intn(0x1000000)
	second := rand.Intn(0x1000000)
	for abs(first-second) < MinGradientDistance {
		second = rand.Intn(0x1000000)
	}
	return models.StringList{fmt.Sprintf("%06x", first), fmt.Sprintf("%06x", second)}
}

// ComputeXPNeeded returns the xp left until the next level; level 0 counts as 1.
func ComputeXPNeeded(level, xp int) int {
	return max(max(level, 1)*100-xp, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Defaults is the Backfiller backed by a DefaultsWriter.
type Defaults struct {
	writer DefaultsWriter
}

// NewDefaults creates a new Defaults instance.
func NewDefaults(writer DefaultsWriter) *Defaults {
	return &Defaults{writer: writer}
}

// EnsureUser backfills user in place and persists the change when anything was missing.
func (d *Defaults) EnsureUser(ctx context.Context, user *models.UserDB) error {
	return d.ensure(ctx, user.UserID, &user.ProfileGradient, user.Level, user.XP, &user.XPNeeded)
}

// EnsureFriends backfills every friend row in place.
func (d *Defaults) EnsureFriends(ctx context.Context, friends []models.FriendDB) error {
	for i := range friends {
		f := &friends[i]
		if err := d.ensure(ctx, f.FriendID, &f.ProfileGradient, f.Level, f.XP, &f.XPNeeded); err != nil {
			return err
		}
	}
	return nil
}

func (d *Defaults) ensure(ctx context.Context, userID uuid.UUID, gradient *models.StringList, level, xp int, xpNeeded *int) error {
	changed := false
	if len(*gradient) == 0 {
		*gradient = GenerateGradient()
		changed = true
	}
	if expected := ComputeXPNeeded(level, xp); *xpNeeded != expected {
		*xpNeeded = expected
		changed = true
	}
	if !changed {
		return nil
	}

	if err := d.writer.UpdateDefaults(ctx, userID, *gradient, *xpNeeded); err != nil {
		logger.Log.Errorw("failed to persist profile defaults", "userID", userID, "error", err)
		return err
	}
	return nil
}
