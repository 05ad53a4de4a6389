package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
	"github.com/sbilibin2017/hackhub/internal/repositories"
	"github.com/sbilibin2017/hackhub/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const msgEmailTaken = "Email already registered."

// AccountService reads and edits the authenticated user's own account.
type AccountService struct {
	reader  UserReader
	writer  UserWriter
	lookups LookupChecker
	events  Publisher
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader UserReader, writer UserWriter, lookups LookupChecker, events Publisher) *AccountService {
	return &AccountService{
		reader:  reader,
		writer:  writer,
		lookups: lookups,
		events:  events,
	}
}

// Get returns the owner's account representation.
func (s *AccountService) Get(ctx context.Context, userID uuid.UUID) (*payloads.Account, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrViewerNotFound
	}
	return s.account(ctx, user)
}

// Update applies a partial update. Every field error is collected and returned as
// validation.Errors before anything is written.
func (s *AccountService) Update(ctx context.Context, userID uuid.UUID, raw map[string]json.RawMessage) (*payloads.Account, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrViewerNotFound
	}

	update, errs := validation.ParseProfile(raw)
	if err := validation.CheckReferences(ctx, s.lookups, update, errs); err != nil {
		logger.Log.Errorw("failed to check references", "userID", userID, "error", err)
		return nil, err
	}
	if update.Email.Set && !errs.Has("email") {
		other, err := s.reader.GetByEmail(ctx, update.Email.Value)
		if err != nil {
			logger.Log.Errorw("failed to check email", "userID", userID, "error", err)
			return nil, err
		}
		if other != nil && other.UserID != userID {
			errs.Add("email", msgEmailTaken)
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := apply(update, user); err != nil {
		logger.Log.Errorw("failed to apply update", "userID", userID, "error", err)
		return nil, err
	}

	if err := s.writer.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, validation.Errors{"email": msgEmailTaken}
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
		return nil, err
	}
	if update.Skills.Set {
		if err := s.writer.SetSkills(ctx, userID, update.Skills.Value); err != nil {
			logger.Log.Errorw("failed to set skills", "userID", userID, "error", err)
			return nil, err
		}
	}
	if update.Interests.Set {
		if err := s.writer.SetInterests(ctx, userID, update.Interests.Value); err != nil {
			logger.Log.Errorw("failed to set interests", "userID", userID, "error", err)
			return nil, err
		}
	}

	// Reload for the joined school and major names.
	updated, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to reload user", "userID", userID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrViewerNotFound
	}

	s.events.Publish(ctx, models.EventUserProfileUpdate, userID)
	return s.account(ctx, updated)
}

func (s *AccountService) account(ctx context.Context, user *models.UserDB) (*payloads.Account, error) {
	skills, err := s.reader.GetSkills(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get skills", "userID", user.UserID, "error", err)
		return nil, err
	}
	interests, err := s.reader.GetInterests(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get interests", "userID", user.UserID, "error", err)
		return nil, err
	}
	account := payloads.NewAccount(user, skills, interests)
	return &account, nil
}

// apply copies the set fields of p onto user, hashing a new password and
// recomputing xp_needed when level or xp change.
func apply(p *validation.ProfileUpdate, user *models.UserDB) error {
	if p.Password.Set {
		hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
	}

	assign(&user.Email, p.Email)
	assign(&user.Username, p.Username)
	assign(&user.Visibility, p.Visibility)
	assign(&user.FirstName, p.FirstName)
	assign(&user.LastName, p.LastName)
	assign(&user.XP, p.XP)
	assign(&user.Level, p.Level)
	assign(&user.GradYear, p.GradYear)
	assign(&user.SchoolID, p.School)
	assign(&user.MajorID, p.Major)
	assign(&user.Discord, p.Discord)
	assign(&user.Instagram, p.Instagram)
	assign(&user.Github, p.Github)
	assign(&user.Linkedin, p.Linkedin)
	assign(&user.Personal, p.Personal)
	assign(&user.Bio, p.Bio)
	if p.Blocked.Set {
		user.Blocked = models.StringList(p.Blocked.Value)
	}
	if p.ProfileGradient.Set {
		user.ProfileGradient = models.StringList(p.ProfileGradient.Value)
	}

	if p.XP.Set || p.Level.Set {
		user.XPNeeded = ComputeXPNeeded(user.Level, user.XP)
	}
	return nil
}

func assign[T any](dst *T, f validation.Field[T]) {
	if f.Set {
		*dst = f.Value
	}
}
