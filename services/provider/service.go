// File: services/provider/service.go
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	providerRepo "bookline/database/repository/provider"
	"bookline/models"
	"bookline/utils"
)

const (
	providerCachePrefix = "provider:name:"
	providerCacheTTL    = 5 * time.Minute
	authTokenDuration   = 24 * time.Hour
)

func (s *DefaultService) Register(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.ServiceType = strings.TrimSpace(strings.ToLower(p.ServiceType))

	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if !models.IsKnownServiceType(p.ServiceType) {
		return nil, ErrUnknownServiceType
	}
	if _, err := s.Repo.GetByEmail(ctx, p.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, providerRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	p.PasswordHash = string(hash)
	p.Password = ""

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultService) Authenticate(ctx context.Context, email, password string) (string, *models.Provider, error) {
	p, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(p.ID, p.Email, authTokenDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, p.ID, utils.HashToken(token)); err != nil {
		return "", nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	return token, p, nil
}

// GetByName resolves a provider by name fragment, consulting the redis cache
// before the repository.
func (s *DefaultService) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	key := providerCachePrefix + strings.ToLower(strings.TrimSpace(name))

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var p models.Provider
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		} else if err != redis.Nil {
			zap.L().Warn("provider cache read failed", zap.Error(err))
		}
	}

	p, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := s.Cache.Set(ctx, key, data, providerCacheTTL).Err(); err != nil {
				zap.L().Warn("provider cache write failed", zap.Error(err))
			}
		}
	}
	return p, nil
}

func (s *DefaultService) SetupSlots(ctx context.Context, providerID string, schedule DaySchedule) ([]models.Slot, error) {
	if _, err := time.Parse("2006-01-02", schedule.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", schedule.Date)
	}
	if len(schedule.Slots) == 0 {
		return nil, errors.New("at least one slot is required")
	}

	slots := make([]models.Slot, 0, len(schedule.Slots))
	for _, spec := range schedule.Slots {
		if _, err := time.Parse("15:04", spec.Time); err != nil {
			return nil, fmt.Errorf("invalid slot time %q: expected HH:MM", spec.Time)
		}
		if spec.Capacity < 0 {
			return nil, fmt.Errorf("slot %s: capacity must be non-negative", spec.Time)
		}
		slots = append(slots, models.Slot{
			ProviderID: providerID,
			Date:       schedule.Date,
			Time:       spec.Time,
			Capacity:   spec.Capacity,
			Booked:     0,
		})
	}

	ids, err := s.Slots.CreateMany(ctx, slots)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		slots[i].ID = ids[i]
	}
	return slots, nil
}

func (s *DefaultService) AvailableSlots(ctx context.Context, providerName, date string) (*models.Provider, []models.SlotView, error) {
	p, err := s.GetByName(ctx, providerName)
	if err != nil {
		return nil, nil, err
	}
	slots, err := s.Slots.GetByProviderAndDate(ctx, p.ID, date)
	if err != nil {
		return nil, nil, err
	}

	views := make([]models.SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, models.SlotView{
			Time:           slot.Time,
			AvailableSpots: slot.Available(),
			TotalCapacity:  slot.Capacity,
		})
	}
	return p, views, nil
}
