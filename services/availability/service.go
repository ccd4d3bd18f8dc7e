package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	slotRepo "mindhaven/database/repository/slot"
	"mindhaven/models"
	"mindhaven/utils"
)

const (
	minutesPerDay = 24 * 60

	// Open-slot listings are hot and tolerate brief staleness; writes
	// invalidate eagerly on top of the TTL.
	openSlotsCacheTTL = 30 * time.Second
)

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo slotRepo.SlotRepository
	// Cache, when set, holds open-slot listings per professional.
	Cache *redis.Client
}

func openSlotsKey(professional models.UserRef) string {
	return "openSlots:" + professional.String()
}

func (s *DefaultAvailabilityService) invalidateOpenSlots(ctx context.Context, professional models.UserRef) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, openSlotsKey(professional)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate open-slot cache",
			zap.String("professional", professional.String()), zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) PublishSlots(ctx context.Context, professional models.UserRef, inputs []models.SlotInput) (int, error) {
	if !professional.Valid() {
		return 0, fmt.Errorf("%w: professional reference is required", ErrInvalidSlot)
	}
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: no slots supplied", ErrInvalidSlot)
	}

	slots := make([]models.AvailabilitySlot, 0, len(inputs))
	for _, in := range inputs {
		if err := validateSlotInput(in); err != nil {
			return 0, err
		}
		slots = append(slots, models.AvailabilitySlot{
			ProfessionalRef: professional,
			Date:            in.Date,
			Start:           in.Start,
			End:             in.End,
		})
	}

	created, err := s.Repo.CreateMany(ctx, slots)
	if err != nil {
		return 0, err
	}
	if created > 0 {
		s.invalidateOpenSlots(ctx, professional)
	}
	if created < len(slots) {
		utils.GetLogger().Debug("duplicate slots dropped on publish",
			zap.String("professional", professional.String()),
			zap.Int("requested", len(slots)),
			zap.Int("created", created))
	}
	return created, nil
}

func validateSlotInput(in models.SlotInput) error {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidSlot, in.Date)
	}
	if in.Start < 0 || in.End > minutesPerDay || in.Start >= in.End {
		return fmt.Errorf("%w: bad window %d-%d", ErrInvalidSlot, in.Start, in.End)
	}
	return nil
}

func (s *DefaultAvailabilityService) ListOpenSlots(ctx context.Context, professional models.UserRef) ([]models.AvailabilitySlot, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, openSlotsKey(professional)).Result(); err == nil {
			var slots []models.AvailabilitySlot
			if json.Unmarshal([]byte(cached), &slots) == nil {
				return slots, nil
			}
		}
	}

	slots, err := s.Repo.ListOpenByProfessional(ctx, professional)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, openSlotsKey(professional), payload, openSlotsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache open slots",
					zap.String("professional", professional.String()), zap.Error(err))
			}
		}
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) BookSlot(ctx context.Context, slotID string, attendee models.UserRef) (*models.AvailabilitySlot, error) {
	if !attendee.Valid() {
		return nil, fmt.Errorf("%w: attendee reference is required", ErrInvalidSlot)
	}

	booked, err := s.Repo.Book(ctx, slotID, attendee, time.Now())
	if err != nil {
		return nil, err
	}
	if !booked {
		// The conditional update matched nothing: either the slot does not
		// exist or someone else flipped isBooked first.
		if _, err := s.Repo.GetByID(ctx, slotID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrSlotNotFound
			}
			return nil, err
		}
		return nil, ErrSlotAlreadyBooked
	}

	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	s.invalidateOpenSlots(ctx, slot.ProfessionalRef)
	utils.GetLogger().Info("slot booked",
		zap.String("slotID", slotID),
		zap.String("attendee", attendee.String()))
	return slot, nil
}
