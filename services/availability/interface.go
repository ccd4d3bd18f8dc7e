package availability

import (
	"context"
	"errors"

	"mindhaven/models"
)

var (
	// ErrSlotNotFound means the slot id did not resolve.
	ErrSlotNotFound = errors.New("availability slot not found")
	// ErrSlotAlreadyBooked means another attendee won the booking race.
	ErrSlotAlreadyBooked = errors.New("availability slot already booked")
	// ErrInvalidSlot means a malformed window was rejected.
	ErrInvalidSlot = errors.New("invalid availability slot")
)

// AvailabilityService manages a professional's bookable time windows.
type AvailabilityService interface {
	// PublishSlots bulk-inserts windows. Duplicates of an existing
	// (date, start) for the professional are dropped without per-item
	// reporting; the return value is the created count only.
	PublishSlots(ctx context.Context, professional models.UserRef, slots []models.SlotInput) (int, error)
	// ListOpenSlots returns unbooked windows ordered by (date, start) ascending.
	ListOpenSlots(ctx context.Context, professional models.UserRef) ([]models.AvailabilitySlot, error)
	// BookSlot marks the slot booked by the attendee. Exactly one concurrent
	// caller succeeds; losers get ErrSlotAlreadyBooked.
	BookSlot(ctx context.Context, slotID string, attendee models.UserRef) (*models.AvailabilitySlot, error)
}
