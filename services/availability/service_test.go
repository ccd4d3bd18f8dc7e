package availability

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"mindhaven/models"
)

// memSlotRepo mimics the Mongo repository: Book is an atomic check-and-set
// and CreateMany drops natural-key duplicates silently.
type memSlotRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.AvailabilitySlot
	byKey map[string]string // professional|date|start -> id
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{
		byID:  map[string]*models.AvailabilitySlot{},
		byKey: map[string]string{},
	}
}

func slotKey(s models.AvailabilitySlot) string {
	return s.ProfessionalRef.String() + "|" + s.Date + "|" + strconv.Itoa(s.Start)
}

func (r *memSlotRepo) CreateMany(_ context.Context, slots []models.AvailabilitySlot) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := 0
	for _, slot := range slots {
		key := slotKey(slot)
		if _, dup := r.byKey[key]; dup {
			continue
		}
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		cp := slot
		r.byID[slot.ID] = &cp
		r.byKey[key] = slot.ID
		created++
	}
	return created, nil
}

func (r *memSlotRepo) GetByID(_ context.Context, id string) (*models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *slot
	return &cp, nil
}

func (r *memSlotRepo) ListOpenByProfessional(_ context.Context, professional models.UserRef) ([]models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, slot := range r.byID {
		if slot.ProfessionalRef == professional && !slot.IsBooked {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *memSlotRepo) Book(_ context.Context, id string, attendee models.UserRef, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.byID[id]
	if !ok || slot.IsBooked {
		return false, nil
	}
	slot.IsBooked = true
	slot.BookedBy = attendee
	slot.BookedAt = &at
	return true, nil
}

func (r *memSlotRepo) EnsureIndexes(_ context.Context) error { return nil }

const mhp = models.UserRef("mhp@example.com")

func TestPublishSlotsReportsCreatedCountOnly(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newMemSlotRepo()}

	created, err := svc.PublishSlots(context.Background(), mhp, []models.SlotInput{
		{Date: "2026-03-10", Start: 540, End: 600},
		{Date: "2026-03-10", Start: 600, End: 660},
	})
	if err != nil {
		t.Fatalf("PublishSlots: %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 created, got %d", created)
	}

	// Republishing one duplicate plus one new window drops the duplicate
	// without surfacing a per-item error.
	created, err = svc.PublishSlots(context.Background(), mhp, []models.SlotInput{
		{Date: "2026-03-10", Start: 540, End: 600},
		{Date: "2026-03-11", Start: 540, End: 600},
	})
	if err != nil {
		t.Fatalf("PublishSlots with duplicate: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 created, got %d", created)
	}
}

func TestPublishSlotsValidatesWindows(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newMemSlotRepo()}

	cases := []models.SlotInput{
		{Date: "10-03-2026", Start: 540, End: 600}, // bad date format
		{Date: "2026-03-10", Start: 600, End: 600}, // empty window
		{Date: "2026-03-10", Start: -10, End: 600}, // negative start
		{Date: "2026-03-10", Start: 540, End: 1500},
	}
	for _, in := range cases {
		if _, err := svc.PublishSlots(context.Background(), mhp, []models.SlotInput{in}); !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("expected ErrInvalidSlot for %+v, got %v", in, err)
		}
	}
}

func TestBookSlotUnknownID(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newMemSlotRepo()}
	if _, err := svc.BookSlot(context.Background(), "nope", "attendee@example.com"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestBookSlotTwiceLosesSecondAttempt(t *testing.T) {
	repo := newMemSlotRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	if _, err := svc.PublishSlots(context.Background(), mhp, []models.SlotInput{{Date: "2026-03-10", Start: 540, End: 600}}); err != nil {
		t.Fatalf("PublishSlots: %v", err)
	}
	slots, _ := svc.ListOpenSlots(context.Background(), mhp)
	if len(slots) != 1 {
		t.Fatalf("expected 1 open slot, got %d", len(slots))
	}
	slotID := slots[0].ID

	if _, err := svc.BookSlot(context.Background(), slotID, "first@example.com"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.BookSlot(context.Background(), slotID, "second@example.com"); !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("expected ErrSlotAlreadyBooked, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), slotID)
	if stored.BookedBy != "first@example.com" {
		t.Fatalf("winner must not be overwritten, got %s", stored.BookedBy)
	}
}

func TestConcurrentBookingHasExactlyOneWinner(t *testing.T) {
	repo := newMemSlotRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	if _, err := svc.PublishSlots(context.Background(), mhp, []models.SlotInput{{Date: "2026-03-10", Start: 540, End: 600}}); err != nil {
		t.Fatalf("PublishSlots: %v", err)
	}
	slots, _ := svc.ListOpenSlots(context.Background(), mhp)
	slotID := slots[0].ID

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.BookSlot(context.Background(), slotID, models.UserRef(uuid.New().String()+"@example.com"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrSlotAlreadyBooked):
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}

	stored, _ := repo.GetByID(context.Background(), slotID)
	if !stored.IsBooked || stored.BookedAt == nil {
		t.Fatalf("slot must end booked with a booking timestamp")
	}
}
