package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	providerRepo "bookline/database/repository/provider"
	slotRepo "bookline/database/repository/slot"
	"bookline/models"
)

// mockProviderRepo resolves a single known provider.
type mockProviderRepo struct {
	provider *models.Provider
}

func (m *mockProviderRepo) Create(ctx context.Context, p *models.Provider) error { return nil }

func (m *mockProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if m.provider != nil && m.provider.ID == id {
		return m.provider, nil
	}
	return nil, providerRepo.ErrNotFound
}

func (m *mockProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return nil, providerRepo.ErrNotFound
}

func (m *mockProviderRepo) GetByName(ctx context.Context, name string) (*models.Provider, error) {
	if m.provider != nil && strings.Contains(strings.ToLower(m.provider.Name), strings.ToLower(name)) {
		return m.provider, nil
	}
	return nil, providerRepo.ErrNotFound
}

func (m *mockProviderRepo) GetByServiceType(ctx context.Context, serviceType string) ([]models.Provider, error) {
	return nil, nil
}

func (m *mockProviderRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return nil
}

// mockSlotRepo honors the atomic read-check-increment contract under a mutex,
// the way the guarded update does in the real store.
type mockSlotRepo struct {
	mu    sync.Mutex
	slots []models.Slot
}

func (m *mockSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	m.slots = append(m.slots, slots...)
	return make([]string, len(slots)), nil
}

func (m *mockSlotRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	return m.slots, nil
}

func (m *mockSlotRepo) GetKnownDates(ctx context.Context, providerID string) ([]string, error) {
	return nil, nil
}

func (m *mockSlotRepo) IncrementBooked(ctx context.Context, providerID, date, hhmm string) (*models.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		s := &m.slots[i]
		if s.ProviderID == providerID && s.Date == date && s.Time == hhmm {
			if s.Booked >= s.Capacity {
				return nil, slotRepo.ErrSlotFull
			}
			s.Booked++
			updated := *s
			return &updated, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (m *mockSlotRepo) DeleteByID(ctx context.Context, providerID, slotID string) error {
	return nil
}

// mockRecords captures persisted booking records.
type mockRecords struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *mockRecords) Create(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *mockRecords) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRecords) GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return nil, nil
}

func newTestEngine(capacity, booked int) (*DefaultEngine, *mockSlotRepo, *mockRecords) {
	slots := &mockSlotRepo{slots: []models.Slot{
		{ProviderID: "prov-1", Date: "2025-05-26", Time: "10:00", Capacity: capacity, Booked: booked},
	}}
	records := &mockRecords{}
	engine := &DefaultEngine{
		Providers: &mockProviderRepo{provider: &models.Provider{
			ID: "prov-1", Name: "Dr. Patel", ServiceType: models.ServiceMedical,
		}},
		Slots:   slots,
		Records: records,
	}
	return engine, slots, records
}

func bookReq() BookRequest {
	return BookRequest{
		ProviderName: "Patel",
		ServiceType:  "medical",
		Date:         "2025-05-26",
		TimeSlot:     "10:00",
	}
}

func TestBookSlotConsumesOneUnit(t *testing.T) {
	engine, slots, records := newTestEngine(3, 1)

	result, err := engine.BookSlot(context.Background(), bookReq())
	if err != nil {
		t.Fatalf("BookSlot failed: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if result.RemainingCapacity != 1 {
		t.Errorf("remaining capacity = %d, want 1", result.RemainingCapacity)
	}
	if !strings.HasPrefix(result.BookingReference, "REF_") {
		t.Errorf("booking reference %q missing REF_ prefix", result.BookingReference)
	}

	if got := slots.slots[0].Booked; got != 2 {
		t.Errorf("booked count = %d, want 2", got)
	}
	if slots.slots[0].Booked > slots.slots[0].Capacity {
		t.Error("booked count exceeded capacity")
	}

	if len(records.bookings) != 1 {
		t.Fatalf("expected 1 booking record, got %d", len(records.bookings))
	}
	rec := records.bookings[0]
	if rec.Status != "confirmed" || rec.TimeSlot != "10:00" || rec.ProviderID != "prov-1" {
		t.Errorf("unexpected booking record: %+v", rec)
	}
}

func TestBookSlotNormalizesRequestedTime(t *testing.T) {
	engine, _, _ := newTestEngine(2, 0)

	req := bookReq()
	req.TimeSlot = "10 am"
	result, err := engine.BookSlot(context.Background(), req)
	if err != nil {
		t.Fatalf("BookSlot failed: %v", err)
	}
	if result.RemainingCapacity != 1 {
		t.Errorf("remaining capacity = %d, want 1", result.RemainingCapacity)
	}
}

func TestBookSlotUnknownProvider(t *testing.T) {
	engine, _, _ := newTestEngine(1, 0)

	req := bookReq()
	req.ProviderName = "Dr. Nobody"
	_, err := engine.BookSlot(context.Background(), req)
	if !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("err = %v, want ErrProviderNotFound", err)
	}
}

func TestBookSlotUnknownSlot(t *testing.T) {
	engine, _, _ := newTestEngine(1, 0)

	req := bookReq()
	req.TimeSlot = "23:45"
	_, err := engine.BookSlot(context.Background(), req)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestBookSlotLastUnitThenFull(t *testing.T) {
	engine, _, _ := newTestEngine(1, 0)

	result, err := engine.BookSlot(context.Background(), bookReq())
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if result.RemainingCapacity != 0 {
		t.Errorf("remaining capacity = %d, want 0", result.RemainingCapacity)
	}

	_, err = engine.BookSlot(context.Background(), bookReq())
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("err = %v, want ErrNoCapacity", err)
	}
}

// Two concurrent commits racing for the last unit: exactly one may win.
func TestBookSlotConcurrentLastUnit(t *testing.T) {
	engine, slots, _ := newTestEngine(1, 0)

	const contenders = 8
	results := make(chan error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.BookSlot(context.Background(), bookReq())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, capacityFailures int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrNoCapacity):
			capacityFailures++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if capacityFailures != contenders-1 {
		t.Errorf("capacity failures = %d, want %d", capacityFailures, contenders-1)
	}
	if slots.slots[0].Booked != slots.slots[0].Capacity {
		t.Errorf("booked = %d, want %d", slots.slots[0].Booked, slots.slots[0].Capacity)
	}
}
