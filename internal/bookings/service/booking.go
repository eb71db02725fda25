package service

import (
	"context"
	"errors"
	"time"

	"roomly/internal/availability"
	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/state"
	"roomly/internal/bookings/validator"
	"roomly/internal/rooms"
	"roomly/internal/timegrid"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking, ownerID string) (string, error)
	Update(ctx context.Context, id string, patch *model.BookingPatch, ownerID string) error
	Delete(ctx context.Context, id string, ownerID string) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter repository.Filter) ([]model.Booking, error)
	Availability(ctx context.Context, roomID int, date, start, editID string) (*model.Availability, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	locks     repository.SlotLockRepository
	validator *validator.BookingValidator
	set       *state.Set
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	locks repository.SlotLockRepository,
	validator *validator.BookingValidator,
	set *state.Set,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		locks:     locks,
		validator: validator,
		set:       set,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Create reserves a slot. Submitting the identical booking again is a
// defined success: the existing id comes back unchanged. A matching slot
// held by a different identity fails AlreadyBooked. The check and the
// insert are not one atomic step; the advisory slot lock narrows that
// window and the change reconciler's soft-key dedupe is the backstop.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking, ownerID string) (string, error) {
	if ownerID == "" {
		return "", apperrors.AuthRequired()
	}
	booking.OwnerID = ownerID

	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return "", err
	}

	if !availability.IsAvailable(s.set.ForRoomDate(booking.RoomID, booking.Date), booking) {
		return "", apperrors.Validation("This time slot is no longer available", nil)
	}

	lockID := "slot_lock_" + booking.SlotKey()
	if err := s.acquireSlotLock(ctx, lockID); err != nil {
		return "", err
	}
	defer func() {
		if releaseErr := s.locks.Release(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	existing, err := s.repo.FindBySlot(ctx, booking.RoomID, booking.Date, booking.StartTime, booking.EndTime)
	if err != nil {
		return "", apperrors.Transport("Failed to check existing bookings", err)
	}
	if existing != nil {
		if existing.SameIdentity(booking) {
			s.cfg.Log.Info("Duplicate submission detected, returning existing booking id",
				"id", existing.ID,
				"room_id", existing.RoomID,
				"date", existing.Date,
			)
			s.set.Add(*existing)
			return existing.ID, nil
		}
		return "", apperrors.AlreadyBooked("This booking already exists")
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		return "", apperrors.Transport("Failed to create booking", err)
	}

	// Optimistic local insert; the store's added echo resolves to a no-op
	// through the reconciler's soft-key dedupe.
	s.set.Add(*booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", id,
		"room_id", booking.RoomID,
		"date", booking.Date,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)
	return id, nil
}

// Update merge-patches a stored booking. Ownership is not re-verified
// against the stored document: callers gate who is offered the edit
// action, and that policy boundary stays with them.
func (s *bookingService) Update(ctx context.Context, id string, patch *model.BookingPatch, ownerID string) error {
	if ownerID == "" {
		return apperrors.AuthRequired()
	}
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidatePatch(patch); err != nil {
		s.cfg.Log.Warn("Booking patch validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	existing, err := s.getStored(ctx, id)
	if err != nil {
		return err
	}

	merged := s.mergePatch(existing, patch)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return err
	}

	others := excludeID(s.set.ForRoomDate(merged.RoomID, merged.Date), id)
	if !availability.IsAvailable(others, merged) {
		return apperrors.Validation("This time slot is no longer available", nil)
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Transport("Failed to update booking", err)
	}

	merged.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)
	s.set.Replace(*merged)

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return nil
}

// Delete removes a booking after verifying the caller owns it.
func (s *bookingService) Delete(ctx context.Context, id string, ownerID string) error {
	if ownerID == "" {
		return apperrors.AuthRequired()
	}
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.getStored(ctx, id)
	if err != nil {
		return err
	}

	if existing.OwnerID != ownerID {
		return apperrors.Forbidden("You do not have permission to delete this booking")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Transport("Failed to delete booking", err)
	}

	s.set.Remove(id)

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	return s.getStored(ctx, id)
}

func (s *bookingService) List(ctx context.Context, filter repository.Filter) ([]model.Booking, error) {
	bookings, err := s.repo.Query(ctx, filter)
	if err != nil {
		return nil, apperrors.Transport("Failed to query bookings", err)
	}
	return bookings, nil
}

// Availability computes the candidate start labels for a room/date and,
// when start is non-empty, the end labels reachable from it. Pass editID
// to re-admit an existing booking's own interval.
func (s *bookingService) Availability(ctx context.Context, roomID int, date, start, editID string) (*model.Availability, error) {
	if _, ok := rooms.Lookup(roomID); !ok {
		return nil, apperrors.Validation("Unknown room", map[string]any{"room_id": roomID})
	}
	if _, err := time.ParseInLocation(timegrid.DateLayout, date, time.Local); err != nil {
		return nil, apperrors.InvalidInput("Date must be a calendar date in YYYY-MM-DD format")
	}

	pool, err := s.repo.Query(ctx, repository.Filter{RoomID: &roomID, DateFrom: date, DateTo: date})
	if err != nil {
		return nil, apperrors.Transport("Failed to query bookings", err)
	}

	var edit *availability.EditRef
	if editID != "" {
		b, err := s.getStored(ctx, editID)
		if err != nil {
			return nil, err
		}
		edit = &availability.EditRef{ID: b.ID, StartTime: b.StartTime, EndTime: b.EndTime}
	}

	c := availability.Computer{
		Bookings: pool,
		RoomID:   roomID,
		Date:     date,
		Edit:     edit,
		Now:      s.now(),
	}
	return &model.Availability{
		StartTimes: c.StartTimes(),
		EndTimes:   c.EndTimes(start),
	}, nil
}

// --- Helpers ---

func (s *bookingService) getStored(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Transport("Failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.Name = sanitizer.NormalizeName(b.Name)
	b.Company = sanitizer.NormalizeCompany(b.Company)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if _, ok := rooms.Lookup(booking.RoomID); !ok {
		return apperrors.Validation("Unknown room", map[string]any{"room_id": booking.RoomID})
	}
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return s.checkDateWindow(booking.Date)
}

// checkDateWindow bounds the booking date: not in the past, and no
// further ahead than the configured advance window.
func (s *bookingService) checkDateWindow(date string) error {
	day, err := time.ParseInLocation(timegrid.DateLayout, date, time.Local)
	if err != nil {
		return apperrors.Validation("Date must be a calendar date in YYYY-MM-DD format", nil)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if day.Before(today) {
		return apperrors.Validation("Booking date is in the past", nil)
	}
	if !day.Before(today.AddDate(0, 0, s.cfg.MaxAdvanceDays)) {
		return apperrors.Validation("Booking date is too far in the future", map[string]any{
			"max_advance_days": s.cfg.MaxAdvanceDays,
		})
	}
	return nil
}

func (s *bookingService) mergePatch(existing *model.Booking, patch *model.BookingPatch) *model.Booking {
	merged := *existing

	if patch.RoomID != nil {
		merged.RoomID = *patch.RoomID
	}
	if patch.Date != "" {
		merged.Date = patch.Date
	}
	if patch.StartTime != "" {
		merged.StartTime = patch.StartTime
	}
	if patch.EndTime != "" {
		merged.EndTime = patch.EndTime
	}
	if patch.Name != "" {
		merged.Name = patch.Name
	}
	if patch.Company != "" {
		merged.Company = patch.Company
	}

	return &merged
}

func (s *bookingService) acquireSlotLock(ctx context.Context, lockID string) error {
	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: s.now().Add(s.cfg.SlotLockTTL),
	}

	if err := s.locks.Acquire(ctx, lock); err != nil {
		if errors.Is(err, bookingserrors.ErrLockHeld) {
			return apperrors.AlreadyBooked("This time slot is currently being booked by another request. Please try again.")
		}
		return apperrors.Transport("Failed to acquire slot lock", err)
	}

	return nil
}

func excludeID(bookings []model.Booking, id string) []model.Booking {
	out := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
