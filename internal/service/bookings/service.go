package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	bookingRepo "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/infra/storage/booking"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings/models"
)

// Service handles the CRUD-ish booking flows outside the availability
// calculation: lookups, renter history, cancellation.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the booking service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches a booking. Renters can only see their own bookings.
func (s *Service) GetByID(ctx context.Context, id int64, renterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for renter=%d", id, renterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.RenterID != renterID {
		s.logger.Warn("GetByID: access denied for renter=%d to booking id=%d", renterID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetRenterBookings lists a renter's booking history, optionally filtered
// by status.
func (s *Service) GetRenterBookings(ctx context.Context, req *models.GetRenterBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRenterBookings: fetching bookings for renter=%d, status=%v", req.RenterID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRenterBookings: invalid status=%s for renter=%d", *req.Status, req.RenterID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRenter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRenterBookings: repository error for renter=%d: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterBookings: successfully fetched %d bookings for renter=%d", len(bookings), req.RenterID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking on behalf of its renter. Only PENDING and
// CONFIRMED bookings can be cancelled.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by renter=%d", bookingID, req.RenterID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.RenterID != req.RenterID {
		s.logger.Warn("Cancel: access denied for renter=%d to booking id=%d", req.RenterID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
