package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/booking"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"go.uber.org/zap"
)

// ConfirmBooking moves a pending booking to confirmed and schedules the
// check-in reminder. Racing confirmations surface as ErrStatusConflict.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, id string, now time.Time) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if b.Status != models.BookingPending {
		return nil, &InvalidInputError{Reason: "only pending bookings can be confirmed"}
	}

	b.Status = models.BookingConfirmed
	b.Communication.ConfirmationSent = true
	b.Communication.ConfirmationSentAt = &now
	if err := s.Repo.ReplaceIfStatus(ctx, b, models.BookingPending); err != nil {
		return nil, s.resolveTransitionErr(ctx, b.ID, err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, b); err != nil {
			s.Logger.Error("failed to schedule check-in reminder",
				zap.String("id", b.ID), zap.Error(err))
		}
	}

	s.Logger.Info("booking confirmed", zap.String("id", b.ID), zap.String("reference", b.BookingReference))
	return b, nil
}

// QuoteCancellation answers what cancelling right now would cost, without
// changing the record.
func (s *DefaultBookingService) QuoteCancellation(ctx context.Context, id string, now time.Time) (*CancellationQuote, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	fee, err := CancellationFee(b, now)
	if err != nil {
		return nil, err
	}
	return &CancellationQuote{
		BookingID:    b.ID,
		Cancellable:  CanBeCancelled(b, now),
		Fee:          fee,
		RefundAmount: b.Pricing.TotalAmount - fee,
	}, nil
}

// CancelBooking applies the cancellation rule: confirmed bookings only, more
// than 24 hours before check-in, with the tiered fee. A paid booking gets the
// remainder refunded through the payment processor. The record is never
// deleted; cancellation is a status change plus detail fields.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, cancelledBy, reason string, now time.Time) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !CanBeCancelled(b, now) {
		return nil, ErrNotCancellable
	}
	fee, err := CancellationFee(b, now)
	if err != nil {
		return nil, err
	}
	refundAmount := b.Pricing.TotalAmount - fee

	b.Status = models.BookingCancelled
	b.Cancellation = models.Cancellation{
		CancelledAt:  &now,
		CancelledBy:  cancelledBy,
		Reason:       reason,
		Fee:          fee,
		RefundAmount: refundAmount,
	}

	// Win the transition before touching money. The conditional replace is the
	// only path from confirmed to cancelled, so a racing cancellation fails
	// here and never reaches the refund.
	if err := s.Repo.ReplaceIfStatus(ctx, b, models.BookingConfirmed); err != nil {
		return nil, s.resolveTransitionErr(ctx, b.ID, err)
	}

	if b.Payment.Status == models.PaymentPaid && refundAmount > 0 {
		refundID, err := s.Payments.Refund(ctx, b, refundAmount)
		if err != nil {
			// The booking stays cancelled; the refund is retried out of band.
			s.Logger.Error("refund failed after cancellation",
				zap.String("id", b.ID), zap.Error(err))
			return nil, err
		}
		b.Payment.RefundID = refundID
		b.Payment.RefundAmount = refundAmount
		b.Payment.RefundedAt = &now
		if fee > 0 {
			b.Payment.Status = models.PaymentPartiallyRefunded
		} else {
			b.Payment.Status = models.PaymentRefunded
		}
		if err := s.Repo.Update(ctx, b); err != nil {
			return nil, mapRepoErr(err)
		}
	}

	s.Logger.Info("booking cancelled",
		zap.String("id", b.ID),
		zap.String("by", cancelledBy),
		zap.Float64("fee", fee),
		zap.Float64("refund", refundAmount))
	return b, nil
}

// RecordCheckIn marks the guest as arrived.
func (s *DefaultBookingService) RecordCheckIn(ctx context.Context, id, notes string, now time.Time) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if b.Status != models.BookingConfirmed {
		return nil, &InvalidInputError{Reason: "only confirmed bookings can check in"}
	}
	b.CheckInInfo = models.StayEvent{Done: true, At: &now, Notes: notes}
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, mapRepoErr(err)
	}
	return b, nil
}

// RecordCheckOut marks the guest as departed and completes the booking.
func (s *DefaultBookingService) RecordCheckOut(ctx context.Context, id, notes string, now time.Time) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if b.Status != models.BookingConfirmed {
		return nil, &InvalidInputError{Reason: "only confirmed bookings can check out"}
	}
	b.CheckOutInfo = models.StayEvent{Done: true, At: &now, Notes: notes}
	b.Status = models.BookingCompleted
	if err := s.Repo.ReplaceIfStatus(ctx, b, models.BookingConfirmed); err != nil {
		return nil, s.resolveTransitionErr(ctx, b.ID, err)
	}
	return b, nil
}

// UpdateStatus applies an explicit staff/system transition (no_show, modified,
// refunded, disputed, ...). The stored status is re-checked on write so two
// racing updates cannot both win.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, to models.BookingStatus, now time.Time) (*models.Booking, error) {
	if !validStatuses[to] {
		return nil, &InvalidInputError{Reason: "unknown booking status: " + string(to)}
	}
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	from := b.Status
	b.Status = to
	b.UpdatedAt = now
	if err := s.Repo.ReplaceIfStatus(ctx, b, from); err != nil {
		return nil, s.resolveTransitionErr(ctx, b.ID, err)
	}
	s.Logger.Info("booking status updated",
		zap.String("id", b.ID), zap.String("from", string(from)), zap.String("to", string(to)))
	return b, nil
}

// CreatePaymentIntent asks the payment processor for an intent covering the
// booking total and stores its ID as the transaction reference. Only payable
// bookings qualify: the booking must still be pending or confirmed and its
// payment must not have been captured or refunded already.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, id string) (string, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", mapRepoErr(err)
	}
	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return "", &InvalidInputError{Reason: "booking is not payable in status " + string(b.Status)}
	}
	if b.Payment.Status != models.PaymentPending && b.Payment.Status != models.PaymentFailed {
		return "", &InvalidInputError{Reason: "payment is not awaiting capture"}
	}
	intentID, err := s.Payments.CreateIntent(ctx, b)
	if err != nil {
		return "", err
	}
	b.Payment.TransactionID = intentID
	if err := s.Repo.Update(ctx, b); err != nil {
		return "", mapRepoErr(err)
	}
	return intentID, nil
}

// SweepEndedStays closes out confirmed bookings whose check-out has passed:
// stays the guest actually started become completed, the rest become no_show.
// A booking another writer touched mid-sweep is skipped and picked up next run.
func (s *DefaultBookingService) SweepEndedStays(ctx context.Context, now time.Time) (completed, noShows int, err error) {
	stale, err := s.Repo.FindSweepable(ctx, now)
	if err != nil {
		return 0, 0, err
	}

	for i := range stale {
		b := &stale[i]
		target := models.BookingNoShow
		if b.CheckInInfo.Done {
			target = models.BookingCompleted
		}
		b.Status = target
		b.UpdatedAt = now
		if err := s.Repo.ReplaceIfStatus(ctx, b, models.BookingConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				continue
			}
			return completed, noShows, err
		}
		if target == models.BookingCompleted {
			completed++
		} else {
			noShows++
		}
	}
	return completed, noShows, nil
}

// SendDueReminders is the catch-up path for reminders the scheduled task
// missed (worker downtime, bookings confirmed while the queue was unreachable):
// it flags every confirmed stay starting within the next 24 hours whose
// reminder has not gone out yet.
func (s *DefaultBookingService) SendDueReminders(ctx context.Context, now time.Time) (int, error) {
	due, err := s.Repo.FindDueReminders(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		b := &due[i]
		b.Communication.ReminderSent = true
		b.Communication.ReminderSentAt = &now
		if err := s.Repo.Update(ctx, b); err != nil {
			s.Logger.Error("failed to record due reminder", zap.String("id", b.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

// MarkReminderSent flags the reminder as handed off to the notification layer.
func (s *DefaultBookingService) MarkReminderSent(ctx context.Context, id string, now time.Time) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	b.Communication.ReminderSent = true
	b.Communication.ReminderSentAt = &now
	return s.Repo.Update(ctx, b)
}

// resolveTransitionErr disambiguates a failed conditional replace: the zero
// match means either a concurrent transition won or the record is gone, so a
// re-read decides between conflict and not-found.
func (s *DefaultBookingService) resolveTransitionErr(ctx context.Context, id string, err error) error {
	if !errors.Is(err, bookingRepo.ErrNotFound) {
		return err
	}
	if _, readErr := s.Repo.GetByID(ctx, id); errors.Is(readErr, bookingRepo.ErrNotFound) {
		return ErrBookingNotFound
	}
	return ErrStatusConflict
}
