package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	bookingRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/booking"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	args := m.Called(ctx, ref)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	args := m.Called(ctx, guestID)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByHotel(ctx context.Context, hotelID string) ([]models.Booking, error) {
	args := m.Called(ctx, hotelID)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) ReplaceIfStatus(ctx context.Context, b *models.Booking, expect models.BookingStatus) error {
	return m.Called(ctx, b, expect).Error(0)
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, roomID, from, to)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindSweepable(ctx context.Context, before time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, before)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindDueReminders(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, from, to)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) CreateIntent(ctx context.Context, b *models.Booking) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func (m *mockPayments) Refund(ctx context.Context, b *models.Booking, amount float64) (string, error) {
	args := m.Called(ctx, b, amount)
	return args.String(0), args.Error(1)
}

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) ScheduleReminder(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func newTestService(repo *mockBookingRepo, payments *mockPayments) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Payments: payments,
		Logger:   zap.NewNop(),
	}
}

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

func TestCreateBooking_RejectsInvalid(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := newTestService(repo, new(mockPayments))

	b := validBooking()
	b.GuestID = ""
	_, err := svc.CreateBooking(context.Background(), b)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBooking_DefaultsAndFrozenTotal(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo, new(mockPayments))

	b := validBooking() // roomPrice 300, taxes 45, no total supplied
	created, err := svc.CreateBooking(context.Background(), b)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingPending, created.Status)
	assert.Equal(t, models.PaymentPending, created.Payment.Status)
	assert.True(t, strings.HasPrefix(created.BookingReference, "SG"))
	assert.Equal(t, 345.0, created.Pricing.TotalAmount)
}

func TestCreateBooking_SuppliedTotalNotOverwritten(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo, new(mockPayments))

	b := validBooking()
	b.Pricing.TotalAmount = 999 // does not match the component sum

	created, err := svc.CreateBooking(context.Background(), b)
	assert.NoError(t, err)
	assert.Equal(t, 999.0, created.Pricing.TotalAmount)
}

func TestCreateBooking_RetriesOnReferenceCollision(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyErr()).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newTestService(repo, new(mockPayments))

	created, err := svc.CreateBooking(context.Background(), validBooking())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.BookingReference, "SG"))
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateBooking_NoRetryForCallerReference(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyErr())
	svc := newTestService(repo, new(mockPayments))

	b := validBooking()
	b.BookingReference = "SGCALLERCHOSEN"

	_, err := svc.CreateBooking(context.Background(), b)
	assert.Error(t, err)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestConfirmBooking_SchedulesReminder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := validBooking()
	b.ID = "b-1"
	b.Status = models.BookingPending

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, "b-1").Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingPending).Return(nil)
	reminders := new(mockReminders)
	reminders.On("ScheduleReminder", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, new(mockPayments))
	svc.Reminders = reminders

	confirmed, err := svc.ConfirmBooking(context.Background(), "b-1", now)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.True(t, confirmed.Communication.ConfirmationSent)
	reminders.AssertCalled(t, "ScheduleReminder", mock.Anything, mock.Anything)
}

func TestCancelBooking_PendingRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := validBooking()
	b.ID = "b-1"
	b.Status = models.BookingPending
	b.CheckIn = now.Add(100 * time.Hour)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, "b-1").Return(b, nil)
	svc := newTestService(repo, new(mockPayments))

	_, err := svc.CancelBooking(context.Background(), "b-1", "guest", "change of plans", now)
	assert.ErrorIs(t, err, ErrNotCancellable)
	repo.AssertNotCalled(t, "ReplaceIfStatus")
}

func TestCancelBooking_InsideWindowRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(20*time.Hour), 1000)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	svc := newTestService(repo, new(mockPayments))

	_, err := svc.CancelBooking(context.Background(), b.ID, "guest", "", now)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelBooking_PaidRefundFlow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000) // 25% tier
	b.Payment.Status = models.PaymentPaid
	b.Payment.TransactionID = "pi_123"

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	payments := new(mockPayments)
	payments.On("Refund", mock.Anything, mock.Anything, 750.0).Return("re_123", nil)

	svc := newTestService(repo, payments)
	cancelled, err := svc.CancelBooking(context.Background(), b.ID, "guest", "change of plans", now)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, 250.0, cancelled.Cancellation.Fee)
	assert.Equal(t, 750.0, cancelled.Cancellation.RefundAmount)
	assert.Equal(t, "re_123", cancelled.Payment.RefundID)
	assert.Equal(t, models.PaymentPartiallyRefunded, cancelled.Payment.Status)
}

func TestCancelBooking_FreeCancellationFullRefund(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(72*time.Hour), 1000) // free tier
	b.Payment.Status = models.PaymentPaid

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	payments := new(mockPayments)
	payments.On("Refund", mock.Anything, mock.Anything, 1000.0).Return("re_456", nil)

	svc := newTestService(repo, payments)
	cancelled, err := svc.CancelBooking(context.Background(), b.ID, "guest", "", now)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, cancelled.Cancellation.Fee)
	assert.Equal(t, models.PaymentRefunded, cancelled.Payment.Status)
}

func TestCancelBooking_UnpaidSkipsRefund(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(72*time.Hour), 1000)
	b.Payment.Status = models.PaymentPending

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).Return(nil)
	payments := new(mockPayments)

	svc := newTestService(repo, payments)
	cancelled, err := svc.CancelBooking(context.Background(), b.ID, "guest", "", now)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	payments.AssertNotCalled(t, "Refund")
}

func TestCancelBooking_LosingRacerNeverRefunds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000)
	b.Payment.Status = models.PaymentPaid
	b.Payment.TransactionID = "pi_123"

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	// A concurrent cancellation already won the conditional replace.
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).
		Return(bookingRepo.ErrNotFound)
	payments := new(mockPayments)

	svc := newTestService(repo, payments)
	_, err := svc.CancelBooking(context.Background(), b.ID, "guest", "", now)

	// The loser reports the conflict and, critically, never moves money.
	assert.ErrorIs(t, err, ErrStatusConflict)
	payments.AssertNotCalled(t, "Refund")
}

func TestCancelBooking_RefundFailureSurfaced(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(72*time.Hour), 1000)
	b.Payment.Status = models.PaymentPaid
	b.Payment.TransactionID = "pi_123"

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).Return(nil)
	payments := new(mockPayments)
	payments.On("Refund", mock.Anything, mock.Anything, 1000.0).
		Return("", assert.AnError)

	svc := newTestService(repo, payments)
	_, err := svc.CancelBooking(context.Background(), b.ID, "guest", "", now)

	assert.ErrorIs(t, err, assert.AnError)
	// The refund details were never written, so the payment state still says paid.
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateStatus_DeletedMidFlight(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil).Once()
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).
		Return(bookingRepo.ErrNotFound)
	// The re-read finds nothing: the record is gone, not merely contended.
	repo.On("GetByID", mock.Anything, b.ID).Return(nil, bookingRepo.ErrNotFound).Once()

	svc := newTestService(repo, new(mockPayments))
	_, err := svc.UpdateStatus(context.Background(), b.ID, models.BookingDisputed, now)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_ConcurrentTransition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).
		Return(bookingRepo.ErrNotFound)

	svc := newTestService(repo, new(mockPayments))
	_, err := svc.UpdateStatus(context.Background(), b.ID, models.BookingDisputed, now)

	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestCreatePaymentIntent_Gates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cancelled := confirmedBooking(now.Add(30*time.Hour), 1000)
	cancelled.ID = "b-cancelled"
	cancelled.Status = models.BookingCancelled

	paid := confirmedBooking(now.Add(30*time.Hour), 1000)
	paid.ID = "b-paid"
	paid.Payment.Status = models.PaymentPaid

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, "b-cancelled").Return(cancelled, nil)
	repo.On("GetByID", mock.Anything, "b-paid").Return(paid, nil)
	payments := new(mockPayments)

	svc := newTestService(repo, payments)

	var inputErr *InvalidInputError
	_, err := svc.CreatePaymentIntent(context.Background(), "b-cancelled")
	assert.ErrorAs(t, err, &inputErr)

	_, err = svc.CreatePaymentIntent(context.Background(), "b-paid")
	assert.ErrorAs(t, err, &inputErr)

	payments.AssertNotCalled(t, "CreateIntent")
}

func TestCreatePaymentIntent_RetryAfterFailure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000)
	b.Payment.Status = models.PaymentFailed

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	payments := new(mockPayments)
	payments.On("CreateIntent", mock.Anything, mock.Anything).Return("pi_retry", nil)

	svc := newTestService(repo, payments)
	intentID, err := svc.CreatePaymentIntent(context.Background(), b.ID)

	assert.NoError(t, err)
	assert.Equal(t, "pi_retry", intentID)
}

func TestQuoteCancellation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := confirmedBooking(now.Add(30*time.Hour), 1000)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	svc := newTestService(repo, new(mockPayments))

	quote, err := svc.QuoteCancellation(context.Background(), b.ID, now)
	assert.NoError(t, err)
	assert.True(t, quote.Cancellable)
	assert.Equal(t, 250.0, quote.Fee)
	assert.Equal(t, 750.0, quote.RefundAmount)
}

func TestSweepEndedStays(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	stayed := *confirmedBooking(now.Add(-96*time.Hour), 500)
	stayed.ID = "b-stayed"
	stayed.CheckInInfo = models.StayEvent{Done: true}

	ghost := *confirmedBooking(now.Add(-96*time.Hour), 500)
	ghost.ID = "b-ghost"

	repo := new(mockBookingRepo)
	repo.On("FindSweepable", mock.Anything, now).Return([]models.Booking{stayed, ghost}, nil)
	repo.On("ReplaceIfStatus", mock.Anything, mock.Anything, models.BookingConfirmed).Return(nil)
	svc := newTestService(repo, new(mockPayments))

	completed, noShows, err := svc.SweepEndedStays(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, noShows)
}

func TestSendDueReminders(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := *confirmedBooking(now.Add(10*time.Hour), 500)
	first.ID = "b-1"
	second := *confirmedBooking(now.Add(20*time.Hour), 500)
	second.ID = "b-2"

	repo := new(mockBookingRepo)
	repo.On("FindDueReminders", mock.Anything, now, now.Add(24*time.Hour)).
		Return([]models.Booking{first, second}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.Communication.ReminderSent
	})).Return(nil)
	svc := newTestService(repo, new(mockPayments))

	sent, err := svc.SendDueReminders(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 2, sent)
	repo.AssertNumberOfCalls(t, "Update", 2)
}

func TestGetBooking_NotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrNotFound)
	svc := newTestService(repo, new(mockPayments))

	_, err := svc.GetBooking(context.Background(), "missing", time.Now())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
