package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/pkg/errs"
	"happy-hotel/internal/usecase"
	"happy-hotel/tests/common/builder"
	usecasemock "happy-hotel/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	rooms     *usecasemock.MockRoomInventory
	payments  *usecasemock.MockPaymentGateway
	bookings  *usecasemock.MockBookingRepository
	notifier  *usecasemock.MockNotificationSender
	converter *usecasemock.MockCurrencyConverter
	service   *usecase.BookingService
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.rooms = usecasemock.NewMockRoomInventory(s.mockCtrl)
	s.payments = usecasemock.NewMockPaymentGateway(s.mockCtrl)
	s.bookings = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.notifier = usecasemock.NewMockNotificationSender(s.mockCtrl)
	s.converter = usecasemock.NewMockCurrencyConverter(s.mockCtrl)
	s.service = usecase.NewBookingService(
		s.rooms,
		s.payments,
		s.bookings,
		s.notifier,
		s.converter,
		booking.NewDefaultPriceCalculator(),
		nil,
	)
}

func (s *BookingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

// ================================================================================
// Pricing
// ================================================================================

func (s *BookingServiceTestSuite) TestCalculatePrice() {
	s.Run("four nights two rooms", func() {
		req := builder.NewBookingBuilder().Build()
		s.Equal(400.0, s.service.CalculatePrice(req))
	})

	s.Run("two nights one room", func() {
		req := builder.NewBookingBuilder().
			WithStay(booking.Date(2022, time.January, 1), booking.Date(2022, time.January, 3)).
			WithRoomCount(1).
			Build()
		s.Equal(100.0, s.service.CalculatePrice(req))
	})

	s.Run("does not touch collaborators", func() {
		// any call on a mock without expectations fails the test
		_ = s.service.CalculatePrice(builder.NewBookingBuilder().Build())
	})
}

func (s *BookingServiceTestSuite) TestCalculatePriceInForeignCurrency() {
	s.converter.EXPECT().ToForeignCurrency(400.0).
		DoAndReturn(func(amount float64) float64 { return amount * 0.8 }).
		Times(1)

	got := s.service.CalculatePriceInForeignCurrency(builder.NewBookingBuilder().Build())
	s.InDelta(320.0, got, 1e-9)
}

// ================================================================================
// Availability
// ================================================================================

func (s *BookingServiceTestSuite) TestGetAvailablePlaceCount() {
	cases := []struct {
		name  string
		rooms []booking.Room
		want  int
	}{
		{name: "single room", rooms: []booking.Room{booking.NewRoom("1.1", "Single", 5)}, want: 5},
		{name: "two rooms", rooms: []booking.Room{booking.NewRoom("1.1", "A", 5), booking.NewRoom("1.2", "B", 5)}, want: 10},
		{name: "no rooms", rooms: []booking.Room{}, want: 0},
		{name: "nil rooms", rooms: nil, want: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.rooms.EXPECT().GetAvailableRooms(gomock.Any()).Return(tc.rooms, nil).Times(1)

			got, err := s.service.GetAvailablePlaceCount(s.ctx)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}

	s.Run("reflects inventory changes between calls", func() {
		gomock.InOrder(
			s.rooms.EXPECT().GetAvailableRooms(gomock.Any()).
				Return([]booking.Room{booking.NewRoom("1.1", "Single", 5)}, nil),
			s.rooms.EXPECT().GetAvailableRooms(gomock.Any()).
				Return([]booking.Room{}, nil),
		)

		first, err := s.service.GetAvailablePlaceCount(s.ctx)
		s.Require().NoError(err)
		second, err := s.service.GetAvailablePlaceCount(s.ctx)
		s.Require().NoError(err)

		s.Equal(5, first)
		s.Equal(0, second)
	})

	s.Run("inventory failure propagates", func() {
		boom := errors.New("connection refused")
		s.rooms.EXPECT().GetAvailableRooms(gomock.Any()).Return(nil, boom)

		_, err := s.service.GetAvailablePlaceCount(s.ctx)
		s.ErrorIs(err, boom)
	})
}

// ================================================================================
// MakeBooking
// ================================================================================

func (s *BookingServiceTestSuite) TestMakeBooking() {
	s.Run("success: pay later skips the gateway", func() {
		req := builder.NewBookingBuilder().Build()

		gomock.InOrder(
			s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), req).Return("1.3", nil),
			s.bookings.EXPECT().Save(gomock.Any(), req.WithRoomID("1.3")).Return(nil),
			s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), req.WithRoomID("1.3")).Return(nil),
		)
		s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		id, err := s.service.MakeBooking(s.ctx, req)
		s.Require().NoError(err)
		s.Equal("1", id)
	})

	s.Run("success: prepaid charges the exact price once", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()
		var charged float64

		gomock.InOrder(
			s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), req).Return("1.3", nil),
			s.payments.EXPECT().Charge(gomock.Any(), req.WithRoomID("1.3"), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ booking.BookingRequest, amount float64) (string, error) {
					charged = amount
					return "tok_1", nil
				}).Times(1),
			s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
			s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil),
		)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(400.0, charged)
	})

	s.Run("success: prepaid two nights one room charges 100", func() {
		req := builder.NewBookingBuilder().
			WithStay(booking.Date(2022, time.January, 1), booking.Date(2022, time.January, 3)).
			WithRoomCount(1).
			WithPrepaid(true).
			Build()

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("2.1", nil)
		s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), 100.0).Return("tok_2", nil).Times(1)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.Require().NoError(err)
	})

	s.Run("success: saved request carries the allocated room", func() {
		req := builder.NewBookingBuilder().Build()
		var saved booking.BookingRequest

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r booking.BookingRequest) error {
				saved = r
				return nil
			})
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.Require().NoError(err)
		s.NotEmpty(saved.RoomID)
		s.Equal("1.3", saved.RoomID)
		s.Empty(req.RoomID, "caller's request is not mutated")
	})

	s.Run("success: missing id is generated", func() {
		req := builder.NewBookingBuilder().WithID("").Build()
		var saved booking.BookingRequest

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r booking.BookingRequest) error {
				saved = r
				return nil
			})
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		id, err := s.service.MakeBooking(s.ctx, req)
		s.Require().NoError(err)
		s.NotEmpty(id)
		s.Equal(saved.ID, id)
	})

	s.Run("error: no room available stops the flow", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()
		noRoom := errs.Mark(errs.New("all rooms taken"), booking.ErrNoRoomAvailable)

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("", noRoom)
		s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Times(0)

		id, err := s.service.MakeBooking(s.ctx, req)
		s.Empty(id)
		s.True(errs.Is(err, booking.ErrNoRoomAvailable))
	})

	s.Run("error: empty room id from inventory is treated as no room", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("", nil)
		s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Times(0)

		id, err := s.service.MakeBooking(s.ctx, req)
		s.Empty(id)
		s.Require().Error(err)
		s.True(errs.Is(err, booking.ErrNoRoomAvailable))
	})

	s.Run("error: declined payment is not saved and the room is released", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()
		declined := errs.Mark(errs.New("insufficient funds"), booking.ErrPaymentDeclined)

		gomock.InOrder(
			s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil),
			s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), 400.0).Return("", declined),
			s.rooms.EXPECT().ReleaseRoom(gomock.Any(), "1.3").Return(nil).Times(1),
		)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.True(errs.Is(err, booking.ErrPaymentDeclined))
		s.Equal("charge prepaid booking: insufficient funds", err.Error())
	})

	s.Run("error: release failure after decline keeps the declined error", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()
		declined := errs.Mark(errs.New("over limit"), booking.ErrPaymentDeclined)

		s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil)
		s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), 400.0).Return("", declined)
		s.rooms.EXPECT().ReleaseRoom(gomock.Any(), "1.3").Return(errors.New("connection reset")).Times(1)
		s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.True(errs.Is(err, booking.ErrPaymentDeclined))
		s.Equal("charge prepaid booking: over limit", err.Error())
	})

	s.Run("error: save failure skips notification and releases the room", func() {
		req := builder.NewBookingBuilder().Build()
		dbErr := infra.WrapRepoErr("failed to save booking", errors.New("connection reset"))

		gomock.InOrder(
			s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil),
			s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr),
			s.rooms.EXPECT().ReleaseRoom(gomock.Any(), "1.3").Return(nil).Times(1),
		)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.MakeBooking(s.ctx, req)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})

	s.Run("error: notification failure keeps save and payment", func() {
		req := builder.NewBookingBuilder().WithPrepaid(true).Build()
		notifyErr := errs.Mark(errs.New("smtp unavailable"), booking.ErrNotificationFailed)

		gomock.InOrder(
			s.rooms.EXPECT().FindAvailableRoomID(gomock.Any(), gomock.Any()).Return("1.3", nil),
			s.payments.EXPECT().Charge(gomock.Any(), gomock.Any(), 400.0).Return("tok_3", nil).Times(1),
			s.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1),
			s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(notifyErr),
		)
		s.rooms.EXPECT().ReleaseRoom(gomock.Any(), gomock.Any()).Times(0)
		s.bookings.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		id, err := s.service.MakeBooking(s.ctx, req)
		s.Empty(id)
		s.True(errs.Is(err, booking.ErrNotificationFailed))
	})
}

// ================================================================================
// CancelBooking / GetBooking
// ================================================================================

func (s *BookingServiceTestSuite) TestCancelBooking() {
	s.Run("success: releases the room then deletes", func() {
		stored := builder.NewBookingBuilder().WithRoomID("1.3").Build()

		gomock.InOrder(
			s.bookings.EXPECT().Get(gomock.Any(), "1").Return(stored, nil),
			s.rooms.EXPECT().ReleaseRoom(gomock.Any(), "1.3").Return(nil),
			s.bookings.EXPECT().Delete(gomock.Any(), "1").Return(nil),
		)

		s.Require().NoError(s.service.CancelBooking(s.ctx, "1"))
	})

	s.Run("success: unallocated booking is only deleted", func() {
		stored := builder.NewBookingBuilder().Build()

		s.bookings.EXPECT().Get(gomock.Any(), "1").Return(stored, nil)
		s.rooms.EXPECT().ReleaseRoom(gomock.Any(), gomock.Any()).Times(0)
		s.bookings.EXPECT().Delete(gomock.Any(), "1").Return(nil)

		s.Require().NoError(s.service.CancelBooking(s.ctx, "1"))
	})

	s.Run("error: unknown id is not found and nothing is deleted", func() {
		s.bookings.EXPECT().Get(gomock.Any(), "missing").
			Return(booking.BookingRequest{}, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
		s.rooms.EXPECT().ReleaseRoom(gomock.Any(), gomock.Any()).Times(0)
		s.bookings.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := s.service.CancelBooking(s.ctx, "missing")
		s.Require().Error(err)
		s.True(errs.Is(err, booking.ErrBookingNotFound))
	})

	s.Run("error: release failure keeps the booking", func() {
		stored := builder.NewBookingBuilder().WithRoomID("1.3").Build()
		boom := errors.New("connection reset")

		s.bookings.EXPECT().Get(gomock.Any(), "1").Return(stored, nil)
		s.rooms.EXPECT().ReleaseRoom(gomock.Any(), "1.3").Return(boom)
		s.bookings.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.service.CancelBooking(s.ctx, "1"), boom)
	})
}

func (s *BookingServiceTestSuite) TestGetBooking() {
	s.Run("found", func() {
		stored := builder.NewBookingBuilder().WithRoomID("1.3").Build()
		s.bookings.EXPECT().Get(gomock.Any(), "1").Return(stored, nil)

		got, err := s.service.GetBooking(s.ctx, "1")
		s.Require().NoError(err)
		s.Equal(stored, got)
	})

	s.Run("not found", func() {
		s.bookings.EXPECT().Get(gomock.Any(), "nope").
			Return(booking.BookingRequest{}, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.service.GetBooking(s.ctx, "nope")
		s.True(errs.Is(err, booking.ErrBookingNotFound))
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}
