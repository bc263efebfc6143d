package bookingevents

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublishBookingCreated(t *testing.T) {
	createdAt := time.Date(2022, time.August, 18, 9, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		ID:              "62fdc0b4c6a1f3a3b3c0ffee",
		AppointmentDate: "Aug 18, 2022",
		Treatment:       "Teeth Orthodontics",
		Slot:            "10.00 AM - 10.30 AM",
		Email:           "patient@example.com",
		CreatedAt:       createdAt,
	}

	t.Run("publishes persistent JSON message to the queue", func(t *testing.T) {
		channel := new(MockChannel)
		publisher := &bookingEventPublisher{Channel: channel, Queue: "booking_created", Log: zap.NewNop()}

		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "booking_created", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		err := publisher.PublishBookingCreated(context.Background(), booking)
		require.NoError(t, err)

		assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)

		var event requests.BookingCreatedEvent
		require.NoError(t, json.Unmarshal(published.Body, &event))
		assert.Equal(t, constvars.EventBookingCreated, event.Event)
		assert.Equal(t, booking.ID, event.BookingID)
		assert.Equal(t, booking.Email, event.Email)
		assert.True(t, createdAt.Equal(event.CreatedAt))
		channel.AssertExpectations(t)
	})

	t.Run("wraps broker failure", func(t *testing.T) {
		channel := new(MockChannel)
		publisher := &bookingEventPublisher{Channel: channel, Queue: "booking_created", Log: zap.NewNop()}
		channel.On("PublishWithContext", mock.Anything, "", "booking_created", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		err := publisher.PublishBookingCreated(context.Background(), booking)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "booking_created")
		assert.True(t, exceptions.HasStatusCode(err, constvars.StatusInternalServerError))
	})
}
