package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBookingSetExtra(t *testing.T) {
	booking := Booking{AppointmentDate: "Aug 18, 2022", Email: "patient@example.com"}
	booking.SetExtra(map[string]interface{}{
		"referral": "clinic-web",
		"email":    "spoofed@example.com",
		"_id":      "client-id",
	})

	assert.Equal(t, map[string]interface{}{"referral": "clinic-web"}, booking.Extra)
	assert.Equal(t, "patient@example.com", booking.Email)
}

func TestBookingSetExtraWithoutUnknownFields(t *testing.T) {
	booking := Booking{}
	booking.SetExtra(map[string]interface{}{"treatment": "Fluoride Treatment"})
	booking.SetExtra(nil)

	assert.Nil(t, booking.Extra)
}

func TestBookingExtraIsStoredInline(t *testing.T) {
	booking := Booking{AppointmentDate: "Aug 18, 2022", Treatment: "Teeth Orthodontics"}
	booking.SetExtra(map[string]interface{}{"referral": "clinic-web"})

	raw, err := bson.Marshal(booking)
	require.NoError(t, err)

	var document bson.M
	require.NoError(t, bson.Unmarshal(raw, &document))
	assert.Equal(t, "clinic-web", document["referral"])
	assert.Equal(t, "Aug 18, 2022", document["appointmentDate"])
	assert.NotContains(t, document, "extra")

	var decoded Booking
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "clinic-web", decoded.Extra["referral"])
	assert.Equal(t, "Teeth Orthodontics", decoded.ConvertIntoResponse().Treatment)
	assert.Equal(t, "clinic-web", decoded.ConvertIntoResponse().Extra["referral"])
}
