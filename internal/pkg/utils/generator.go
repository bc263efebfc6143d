package utils

import (
	"doctors-portal-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func BuildBookingLockKey(appointmentDate, email, treatment string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingLockFormat, appointmentDate, email, treatment)
}
