package config

import "time"

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		MaxRequests                int
		TokenMaxRequestsPerMinute  int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		// AppointmentOptionsCacheTTL is how long the template catalog stays in redis.
		AppointmentOptionsCacheTTL time.Duration
		// BookingLockTTL bounds how long a booking triple stays locked if the holder dies.
		BookingLockTTL time.Duration
		// Booking attempts per email are limited to BookingMaxAttempts per BookingAttemptWindow.
		BookingAttemptWindow time.Duration
		BookingMaxAttempts   int
		RabbitMQBookingQueue string
	}

	JWT struct {
		Secret string
	}

	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
