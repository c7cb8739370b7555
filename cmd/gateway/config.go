package main

import "time"

type Config struct {
	ServerAddress string        `env:"MESSENGER_SERVER_ADDR,default=localhost:51075" validate:"required,hostname_port"`
	HTTPHost      string        `env:"MESSENGER_HTTP_HOST,default=0.0.0.0" validate:"required"`
	HTTPPort      int           `env:"MESSENGER_HTTP_PORT,default=8080" validate:"gte=1,lte=65535"`
	RetryDelay    time.Duration `env:"STREAM_RETRY_DELAY,default=200ms" validate:"gt=0"`
	LogLevel      string        `env:"LOG_LEVEL,default=info" validate:"required"`
}
