package main

type Config struct {
	Host     string `env:"MESSENGER_HOST,default=0.0.0.0" validate:"required"`
	Port     int    `env:"MESSENGER_SERVER_PORT,default=51075" validate:"gte=1,lte=65535"`
	LogLevel string `env:"LOG_LEVEL,default=info" validate:"required"`
}
