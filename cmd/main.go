package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finance-portal/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	if err := server.Start(); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
}
