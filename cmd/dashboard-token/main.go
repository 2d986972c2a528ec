package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"answering-service/internal/auth/processor"
	"answering-service/internal/observability"

	"github.com/joho/godotenv"
)

// dashboard-token prints a bearer token for the /api dashboard endpoints.
func main() {
	subject := flag.String("subject", "", "operator the token is issued to")
	ttl := flag.Duration("ttl", 24*time.Hour, "how long the token stays valid")
	flag.Parse()

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	logger := observability.NewLogger()
	ctx := context.Background()

	auth := processor.New(os.Getenv("DASHBOARD_JWT_SECRET"), logger)
	token, err := auth.IssueToken(ctx, *subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
