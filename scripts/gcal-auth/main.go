// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access for goal
// deadlines and store the OAuth token at google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json] [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"questlog/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, gcalendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Restart questlog to mirror goal deadlines.\n", tokenPath)
}
