package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarEventsScope is the only OAuth scope the client needs.
const CalendarEventsScope = calendar.CalendarEventsScope

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts either Service Account JSON or OAuth
// installed-app JSON plus a stored token at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, CalendarEventsScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("oauth desktop credentials need a stored token at %q: %w", tokenPath, tokenErr)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateDeadline inserts an all-day event ending on req.Date.
func (c *Client) CreateDeadline(ctx context.Context, req CreateDeadlineRequest) (*Event, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("deadline date is required")
	}

	day := req.Date.Format(dateLayout)
	// All-day end dates are exclusive.
	next := req.Date.AddDate(0, 0, 1).Format(dateLayout)

	event := &calendar.Event{
		Summary:      req.Summary,
		Description:  req.Description,
		Start:        &calendar.EventDateTime{Date: day},
		End:          &calendar.EventDateTime{Date: next},
		Transparency: "transparent",
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create deadline event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Date:     req.Date,
	}, nil
}

// DeleteEvent removes an event created by CreateDeadline.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}
