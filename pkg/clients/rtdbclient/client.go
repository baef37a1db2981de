package rtdbclient

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/ymatsuda/gl-console/internal/config"
)

// Client wraps the Realtime Database client behind typed reads and writes
// for the console's document paths.
type Client struct {
	database *db.Client
	ctx      context.Context
}

// NewClient creates a new Realtime Database client using the service
// account credentials from the configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: cfg.DatabaseURL},
		option.WithCredentialsFile(cfg.CredentialsFile),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	database, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	return &Client{database: database, ctx: ctx}, nil
}

// NewClientWithTokenSource creates a new client from an existing token
// source instead of a credentials file.
func NewClientWithTokenSource(ctx context.Context, databaseURL string, tokenSource oauth2.TokenSource) (*Client, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: databaseURL},
		option.WithTokenSource(tokenSource),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	database, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	return &Client{database: database, ctx: ctx}, nil
}

// Database returns the underlying database client for direct access.
func (c *Client) Database() *db.Client {
	return c.database
}

// Document path layout under the database root.
func eventPath(eventID string) string        { return "events/" + eventID }
func schedulesPath(eventID string) string    { return "events/" + eventID + "/schedules" }
func glConfigPath(eventID string) string     { return "glConfigs/" + eventID }
func applicationsPath(eventID string) string { return "glApplications/" + eventID }
func assignmentsPath(eventID string) string  { return "glAssignments/" + eventID }
