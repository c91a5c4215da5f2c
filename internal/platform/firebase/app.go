package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config holds Firebase configuration.
type Config struct {
	ProjectID string
	// CredentialsFile is a path to a service account JSON file. Optional:
	// without it the SDK falls back to application default credentials.
	CredentialsFile string
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() Config {
	return Config{
		ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

// Clients holds the initialized Firebase clients. They are constructed
// once at process start and injected into the services; never rebuilt
// per request.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// InitializeClients sets up the Firebase app and returns its clients.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, err
	}

	ac, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	fc, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{Auth: ac, Firestore: fc}, nil
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
