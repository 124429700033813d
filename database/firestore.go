package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/woosuta/woosuta-backend/config"
)

// Clients bundles the Firebase handles the application needs: Firestore
// for storage, Auth for ID token verification.
type Clients struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Connect initializes the Firebase app and derives the Firestore and
// Auth clients from it. Credentials come from the configured service
// account file, or application-default credentials when the path is
// empty.
func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	if cfg.FirebaseProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	fbConfig := &firebase.Config{ProjectID: cfg.FirebaseProjectID}

	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("auth client: %w", err)
	}

	return &Clients{App: app, Firestore: fs, Auth: authClient}, nil
}

// Close releases the Firestore connection.
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
