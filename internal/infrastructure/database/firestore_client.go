package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"licitax_advisor/internal/usecase/interfaces"
)

// Firestore is the lazily-initialized, process-wide document store handle.
//
// Initialization attempts, in order:
//  1. FIREBASE_SERVICE_ACCOUNT: a full service-account JSON blob (project id
//     read from the blob itself).
//  2. Application Default Credentials, with the project id taken from
//     GOOGLE_CLOUD_PROJECT (or GCLOUD_PROJECT).
//
// Initialization runs at most once. A failure is recorded and every later
// Acquire returns an error wrapping interfaces.ErrStoreUnavailable, which the
// HTTP layer surfaces as 503 rather than a data error.
type Firestore struct {
	once    sync.Once
	client  *firestore.Client
	initErr error
}

func NewFirestore() *Firestore {
	return &Firestore{}
}

func (f *Firestore) Acquire(ctx context.Context) (*firestore.Client, error) {
	f.once.Do(func() {
		f.client, f.initErr = connect(ctx)
		if f.initErr != nil {
			log.Printf("[database] firestore initialization failed err=%v", f.initErr)
			return
		}
		log.Printf("[database] firestore client initialized")
	})
	if f.initErr != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrStoreUnavailable, f.initErr)
	}
	return f.client, nil
}

func connect(ctx context.Context) (*firestore.Client, error) {
	if blob := strings.TrimSpace(os.Getenv("FIREBASE_SERVICE_ACCOUNT")); blob != "" {
		var sa struct {
			ProjectID string `json:"project_id"`
		}
		if err := json.Unmarshal([]byte(blob), &sa); err != nil {
			return nil, fmt.Errorf("invalid FIREBASE_SERVICE_ACCOUNT json: %w", err)
		}
		if sa.ProjectID == "" {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT is missing project_id")
		}
		return firestore.NewClient(ctx, sa.ProjectID, option.WithCredentialsJSON([]byte(blob)))
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT")
	}
	if projectID == "" {
		return nil, errors.New("neither FIREBASE_SERVICE_ACCOUNT nor GOOGLE_CLOUD_PROJECT is set")
	}
	return firestore.NewClient(ctx, projectID)
}
