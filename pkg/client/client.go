// Package client builds authenticated Google API clients from service
// account credentials.
package client

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// New creates an HTTP client from service account credentials. The
// credentials JSON is read from credsFile when it exists, otherwise from
// credsJSON (the raw blob, typically the GOOGLE_CREDENTIALS_JSON
// environment variable).
func New(ctx context.Context, credsFile, credsJSON string, scopes ...string) (*http.Client, error) {
	data, err := readCredentials(credsFile, credsJSON)
	if err != nil {
		return nil, err
	}

	return NewFromJSON(ctx, data, scopes...)
}

// NewFromJSON creates an HTTP client from raw service account JSON.
func NewFromJSON(ctx context.Context, credsJSON []byte, scopes ...string) (*http.Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}

	return oauth2.NewClient(ctx, creds.TokenSource), nil
}

func readCredentials(credsFile, credsJSON string) ([]byte, error) {
	if credsFile != "" {
		data, err := os.ReadFile(credsFile)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
	}

	if credsJSON != "" {
		return []byte(credsJSON), nil
	}

	return nil, fmt.Errorf("no Google credentials found: provide %s or set GOOGLE_CREDENTIALS_JSON", credsFile)
}
