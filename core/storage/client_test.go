package storage_test

import (
	"testing"

	"empanada-tracker/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{
			name: "Plain endpoint",
			cfg:  storage.Config{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", Bucket: "empanada-reports"},
		},
		{
			name: "Scheme is stripped",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "key", SecretKey: "secret"},
		},
		{
			name: "TLS with region",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "key", SecretKey: "secret", UseSSL: true, Region: "us-east-1", TimeoutSeconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
