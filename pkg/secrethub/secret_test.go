package secrethub

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

func TestNewSecretVersionEmptyIdentifiers(t *testing.T) {
	v, err := newSecretVersion(native.RawSecretVersion{
		Secret:  native.RawSecret{Name: "test", VersionCount: 1, LatestVersion: 1},
		Version: 1,
		Data:    "SUCCESS",
	})
	if err != nil {
		t.Fatalf("newSecretVersion: %v", err)
	}
	if v.SecretVersionID != uuid.Nil || v.Secret.SecretID != uuid.Nil {
		t.Fatalf("expected nil identifiers, got %s and %s", v.SecretVersionID, v.Secret.SecretID)
	}
	if !v.CreatedAt.Equal(time.Unix(0, 0)) {
		t.Fatalf("CreatedAt = %v, want epoch", v.CreatedAt)
	}
}

func TestNewSecretVersionBadIdentifier(t *testing.T) {
	_, err := newSecretVersion(native.RawSecretVersion{
		SecretVersionID: "529a8a5b-d6a4-4e6a-a2d9-1d3c2b2bbf1e",
		Secret:          native.RawSecret{DirID: "not-a-uuid"},
	})
	if !errors.Is(err, ErrMalformedSecret) {
		t.Fatalf("expected ErrMalformedSecret, got %v", err)
	}
}

func TestEpochTimeIsLocal(t *testing.T) {
	got := epochTime(1612384987)
	if got.Location() != time.Local {
		t.Fatalf("location = %v, want Local", got.Location())
	}
	if got.Unix() != 1612384987 {
		t.Fatalf("Unix() = %d", got.Unix())
	}
}
