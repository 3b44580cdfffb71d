package secrethub

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// Secret describes a secret stored in SecretHub.
type Secret struct {
	SecretID      uuid.UUID
	DirectoryID   uuid.UUID
	RepositoryID  uuid.UUID
	Name          string
	BlindName     string
	VersionCount  int
	LatestVersion int
	Status        string
	CreatedAt     time.Time
}

// SecretVersion is one version of a secret together with its decrypted data.
type SecretVersion struct {
	SecretVersionID uuid.UUID
	Secret          Secret
	Version         int
	Data            string
	CreatedAt       time.Time
	Status          string
}

// parseID parses canonical UUID text. An empty identifier maps to uuid.Nil.
func parseID(field, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q: %v", ErrMalformedSecret, field, s, err)
	}
	return id, nil
}

// epochTime converts native epoch seconds to local calendar time.
func epochTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func newSecret(raw native.RawSecret) (Secret, error) {
	secretID, err := parseID("SecretID", raw.SecretID)
	if err != nil {
		return Secret{}, err
	}
	dirID, err := parseID("DirID", raw.DirID)
	if err != nil {
		return Secret{}, err
	}
	repoID, err := parseID("RepoID", raw.RepoID)
	if err != nil {
		return Secret{}, err
	}

	return Secret{
		SecretID:      secretID,
		DirectoryID:   dirID,
		RepositoryID:  repoID,
		Name:          raw.Name,
		BlindName:     raw.BlindName,
		VersionCount:  int(raw.VersionCount),
		LatestVersion: int(raw.LatestVersion),
		Status:        raw.Status,
		CreatedAt:     epochTime(raw.CreatedAt),
	}, nil
}

func newSecretVersion(raw native.RawSecretVersion) (*SecretVersion, error) {
	versionID, err := parseID("SecretVersionID", raw.SecretVersionID)
	if err != nil {
		return nil, err
	}
	secret, err := newSecret(raw.Secret)
	if err != nil {
		return nil, err
	}

	return &SecretVersion{
		SecretVersionID: versionID,
		Secret:          secret,
		Version:         int(raw.Version),
		Data:            raw.Data,
		CreatedAt:       epochTime(raw.CreatedAt),
		Status:          raw.Status,
	}, nil
}
