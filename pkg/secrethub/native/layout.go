package native

// SecretFieldOrder is the native declaration order of struct Secret.
var SecretFieldOrder = []string{
	"SecretID",
	"DirID",
	"RepoID",
	"Name",
	"BlindName",
	"VersionCount",
	"LatestVersion",
	"Status",
	"CreatedAt",
}

// SecretVersionFieldOrder is the native declaration order of struct
// SecretVersion.
var SecretVersionFieldOrder = []string{
	"SecretVersionID",
	"Secret",
	"Version",
	"Data",
	"CreatedAt",
	"Status",
}

// RawSecret mirrors struct Secret. Field order must match SecretFieldOrder.
type RawSecret struct {
	SecretID      string
	DirID         string
	RepoID        string
	Name          string
	BlindName     string
	VersionCount  int32
	LatestVersion int32
	Status        string
	CreatedAt     int64 // seconds since the Unix epoch
}

// RawSecretVersion mirrors struct SecretVersion, which embeds struct Secret
// by value. Field order must match SecretVersionFieldOrder.
type RawSecretVersion struct {
	SecretVersionID string
	Secret          RawSecret
	Version         int32
	Data            string
	CreatedAt       int64 // seconds since the Unix epoch
	Status          string
}
