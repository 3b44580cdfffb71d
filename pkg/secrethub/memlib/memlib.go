// Package memlib is an in-memory stand-in for libsecrethub. It honors the
// native contract declared in package native, including its error messages,
// so code written against a Client can be exercised without the shared
// library or a SecretHub account.
//
// It is a contract double, not a backend: nothing is encrypted or persisted.
package memlib

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

const statusOK = "ok"

// Native error messages reproduced by the stand-in.
const (
	msgInvalidClient = "invalid client object"
)

func msgSecretNotFound(path string) string {
	return fmt.Sprintf("cannot find secret: %q: Secret not found (server.secret_not_found) ", path)
}

func msgVersionNotFound(path string) string {
	return fmt.Sprintf("cannot find secret version: %q: Secret version not found (server.secret_version_not_found) ", path)
}

func msgInvalidPath(path string) string {
	return fmt.Sprintf("%q is not a valid secret path (api.invalid_secret_path) ", path)
}

type version struct {
	id      uuid.UUID
	number  int
	data    string
	created int64
}

type secret struct {
	id        uuid.UUID
	dirID     uuid.UUID
	repoID    uuid.UUID
	name      string
	blindName string
	created   int64
	versions  []version
}

func (s *secret) latest() version {
	return s.versions[len(s.versions)-1]
}

func (s *secret) raw() native.RawSecret {
	latest := s.latest()
	return native.RawSecret{
		SecretID:      s.id.String(),
		DirID:         s.dirID.String(),
		RepoID:        s.repoID.String(),
		Name:          s.name,
		BlindName:     s.blindName,
		VersionCount:  int32(len(s.versions)),
		LatestVersion: int32(latest.number),
		Status:        statusOK,
		CreatedAt:     s.created,
	}
}

// Library implements native.Library in memory. It is safe for concurrent
// use on one handle.
type Library struct {
	mu      sync.Mutex
	next    native.Handle
	clients map[native.Handle]struct{}
	secrets map[string]*secret
	dirs    map[string]uuid.UUID

	createErr string
	environ   func() []string
	now       func() time.Time

	released int
}

var _ native.Library = (*Library)(nil)

// Option configures a Library.
type Option func(*Library)

// WithEnviron sets the environment scanned by ResolveEnv. The default is
// os.Environ.
func WithEnviron(fn func() []string) Option {
	return func(l *Library) { l.environ = fn }
}

// WithClock sets the time source used for creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(l *Library) { l.now = fn }
}

// WithCreateError makes every NewClient call fail with msg.
func WithCreateError(msg string) Option {
	return func(l *Library) { l.createErr = msg }
}

// New returns an empty in-memory library.
func New(opts ...Option) *Library {
	l := &Library{
		next:    1,
		clients: make(map[native.Handle]struct{}),
		secrets: make(map[string]*secret),
		dirs:    make(map[string]uuid.UUID),
		environ: os.Environ,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Live returns the number of handles created and not yet released.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Released returns how many times DeleteClient released a live handle.
func (l *Library) Released() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.released
}

func (l *Library) NewClient(errOut *native.ErrorSlot) native.Handle {
	if l.createErr != "" {
		errOut.Set(l.createErr)
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.next
	l.next++
	l.clients[h] = struct{}{}
	return h
}

func (l *Library) DeleteClient(h native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.clients[h]; ok {
		delete(l.clients, h)
		l.released++
	}
}

// begin locks the library and validates h. On failure the lock is released
// and errOut is set.
func (l *Library) begin(h native.Handle, errOut *native.ErrorSlot) bool {
	l.mu.Lock()
	if _, ok := l.clients[h]; !ok {
		l.mu.Unlock()
		errOut.Set(msgInvalidClient)
		return false
	}
	return true
}

func (l *Library) Read(h native.Handle, path string, errOut *native.ErrorSlot) native.RawSecretVersion {
	if !l.begin(h, errOut) {
		return native.RawSecretVersion{}
	}
	defer l.mu.Unlock()

	s, v, msg := l.lookup(path)
	if msg != "" {
		errOut.Set(msg)
		return native.RawSecretVersion{}
	}
	return native.RawSecretVersion{
		SecretVersionID: v.id.String(),
		Secret:          s.raw(),
		Version:         int32(v.number),
		Data:            v.data,
		CreatedAt:       v.created,
		Status:          statusOK,
	}
}

func (l *Library) ReadString(h native.Handle, path string, errOut *native.ErrorSlot) string {
	if !l.begin(h, errOut) {
		return ""
	}
	defer l.mu.Unlock()

	_, v, msg := l.lookup(path)
	if msg != "" {
		errOut.Set(msg)
		return ""
	}
	return v.data
}

func (l *Library) Resolve(h native.Handle, ref string, errOut *native.ErrorSlot) string {
	if !l.begin(h, errOut) {
		return ""
	}
	defer l.mu.Unlock()

	out, msg := l.resolve(ref)
	if msg != "" {
		errOut.Set(msg)
		return ""
	}
	return out
}

func (l *Library) ResolveEnv(h native.Handle, errOut *native.ErrorSlot) string {
	if !l.begin(h, errOut) {
		return ""
	}
	defer l.mu.Unlock()

	env := make(map[string]string)
	for _, kv := range l.environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out, msg := l.resolve(v)
		if msg != "" {
			errOut.Set(msg)
			return ""
		}
		env[k] = out
	}

	payload, err := json.Marshal(env)
	if err != nil {
		errOut.Set(err.Error())
		return ""
	}
	return string(payload)
}

func (l *Library) Exists(h native.Handle, path string, errOut *native.ErrorSlot) bool {
	if !l.begin(h, errOut) {
		return false
	}
	defer l.mu.Unlock()

	p, _, err := parsePath(path)
	if err != nil {
		errOut.Set(msgInvalidPath(path))
		return false
	}
	_, ok := l.secrets[key(p)]
	return ok
}

func (l *Library) Remove(h native.Handle, path string, errOut *native.ErrorSlot) {
	if !l.begin(h, errOut) {
		return
	}
	defer l.mu.Unlock()

	p, _, err := parsePath(path)
	if err != nil {
		errOut.Set(msgInvalidPath(path))
		return
	}
	delete(l.secrets, key(p))
}

func (l *Library) Write(h native.Handle, path, value string, errOut *native.ErrorSlot) {
	if !l.begin(h, errOut) {
		return
	}
	defer l.mu.Unlock()

	p, pinned, err := parsePath(path)
	if err != nil || pinned != "" {
		errOut.Set(msgInvalidPath(path))
		return
	}

	now := l.now().Unix()
	k := key(p)
	s, ok := l.secrets[k]
	if !ok {
		s = &secret{
			id:        uuid.New(),
			dirID:     l.dirID(p.dir()),
			repoID:    l.dirID(p.repo()),
			name:      p.name(),
			blindName: blindName(k),
			created:   now,
		}
		l.secrets[k] = s
	}
	s.versions = append(s.versions, version{
		id:      uuid.New(),
		number:  len(s.versions) + 1,
		data:    value,
		created: now,
	})
}

// resolve expects l.mu held.
func (l *Library) resolve(ref string) (string, string) {
	path, ok := strings.CutPrefix(ref, native.ReferencePrefix)
	if !ok {
		return ref, ""
	}
	_, v, msg := l.lookup(path)
	if msg != "" {
		return "", msg
	}
	return v.data, ""
}

// lookup expects l.mu held. It returns a non-empty message on failure.
func (l *Library) lookup(path string) (*secret, version, string) {
	p, pinned, err := parsePath(path)
	if err != nil {
		return nil, version{}, msgInvalidPath(path)
	}
	s, ok := l.secrets[key(p)]
	if !ok {
		return nil, version{}, msgSecretNotFound(path)
	}
	if pinned == "" || pinned == "latest" {
		return s, s.latest(), ""
	}
	n, err := strconv.Atoi(pinned)
	if err != nil || n < 1 || n > len(s.versions) {
		return nil, version{}, msgVersionNotFound(path)
	}
	return s, s.versions[n-1], ""
}

// dirID expects l.mu held.
func (l *Library) dirID(dir string) uuid.UUID {
	id, ok := l.dirs[dir]
	if !ok {
		id = uuid.New()
		l.dirs[dir] = id
	}
	return id
}

func blindName(k string) string {
	sum := sha256.Sum256([]byte(k))
	return base64.URLEncoding.EncodeToString(sum[:])
}
