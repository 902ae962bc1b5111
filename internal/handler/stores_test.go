package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"dmchat/internal/app/attachment"
	"dmchat/internal/app/message"
	"dmchat/internal/app/storage"
	"dmchat/internal/app/user"
	"dmchat/internal/configs"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/req"
)

// In-memory store fakes mirroring the contracts of the pgx-backed stores,
// so handler behavior can be exercised without a database.

var fakeNameFormat = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type fakeUserStore struct {
	mu    sync.Mutex
	seq   int
	users []user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{}
}

func (s *fakeUserStore) Create(ctx context.Context, name, passwordHash, imageRef string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fakeNameFormat.MatchString(name) || passwordHash == "" || imageRef == "" {
		return user.User{}, user.ErrInvalidInput
	}
	for _, u := range s.users {
		if u.Name == name {
			return user.User{}, user.ErrDuplicateName
		}
	}

	s.seq++
	u := user.User{
		ID:           user.ID(fmt.Sprintf("u%d", s.seq)),
		Name:         name,
		PasswordHash: passwordHash,
		ImageRef:     imageRef,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *fakeUserStore) GetByCredentials(ctx context.Context, name, passwordHash string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name && u.PasswordHash == passwordHash {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *fakeUserStore) GetByID(ctx context.Context, id user.ID) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *fakeUserStore) List(ctx context.Context) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *fakeUserStore) UpdateImage(ctx context.Context, id user.ID, imageRef string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if imageRef == "" {
		return user.User{}, user.ErrInvalidInput
	}
	for i, u := range s.users {
		if u.ID == id {
			s.users[i].ImageRef = imageRef
			return s.users[i], nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type fakeMessageStore struct {
	mu       sync.Mutex
	seq      int
	users    *fakeUserStore
	messages []message.Message
}

func newFakeMessageStore(users *fakeUserStore) *fakeMessageStore {
	return &fakeMessageStore{users: users}
}

func (s *fakeMessageStore) Create(ctx context.Context, from, to user.ID, body, imageRef string) (message.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return message.Message{}, message.ErrEmptyBody
	}
	if _, err := s.users.GetByID(ctx, to); err != nil {
		return message.Message{}, message.ErrUnknownRecipient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	m := message.Message{
		ID:       message.ID(fmt.Sprintf("m%d", s.seq)),
		From:     from,
		To:       to,
		Body:     body,
		ImageRef: imageRef,
		SentAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.messages = append(s.messages, m)
	return m, nil
}

func (s *fakeMessageStore) ListByRecipient(ctx context.Context, to user.ID) ([]message.Received, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []message.Received{}
	for _, m := range s.messages {
		if m.To != to {
			continue
		}
		sender, err := s.users.GetByID(ctx, m.From)
		if err != nil {
			return nil, err
		}
		out = append(out, message.Received{
			ID: m.ID,
			From: message.Sender{
				ID:       sender.ID,
				Name:     sender.Name,
				ImageRef: sender.ImageRef,
			},
			To:       m.To,
			Body:     m.Body,
			ImageRef: m.ImageRef,
			SentAt:   m.SentAt,
		})
	}
	return out, nil
}

func (s *fakeMessageStore) Delete(ctx context.Context, id message.ID, requester user.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if m.ID == id && (m.From == requester || m.To == requester) {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return message.ErrNotFound
}

// --- Test harness helpers ---

const testSecret = "handler-test-secret"

type testEnv struct {
	router   http.Handler
	users    *fakeUserStore
	messages *fakeMessageStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &configs.AppConfig{
		Environment:    "development",
		Port:           8080,
		JWTSecret:      testSecret,
		StorageBackend: configs.StorageBackendLocal,
		ImageDir:       t.TempDir(),
		MaxBodyBytes:   req.MaxJSONBodyBytes,
	}

	objects, err := storage.NewStorageService(storage.ServiceConfig{
		Backend:  storage.BackendLocal,
		LocalDir: cfg.ImageDir,
	})
	if err != nil {
		t.Fatalf("NewStorageService() error = %v", err)
	}

	users := newFakeUserStore()
	messages := newFakeMessageStore(users)

	deps := &AppDeps{
		Config:      cfg,
		Users:       users,
		Messages:    messages,
		Attachments: attachment.NewStore(objects),
	}

	return &testEnv{
		router:   Router(deps),
		users:    users,
		messages: messages,
	}
}

// seedUser registers a user directly in the fake store and returns it with a valid token.
func (e *testEnv) seedUser(t *testing.T, name string) (user.User, string) {
	t.Helper()

	u, err := e.users.Create(context.Background(), name, hashPassword(name+"pass"), "img/seed.jpg")
	if err != nil {
		t.Fatalf("seed user %q: %v", name, err)
	}

	token, err := jwt.GenerateToken(u.ID.String(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("seed token for %q: %v", name, err)
	}

	return u, token
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, r)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, body=%q", err, rr.Body.String())
	}
	return body
}

func testImagePayload() string {
	return base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10})
}
