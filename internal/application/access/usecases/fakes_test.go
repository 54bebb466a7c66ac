package usecases

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
)

var errNotFoundForTest = errors.NewNotFoundError("membership request not found")

func priorJoinEntry(t *testing.T, email string) *access.AccessLogEntry {
	t.Helper()
	entry, err := access.NewAccessLogEntry(
		email, nil, vo.MethodUniversityEmail,
		strings.Repeat("c", 64), "successful_join", nil,
	)
	require.NoError(t, err)
	return entry
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeTokenRepo struct {
	tokens    map[string]*access.AccessToken
	createErr error
	deleted   []string
	markUsed  map[string]bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		tokens:   make(map[string]*access.AccessToken),
		markUsed: make(map[string]bool),
	}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *access.AccessToken) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.tokens[token.Token()] = token
	return nil
}

func (r *fakeTokenRepo) GetActive(_ context.Context, token string) (*access.AccessToken, error) {
	tok, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	if tok.Status().IsTerminal() {
		return nil, nil
	}
	return tok, nil
}

func (r *fakeTokenRepo) MarkUsed(_ context.Context, token string) (bool, error) {
	tok, ok := r.tokens[token]
	if !ok || r.markUsed[token] {
		return false, nil
	}
	if err := tok.MarkUsed(time.Now().UTC()); err != nil {
		return false, nil
	}
	r.markUsed[token] = true
	return true, nil
}

func (r *fakeTokenRepo) MarkExpired(_ context.Context, token string) (bool, error) {
	tok, ok := r.tokens[token]
	if !ok {
		return false, nil
	}
	if err := tok.MarkExpired(); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	r.deleted = append(r.deleted, token)
	delete(r.tokens, token)
	return nil
}

func (r *fakeTokenRepo) CleanupExpired(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeGenerator struct {
	value string
	err   error
}

func (g *fakeGenerator) Generate() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.value, nil
}

type fakeEmailService struct {
	sent []string
	err  error
}

func (s *fakeEmailService) SendAccessTokenEmail(to, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

type fakeChallenger struct {
	ok bool
}

func (c *fakeChallenger) Verify(_ context.Context, _, _ string) bool {
	return c.ok
}

type fakeLimiter struct {
	denyPrefix string
	err        error
	calls      []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	l.calls = append(l.calls, key)
	if l.err != nil {
		return false, l.err
	}
	if l.denyPrefix != "" && strings.HasPrefix(key, l.denyPrefix) {
		return false, nil
	}
	return true, nil
}

func (l *fakeLimiter) Reset(_ context.Context, _ string) error {
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(ip string) string {
	return "hash-" + ip
}

type fakeAccessLogRepo struct {
	entries    []*access.AccessLogEntry
	emailHit   *access.AccessLogEntry
	phoneHit   *access.AccessLogEntry
	findErr    error
	appendErr  error
	appendDone int
}

func (r *fakeAccessLogRepo) Append(_ context.Context, entry *access.AccessLogEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, entry)
	r.appendDone++
	return nil
}

func (r *fakeAccessLogRepo) FindJoinByEmail(_ context.Context, _ string, _ time.Time) (*access.AccessLogEntry, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.emailHit, nil
}

func (r *fakeAccessLogRepo) FindJoinByPhone(_ context.Context, _, _ string, _ time.Time) (*access.AccessLogEntry, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.phoneHit, nil
}

type fakeRequestRepo struct {
	requests    map[uint]*access.MembershipRequest
	nextID      uint
	openByPhone bool
	openByEmail bool
	existsErr   error
	updateErr   error
	updated     int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]*access.MembershipRequest), nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *access.MembershipRequest) error {
	r.requests[r.nextID] = request
	r.nextID++
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id uint) (*access.MembershipRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, errNotFoundForTest
	}
	return req, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, _ *access.MembershipRequest) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated++
	return nil
}

func (r *fakeRequestRepo) ExistsOpenByPhone(_ context.Context, _, _ string, _ time.Time) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.openByPhone, nil
}

func (r *fakeRequestRepo) ExistsOpenByEmail(_ context.Context, _ string, _ time.Time) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.openByEmail, nil
}
