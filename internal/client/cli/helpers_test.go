package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/config"
	"github.com/dmitrijs2005/scribe/internal/client/session"
	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	signupID   string
	signupErr  error
	signups    []api.SignupRequest
	verifyTok  string
	verifyErr  error
	verifies   []api.VerifyRequest
	signinTok  string
	signinErr  error
	me         *api.User
	meErr      error
	meCalls    int
	updateMsg  string
	updateErr  error
	updates    []api.UpdateUserRequest
	page       *api.PostPage
	listErr    error
	listCalls  [][2]int
	deleteMsg  string
	deleteErr  error
	deletedIDs []string
}

func (f *fakeAPI) Signup(_ context.Context, r api.SignupRequest) (string, error) {
	f.signups = append(f.signups, r)
	return f.signupID, f.signupErr
}

func (f *fakeAPI) Verify(_ context.Context, r api.VerifyRequest) (string, error) {
	f.verifies = append(f.verifies, r)
	return f.verifyTok, f.verifyErr
}

func (f *fakeAPI) Signin(context.Context, api.SigninRequest) (string, error) {
	return f.signinTok, f.signinErr
}

func (f *fakeAPI) Me(context.Context) (*api.User, error) {
	f.meCalls++
	if f.me == nil {
		return nil, f.meErr
	}
	u := *f.me
	return &u, f.meErr
}

func (f *fakeAPI) UpdateUser(_ context.Context, _ string, r api.UpdateUserRequest) (string, error) {
	f.updates = append(f.updates, r)
	if f.updateErr == nil && f.me != nil {
		f.me.Email, f.me.Username = r.Email, r.Username
	}
	return f.updateMsg, f.updateErr
}

func (f *fakeAPI) ListPosts(_ context.Context, page, size int) (*api.PostPage, error) {
	f.listCalls = append(f.listCalls, [2]int{page, size})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func (f *fakeAPI) DeletePost(_ context.Context, id string) (string, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteMsg, f.deleteErr
}

type memStore struct{ token string }

func (m *memStore) Load(context.Context) (string, error)   { return m.token, nil }
func (m *memStore) Save(_ context.Context, t string) error { m.token = t; return nil }
func (m *memStore) Clear(context.Context) error            { m.token = ""; return nil }

// stubNoTerminal makes GetPassword read from the scripted input.
func stubNoTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, f *fakeAPI, store *memStore, sess *session.Session, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	stubNoTerminal(t)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return newApp(cfg, f, store, sess, logging.Nop{}, in, out), out
}

func tokenFor(t *testing.T, userID, username string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Username:         username,
	})
	s, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}
