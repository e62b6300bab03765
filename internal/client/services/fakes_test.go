package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/scribe/internal/client/api"
)

// fakeClient implements api.Client with canned results and call records.
type fakeClient struct {
	SignupID  string
	SignupErr error
	signups   []api.SignupRequest

	VerifyToken string
	VerifyErr   error
	verifies    []api.VerifyRequest

	SigninToken string
	SigninErr   error
	signins     []api.SigninRequest

	MeUser  *api.User
	MeErr   error
	meCalls int

	UpdateMsg string
	UpdateErr error
	updates   []api.UpdateUserRequest
	updateIDs []string

	Page      *api.PostPage
	ListErr   error
	listCalls [][2]int
	onList    func()

	DeleteMsg string
	DeleteErr error
	deletes   []string
}

func (f *fakeClient) Signup(_ context.Context, req api.SignupRequest) (string, error) {
	f.signups = append(f.signups, req)
	return f.SignupID, f.SignupErr
}

func (f *fakeClient) Verify(_ context.Context, req api.VerifyRequest) (string, error) {
	f.verifies = append(f.verifies, req)
	return f.VerifyToken, f.VerifyErr
}

func (f *fakeClient) Signin(_ context.Context, req api.SigninRequest) (string, error) {
	f.signins = append(f.signins, req)
	return f.SigninToken, f.SigninErr
}

func (f *fakeClient) Me(context.Context) (*api.User, error) {
	f.meCalls++
	return f.MeUser, f.MeErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id string, req api.UpdateUserRequest) (string, error) {
	f.updateIDs = append(f.updateIDs, id)
	f.updates = append(f.updates, req)
	return f.UpdateMsg, f.UpdateErr
}

func (f *fakeClient) ListPosts(_ context.Context, page, pageSize int) (*api.PostPage, error) {
	f.listCalls = append(f.listCalls, [2]int{page, pageSize})
	if f.onList != nil {
		f.onList()
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Page, nil
}

func (f *fakeClient) DeletePost(_ context.Context, id string) (string, error) {
	f.deletes = append(f.deletes, id)
	return f.DeleteMsg, f.DeleteErr
}

type fakeStore struct {
	token   string
	saveErr error
	loadErr error
	saves   int
	clears  int
}

func (s *fakeStore) Load(context.Context) (string, error) { return s.token, s.loadErr }

func (s *fakeStore) Save(_ context.Context, token string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *fakeStore) Clear(context.Context) error {
	s.clears++
	s.token = ""
	return nil
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

var errNetwork = errors.New("connection refused")
