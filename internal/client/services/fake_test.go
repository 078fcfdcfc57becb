package services

import (
	"context"
	"io"
	"time"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
)

// memStore is an in-memory credential.Store for tests.
type memStore struct {
	token  string
	getErr error
	setErr error
}

func (s *memStore) Get(context.Context) (string, error) {
	return s.token, s.getErr
}

func (s *memStore) Set(_ context.Context, t string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.token = t
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.token = ""
	return nil
}

// fakeClient implements client.Client for service unit tests. Hooks run
// inside the corresponding call, before the canned result is returned.
type fakeClient struct {
	LoginRes     *models.AuthResult
	LoginErr     error
	LastLoginID  string
	LastPassword []byte

	SignupRes  *models.AuthResult
	SignupErr  error
	LastSignup client.SignupRequest

	MeRes   *models.User
	MeErr   error
	MeCalls int
	OnMe    func(ctx context.Context)

	StartURLRes      string
	StartURLErr      error
	StartCalls       int
	StartPublicRes   string
	StartPublicErr   error
	StartPublicCalls int

	SyncErr   error
	SyncCalls int

	SummaryRes *models.Summary
	SummaryErr error

	UploadRes      *models.Summary
	UploadErr      error
	LastUploadName string
	LastUploadData []byte

	ProfileRes       *models.Profile
	ProfileErr       error
	SaveProfileErr   error
	LastSavedProfile *models.Profile

	GenerateRes   *models.Post
	GenerateErr   error
	GenerateCalls int
	LastGenerate  client.GenerateRequest
	OnGenerate    func()

	ScheduleRes          *client.ScheduleResult
	ScheduleErr          error
	ScheduleCalls        int
	LastScheduleID       int64
	LastScheduleAt       time.Time
	LastScheduleProvider string

	PublishRes     *client.PublishResult
	PublishErr     error
	PublishCalls   int
	LastPublishID  int64
	LastPublishVis models.Visibility
	OnPublish      func()
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(_ context.Context, loginID string, password []byte) (*models.AuthResult, error) {
	f.LastLoginID = loginID
	f.LastPassword = append([]byte(nil), password...)
	return f.LoginRes, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, req client.SignupRequest) (*models.AuthResult, error) {
	f.LastSignup = req
	return f.SignupRes, f.SignupErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls++
	if f.OnMe != nil {
		f.OnMe(ctx)
	}
	return f.MeRes, f.MeErr
}

func (f *fakeClient) OAuthStartURL(context.Context, string) (string, error) {
	f.StartCalls++
	return f.StartURLRes, f.StartURLErr
}

func (f *fakeClient) OAuthStartPublicURL(context.Context, string) (string, error) {
	f.StartPublicCalls++
	return f.StartPublicRes, f.StartPublicErr
}

func (f *fakeClient) OAuthSync(context.Context, string) error {
	f.SyncCalls++
	return f.SyncErr
}

func (f *fakeClient) ProfileSummary(context.Context) (*models.Summary, error) {
	return f.SummaryRes, f.SummaryErr
}

func (f *fakeClient) UploadResume(_ context.Context, filename string, file io.Reader) (*models.Summary, error) {
	f.LastUploadName = filename
	data, _ := io.ReadAll(file)
	f.LastUploadData = data
	return f.UploadRes, f.UploadErr
}

func (f *fakeClient) Profile(context.Context) (*models.Profile, error) {
	return f.ProfileRes, f.ProfileErr
}

func (f *fakeClient) SaveProfile(_ context.Context, p *models.Profile) error {
	f.LastSavedProfile = p
	return f.SaveProfileErr
}

func (f *fakeClient) Generate(_ context.Context, req client.GenerateRequest) (*models.Post, error) {
	f.GenerateCalls++
	f.LastGenerate = req
	if f.OnGenerate != nil {
		f.OnGenerate()
	}
	if f.GenerateRes == nil {
		return nil, f.GenerateErr
	}
	post := *f.GenerateRes
	return &post, f.GenerateErr
}

func (f *fakeClient) Schedule(_ context.Context, postID int64, at time.Time, provider string) (*client.ScheduleResult, error) {
	f.ScheduleCalls++
	f.LastScheduleID = postID
	f.LastScheduleAt = at
	f.LastScheduleProvider = provider
	return f.ScheduleRes, f.ScheduleErr
}

func (f *fakeClient) PublishNow(_ context.Context, postID int64, visibility models.Visibility) (*client.PublishResult, error) {
	f.PublishCalls++
	f.LastPublishID = postID
	f.LastPublishVis = visibility
	if f.OnPublish != nil {
		f.OnPublish()
	}
	return f.PublishRes, f.PublishErr
}
