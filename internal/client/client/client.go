package client

import (
	"context"
	"io"
	"time"

	"github.com/postpilot/postpilot/internal/client/models"
)

// SignupRequest carries the account-creation fields of POST /auth/signup.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	Mobile      string `json:"mobile"`
	LinkedInID  string `json:"linkedin_id"`
	Password    string `json:"password"`
}

// GenerateRequest carries the tuning of a single generation call. Visibility
// is only meaningful when PublishNow is set.
type GenerateRequest struct {
	Topic        string            `json:"topic,omitempty"`
	Format       models.PostFormat `json:"format"`
	Model        string            `json:"model,omitempty"`
	Emojis       bool              `json:"emojis"`
	SuggestImage bool              `json:"suggest_image"`
	Tone         []string          `json:"tone,omitempty"`
	Kind         string            `json:"kind,omitempty"`
	PublishNow   bool              `json:"publish_now"`
	Visibility   models.Visibility `json:"visibility,omitempty"`
}

// ScheduleResult is the service acknowledgement of a schedule call.
type ScheduleResult struct {
	Message     string    `json:"message"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// PublishResult is the service acknowledgement of an immediate publish.
type PublishResult struct {
	Message string `json:"message"`
	URN     string `json:"linkedin_urn,omitempty"`
}

// Client is the remote service contract consumed by the application
// services. All methods honor context cancellation.
type Client interface {
	Close() error

	Login(ctx context.Context, loginID string, password []byte) (*models.AuthResult, error)
	Signup(ctx context.Context, req SignupRequest) (*models.AuthResult, error)
	Me(ctx context.Context) (*models.User, error)

	OAuthStartURL(ctx context.Context, provider string) (string, error)
	OAuthStartPublicURL(ctx context.Context, provider string) (string, error)
	OAuthSync(ctx context.Context, provider string) error

	ProfileSummary(ctx context.Context) (*models.Summary, error)
	UploadResume(ctx context.Context, filename string, file io.Reader) (*models.Summary, error)
	Profile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) error

	Generate(ctx context.Context, req GenerateRequest) (*models.Post, error)
	Schedule(ctx context.Context, postID int64, at time.Time, provider string) (*ScheduleResult, error)
	PublishNow(ctx context.Context, postID int64, visibility models.Visibility) (*PublishResult, error)
}
