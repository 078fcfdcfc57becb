package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/postpilot/postpilot/internal/client/models"
	"github.com/postpilot/postpilot/internal/client/repositories/credential"
)

// HTTPClient implements Client against the backend's JSON API.
//
// The bearer credential is read through the Store on every request, never
// cached on the struct, so a concurrent logout is picked up immediately.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     credential.Store
	genLimiter *rate.Limiter
}

// NewHTTPClient builds a client for baseURL. generatePerMin throttles
// generation calls client-side (the free model tier rate-limits hard);
// zero disables the limiter.
func NewHTTPClient(baseURL string, tokens credential.Store, timeout time.Duration, generatePerMin int) *HTTPClient {
	var limiter *rate.Limiter
	if generatePerMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(generatePerMin)), 1)
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		genLimiter: limiter,
	}
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// authorize attaches the bearer credential, if one is stored.
func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) {
	token, err := c.tokens.Get(ctx)
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Detail string `json:"detail"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		_ = json.Unmarshal(raw, &payload)
		return &APIError{Status: resp.StatusCode, Detail: payload.Detail}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, loginID string, password []byte) (*models.AuthResult, error) {
	in := map[string]string{"email": loginID, "password": string(password)}
	var out models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*models.AuthResult, error) {
	var out models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) OAuthStartURL(ctx context.Context, provider string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/oauth/"+provider+"/start-url", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) OAuthStartPublicURL(ctx context.Context, provider string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/oauth/"+provider+"/start-public", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) OAuthSync(ctx context.Context, provider string) error {
	return c.do(ctx, http.MethodPost, "/oauth/"+provider+"/sync", nil, nil)
}

func (c *HTTPClient) ProfileSummary(ctx context.Context) (*models.Summary, error) {
	var out models.Summary
	if err := c.do(ctx, http.MethodGet, "/profile/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UploadResume(ctx context.Context, filename string, file io.Reader) (*models.Summary, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile/upload-resume", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.NewString())
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var out models.Summary
	if err := decodeResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, p *models.Profile) error {
	return c.do(ctx, http.MethodPut, "/profile", p, nil)
}

func (c *HTTPClient) Generate(ctx context.Context, req GenerateRequest) (*models.Post, error) {
	if c.genLimiter != nil {
		if err := c.genLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var out struct {
		PostID int64  `json:"post_id"`
		Text   string `json:"text"`
		Format string `json:"format"`
	}
	if err := c.do(ctx, http.MethodPost, "/content/generate", req, &out); err != nil {
		return nil, err
	}
	return &models.Post{
		ID:     out.PostID,
		Text:   out.Text,
		Format: models.PostFormat(out.Format),
		State:  models.StateDraft,
	}, nil
}

func (c *HTTPClient) Schedule(ctx context.Context, postID int64, at time.Time, provider string) (*ScheduleResult, error) {
	in := map[string]any{
		"post_id":      postID,
		"scheduled_at": at.UTC().Format(time.RFC3339),
	}
	if provider != "" {
		in["provider"] = provider
	}
	var out ScheduleResult
	if err := c.do(ctx, http.MethodPost, "/content/schedule", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PublishNow(ctx context.Context, postID int64, visibility models.Visibility) (*PublishResult, error) {
	in := map[string]any{"post_id": postID}
	if visibility != "" {
		in["visibility"] = visibility
	}
	var out PublishResult
	if err := c.do(ctx, http.MethodPost, "/content/publish-now", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
