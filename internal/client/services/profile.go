package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
)

// ProfileService wraps the branding-profile endpoints used by the setup and
// profile screens. Values are fetched fresh per screen, never cached; Save
// uses full-replace semantics and completes onboarding server-side.
type ProfileService struct {
	api client.Client
}

func NewProfileService(api client.Client) *ProfileService {
	return &ProfileService{api: api}
}

func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	return s.api.Profile(ctx)
}

func (s *ProfileService) Save(ctx context.Context, p *models.Profile) error {
	return s.api.SaveProfile(ctx, p)
}

func (s *ProfileService) Summary(ctx context.Context) (*models.Summary, error) {
	return s.api.ProfileSummary(ctx)
}

// UploadResume streams the PDF at path to the service and returns the
// refreshed summary. Only PDF resumes are supported; the extension check
// runs before any network call.
func (s *ProfileService) UploadResume(ctx context.Context, path string) (*models.Summary, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("only PDF resumes are supported")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	return s.api.UploadResume(ctx, filepath.Base(path), f)
}
