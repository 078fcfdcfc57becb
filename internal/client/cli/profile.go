package cli

import (
	"context"
	"os"
	"strings"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
	"github.com/postpilot/postpilot/internal/client/services"
)

// ShowProfile prints the current branding profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to load profile"))
		return err
	}

	printlnFn("Headline:  ", p.Headline)
	printlnFn("Bio:       ", p.Bio)
	printlnFn("Industries:", strings.Join(p.Industries, ", "))
	printlnFn("Goals:     ", p.Goals)
	printlnFn("Tone:      ", strings.Join(p.Tone, ", "))
	printlnFn("Keywords:  ", strings.Join(p.Keywords, ", "))
	return nil
}

// EditProfile walks through the profile fields, keeping current values on an
// empty answer, and saves the result. The first save completes onboarding
// server-side, so a save made on the setup screen moves on to the dashboard.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		// A fresh account has no profile yet; start from blank fields.
		p = &models.Profile{}
	}

	if p.Headline, err = GetTextDefault(a.reader, "Headline", p.Headline, os.Stdout); err != nil {
		return err
	}
	if p.Bio, err = GetTextDefault(a.reader, "Bio", p.Bio, os.Stdout); err != nil {
		return err
	}
	industries, err := GetTextDefault(a.reader, "Industries (comma-separated)", strings.Join(p.Industries, ", "), os.Stdout)
	if err != nil {
		return err
	}
	p.Industries = splitList(industries)
	if p.Goals, err = GetTextDefault(a.reader, "Goals", p.Goals, os.Stdout); err != nil {
		return err
	}
	tone, err := GetTextDefault(a.reader, "Tone (comma-separated)", strings.Join(p.Tone, ", "), os.Stdout)
	if err != nil {
		return err
	}
	p.Tone = splitList(tone)
	keywords, err := GetTextDefault(a.reader, "Keywords (comma-separated)", strings.Join(p.Keywords, ", "), os.Stdout)
	if err != nil {
		return err
	}
	p.Keywords = splitList(keywords)

	if err := a.profiles.Save(ctx, p); err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to save profile"))
		return err
	}
	printlnFn("Profile saved.")

	if a.route == services.RouteSetup {
		a.navigate(ctx, services.RouteApp)
	}
	return nil
}

// Summary prints the generation background assembled from the resume and
// the linked LinkedIn profile.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.profiles.Summary(ctx)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to load summary"))
		return err
	}

	for k, v := range s.Background {
		printlnFn(k+":", v)
	}
	if s.PromptSeed != "" {
		printlnFn("Prompt seed:", s.PromptSeed)
	}
	return nil
}

// UploadResume sends the PDF at path to the service and shows the refreshed
// summary seed.
func (a *App) UploadResume(ctx context.Context, path string) error {
	var err error
	if path == "" {
		if path, err = getSimpleText(a.reader, "Path to resume (PDF)", os.Stdout); err != nil {
			return err
		}
	}

	s, err := a.profiles.UploadResume(ctx, path)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Failed to upload resume"))
		return err
	}
	printlnFn("Resume uploaded.")
	if s.PromptSeed != "" {
		printlnFn("Prompt seed:", s.PromptSeed)
	}
	return nil
}
