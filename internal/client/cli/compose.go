package cli

import (
	"context"
	"os"
	"strings"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
)

// Generate prompts for the generation tuning and requests a draft. When the
// user opts to publish immediately, the service publishes as part of the
// same call.
func (a *App) Generate(ctx context.Context) error {
	topic, err := getSimpleText(a.reader, "Enter topic", os.Stdout)
	if err != nil {
		return err
	}

	format, err := GetTextDefault(a.reader, "Format (short_post/article/carousel)", string(models.FormatShortPost), os.Stdout)
	if err != nil {
		return err
	}

	tone, err := GetTextDefault(a.reader, "Tone (comma-separated)", "professional", os.Stdout)
	if err != nil {
		return err
	}

	emojis, err := GetYesNo(a.reader, "Include emojis?", false, os.Stdout)
	if err != nil {
		return err
	}

	publishNow, err := GetYesNo(a.reader, "Publish immediately?", false, os.Stdout)
	if err != nil {
		return err
	}

	req := client.GenerateRequest{
		Topic:      topic,
		Format:     models.PostFormat(format),
		Tone:       splitList(tone),
		Emojis:     emojis,
		PublishNow: publishNow,
	}
	if publishNow {
		vis, err := GetTextDefault(a.reader, "Visibility (PUBLIC/CONNECTIONS)", string(models.VisibilityPublic), os.Stdout)
		if err != nil {
			return err
		}
		req.Visibility = models.Visibility(strings.ToUpper(vis))
	}

	if !a.pipeline.Generate(ctx, req) {
		printlnFn(a.pipeline.Failure())
		return nil
	}

	printlnFn(a.pipeline.Success())
	printlnFn("---")
	printlnFn(a.pipeline.Draft().Text)
	printlnFn("---")
	return nil
}

// Schedule prompts for a local date and time and schedules the current
// draft. The wall-clock input is interpreted in the machine's local zone.
func (a *App) Schedule(ctx context.Context) error {
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	hhmm, err := getSimpleText(a.reader, "Time (HH:MM, local)", os.Stdout)
	if err != nil {
		return err
	}

	if !a.pipeline.Schedule(ctx, date, hhmm, "") {
		printlnFn(a.pipeline.Failure())
		return nil
	}

	printlnFn(a.pipeline.Success())
	return nil
}

// Publish posts the current draft immediately.
func (a *App) Publish(ctx context.Context) error {
	vis, err := GetTextDefault(a.reader, "Visibility (PUBLIC/CONNECTIONS)", string(models.VisibilityPublic), os.Stdout)
	if err != nil {
		return err
	}

	if !a.pipeline.PublishNow(ctx, models.Visibility(strings.ToUpper(vis))) {
		printlnFn(a.pipeline.Failure())
		return nil
	}

	printlnFn(a.pipeline.Success())
	if urn := a.pipeline.Draft().URN; urn != "" {
		printlnFn("LinkedIn URN:", urn)
	}
	return nil
}

// Draft shows the current draft and its lifecycle state.
func (a *App) Draft(ctx context.Context) error {
	post := a.pipeline.Draft()
	if post == nil {
		printlnFn("No draft yet. Use 'generate' first.")
		return nil
	}
	printlnFn("State:", string(post.State))
	if !post.ScheduledAt.IsZero() {
		printlnFn("Scheduled for:", post.ScheduledAt.Local().Format("2006-01-02 15:04"))
	}
	printlnFn("---")
	printlnFn(post.Text)
	printlnFn("---")
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
