package services

import (
	"context"
	"fmt"
	"time"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/models"
	"github.com/postpilot/postpilot/internal/logging"
	"github.com/postpilot/postpilot/internal/timex"
)

// DefaultProvider is the publish target used when the caller names none.
const DefaultProvider = "linkedin"

// User-facing outcome messages. The generate wording differs between a
// draft-only run and a publish-now run.
const (
	MsgDraftGenerated = "Draft generated"
	MsgPosted         = "Posted to LinkedIn"
	MsgScheduled      = "Scheduled"

	msgGenerateFailed = "Failed to generate"
	msgScheduleFailed = "Failed to schedule"
	msgPublishFailed  = "Failed to publish"
)

// Pipeline drives a generated post through draft → scheduled/published.
//
// It is confined to the interactive goroutine: the per-action in-flight
// booleans gate re-entrant invocation, they are not locks. Generation,
// scheduling, and publishing are independent operations; a failure in one
// never retries or falls back to another, and the in-flight flag is cleared
// on success and failure alike.
type Pipeline struct {
	api client.Client
	log logging.Logger
	loc *time.Location

	generating bool
	scheduling bool
	publishing bool

	draft   *models.Post
	success string
	failure string
}

// NewPipeline builds a pipeline converting schedule wall-clock input in loc
// (time.Local when nil).
func NewPipeline(api client.Client, log logging.Logger, loc *time.Location) *Pipeline {
	if loc == nil {
		loc = time.Local
	}
	return &Pipeline{api: api, log: log, loc: loc}
}

// Draft returns the current post, nil until a generation has succeeded.
func (p *Pipeline) Draft() *models.Post { return p.draft }

// Success and Failure return the outcome message of the last operation.
func (p *Pipeline) Success() string { return p.success }
func (p *Pipeline) Failure() string { return p.failure }

// InFlight reports whether any pipeline operation is outstanding.
func (p *Pipeline) InFlight() bool {
	return p.generating || p.scheduling || p.publishing
}

func (p *Pipeline) reset() {
	p.success = ""
	p.failure = ""
}

// Generate requests one generation from the service. With PublishNow set the
// service publishes as a side effect and the result is reported as posted;
// the response itself carries no lifecycle state, so publication is inferred
// from the request intent. Returns true on success.
func (p *Pipeline) Generate(ctx context.Context, req client.GenerateRequest) bool {
	if p.generating {
		p.failure = "generation already in progress"
		return false
	}
	p.generating = true
	defer func() { p.generating = false }()
	p.reset()

	if !req.Format.Valid() {
		p.failure = fmt.Sprintf("unsupported format %q", req.Format)
		return false
	}

	post, err := p.api.Generate(ctx, req)
	if err != nil {
		p.log.Warn(ctx, "generate failed", "error", err)
		p.failure = client.ErrorDetail(err, msgGenerateFailed)
		return false
	}

	if req.PublishNow {
		post.State = models.StatePublished
		p.success = MsgPosted
	} else {
		post.State = models.StateDraft
		p.success = MsgDraftGenerated
	}
	p.draft = post
	return true
}

// Schedule converts the local wall-clock date and time to a UTC instant and
// schedules the current draft. A draft must exist: scheduling without a
// prior successful generation is a caller error rejected before any network
// call. On failure the post remains a draft.
func (p *Pipeline) Schedule(ctx context.Context, dateStr, timeStr, provider string) bool {
	if p.scheduling {
		p.failure = "scheduling already in progress"
		return false
	}
	p.scheduling = true
	defer func() { p.scheduling = false }()
	p.reset()

	if p.draft == nil || p.draft.ID == 0 {
		p.failure = "generate a draft before scheduling"
		return false
	}

	at, err := timex.LocalToUTC(dateStr, timeStr, p.loc)
	if err != nil {
		p.failure = err.Error()
		return false
	}

	if provider == "" {
		provider = DefaultProvider
	}

	res, err := p.api.Schedule(ctx, p.draft.ID, at, provider)
	if err != nil {
		p.log.Warn(ctx, "schedule failed", "post_id", p.draft.ID, "error", err)
		p.failure = client.ErrorDetail(err, msgScheduleFailed)
		return false
	}

	p.draft.State = models.StateScheduled
	p.draft.ScheduledAt = at
	p.draft.Provider = provider
	p.success = res.Message
	if p.success == "" {
		p.success = MsgScheduled
	}
	return true
}

// PublishNow publishes the current draft immediately. This is a distinct
// call path from generation-time publish_now, used when the user decides to
// publish a draft after the fact. On failure the post remains a draft.
func (p *Pipeline) PublishNow(ctx context.Context, visibility models.Visibility) bool {
	if p.publishing {
		p.failure = "publishing already in progress"
		return false
	}
	p.publishing = true
	defer func() { p.publishing = false }()
	p.reset()

	if p.draft == nil || p.draft.ID == 0 {
		p.failure = "generate a draft before publishing"
		return false
	}

	res, err := p.api.PublishNow(ctx, p.draft.ID, visibility)
	if err != nil {
		p.log.Warn(ctx, "publish failed", "post_id", p.draft.ID, "error", err)
		p.failure = client.ErrorDetail(err, msgPublishFailed)
		return false
	}

	p.draft.State = models.StatePublished
	p.draft.URN = res.URN
	p.success = res.Message
	if p.success == "" {
		p.success = MsgPosted
	}
	return true
}
