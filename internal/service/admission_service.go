//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"guestbook/internal/hashutil"
	"guestbook/internal/metrics"
	"guestbook/internal/model"
	"guestbook/internal/network"
	"guestbook/internal/repository"
	"guestbook/pkg/logger"
	"guestbook/pkg/sanitizer"
)

const (
	// NamePattern accepts letters, marks and digits in groups separated by
	// a single space or underscore.
	NamePattern = `^[\p{L}\p{M}\p{N}]+(?:[ _][\p{L}\p{M}\p{N}]+)*$`
	// WebsitePattern accepts a host name with a top-level domain of at
	// least two letters, an optional scheme and an optional path.
	WebsitePattern = `^(?:[Hh][Tt][Tt][Pp][Ss]?://)?` +
		`(?:(?:[a-zA-Z\x{00a1}-\x{ffff}0-9]+-?)*[a-zA-Z\x{00a1}-\x{ffff}0-9]+)` +
		`(?:\.(?:[a-zA-Z\x{00a1}-\x{ffff}0-9]+-?)*[a-zA-Z\x{00a1}-\x{ffff}0-9]+)*` +
		`(?:\.(?:[a-zA-Z\x{00a1}-\x{ffff}]{2,}))` +
		`(?:/[^\s]*)?$`

	AcceptedMessage = "Your query was registered correctly."
)

var (
	namePattern    = regexp.MustCompile(NamePattern)
	websitePattern = regexp.MustCompile(WebsitePattern)
)

// Reason identifies the admission rule that rejected a submission.
type Reason string

const (
	ReasonInvalidName     Reason = "invalid_name"
	ReasonInvalidWebsite  Reason = "invalid_website"
	ReasonWebsiteDown     Reason = "website_down"
	ReasonCommentTooLong  Reason = "comment_too_long"
	ReasonCommentRequired Reason = "comment_required"
	ReasonNameTooLong     Reason = "name_too_long"
	ReasonWebsiteTooLong  Reason = "website_too_long"
	ReasonTooFrequent     Reason = "too_frequent"
)

// Limits are the configurable bounds applied to a submission.
type Limits struct {
	MaxCommentLen int
	MaxNameLen    int
	MaxSiteLen    int
	HoursPerPost  int
}

// Verdict is the outcome of a submission. A rejection is not an error.
type Verdict struct {
	Accepted bool
	Reason   Reason
	Message  string
	Entry    *model.Entry
}

type AdmissionService interface {
	Submit(ctx context.Context, sub model.Submission) (Verdict, error)
}

// admissionInput is everything the rules look at.
type admissionInput struct {
	fields     sanitizer.Normalized
	alive      bool
	hoursSince float64
}

type admissionRule struct {
	reason  Reason
	rejects func(in *admissionInput, l Limits) bool
	message func(l Limits) string
}

func fixedMessage(msg string) func(Limits) string {
	return func(Limits) string { return msg }
}

// admissionRules are evaluated in order; the first rule that rejects wins.
var admissionRules = []admissionRule{
	{
		reason: ReasonInvalidName,
		rejects: func(in *admissionInput, _ Limits) bool {
			return in.fields.Name != nil && !namePattern.MatchString(*in.fields.Name)
		},
		message: fixedMessage("Invalid name."),
	},
	{
		reason: ReasonInvalidWebsite,
		rejects: func(in *admissionInput, _ Limits) bool {
			return in.fields.Website != nil && !websitePattern.MatchString(*in.fields.Website)
		},
		message: fixedMessage("Invalid website url."),
	},
	{
		reason: ReasonWebsiteDown,
		rejects: func(in *admissionInput, _ Limits) bool {
			return in.fields.Website != nil && !in.alive
		},
		message: fixedMessage("The website you entered seems to be down thus your comment won't be added. Try again."),
	},
	{
		reason: ReasonCommentTooLong,
		rejects: func(in *admissionInput, l Limits) bool {
			return utf8.RuneCountInString(in.fields.Comment) > l.MaxCommentLen
		},
		message: func(l Limits) string {
			return fmt.Sprintf("Your comment must not be longer than %d characters.", l.MaxCommentLen)
		},
	},
	{
		reason: ReasonCommentRequired,
		rejects: func(in *admissionInput, _ Limits) bool {
			return strings.TrimSpace(in.fields.Comment) == ""
		},
		message: fixedMessage("You must provide a comment."),
	},
	{
		reason: ReasonNameTooLong,
		rejects: func(in *admissionInput, l Limits) bool {
			return in.fields.Name != nil && utf8.RuneCountInString(*in.fields.Name) > l.MaxNameLen
		},
		message: func(l Limits) string {
			return fmt.Sprintf("Your name must not be longer than %d characters.", l.MaxNameLen)
		},
	},
	{
		reason: ReasonWebsiteTooLong,
		rejects: func(in *admissionInput, l Limits) bool {
			return in.fields.Website != nil && utf8.RuneCountInString(*in.fields.Website) > l.MaxSiteLen
		},
		message: func(l Limits) string {
			return fmt.Sprintf("Your website must not be longer than %d characters.", l.MaxSiteLen)
		},
	},
	{
		reason: ReasonTooFrequent,
		rejects: func(in *admissionInput, l Limits) bool {
			return in.hoursSince < float64(l.HoursPerPost)
		},
		message: func(l Limits) string {
			return fmt.Sprintf("You can only post once per %d hour(s).", l.HoursPerPost)
		},
	},
}

type admissionService struct {
	entries repository.EntryRepository
	limiter *RateLimiter
	prober  LivenessProber
	geo     GeoLocator
	limits  Limits
	now     func() time.Time
}

func NewAdmissionService(entries repository.EntryRepository, limiter *RateLimiter, prober LivenessProber, geo GeoLocator, limits Limits) AdmissionService {
	return &admissionService{
		entries: entries,
		limiter: limiter,
		prober:  prober,
		geo:     geo,
		limits:  limits,
		now:     time.Now,
	}
}

// Submit normalizes sub, gathers the last post time, website liveness and
// country concurrently, applies the admission rules and stores the entry
// when every rule passes.
//
// The last-post lookup and the insert are separate statements, so two
// submissions from one source that race each other can both be admitted.
func (s *admissionService) Submit(ctx context.Context, sub model.Submission) (Verdict, error) {
	now := sub.At
	if now.IsZero() {
		now = s.now()
	}
	source := hashutil.AddressDigest(sub.IP)

	in := &admissionInput{fields: sanitizer.Normalize(sub.Name, sub.Website, sub.Comment)}
	var country *string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hours, err := s.limiter.HoursSinceLastPost(gctx, sub.IP, now)
		if err != nil {
			return err
		}
		in.hoursSince = hours
		return nil
	})
	if in.fields.Website != nil {
		host := network.ExtractHost(strings.TrimSpace(sub.Website))
		g.Go(func() error {
			if host != "" {
				in.alive = s.prober.Probe(gctx, host)
				metrics.ObserveProbe(in.alive)
			}
			return nil
		})
	}
	g.Go(func() error {
		if s.geo == nil {
			return nil
		}
		code, err := s.geo.Lookup(gctx, sub.IP)
		if err != nil {
			logger.Warn("geo lookup failed", "module", "service", "action", "submit", "resource", "country", "result", "failed", "source", source, "error", err)
			return nil
		}
		country = &code
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("last post lookup failed", "module", "service", "action", "submit", "resource", "entry", "result", "failed", "source", source, "error", err)
		return Verdict{}, fmt.Errorf("%w: last post lookup: %w", ErrStore, err)
	}

	for _, rule := range admissionRules {
		if rule.rejects(in, s.limits) {
			metrics.ObserveSubmission("rejected", string(rule.reason))
			logger.Info("submission rejected", "module", "service", "action", "submit", "resource", "entry", "result", "rejected", "reason", rule.reason, "source", source)
			return Verdict{Reason: rule.reason, Message: rule.message(s.limits)}, nil
		}
	}

	created, err := s.entries.Create(ctx, model.Entry{
		IP:      sub.IP,
		Comment: in.fields.Comment,
		Name:    in.fields.Name,
		Website: in.fields.Website,
		Country: country,
		Date:    now.UTC(),
	})
	if err != nil {
		logger.Error("insert entry failed", "module", "service", "action", "submit", "resource", "entry", "result", "failed", "source", source, "error", err)
		return Verdict{}, fmt.Errorf("%w: insert entry: %w", ErrStore, err)
	}

	metrics.ObserveSubmission("accepted", "")
	logger.Info("submission accepted", "module", "service", "action", "submit", "resource", "entry", "result", "ok", "entry_id", created.ID, "source", source)
	return Verdict{Accepted: true, Message: AcceptedMessage, Entry: &created}, nil
}
