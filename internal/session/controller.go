// Package session drives the link builder flow: edit the form, generate a
// tracking URL into history, and optionally shorten it through the provider.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jaevor/go-nanoid"
	"github.com/serroba/campaign-links/internal/analytics"
	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/settings"
	"github.com/serroba/campaign-links/internal/shortlink"
	"github.com/serroba/campaign-links/internal/tracking"
	"go.uber.org/zap"
)

const (
	// DefaultCopyResetAfter is how long a copy confirmation stays visible.
	DefaultCopyResetAfter = 2 * time.Second

	idLength = 21
)

var (
	// ErrNoCurrentLink is returned when shortening before anything was generated.
	ErrNoCurrentLink = errors.New("no generated link in the current session")
	// ErrLinkNotFound is returned for an id that is not in the history.
	ErrLinkNotFound = errors.New("link not found")
	// ErrUnknownPreset is returned by ApplyPreset for a name not in tracking.Presets.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownField is returned by SetField for a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")
)

// Deps are the collaborators a Controller needs. History, Settings and
// Shortener are required; the rest have defaults.
type Deps struct {
	History        *history.Store
	Settings       *settings.Settings
	Shortener      shortlink.Shortener
	Events         analytics.Publishers
	Logger         *zap.Logger
	NewID          func() string
	Now            func() time.Time
	CopyResetAfter time.Duration
}

// Controller owns the transient form state of one interactive session.
type Controller struct {
	mu      sync.Mutex
	form    tracking.Params
	errs    tracking.Errors
	state   State
	current *history.Link
	draft   settings.ProviderConfig

	copied    bool
	copyGen   uint64
	copyTimer *time.Timer

	pending atomic.Int64

	history        *history.Store
	settings       *settings.Settings
	shortener      shortlink.Shortener
	events         analytics.Publishers
	logger         *zap.Logger
	newID          func() string
	now            func() time.Time
	copyResetAfter time.Duration
}

// New creates a controller in the Idle state with the settings draft taken
// from the active provider configuration.
func New(deps Deps) (*Controller, error) {
	if deps.NewID == nil {
		gen, err := nanoid.Standard(idLength)
		if err != nil {
			return nil, errors.Wrap(err, "create id generator")
		}

		deps.NewID = gen
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	if deps.CopyResetAfter <= 0 {
		deps.CopyResetAfter = DefaultCopyResetAfter
	}

	if deps.Events.LinkGenerated == nil {
		deps.Events = analytics.DiscardPublishers()
	}

	return &Controller{
		state:          StateIdle,
		draft:          deps.Settings.Current(),
		history:        deps.History,
		settings:       deps.Settings,
		shortener:      deps.Shortener,
		events:         deps.Events,
		logger:         deps.Logger,
		newID:          deps.NewID,
		now:            deps.Now,
		copyResetAfter: deps.CopyResetAfter,
	}, nil
}

// View returns a copy of the current display state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		State:   c.state,
		Form:    c.form,
		Copied:  c.copied,
		Pending: c.Pending(),
	}

	if len(c.errs) > 0 {
		v.Errors = make(map[tracking.Field]string, len(c.errs))
		for k, msg := range c.errs {
			v.Errors[k] = msg
		}
	}

	if c.current != nil {
		cur := *c.current
		v.Current = &cur
	}

	return v
}

// Form returns the current form values.
func (c *Controller) Form() tracking.Params {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

// SetForm replaces every form field.
func (c *Controller) SetForm(p tracking.Params) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = p
	c.resetDisplayLocked()
}

// SetField replaces a single form field.
func (c *Controller) SetField(field tracking.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	form, ok := c.form.With(field, value)
	if !ok {
		return errors.Wrapf(ErrUnknownField, "%q", field)
	}

	c.form = form
	c.resetDisplayLocked()

	return nil
}

// ApplyPreset overwrites source and medium from the named preset.
func (c *Controller) ApplyPreset(name string) (tracking.Preset, error) {
	preset, ok := tracking.LookupPreset(name)
	if !ok {
		return tracking.Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = preset.Apply(c.form)
	c.resetDisplayLocked()

	return preset, nil
}

// Clear empties the form and drops the current link. History is untouched.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = tracking.Params{}
	c.resetDisplayLocked()
}

func (c *Controller) resetDisplayLocked() {
	c.errs = nil
	c.current = nil
	c.state = StateIdle
}

// Generate validates the form, composes the tracking URL and prepends a new
// record to history. Validation failures are kept for display and returned
// as *tracking.ValidationError; nothing is appended in that case.
func (c *Controller) Generate(ctx context.Context) (*history.Link, error) {
	c.mu.Lock()

	form := c.form

	c.errs = tracking.Validate(form)
	if !c.errs.Valid() {
		err := &tracking.ValidationError{Fields: c.errs}
		c.mu.Unlock()

		return nil, err
	}

	trackingURL, err := tracking.Compose(form.URL, form)
	if err != nil {
		c.errs = tracking.Errors{tracking.FieldURL: tracking.MsgURLInvalid}
		verr := &tracking.ValidationError{Fields: c.errs}
		c.mu.Unlock()

		return nil, verr
	}

	link := history.Link{
		ID:          c.newID(),
		OriginalURL: form.URL,
		TrackingURL: trackingURL,
		Params:      form,
		CreatedAt:   c.now(),
	}

	if err := c.history.Append(ctx, link); err != nil {
		c.logger.Warn("history not persisted", zap.String("id", link.ID), zap.Error(err))
	}

	current := link
	c.current = &current
	c.state = StateGenerated
	c.mu.Unlock()

	c.logger.Info("tracking url generated",
		zap.String("id", link.ID),
		zap.String("campaign", form.Campaign),
	)

	c.reportPublish(analytics.TopicLinkGenerated, c.events.LinkGenerated(ctx, &analytics.LinkGeneratedEvent{
		ID:          link.ID,
		OriginalURL: link.OriginalURL,
		TrackingURL: link.TrackingURL,
		Source:      form.Source,
		Medium:      form.Medium,
		Campaign:    form.Campaign,
		Term:        form.Term,
		Content:     form.Content,
		CreatedAt:   link.CreatedAt,
	}))

	return &link, nil
}

// ShortenCurrent creates a short link for the record produced by the last
// Generate. The session moves to Shortened only if that record is still the
// current one when the provider answers.
func (c *Controller) ShortenCurrent(ctx context.Context) (*history.Link, error) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()

		return nil, ErrNoCurrentLink
	}

	id := c.current.ID
	c.mu.Unlock()

	link, err := c.ShortenLink(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.current != nil && c.current.ID == id {
		current := *link
		c.current = &current
		c.state = StateShortened
	}
	c.mu.Unlock()

	return link, nil
}

// ShortenLink creates a short link for any history record. A failed call
// leaves the record unshortened.
func (c *Controller) ShortenLink(ctx context.Context, id string) (*history.Link, error) {
	record, ok := c.history.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrLinkNotFound, "%q", id)
	}

	cfg := c.settings.Current()
	if !cfg.HasAPIKey() {
		return nil, shortlink.ErrMissingCredential
	}

	short, err := func() (*shortlink.Link, error) {
		c.pending.Add(1)
		defer c.pending.Add(-1)

		return c.shortener.CreateShortLink(ctx, shortlink.CreateRequest{
			APIKey:      cfg.APIKey,
			Destination: record.TrackingURL,
			Title:       record.Params.Campaign,
			Domain:      cfg.Domain,
		})
	}()
	if err != nil {
		c.logger.Warn("short link failed", zap.String("id", id), zap.Error(err))

		return nil, err
	}

	found, err := c.history.UpdateByID(ctx, id, short.ShortURL, short.ProviderID)
	if err != nil {
		c.logger.Warn("history not persisted", zap.String("id", id), zap.Error(err))
	}

	if updated, ok := c.history.Get(id); found && ok {
		record = updated
	} else {
		// Deleted while the provider call was in flight.
		record.ShortURL = &short.ShortURL
		record.HasShortLink = true
		record.ShortLinkProviderID = short.ProviderID
	}

	c.logger.Info("short link recorded",
		zap.String("id", id),
		zap.String("shortUrl", short.ShortURL),
	)

	c.reportPublish(analytics.TopicLinkShortened, c.events.LinkShortened(ctx, &analytics.LinkShortenedEvent{
		ID:          id,
		ShortURL:    short.ShortURL,
		ProviderID:  short.ProviderID,
		Campaign:    record.Params.Campaign,
		ShortenedAt: c.now(),
	}))

	return &record, nil
}

// Delete removes a history record. It reports whether the record existed.
func (c *Controller) Delete(ctx context.Context, id string) (bool, error) {
	record, _ := c.history.Get(id)

	found, err := c.history.DeleteByID(ctx, id)
	if err != nil {
		c.logger.Warn("history not persisted", zap.String("id", id), zap.Error(err))
	}

	if !found {
		return false, nil
	}

	c.reportPublish(analytics.TopicLinkDeleted, c.events.LinkDeleted(ctx, &analytics.LinkDeletedEvent{
		ID:        id,
		Campaign:  record.Params.Campaign,
		DeletedAt: c.now(),
	}))

	return true, nil
}

// History returns the stored links, newest first.
func (c *Controller) History() []history.Link {
	return c.history.List()
}

// Pending reports how many short-link or credential calls are in flight.
func (c *Controller) Pending() int {
	return int(c.pending.Load())
}

// MarkCopied records a copy action. The flag clears itself after the
// configured delay; a newer copy restarts the delay.
func (c *Controller) MarkCopied() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.copied = true
	c.copyGen++
	gen := c.copyGen

	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}

	c.copyTimer = time.AfterFunc(c.copyResetAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.copyGen == gen {
			c.copied = false
		}
	})
}

// Copied reports whether a copy confirmation is showing.
func (c *Controller) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.copied
}

// Shutdown stops the copy confirmation timer.
func (c *Controller) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}

	return nil
}

func (c *Controller) reportPublish(topic string, err error) {
	if err != nil {
		c.logger.Warn("event not published", zap.String("topic", topic), zap.Error(err))
	}
}
