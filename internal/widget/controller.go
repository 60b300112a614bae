// Package widget implements the chat widget controller: the message log, the
// quick-action dispatch and the periodic live-data refresh.
package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/api"
	"github.com/diogo/cricketai/internal/config"
	"github.com/diogo/cricketai/internal/models"
)

// ErrTickInFlight is returned by LoadLiveData when a previous refresh is still running.
var ErrTickInFlight = errors.New("live data refresh already in progress")

// Controller drives one chat widget. It is safe for concurrent use.
type Controller struct {
	client   api.ClientInterface
	display  Display
	logger   zerolog.Logger
	log      *Log
	bindings *Bindings

	refreshInterval time.Duration

	typing     atomic.Bool
	refreshing atomic.Bool

	mu          sync.RWMutex
	regions     map[models.Region]bool
	stopRefresh context.CancelFunc
	refreshDone chan struct{}
}

// Option configures a Controller
type Option func(*Controller)

// WithDisplay sets the surface the controller renders into.
func WithDisplay(d Display) Option {
	return func(c *Controller) {
		if d != nil {
			c.display = d
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithRefreshInterval sets the live data period. Non-positive values keep the default.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.refreshInterval = d
		}
	}
}

// New creates a controller over client.
func New(client api.ClientInterface, opts ...Option) *Controller {
	c := &Controller{
		client:          client,
		display:         NopDisplay{},
		logger:          zerolog.Nop(),
		log:             &Log{},
		bindings:        NewBindings(),
		refreshInterval: models.DefaultRefreshInterval,
		regions:         make(map[models.Region]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log returns the chat log.
func (c *Controller) Log() *Log { return c.log }

// Bindings returns the control handler registry.
func (c *Controller) Bindings() *Bindings { return c.bindings }

// Client returns the backend client.
func (c *Controller) Client() api.ClientInterface { return c.client }

// IsTyping reports whether a chat request is in flight.
func (c *Controller) IsTyping() bool { return c.typing.Load() }

// IsRefreshing reports whether a live data refresh is running.
func (c *Controller) IsRefreshing() bool { return c.refreshing.Load() }

// Bootstrap attaches the controller to its display: it binds the form and
// every action control, greets the user and starts the live data refresh,
// which runs until ctx ends or Stop is called. Calling it again rebinds
// without duplicating handlers, unbinds controls that went away and
// restarts the refresh loop.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.LocateRegions()

	listed := make(map[string]bool)
	if c.hasRegion(models.RegionForm) {
		listed[ControlSubmit] = true
		c.bindings.Bind(ControlSubmit, func(ctx context.Context, text string) {
			c.SendMessage(ctx, text)
		})
	}

	controls := c.display.Controls()
	for _, ctl := range controls {
		ctl := ctl
		listed[ctl.Name] = true
		c.bindings.Bind(ctl.Name, func(ctx context.Context, _ string) {
			c.HandleQuickAction(ctx, ctl.Action, ctl.Label)
		})
	}

	// drop handlers for controls the display no longer lists
	for _, name := range c.bindings.Controls() {
		if !listed[name] {
			c.bindings.Unbind(name)
		}
	}
	c.logger.Debug().Int("controls", len(controls)).Msg("quick action controls bound")

	c.addMessage(models.WelcomeMessage, models.SenderAI)

	c.startRefresh(ctx)
	c.logger.Info().Str("backend", c.client.BaseURL()).Msg("chat widget ready")
}

// Trigger runs the handler bound to control and reports whether one existed.
func (c *Controller) Trigger(ctx context.Context, control, arg string) bool {
	h, ok := c.bindings.Lookup(control)
	if !ok {
		return false
	}
	h(ctx, arg)
	return true
}

// Stop ends the refresh loop started by Bootstrap and waits for it to exit.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, done := c.stopRefresh, c.refreshDone
	c.stopRefresh, c.refreshDone = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// LocateRegions asks the display which regions it has. Operations that
// need a missing region only log. Bootstrap calls it; callers that skip
// Bootstrap call it directly.
func (c *Controller) LocateRegions() {
	regions := []models.Region{
		models.RegionMessageLog,
		models.RegionInput,
		models.RegionSendControl,
		models.RegionForm,
		models.RegionMatchesList,
		models.RegionLivePanel,
	}

	found := make(map[models.Region]bool, len(regions))
	for _, r := range regions {
		if c.display.HasRegion(r) {
			found[r] = true
			continue
		}
		c.logger.Warn().Str("region", string(r)).Msg("display region not found")
	}

	c.mu.Lock()
	c.regions = found
	c.mu.Unlock()
}

func (c *Controller) hasRegion(r models.Region) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.regions[r]
}

func (c *Controller) startRefresh(ctx context.Context) {
	c.Stop()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.stopRefresh, c.refreshDone = cancel, done
	c.mu.Unlock()

	go func() {
		var ticks sync.WaitGroup
		defer close(done)
		defer ticks.Wait()

		_ = c.LoadLiveData(loopCtx)

		ticker := time.NewTicker(c.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				ticks.Add(1)
				go func() {
					defer ticks.Done()
					_ = c.LoadLiveData(loopCtx)
				}()
			}
		}
	}()
}

// SendMessage submits input to the backend and appends the exchange to the
// log. It returns false without side effects when the trimmed input is
// empty or a previous message is still awaiting its reply.
func (c *Controller) SendMessage(ctx context.Context, input string) bool {
	message, ok := c.BeginSend(input)
	if !ok {
		return false
	}
	c.CompleteSend(ctx, message)
	return true
}

// BeginSend performs the synchronous half of SendMessage: it records the
// user message, clears the input and marks the widget busy. The returned
// text must be handed to CompleteSend.
func (c *Controller) BeginSend(input string) (string, bool) {
	message := strings.TrimSpace(input)
	if message == "" {
		return "", false
	}
	if !c.typing.CompareAndSwap(false, true) {
		c.logger.Debug().Msg("send ignored, reply pending")
		return "", false
	}

	c.addMessage(message, models.SenderUser)
	if c.hasRegion(models.RegionInput) {
		c.display.InputCleared()
	}
	if c.hasRegion(models.RegionSendControl) {
		c.display.SendControlChanged(true)
	}
	return message, true
}

// CompleteSend posts message and appends the reply, the fallback text or
// the connection error. The busy state is always cleared.
func (c *Controller) CompleteSend(ctx context.Context, message string) {
	defer c.hideTyping()

	reply, err := c.client.Chat(ctx, message)
	switch {
	case err != nil:
		c.logger.Error().Err(err).Msg("chat error")
		c.addMessage(c.connectionError(), models.SenderAI)
	case reply != nil && reply.Response.IsSet():
		c.addMessage(reply.Response.OrElse(""), models.SenderAI)
	default:
		if reply != nil && reply.Error.IsSet() {
			c.logger.Warn().Int("status", reply.Status).Str("error", reply.Error.OrElse("")).Msg("chat reply without response")
		}
		c.addMessage(models.ChatFallbackMessage, models.SenderAI)
	}
}

func (c *Controller) hideTyping() {
	c.typing.Store(false)
	if c.hasRegion(models.RegionSendControl) {
		c.display.SendControlChanged(false)
	}
}

func (c *Controller) connectionError() string {
	return fmt.Sprintf(models.ChatConnectionErrorFormat, config.BackendHost(c.client.BaseURL()))
}

// HandleQuickAction runs one predefined query and appends its formatted
// result. label is the control's text, shown lowercased while loading.
func (c *Controller) HandleQuickAction(ctx context.Context, id models.QuickActionID, label string) {
	c.logger.Debug().Str("action", string(id)).Msg("quick action")
	c.display.ActionFeedback(id)

	subject := strings.ToLower(label)
	c.addMessage(fmt.Sprintf(models.QuickActionPendingFormat, subject), models.SenderAI)

	reply, err := c.client.QuickAction(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Str("action", string(id)).Msg("quick action error")
		c.addMessage(models.QuickActionConnectionError, models.SenderAI)
		return
	}

	var (
		data gjson.Result
		ok   bool
	)
	if reply != nil {
		data, ok = reply.Data.Get()
	}
	if !ok {
		c.addMessage(fmt.Sprintf(models.QuickActionMissingFormat, subject), models.SenderAI)
		return
	}
	c.addMessage(FormatQuickAction(id, data), models.SenderAI)
}

// addMessage appends to the log and shows the entry. Without a message log
// region the entry is only logged.
func (c *Controller) addMessage(text string, sender models.Sender) models.ChatMessage {
	msg := models.NewChatMessage(text, sender)
	c.log.Append(msg)

	if !c.hasRegion(models.RegionMessageLog) {
		c.logger.Info().Str("sender", string(sender)).Msg(text)
		return msg
	}
	c.display.MessageAdded(msg)
	return msg
}
