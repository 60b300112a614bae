package tui

import (
	"sync"
	"time"

	"github.com/diogo/cricketai/internal/models"
	"github.com/diogo/cricketai/internal/widget"
)

const (
	highlightDuration = time.Second
	feedbackDuration  = 300 * time.Millisecond
	slideInDuration   = 300 * time.Millisecond
)

// Page is the terminal surface the widget controller renders into. The
// controller writes from its own goroutines; the bubbletea model reads
// snapshots after each change notification.
type Page struct {
	mu       sync.Mutex
	actions  []models.QuickAction
	hidden   map[models.Region]bool
	messages []pageMessage
	fields   map[models.Field]fieldValue
	matches  []models.Match
	feedback map[models.QuickActionID]time.Time
	busy     bool
	inputGen int
	version  int

	changed chan struct{}
	now     func() time.Time
}

type pageMessage struct {
	msg     models.ChatMessage
	addedAt time.Time
}

type fieldValue struct {
	value     string
	updatedAt time.Time
}

var _ widget.Display = (*Page)(nil)

// PageOption configures a Page
type PageOption func(*Page)

// WithoutRegion hides a region so the controller treats it as missing.
func WithoutRegion(r models.Region) PageOption {
	return func(p *Page) {
		p.hidden[r] = true
	}
}

// WithActions replaces the quick-action controls.
func WithActions(actions []models.QuickAction) PageOption {
	return func(p *Page) {
		p.actions = actions
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) PageOption {
	return func(p *Page) {
		p.now = now
	}
}

// NewPage creates a surface with every region and the default quick actions.
func NewPage(opts ...PageOption) *Page {
	p := &Page{
		actions:  models.DefaultQuickActions(),
		hidden:   make(map[models.Region]bool),
		fields:   make(map[models.Field]fieldValue),
		feedback: make(map[models.QuickActionID]time.Time),
		changed:  make(chan struct{}, 1),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Changed delivers a value after every change. Bursts collapse into one.
func (p *Page) Changed() <-chan struct{} {
	return p.changed
}

// notify must be called with p.mu held.
func (p *Page) notify() {
	p.version++
	select {
	case p.changed <- struct{}{}:
	default:
	}
}

func (p *Page) HasRegion(r models.Region) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.hidden[r]
}

func (p *Page) Controls() []widget.Control {
	p.mu.Lock()
	defer p.mu.Unlock()
	controls := make([]widget.Control, len(p.actions))
	for i, a := range p.actions {
		controls[i] = widget.Control{Name: widget.ControlName(a.ID), Action: a.ID, Label: a.Label}
	}
	return controls
}

func (p *Page) MessageAdded(msg models.ChatMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, pageMessage{msg: msg, addedAt: p.now()})
	p.notify()
}

func (p *Page) InputCleared() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputGen++
	p.notify()
}

func (p *Page) SendControlChanged(busy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = busy
	p.notify()
}

func (p *Page) ActionFeedback(id models.QuickActionID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feedback[id] = p.now()
	p.notify()
}

func (p *Page) FieldUpdated(f models.Field, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fields[f] = fieldValue{value: value, updatedAt: p.now()}
	p.notify()
}

func (p *Page) MatchesReplaced(matches []models.Match) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.matches = matches
	p.notify()
}

// pageSnapshot is a consistent copy of the page state at one instant.
type pageSnapshot struct {
	at       time.Time
	actions  []models.QuickAction
	hidden   map[models.Region]bool
	messages []pageMessage
	fields   map[models.Field]fieldValue
	matches  []models.Match
	feedback map[models.QuickActionID]time.Time
	busy     bool
	inputGen int
	version  int
}

func (p *Page) snapshot() pageSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := pageSnapshot{
		at:       p.now(),
		actions:  append([]models.QuickAction(nil), p.actions...),
		hidden:   make(map[models.Region]bool, len(p.hidden)),
		messages: append([]pageMessage(nil), p.messages...),
		fields:   make(map[models.Field]fieldValue, len(p.fields)),
		matches:  append([]models.Match(nil), p.matches...),
		feedback: make(map[models.QuickActionID]time.Time, len(p.feedback)),
		busy:     p.busy,
		inputGen: p.inputGen,
		version:  p.version,
	}
	for k, v := range p.hidden {
		s.hidden[k] = v
	}
	for k, v := range p.fields {
		s.fields[k] = v
	}
	for k, v := range p.feedback {
		s.feedback[k] = v
	}
	return s
}

// Messages returns the displayed messages in order.
func (p *Page) Messages() []models.ChatMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.ChatMessage, len(p.messages))
	for i, m := range p.messages {
		out[i] = m.msg
	}
	return out
}

// Field returns the value shown in a display target.
func (p *Page) Field(f models.Field) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.fields[f]
	return v.value, ok
}

// Matches returns the match cards shown.
func (p *Page) Matches() []models.Match {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Match(nil), p.matches...)
}

func (s pageSnapshot) highlighted(f models.Field) bool {
	v, ok := s.fields[f]
	return ok && s.at.Sub(v.updatedAt) < highlightDuration
}

func (s pageSnapshot) pressed(id models.QuickActionID) bool {
	t, ok := s.feedback[id]
	return ok && s.at.Sub(t) < feedbackDuration
}

func (s pageSnapshot) fresh(i int) bool {
	return s.at.Sub(s.messages[i].addedAt) < slideInDuration
}

// animating reports whether some transient effect is still visible.
func (s pageSnapshot) animating() bool {
	for f := range s.fields {
		if s.highlighted(f) {
			return true
		}
	}
	for id := range s.feedback {
		if s.pressed(id) {
			return true
		}
	}
	if n := len(s.messages); n > 0 && s.fresh(n-1) {
		return true
	}
	return false
}
