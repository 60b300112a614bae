package widget

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Preset is a canned question for manual testing.
type Preset struct {
	Name     string
	Question string
}

var presets = []Preset{
	{Name: "live-matches", Question: "What IPL matches are live today?"},
	{Name: "best-captain", Question: "Who should I pick as captain for today's IPL match?"},
	{Name: "mi-vs-csk", Question: "Give me team strategy for MI vs CSK match"},
	{Name: "virat-or-rohit", Question: "Should I pick Virat Kohli or Rohit Sharma today?"},
	{Name: "weather-impact", Question: "How will today's weather affect the IPL match?"},
	{Name: "differentials", Question: "Give me 3 differential picks for today's IPL matches"},
}

// Presets returns the canned questions.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// PresetByName looks up a canned question.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// DemoStep is one scheduled question of the demo script.
type DemoStep struct {
	After  time.Duration
	Preset string
}

// DefaultDemo asks three questions at 1s, 3s and 5s.
var DefaultDemo = []DemoStep{
	{After: 1 * time.Second, Preset: "live-matches"},
	{After: 3 * time.Second, Preset: "best-captain"},
	{After: 5 * time.Second, Preset: "virat-or-rohit"},
}

// Helpers is the debug surface of a controller.
type Helpers struct {
	c *Controller
}

// NewHelpers wraps c.
func NewHelpers(c *Controller) *Helpers {
	return &Helpers{c: c}
}

// AskQuestion sends q as if the user typed it.
func (h *Helpers) AskQuestion(ctx context.Context, q string) bool {
	return h.c.SendMessage(ctx, q)
}

// AskPreset sends the named canned question.
func (h *Helpers) AskPreset(ctx context.Context, name string) (bool, error) {
	p, ok := PresetByName(name)
	if !ok {
		return false, fmt.Errorf("unknown preset %q", name)
	}
	return h.AskQuestion(ctx, p.Question), nil
}

// Demo schedules the steps relative to now. Each step fires independently,
// so a step that lands while a reply is pending is dropped like any other
// send. The returned channel closes once every step has run or ctx ends.
func (h *Helpers) Demo(ctx context.Context, steps []DemoStep) <-chan struct{} {
	done := make(chan struct{})
	var wg sync.WaitGroup

	h.c.logger.Info().Int("steps", len(steps)).Msg("running demo questions")
	for _, step := range steps {
		wg.Add(1)
		go func(step DemoStep) {
			defer wg.Done()
			timer := time.NewTimer(step.After)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if _, err := h.AskPreset(ctx, step.Preset); err != nil {
				h.c.logger.Warn().Err(err).Msg("demo step skipped")
			}
		}(step)
	}

	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}
