package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/diogo/cricketai/internal/models"
	"github.com/diogo/cricketai/internal/widget"
)

var (
	liveWatchFlag    bool
	liveIntervalFlag time.Duration
)

// NewLiveCmd creates the live command
func NewLiveCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Show live stats, match conditions and matches",
		Long: `Fetch live platform stats, the current match analysis and the match
list once, or keep refreshing them with --watch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, deps)
		},
	}

	cmd.Flags().BoolVarP(&liveWatchFlag, "watch", "w", false, "Keep refreshing until interrupted")
	cmd.Flags().DurationVar(&liveIntervalFlag, "interval", 0, "Refresh interval with --watch (default from config, 30s)")

	return cmd
}

// liveDisplay collects what a refresh tick writes. It only has the live
// panel and the match list.
type liveDisplay struct {
	widget.NopDisplay

	mu      sync.Mutex
	fields  map[models.Field]string
	matches []models.Match
}

func newLiveDisplay() *liveDisplay {
	return &liveDisplay{fields: make(map[models.Field]string)}
}

func (d *liveDisplay) HasRegion(r models.Region) bool {
	return r == models.RegionLivePanel || r == models.RegionMatchesList
}

func (d *liveDisplay) FieldUpdated(f models.Field, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[f] = value
}

func (d *liveDisplay) MatchesReplaced(matches []models.Match) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches = matches
}

func (d *liveDisplay) state() (map[models.Field]string, []models.Match) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fields := make(map[models.Field]string, len(d.fields))
	for k, v := range d.fields {
		fields[k] = v
	}
	return fields, append([]models.Match(nil), d.matches...)
}

var liveSections = []struct {
	title  string
	fields []models.Field
}{
	{"📊 Live Stats", []models.Field{models.FieldActiveUsers, models.FieldTeamsCreated, models.FieldSuccessRate, models.FieldLiveContests}},
	{"🌤️ Weather", []models.Field{models.FieldTemperature, models.FieldWindSpeed, models.FieldHumidity}},
	{"🏟️ Pitch", []models.Field{models.FieldBattingFriendly, models.FieldPaceSupport, models.FieldSpinSupport}},
}

var fieldLabels = map[models.Field]string{
	models.FieldActiveUsers:     "Active users",
	models.FieldTeamsCreated:    "Teams created",
	models.FieldSuccessRate:     "Success rate",
	models.FieldLiveContests:    "Live contests",
	models.FieldTemperature:     "Temperature",
	models.FieldWindSpeed:       "Wind",
	models.FieldHumidity:        "Humidity",
	models.FieldBattingFriendly: "Batting friendly",
	models.FieldPaceSupport:     "Pace support",
	models.FieldSpinSupport:     "Spin support",
}

func runLive(cmd *cobra.Command, deps *Dependencies) error {
	display := newLiveDisplay()
	s, err := newOneShot(cmd, deps, widget.WithDisplay(display))
	if err != nil {
		return err
	}
	defer s.Close()
	s.controller.LocateRegions()

	ctx := commandContext(cmd)

	if !liveWatchFlag {
		p := startProgress(s.decorated, "Loading live data")
		if err := s.controller.LoadLiveData(ctx); err != nil {
			p.fail()
			// whatever arrived before the failure is still shown
			writeLive(s.out, display, s.decorated)
			fmt.Fprintln(s.errOut, formatErrorMessage(err, "Live data incomplete"))
			return fmt.Errorf("live data failed: %w", err)
		}
		p.success("Live data loaded")
		writeLive(s.out, display, s.decorated)
		return nil
	}

	interval := s.cfg.Refresh()
	if liveIntervalFlag > 0 {
		interval = liveIntervalFlag
	}
	return watchLive(ctx, s, display, interval)
}

// watchLive redraws after every tick until ctx ends. Failed ticks are
// reported and the next one proceeds.
func watchLive(ctx context.Context, s *oneShot, display *liveDisplay, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := s.controller.LoadLiveData(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if s.decorated {
			fmt.Fprint(s.out, "\033[H\033[2J")
		}
		writeLive(s.out, display, s.decorated)
		if err != nil && !errors.Is(err, widget.ErrTickInFlight) {
			fmt.Fprintln(s.errOut, formatErrorMessage(err, "Live data incomplete"))
		}
		if s.decorated {
			fmt.Fprintln(s.out, lipgloss.NewStyle().Foreground(colorTextMute).Render(
				fmt.Sprintf("Updated %s, next in %s. Ctrl+C to stop.", time.Now().Format("15:04:05"), interval)))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func writeLive(w io.Writer, display *liveDisplay, decorated bool) {
	fields, matches := display.state()
	if decorated {
		fmt.Fprintln(w, renderLive(fields, matches))
		return
	}

	for _, f := range models.AllFields() {
		if v, ok := fields[f]; ok {
			fmt.Fprintf(w, "%s: %s\n", f, v)
		}
	}
	for _, m := range matches {
		fmt.Fprintf(w, "match: %s | %s | %s | %s\n", m.Name, m.Venue, m.Status, m.Score.OrElse("-"))
	}
}

func renderLive(fields map[models.Field]string, matches []models.Match) string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	label := lipgloss.NewStyle().Foreground(colorTextDim).Width(18)
	value := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	missing := lipgloss.NewStyle().Foreground(colorTextMute).Render("--")

	var sections []string
	for _, sec := range liveSections {
		lines := []string{title.Render(sec.title)}
		for _, f := range sec.fields {
			v := missing
			if got, ok := fields[f]; ok {
				v = value.Render(got)
			}
			lines = append(lines, label.Render(fieldLabels[f])+v)
		}
		sections = append(sections, lipgloss.NewStyle().MarginRight(4).Render(strings.Join(lines, "\n")))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, sections...)

	if len(matches) == 0 {
		return out
	}

	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{truncate(m.Name, 40), truncate(m.Venue, 32), m.Status, m.Score.OrElse("")}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorTextMute)).
		Headers("Match", "Venue", "Status", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(colorPrimary).Bold(true)
			case row >= 0 && row < len(rows) && col == 2 && strings.EqualFold(rows[row][col], "live"):
				return style.Foreground(colorError).Bold(true)
			}
			return style.Foreground(colorText)
		})

	return out + "\n\n" + title.Render("🏏 Matches") + "\n" + t.String()
}
