package widget

import (
	"context"

	"github.com/diogo/cricketai/internal/models"
)

// LoadLiveData runs one refresh tick: live stats, match analysis, then the
// match list. A missing section skips only its own update; an error aborts
// the rest of the tick. A tick that starts while another is running is
// skipped with ErrTickInFlight.
func (c *Controller) LoadLiveData(ctx context.Context) error {
	if !c.refreshing.CompareAndSwap(false, true) {
		c.logger.Warn().Msg("live data refresh skipped, previous tick still running")
		return ErrTickInFlight
	}
	defer c.refreshing.Store(false)

	c.logger.Debug().Msg("loading live data")
	if err := c.loadLiveData(ctx); err != nil {
		c.logger.Error().Err(err).Msg("error loading live data")
		return err
	}
	c.logger.Debug().Msg("live data loaded")
	return nil
}

func (c *Controller) loadLiveData(ctx context.Context) error {
	stats, err := c.client.LiveStats(ctx)
	if err != nil {
		return err
	}
	if stats != nil {
		if s, ok := stats.Stats.Get(); ok {
			c.updateLiveStats(s)
		}
	}

	analysis, err := c.client.MatchAnalysis(ctx)
	if err != nil {
		return err
	}
	if analysis != nil {
		if a, ok := analysis.Analysis.Get(); ok {
			c.updateMatchAnalysis(a)
		}
	}

	matches, err := c.client.Matches(ctx)
	if err != nil {
		return err
	}
	if matches != nil {
		if m, ok := matches.Matches.Get(); ok {
			c.updateLiveMatches(m)
		}
	}
	return nil
}

func (c *Controller) updateLiveStats(s models.LiveStats) {
	c.updateElement(models.FieldActiveUsers, grouped(s.ActiveUsers))
	c.updateElement(models.FieldTeamsCreated, grouped(s.TeamsCreated))
	c.updateElement(models.FieldSuccessRate, percent(s.SuccessRate))
	c.updateElement(models.FieldLiveContests, grouped(s.LiveContests))
}

func (c *Controller) updateMatchAnalysis(a models.MatchAnalysis) {
	if w, ok := a.Weather.Get(); ok {
		c.updateElement(models.FieldTemperature, w.Temperature)
		c.updateElement(models.FieldWindSpeed, w.WindSpeed)
		c.updateElement(models.FieldHumidity, w.Humidity)
	}
	if p, ok := a.Pitch.Get(); ok {
		c.updateElement(models.FieldBattingFriendly, percent(p.BattingFriendly))
		c.updateElement(models.FieldPaceSupport, percent(p.PaceSupport))
		c.updateElement(models.FieldSpinSupport, percent(p.SpinSupport))
	}
}

// updateLiveMatches replaces the match list wholesale; an empty list leaves
// the previous cards in place.
func (c *Controller) updateLiveMatches(matches []models.Match) {
	if !c.hasRegion(models.RegionMatchesList) || len(matches) == 0 {
		return
	}
	cards := make([]models.Match, len(matches))
	copy(cards, matches)
	c.display.MatchesReplaced(cards)
}

// updateElement writes a defined value into its target.
func (c *Controller) updateElement(f models.Field, value models.Opt[string]) {
	v, ok := value.Get()
	if !ok || !c.hasRegion(models.RegionLivePanel) {
		return
	}
	c.display.FieldUpdated(f, v)
}
