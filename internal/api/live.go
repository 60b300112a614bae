package api

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/models"
)

// LiveStatsReply is the /live-stats answer
type LiveStatsReply struct {
	Stats models.Opt[models.LiveStats]
}

// MatchAnalysisReply is the /match-analysis answer
type MatchAnalysisReply struct {
	Analysis models.Opt[models.MatchAnalysis]
}

// MatchesReply is the /matches answer
type MatchesReply struct {
	Matches models.Opt[[]models.Match]
}

// LiveStats fetches the platform counters.
func (c *Client) LiveStats(ctx context.Context) (*LiveStatsReply, error) {
	body, _, err := c.get(ctx, models.PathLiveStats)
	if err != nil {
		return nil, err
	}
	return parseLiveStats(body), nil
}

func parseLiveStats(body gjson.Result) *LiveStatsReply {
	stats := body.Get(PathStats)
	if !truthy(stats) {
		return &LiveStatsReply{}
	}

	return &LiveStatsReply{Stats: models.Some(models.LiveStats{
		ActiveUsers:  optCount(stats.Get(PathStatsActiveUsers)),
		TeamsCreated: optCount(stats.Get(PathStatsTeamsCreated)),
		SuccessRate:  optString(stats.Get(PathStatsSuccessRate)),
		LiveContests: optCount(stats.Get(PathStatsLiveContests)),
	})}
}

// MatchAnalysis fetches weather and pitch conditions.
func (c *Client) MatchAnalysis(ctx context.Context) (*MatchAnalysisReply, error) {
	body, _, err := c.get(ctx, models.PathMatchAnalysis)
	if err != nil {
		return nil, err
	}
	return parseMatchAnalysis(body), nil
}

func parseMatchAnalysis(body gjson.Result) *MatchAnalysisReply {
	analysis := body.Get(PathAnalysis)
	if !truthy(analysis) {
		return &MatchAnalysisReply{}
	}

	var out models.MatchAnalysis
	if weather := analysis.Get(PathWeather); truthy(weather) {
		out.Weather = models.Some(models.Weather{
			Temperature: optString(weather.Get(PathTemperature)),
			WindSpeed:   optString(weather.Get(PathWindSpeed)),
			Humidity:    optString(weather.Get(PathHumidity)),
		})
	}
	if pitch := analysis.Get(PathPitch); truthy(pitch) {
		out.Pitch = models.Some(models.Pitch{
			BattingFriendly: optString(pitch.Get(PathBattingFriendly)),
			PaceSupport:     optString(pitch.Get(PathPaceSupport)),
			SpinSupport:     optString(pitch.Get(PathSpinSupport)),
		})
	}
	return &MatchAnalysisReply{Analysis: models.Some(out)}
}

// Matches fetches the match-summary cards.
func (c *Client) Matches(ctx context.Context) (*MatchesReply, error) {
	body, _, err := c.get(ctx, models.PathMatches)
	if err != nil {
		return nil, err
	}
	return parseMatches(body), nil
}

func parseMatches(body gjson.Result) *MatchesReply {
	list := body.Get(PathMatches)
	if !truthy(list) {
		return &MatchesReply{}
	}

	matches := []models.Match{}
	for _, m := range records(list) {
		matches = append(matches, models.Match{
			Name:   m.Get(PathMatchName).String(),
			Venue:  m.Get(PathMatchVenue).String(),
			Status: m.Get(PathMatchState).String(),
			Score:  optTruthyString(m.Get(PathMatchScore)),
		})
	}
	return &MatchesReply{Matches: models.Some(matches)}
}
