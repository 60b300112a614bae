package api

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/models"
)

// GJSON paths for the backend payloads.
const (
	PathResponse  = "response"
	PathTimestamp = "timestamp"
	PathData      = "data"
	PathError     = "error"

	PathStats             = "stats"
	PathStatsActiveUsers  = "active_users"
	PathStatsTeamsCreated = "teams_created"
	PathStatsSuccessRate  = "success_rate"
	PathStatsLiveContests = "live_contests"

	PathAnalysis        = "analysis"
	PathWeather         = "weather"
	PathTemperature     = "temperature"
	PathWindSpeed       = "wind_speed"
	PathHumidity        = "humidity"
	PathPitch           = "pitch"
	PathBattingFriendly = "batting_friendly"
	PathPaceSupport     = "pace_support"
	PathSpinSupport     = "spin_support"

	PathMatches    = "matches"
	PathMatchName  = "name"
	PathMatchVenue = "venue"
	PathMatchState = "status"
	PathMatchScore = "score"

	PathTips = "tips"
)

// truthy mirrors how the backend's consumers test a field: absent, null,
// false, 0 and "" all count as missing. Empty arrays and objects do not.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	}
	return true
}

// defined reports whether a field was sent with a non-null value.
func defined(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// optString reads a defined field as its display string.
func optString(r gjson.Result) models.Opt[string] {
	if !defined(r) {
		return models.None[string]()
	}
	return models.Some(r.String())
}

// optTruthyString reads a field only when it is truthy.
func optTruthyString(r gjson.Result) models.Opt[string] {
	if !truthy(r) {
		return models.None[string]()
	}
	return models.Some(r.String())
}

// optCount reads a counter sent either as a JSON number or a numeric string.
// Fractions are kept.
func optCount(r gjson.Result) models.Opt[float64] {
	switch r.Type {
	case gjson.Number:
		return models.Some(r.Num)
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return models.None[float64]()
		}
		return models.Some(n)
	}
	return models.None[float64]()
}
