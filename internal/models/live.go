package models

// LiveStats is the /live-stats snapshot
type LiveStats struct {
	ActiveUsers  Opt[float64]
	TeamsCreated Opt[float64]
	SuccessRate  Opt[string]
	LiveContests Opt[float64]
}

// Weather is the weather half of a match analysis
type Weather struct {
	Temperature Opt[string]
	WindSpeed   Opt[string]
	Humidity    Opt[string]
}

// Pitch is the pitch-condition half of a match analysis
type Pitch struct {
	BattingFriendly Opt[string]
	PaceSupport     Opt[string]
	SpinSupport     Opt[string]
}

// MatchAnalysis is the /match-analysis snapshot
type MatchAnalysis struct {
	Weather Opt[Weather]
	Pitch   Opt[Pitch]
}

// Match is one match-summary card
type Match struct {
	Name   string
	Venue  string
	Status string
	Score  Opt[string]
}

// Health is the backend /health answer
type Health struct {
	Status    string
	Timestamp string
	AIStatus  map[string]bool
}

// Field names a single-value display target.
type Field int

const (
	FieldActiveUsers Field = iota
	FieldTeamsCreated
	FieldSuccessRate
	FieldLiveContests
	FieldTemperature
	FieldWindSpeed
	FieldHumidity
	FieldBattingFriendly
	FieldPaceSupport
	FieldSpinSupport
)

var fieldNames = [...]string{
	FieldActiveUsers:     "active-users",
	FieldTeamsCreated:    "teams-created",
	FieldSuccessRate:     "success-rate",
	FieldLiveContests:    "live-contests",
	FieldTemperature:     "temperature",
	FieldWindSpeed:       "wind-speed",
	FieldHumidity:        "humidity",
	FieldBattingFriendly: "batting-friendly",
	FieldPaceSupport:     "pace-support",
	FieldSpinSupport:     "spin-support",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// AllFields returns every display target in layout order.
func AllFields() []Field {
	fields := make([]Field, len(fieldNames))
	for i := range fieldNames {
		fields[i] = Field(i)
	}
	return fields
}

// Region names a structural part of the display surface.
type Region string

const (
	RegionMessageLog  Region = "chat-messages"
	RegionInput       Region = "messageInput"
	RegionSendControl Region = "sendButton"
	RegionForm        Region = "chat-form"
	RegionMatchesList Region = "matches-list"
	RegionLivePanel   Region = "live-panel"
)
