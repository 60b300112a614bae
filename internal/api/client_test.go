package api

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apierrors "github.com/diogo/cricketai/internal/errors"
	"github.com/diogo/cricketai/internal/models"
)

const testBaseURL = "http://backend.test/api"

func newTestClient(t *testing.T, mock *MockHttpClient) *Client {
	t.Helper()
	client, err := NewClient(WithBaseURL(testBaseURL+"/"), WithHTTPClient(mock))
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(WithHTTPClient(newMockHttpClient()))
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	if client.BaseURL() != models.DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), models.DefaultBaseURL)
	}
}

func TestNewClient_RealTransport(t *testing.T) {
	client, err := NewClient(WithTimeout(5 * time.Second))
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	if client.httpClient == nil {
		t.Fatal("expected a default transport")
	}
	if client.timeout != 5*time.Second {
		t.Errorf("timeout = %v", client.timeout)
	}
}

func TestClient_Chat(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantResponse string
		wantSet      bool
		wantErr      bool
	}{
		{
			name:         "reply present",
			status:       200,
			body:         `{"response":"Pick Bumrah","timestamp":"2025-04-01T10:00:00"}`,
			wantResponse: "Pick Bumrah",
			wantSet:      true,
		},
		{
			name:    "reply missing",
			status:  200,
			body:    `{"timestamp":"2025-04-01T10:00:00"}`,
			wantSet: false,
		},
		{
			name:    "empty reply counts as missing",
			status:  200,
			body:    `{"response":""}`,
			wantSet: false,
		},
		{
			name:    "backend error body is a missing reply",
			status:  400,
			body:    `{"error":"No message provided"}`,
			wantSet: false,
		},
		{
			name:    "html error page",
			status:  502,
			body:    `<html>Bad Gateway</html>`,
			wantErr: true,
		},
		{
			name:    "non json success",
			status:  200,
			body:    `OK`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockHttpClient().respond("/api/chat", tt.status, tt.body)
			client := newTestClient(t, mock)

			reply, err := client.Chat(context.Background(), "who should I captain?")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Chat() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Chat() unexpected error: %v", err)
			}

			got, ok := reply.Response.Get()
			if ok != tt.wantSet || got != tt.wantResponse {
				t.Errorf("Response = (%q, %v), want (%q, %v)", got, ok, tt.wantResponse, tt.wantSet)
			}

			if len(mock.Requests) != 1 {
				t.Fatalf("expected 1 request, got %d", len(mock.Requests))
			}
			req := mock.Requests[0]
			if req.Method != "POST" {
				t.Errorf("Method = %s, want POST", req.Method)
			}
			if ct := req.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var sent map[string]string
			if err := json.Unmarshal([]byte(mock.Bodies[0]), &sent); err != nil {
				t.Fatalf("request body is not JSON: %v", err)
			}
			if sent["message"] != "who should I captain?" {
				t.Errorf("message = %q", sent["message"])
			}
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	mock := newMockHttpClient()
	mock.Err = errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")
	client := newTestClient(t, mock)

	_, err := client.Chat(context.Background(), "hi")
	if !apierrors.IsNetworkError(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if apierrors.GetEndpoint(err) != models.PathChat {
		t.Errorf("endpoint = %q", apierrors.GetEndpoint(err))
	}
}

func TestClient_Closed(t *testing.T) {
	client := newTestClient(t, newMockHttpClient())
	client.Close()

	if !client.IsClosed() {
		t.Fatal("IsClosed() = false after Close()")
	}
	if _, err := client.LiveStats(context.Background()); !errors.Is(err, apierrors.ErrClientClosed) {
		t.Errorf("expected ErrClientClosed, got %v", err)
	}
}

func TestClient_QuickAction(t *testing.T) {
	mock := newMockHttpClient().
		respond("/api/quick-actions/best-team", 200, `{"data":[{"name":"Virat Kohli","team":"RCB","role":"Batsman","price":"₹17.0Cr","form":"85%","reason":"Consistent"}]}`).
		respond("/api/quick-actions/unknown", 400, `{"error":"Unknown action"}`).
		respond("/api/quick-actions/empty", 200, `{"data":[]}`)
	client := newTestClient(t, mock)

	reply, err := client.QuickAction(context.Background(), models.ActionBestTeam)
	if err != nil {
		t.Fatalf("QuickAction() error: %v", err)
	}
	data, ok := reply.Data.Get()
	if !ok {
		t.Fatal("expected data")
	}
	picks := DecodeTeamPicks(data)
	if len(picks) != 1 || picks[0].Name != "Virat Kohli" || picks[0].Price != "₹17.0Cr" {
		t.Errorf("DecodeTeamPicks() = %+v", picks)
	}

	reply, err = client.QuickAction(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("QuickAction() error: %v", err)
	}
	if reply.Data.IsSet() {
		t.Error("error body must not carry data")
	}
	if msg, _ := reply.Error.Get(); msg != "Unknown action" {
		t.Errorf("Error = %q", msg)
	}
	if reply.Status != 400 {
		t.Errorf("Status = %d", reply.Status)
	}

	reply, err = client.QuickAction(context.Background(), "empty")
	if err != nil {
		t.Fatalf("QuickAction() error: %v", err)
	}
	if !reply.Data.IsSet() {
		t.Error("an empty list is still a data payload")
	}
}

func TestClient_LiveStats(t *testing.T) {
	mock := newMockHttpClient().respond("/api/live-stats", 200,
		`{"stats":{"active_users":18234,"teams_created":"51200","success_rate":74}}`)
	client := newTestClient(t, mock)

	reply, err := client.LiveStats(context.Background())
	if err != nil {
		t.Fatalf("LiveStats() error: %v", err)
	}
	stats, ok := reply.Stats.Get()
	if !ok {
		t.Fatal("expected stats")
	}
	if v, _ := stats.ActiveUsers.Get(); v != 18234 {
		t.Errorf("ActiveUsers = %v", v)
	}
	if v, _ := stats.TeamsCreated.Get(); v != 51200 {
		t.Errorf("TeamsCreated = %v", v)
	}
	if v, _ := stats.SuccessRate.Get(); v != "74" {
		t.Errorf("SuccessRate = %q", v)
	}
	if stats.LiveContests.IsSet() {
		t.Error("LiveContests should be absent")
	}
}

func TestClient_LiveStats_Missing(t *testing.T) {
	mock := newMockHttpClient().respond("/api/live-stats", 500, `{"error":"Internal server error"}`)
	client := newTestClient(t, mock)

	reply, err := client.LiveStats(context.Background())
	if err != nil {
		t.Fatalf("LiveStats() error: %v", err)
	}
	if reply.Stats.IsSet() {
		t.Error("stats should be absent")
	}
}

func TestClient_MatchAnalysis(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantWeather bool
		wantPitch   bool
	}{
		{
			name:        "both halves",
			body:        `{"analysis":{"weather":{"temperature":"28°C","wind_speed":"15 km/h","humidity":"60%"},"pitch":{"batting_friendly":78,"pace_support":80,"spin_support":70}}}`,
			wantWeather: true,
			wantPitch:   true,
		},
		{
			name:      "pitch only",
			body:      `{"analysis":{"pitch":{"batting_friendly":78}}}`,
			wantPitch: true,
		},
		{
			name: "weather null",
			body: `{"analysis":{"weather":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockHttpClient().respond("/api/match-analysis", 200, tt.body)
			client := newTestClient(t, mock)

			reply, err := client.MatchAnalysis(context.Background())
			if err != nil {
				t.Fatalf("MatchAnalysis() error: %v", err)
			}
			analysis, ok := reply.Analysis.Get()
			if !ok {
				t.Fatal("expected analysis")
			}
			if analysis.Weather.IsSet() != tt.wantWeather {
				t.Errorf("Weather set = %v, want %v", analysis.Weather.IsSet(), tt.wantWeather)
			}
			if analysis.Pitch.IsSet() != tt.wantPitch {
				t.Errorf("Pitch set = %v, want %v", analysis.Pitch.IsSet(), tt.wantPitch)
			}
			if p, ok := analysis.Pitch.Get(); ok {
				if v, _ := p.BattingFriendly.Get(); v != "78" {
					t.Errorf("BattingFriendly = %q", v)
				}
			}
		})
	}
}

func TestClient_Matches(t *testing.T) {
	mock := newMockHttpClient().respond("/api/matches", 200, `{"matches":[
		{"name":"Mumbai Indians vs Chennai Super Kings","venue":"Wankhede Stadium, Mumbai","status":"Live","score":"MI: 156/4 (18.2)"},
		{"name":"Royal Challengers Bangalore vs Kolkata Knight Riders","venue":"M. Chinnaswamy Stadium","status":"Upcoming","score":null}
	]}`)
	client := newTestClient(t, mock)

	reply, err := client.Matches(context.Background())
	if err != nil {
		t.Fatalf("Matches() error: %v", err)
	}
	matches, ok := reply.Matches.Get()
	if !ok || len(matches) != 2 {
		t.Fatalf("Matches = %+v", matches)
	}
	if score, ok := matches[0].Score.Get(); !ok || score != "MI: 156/4 (18.2)" {
		t.Errorf("first score = %q, %v", score, ok)
	}
	if matches[1].Score.IsSet() {
		t.Error("null score must be absent")
	}
	if matches[1].Status != "Upcoming" {
		t.Errorf("Status = %q", matches[1].Status)
	}
}

func TestClient_Health(t *testing.T) {
	mock := newMockHttpClient().respond("/api/health", 200,
		`{"status":"healthy","timestamp":"2025-04-01T10:00:00","ai_status":{"openai":false,"anthropic":true}}`)
	client := newTestClient(t, mock)

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Status = %q", health.Status)
	}
	if !health.AIStatus["anthropic"] || health.AIStatus["openai"] {
		t.Errorf("AIStatus = %v", health.AIStatus)
	}
}

func TestDecoders(t *testing.T) {
	data := parseJSON(`[
		{"name":"Shubman Gill","team":"GT","ownership":"15%","price":"₹15.5Cr","potential":"High","reason":"Undervalued"}
	]`)
	diffs := DecodeDifferentialPicks(data)
	if len(diffs) != 1 || diffs[0].Ownership != "15%" || diffs[0].Potential != "High" {
		t.Errorf("DecodeDifferentialPicks() = %+v", diffs)
	}

	captains := DecodeCaptainOptions(parseJSON(`[{"name":"Virat Kohli","team":"RCB","captaincy":88,"consistency":"92%","reason":"Reliable"}]`))
	if len(captains) != 1 || captains[0].Captaincy != "88" {
		t.Errorf("DecodeCaptainOptions() = %+v", captains)
	}

	budget := DecodeBudgetPicks(parseJSON(`[{"name":"Mohit Sharma","team":"GT","role":"Bowler","price":"₹7.0Cr","value_score":"82"}]`))
	if len(budget) != 1 || budget[0].ValueScore != "82" {
		t.Errorf("DecodeBudgetPicks() = %+v", budget)
	}

	tips := DecodeFantasyTips(parseJSON(`{"tips":["a","b"]}`))
	if len(tips.Tips) != 2 || tips.Tips[1] != "b" {
		t.Errorf("DecodeFantasyTips() = %+v", tips)
	}

	if got := DecodeFantasyTips(parseJSON(`{}`)); len(got.Tips) != 0 {
		t.Errorf("missing tips should be empty, got %+v", got)
	}

	if got := DecodeTeamPicks(parseJSON(`{"name":"not a list"}`)); got != nil {
		t.Errorf("non-array payload should decode to nothing, got %+v", got)
	}
}
