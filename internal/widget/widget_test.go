package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/api"
	apierrors "github.com/diogo/cricketai/internal/errors"
	"github.com/diogo/cricketai/internal/models"
)

// fakeDisplay records every render call.
type fakeDisplay struct {
	mu       sync.Mutex
	missing  map[models.Region]bool
	controls []Control
	messages []models.ChatMessage
	cleared  int
	busy     []bool
	feedback []models.QuickActionID
	fields   map[models.Field]string
	matches  [][]models.Match
}

func newFakeDisplay(missing ...models.Region) *fakeDisplay {
	d := &fakeDisplay{
		missing: make(map[models.Region]bool),
		fields:  make(map[models.Field]string),
	}
	for _, r := range missing {
		d.missing[r] = true
	}
	for _, a := range models.DefaultQuickActions() {
		d.controls = append(d.controls, Control{Name: ControlName(a.ID), Action: a.ID, Label: a.Label})
	}
	return d
}

func (d *fakeDisplay) HasRegion(r models.Region) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.missing[r]
}

func (d *fakeDisplay) Controls() []Control {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Control(nil), d.controls...)
}

func (d *fakeDisplay) drop(r models.Region, controls ...Control) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.missing[r] = true
	d.controls = controls
}

func (d *fakeDisplay) MessageAdded(msg models.ChatMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, msg)
}

func (d *fakeDisplay) InputCleared() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cleared++
}

func (d *fakeDisplay) SendControlChanged(busy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.busy = append(d.busy, busy)
}

func (d *fakeDisplay) ActionFeedback(id models.QuickActionID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.feedback = append(d.feedback, id)
}

func (d *fakeDisplay) FieldUpdated(f models.Field, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[f] = value
}

func (d *fakeDisplay) MatchesReplaced(matches []models.Match) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches = append(d.matches, matches)
}

func (d *fakeDisplay) field(f models.Field) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.fields[f]
	return v, ok
}

func texts(msgs []models.ChatMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = string(m.Sender) + ": " + m.Text
	}
	return out
}

func newTestController(client api.ClientInterface, d Display) *Controller {
	c := New(client, WithDisplay(d))
	c.LocateRegions()
	return c
}

func TestSendMessageIgnoresBlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		mock := &api.MockClient{}
		c := newTestController(mock, newFakeDisplay())

		if c.SendMessage(context.Background(), input) {
			t.Errorf("SendMessage(%q) = true, want false", input)
		}
		if c.Log().Len() != 0 {
			t.Errorf("SendMessage(%q) appended %d messages", input, c.Log().Len())
		}
		if len(mock.CallLog()) != 0 {
			t.Errorf("SendMessage(%q) made requests: %v", input, mock.CallLog())
		}
	}
}

func TestSendMessageReplies(t *testing.T) {
	tests := []struct {
		name     string
		reply    *api.ChatReply
		err      error
		wantText string
	}{
		{
			name:     "response",
			reply:    &api.ChatReply{Response: models.Some("X"), Status: 200},
			wantText: "X",
		},
		{
			name:     "missing response",
			reply:    &api.ChatReply{Error: models.Some("Message is required"), Status: 400},
			wantText: models.ChatFallbackMessage,
		},
		{
			name:     "nil reply",
			wantText: models.ChatFallbackMessage,
		},
		{
			name:     "transport failure",
			err:      apierrors.NewNetworkError(models.PathChat, errors.New("connection refused")),
			wantText: "❌ Connection error! Make sure your backend is running on http://localhost:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &api.MockClient{ChatVal: tt.reply, ChatErr: tt.err}
			d := newFakeDisplay()
			c := newTestController(mock, d)

			if !c.SendMessage(context.Background(), "  orig  ") {
				t.Fatal("SendMessage returned false")
			}

			got := texts(c.Log().Messages())
			want := []string{"user: orig", "ai: " + tt.wantText}
			if strings.Join(got, "|") != strings.Join(want, "|") {
				t.Errorf("log = %v, want %v", got, want)
			}
			if c.IsTyping() {
				t.Error("typing flag still set")
			}
			if len(mock.ChatMessages) != 1 || mock.ChatMessages[0] != "orig" {
				t.Errorf("posted %v, want [orig]", mock.ChatMessages)
			}
			if d.cleared != 1 {
				t.Errorf("input cleared %d times, want 1", d.cleared)
			}
			if fmt.Sprint(d.busy) != "[true false]" {
				t.Errorf("send control changes = %v, want [true false]", d.busy)
			}
			if len(d.messages) != 2 {
				t.Errorf("display got %d messages, want 2", len(d.messages))
			}
		})
	}
}

func TestSendMessageWhileTypingIsIgnored(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	mock := &api.MockClient{
		ChatFunc: func(ctx context.Context, message string) (*api.ChatReply, error) {
			close(started)
			<-release
			return &api.ChatReply{Response: models.Some("first reply")}, nil
		},
	}
	c := newTestController(mock, newFakeDisplay())

	done := make(chan bool)
	go func() { done <- c.SendMessage(context.Background(), "first") }()
	<-started

	if !c.IsTyping() {
		t.Fatal("expected typing flag while the request is pending")
	}
	if c.SendMessage(context.Background(), "second") {
		t.Error("second SendMessage should be a no-op")
	}

	close(release)
	if !<-done {
		t.Error("first SendMessage returned false")
	}

	got := texts(c.Log().Messages())
	want := "user: first|ai: first reply"
	if strings.Join(got, "|") != want {
		t.Errorf("log = %v", got)
	}
	if len(mock.ChatMessages) != 1 {
		t.Errorf("backend saw %d messages, want 1", len(mock.ChatMessages))
	}
}

func TestUserMessageAppendedBeforeRequest(t *testing.T) {
	var c *Controller
	mock := &api.MockClient{
		ChatFunc: func(ctx context.Context, message string) (*api.ChatReply, error) {
			if last, ok := c.Log().Last(models.SenderUser); !ok || last.Text != message {
				t.Errorf("user message not in log when request started")
			}
			return &api.ChatReply{Response: models.Some("ok")}, nil
		},
	}
	c = newTestController(mock, newFakeDisplay())
	c.SendMessage(context.Background(), "hello")
}

func TestBeginSendCompleteSend(t *testing.T) {
	mock := &api.MockClient{ChatVal: &api.ChatReply{Response: models.Some("pong")}}
	c := newTestController(mock, newFakeDisplay())

	msg, ok := c.BeginSend(" ping ")
	if !ok || msg != "ping" {
		t.Fatalf("BeginSend = %q, %v", msg, ok)
	}
	if !c.IsTyping() {
		t.Error("BeginSend should set the typing flag")
	}
	if _, ok := c.BeginSend("again"); ok {
		t.Error("BeginSend while typing should fail")
	}

	c.CompleteSend(context.Background(), msg)
	if c.IsTyping() {
		t.Error("CompleteSend should clear the typing flag")
	}
	if last, _ := c.Log().Last(models.SenderAI); last.Text != "pong" {
		t.Errorf("last ai message = %q", last.Text)
	}
}

func bestTeamPayload(n int) gjson.Result {
	var records []string
	for i := 1; i <= n; i++ {
		records = append(records, fmt.Sprintf(
			`{"name":"Player %d","team":"MI","role":"Batsman","price":"%d.0","form":"9%d%%","reason":"Reason %d"}`,
			i, 8+i, i, i))
	}
	return gjson.Parse("[" + strings.Join(records, ",") + "]")
}

func TestHandleQuickAction(t *testing.T) {
	tests := []struct {
		name      string
		id        models.QuickActionID
		label     string
		reply     *api.QuickActionReply
		err       error
		want      []string
		forbidden []string
	}{
		{
			name:      "best team truncated to six",
			id:        models.ActionBestTeam,
			label:     "Best Team",
			reply:     &api.QuickActionReply{Data: models.Some(bestTeamPayload(8))},
			want:      []string{"🏏 **Best IPL Team for Today:**", "1. **Player 1** (MI) - Batsman", "6. **Player 6**", "📈 Form: 91%%"},
			forbidden: []string{"7. ", "Player 8"},
		},
		{
			name:      "fantasy tips",
			id:        models.ActionFantasyTips,
			label:     "Fantasy Tips",
			reply:     &api.QuickActionReply{Data: models.Some(gjson.Parse(`{"tips":["a","b","c","d","e","f","g"]}`))},
			want:      []string{"💡 **IPL Fantasy Tips:**", "1. a\n\n", "6. f\n\n"},
			forbidden: []string{"7. g"},
		},
		{
			name:  "unknown action",
			id:    models.QuickActionID("player-stats"),
			label: "Player Stats",
			reply: &api.QuickActionReply{Data: models.Some(gjson.Parse(`[1,2]`))},
			want:  []string{models.QuickActionGenericReply},
		},
		{
			name:  "missing data",
			id:    models.ActionCaptainOptions,
			label: "Captain Options",
			reply: &api.QuickActionReply{Error: models.Some("Action not found"), Status: 400},
			want:  []string{"❌ Sorry, couldn't get captain options right now."},
		},
		{
			name:  "transport failure",
			id:    models.ActionBudgetPicks,
			label: "Budget Picks",
			err:   apierrors.NewNetworkError("/quick-actions/budget-picks", errors.New("refused")),
			want:  []string{models.QuickActionConnectionError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &api.MockClient{QuickActionVal: tt.reply, QuickActionErr: tt.err}
			d := newFakeDisplay()
			c := newTestController(mock, d)

			c.HandleQuickAction(context.Background(), tt.id, tt.label)

			msgs := c.Log().Messages()
			if len(msgs) != 2 {
				t.Fatalf("got %d messages, want 2: %v", len(msgs), texts(msgs))
			}
			pending := fmt.Sprintf("⏳ Getting %s...", strings.ToLower(tt.label))
			if msgs[0].Text != pending || msgs[0].Sender != models.SenderAI {
				t.Errorf("first message = %q, want %q", msgs[0].Text, pending)
			}
			for _, w := range tt.want {
				if !strings.Contains(msgs[1].Text, w) {
					t.Errorf("reply missing %q:\n%s", w, msgs[1].Text)
				}
			}
			for _, f := range tt.forbidden {
				if strings.Contains(msgs[1].Text, f) {
					t.Errorf("reply should not contain %q:\n%s", f, msgs[1].Text)
				}
			}
			if len(d.feedback) != 1 || d.feedback[0] != tt.id {
				t.Errorf("feedback = %v", d.feedback)
			}
			if got := mock.CallLog(); len(got) != 1 || got[0] != models.PathQuickActions+string(tt.id) {
				t.Errorf("calls = %v", got)
			}
		})
	}
}

func TestHandleQuickActionNotGuardedByTyping(t *testing.T) {
	mock := &api.MockClient{
		QuickActionVal: &api.QuickActionReply{Data: models.Some(gjson.Parse(`{"tips":["x"]}`))},
	}
	c := newTestController(mock, newFakeDisplay())
	c.typing.Store(true)

	c.HandleQuickAction(context.Background(), models.ActionFantasyTips, "Fantasy Tips")
	if c.Log().Len() != 2 {
		t.Errorf("quick action should run while typing, log has %d entries", c.Log().Len())
	}
}

func liveMock() *api.MockClient {
	return &api.MockClient{
		LiveStatsVal: &api.LiveStatsReply{Stats: models.Some(models.LiveStats{
			ActiveUsers:  models.Some[float64](18234),
			TeamsCreated: models.Some[float64](1204567),
			SuccessRate:  models.Some("87"),
			LiveContests: models.Some[float64](42),
		})},
		MatchAnalysisVal: &api.MatchAnalysisReply{Analysis: models.Some(models.MatchAnalysis{
			Weather: models.Some(models.Weather{
				Temperature: models.Some("28°C"),
				WindSpeed:   models.Some("12 km/h"),
				Humidity:    models.Some("65%"),
			}),
			Pitch: models.Some(models.Pitch{
				BattingFriendly: models.Some("78"),
				PaceSupport:     models.Some("45"),
				SpinSupport:     models.None[string](),
			}),
		})},
		MatchesVal: &api.MatchesReply{Matches: models.Some([]models.Match{
			{Name: "MI vs CSK", Venue: "Wankhede Stadium", Status: "Live", Score: models.Some("MI: 156/4 (18.2)")},
			{Name: "RCB vs KKR", Venue: "Chinnaswamy Stadium", Status: "Upcoming"},
		})},
	}
}

func TestLoadLiveDataUpdatesFields(t *testing.T) {
	mock := liveMock()
	d := newFakeDisplay()
	c := newTestController(mock, d)

	if err := c.LoadLiveData(context.Background()); err != nil {
		t.Fatalf("LoadLiveData() error = %v", err)
	}

	want := map[models.Field]string{
		models.FieldActiveUsers:     "18,234",
		models.FieldTeamsCreated:    "1,204,567",
		models.FieldSuccessRate:     "87%",
		models.FieldLiveContests:    "42",
		models.FieldTemperature:     "28°C",
		models.FieldWindSpeed:       "12 km/h",
		models.FieldHumidity:        "65%",
		models.FieldBattingFriendly: "78%",
		models.FieldPaceSupport:     "45%",
	}
	for f, v := range want {
		if got, ok := d.field(f); !ok || got != v {
			t.Errorf("%s = %q (set=%v), want %q", f, got, ok, v)
		}
	}
	if _, ok := d.field(models.FieldSpinSupport); ok {
		t.Error("absent spin support should not be written")
	}
	if len(d.matches) != 1 || len(d.matches[0]) != 2 {
		t.Fatalf("matches replaced = %v", d.matches)
	}
	if d.matches[0][1].Score.IsSet() {
		t.Error("upcoming match should have no score")
	}

	wantCalls := []string{models.PathLiveStats, models.PathMatchAnalysis, models.PathMatches}
	if got := mock.CallLog(); strings.Join(got, ",") != strings.Join(wantCalls, ",") {
		t.Errorf("calls = %v, want %v", got, wantCalls)
	}
}

func TestLoadLiveDataFailureAbortsTick(t *testing.T) {
	mock := liveMock()
	mock.MatchAnalysisErr = apierrors.NewNetworkError(models.PathMatchAnalysis, errors.New("reset"))
	d := newFakeDisplay()
	c := newTestController(mock, d)

	err := c.LoadLiveData(context.Background())
	if !apierrors.IsNetworkError(err) {
		t.Fatalf("LoadLiveData() error = %v, want network error", err)
	}
	if got, _ := d.field(models.FieldActiveUsers); got != "18,234" {
		t.Errorf("stats from the first fetch should be applied, active users = %q", got)
	}
	if _, ok := d.field(models.FieldTemperature); ok {
		t.Error("analysis should not be applied")
	}
	for _, call := range mock.CallLog() {
		if call == models.PathMatches {
			t.Error("matches should not be fetched after a failure")
		}
	}
	if c.IsRefreshing() {
		t.Error("refresh flag should be cleared")
	}

	// the next tick proceeds independently
	mock.MatchAnalysisErr = nil
	if err := c.LoadLiveData(context.Background()); err != nil {
		t.Errorf("second tick error = %v", err)
	}
}

func TestLoadLiveDataEmptyMatchesKeepsCards(t *testing.T) {
	mock := liveMock()
	mock.MatchesVal = &api.MatchesReply{Matches: models.Some([]models.Match{})}
	d := newFakeDisplay()
	c := newTestController(mock, d)

	if err := c.LoadLiveData(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.matches) != 0 {
		t.Errorf("empty list should not replace cards, got %v", d.matches)
	}
}

func TestLoadLiveDataMissingSections(t *testing.T) {
	mock := &api.MockClient{
		LiveStatsVal:     &api.LiveStatsReply{},
		MatchAnalysisVal: &api.MatchAnalysisReply{Analysis: models.Some(models.MatchAnalysis{})},
		MatchesVal:       &api.MatchesReply{},
	}
	d := newFakeDisplay()
	c := newTestController(mock, d)

	if err := c.LoadLiveData(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.fields) != 0 || len(d.matches) != 0 {
		t.Errorf("nothing should be written, fields=%v matches=%v", d.fields, d.matches)
	}
}

func TestLoadLiveDataSkipsOverlappingTick(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	mock := liveMock()
	mock.LiveStatsFunc = func(ctx context.Context) (*api.LiveStatsReply, error) {
		close(started)
		<-release
		return &api.LiveStatsReply{}, nil
	}
	c := newTestController(mock, newFakeDisplay())

	first := make(chan error)
	go func() { first <- c.LoadLiveData(context.Background()) }()
	<-started

	if err := c.LoadLiveData(context.Background()); !errors.Is(err, ErrTickInFlight) {
		t.Errorf("overlapping tick error = %v, want ErrTickInFlight", err)
	}

	close(release)
	if err := <-first; err != nil {
		t.Errorf("first tick error = %v", err)
	}
}

func TestUpdateElementWithoutLivePanel(t *testing.T) {
	d := newFakeDisplay(models.RegionLivePanel, models.RegionMatchesList)
	c := newTestController(liveMock(), d)

	if err := c.LoadLiveData(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.fields) != 0 || len(d.matches) != 0 {
		t.Errorf("missing regions should not be written, fields=%v", d.fields)
	}
}

func TestMessagesWithoutMessageLog(t *testing.T) {
	d := newFakeDisplay(models.RegionMessageLog)
	c := newTestController(&api.MockClient{ChatVal: &api.ChatReply{Response: models.Some("hi")}}, d)

	c.SendMessage(context.Background(), "hello")
	if len(d.messages) != 0 {
		t.Errorf("display should not receive messages, got %d", len(d.messages))
	}
	if c.Log().Len() != 2 {
		t.Errorf("log should still record the exchange, got %d", c.Log().Len())
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBootstrap(t *testing.T) {
	mock := liveMock()
	d := newFakeDisplay()
	c := New(mock, WithDisplay(d), WithRefreshInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Bootstrap(ctx)
	defer c.Stop()

	if c.Bindings().Len() != len(models.DefaultQuickActions())+1 {
		t.Errorf("bindings = %v", c.Bindings().Controls())
	}
	first, ok := c.Log().Last(models.SenderAI)
	if !ok || first.Text != models.WelcomeMessage {
		t.Errorf("welcome message missing, log = %v", texts(c.Log().Messages()))
	}

	waitFor(t, func() bool {
		_, ok := d.field(models.FieldActiveUsers)
		return ok
	})
}

func TestBootstrapTwiceKeepsOneBindingPerControl(t *testing.T) {
	mock := liveMock()
	mock.QuickActionVal = &api.QuickActionReply{Data: models.Some(gjson.Parse(`{"tips":["only"]}`))}
	d := newFakeDisplay()
	c := New(mock, WithDisplay(d), WithRefreshInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Bootstrap(ctx)
	c.Bootstrap(ctx)
	defer c.Stop()

	if got, want := c.Bindings().Len(), len(models.DefaultQuickActions())+1; got != want {
		t.Errorf("bindings = %d, want %d", got, want)
	}

	before := c.Log().Len()
	if !c.Trigger(ctx, ControlName(models.ActionFantasyTips), "") {
		t.Fatal("fantasy tips control not bound")
	}
	if got := c.Log().Len() - before; got != 2 {
		t.Errorf("one activation appended %d messages, want 2", got)
	}
}

func TestBootstrapAgainDropsStaleBindings(t *testing.T) {
	d := newFakeDisplay()
	c := New(liveMock(), WithDisplay(d), WithRefreshInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Bootstrap(ctx)
	defer c.Stop()

	tips := Control{Name: ControlName(models.ActionFantasyTips), Action: models.ActionFantasyTips, Label: "Fantasy Tips"}
	d.drop(models.RegionForm, tips)
	c.Bootstrap(ctx)

	if got := c.Bindings().Controls(); len(got) != 1 || got[0] != tips.Name {
		t.Errorf("bindings = %v, want only %s", got, tips.Name)
	}
	if c.Trigger(ctx, ControlSubmit, "question") {
		t.Error("submit still bound after the form went away")
	}
	if c.Trigger(ctx, ControlName(models.ActionBestTeam), "") {
		t.Error("best-team still bound after its control went away")
	}
}

func TestTriggerSubmit(t *testing.T) {
	mock := &api.MockClient{
		ChatVal:          &api.ChatReply{Response: models.Some("answer")},
		LiveStatsVal:     &api.LiveStatsReply{},
		MatchAnalysisVal: &api.MatchAnalysisReply{},
		MatchesVal:       &api.MatchesReply{},
	}
	c := New(mock, WithDisplay(newFakeDisplay()), WithRefreshInterval(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Bootstrap(ctx)
	defer c.Stop()

	if !c.Trigger(ctx, ControlSubmit, "question") {
		t.Fatal("submit not bound")
	}
	if last, _ := c.Log().Last(models.SenderAI); last.Text != "answer" {
		t.Errorf("last reply = %q", last.Text)
	}
	if c.Trigger(ctx, "nope", "") {
		t.Error("unbound control should report false")
	}
}

func TestBootstrapWithoutForm(t *testing.T) {
	c := New(&api.MockClient{LiveStatsErr: errors.New("down")}, WithDisplay(newFakeDisplay(models.RegionForm)), WithRefreshInterval(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Bootstrap(ctx)
	defer c.Stop()

	if _, ok := c.Bindings().Lookup(ControlSubmit); ok {
		t.Error("submit should not be bound without a form")
	}
}

func TestRefreshLoopTicks(t *testing.T) {
	mock := liveMock()
	c := New(mock, WithDisplay(newFakeDisplay()), WithRefreshInterval(10*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Bootstrap(ctx)
	waitFor(t, func() bool {
		n := 0
		for _, call := range mock.CallLog() {
			if call == models.PathLiveStats {
				n++
			}
		}
		return n >= 3
	})
	c.Stop()

	settled := len(mock.CallLog())
	time.Sleep(30 * time.Millisecond)
	if len(mock.CallLog()) != settled {
		t.Error("refresh continued after Stop")
	}
}

func TestHelpersAskPreset(t *testing.T) {
	mock := &api.MockClient{ChatVal: &api.ChatReply{Response: models.Some("ok")}}
	h := NewHelpers(newTestController(mock, newFakeDisplay()))

	sent, err := h.AskPreset(context.Background(), "mi-vs-csk")
	if err != nil || !sent {
		t.Fatalf("AskPreset = %v, %v", sent, err)
	}
	if mock.ChatMessages[0] != "Give me team strategy for MI vs CSK match" {
		t.Errorf("sent %q", mock.ChatMessages[0])
	}

	if _, err := h.AskPreset(context.Background(), "nope"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestHelpersDemo(t *testing.T) {
	mock := &api.MockClient{ChatVal: &api.ChatReply{Response: models.Some("ok")}}
	c := newTestController(mock, newFakeDisplay())
	h := NewHelpers(c)

	steps := []DemoStep{
		{After: 0, Preset: "live-matches"},
		{After: 40 * time.Millisecond, Preset: "best-captain"},
		{After: 80 * time.Millisecond, Preset: "virat-or-rohit"},
	}
	select {
	case <-h.Demo(context.Background(), steps):
	case <-time.After(2 * time.Second):
		t.Fatal("demo did not finish")
	}

	if len(mock.ChatMessages) != 3 {
		t.Fatalf("demo sent %v", mock.ChatMessages)
	}
	if mock.ChatMessages[2] != "Should I pick Virat Kohli or Rohit Sharma today?" {
		t.Errorf("last demo question = %q", mock.ChatMessages[2])
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != 6 {
		t.Fatalf("got %d presets", len(names))
	}
	for _, step := range DefaultDemo {
		if _, ok := PresetByName(step.Preset); !ok {
			t.Errorf("demo uses unknown preset %q", step.Preset)
		}
	}
}
