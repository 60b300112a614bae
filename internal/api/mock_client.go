package api

import (
	"context"
	"sync"

	"github.com/diogo/cricketai/internal/models"
)

// MockClient is a mock implementation of ClientInterface for testing.
// The *Func hooks win over the canned values when set.
type MockClient struct {
	mu sync.Mutex

	// Mock return values
	ChatVal          *ChatReply
	ChatErr          error
	QuickActionVal   *QuickActionReply
	QuickActionErr   error
	LiveStatsVal     *LiveStatsReply
	LiveStatsErr     error
	MatchAnalysisVal *MatchAnalysisReply
	MatchAnalysisErr error
	MatchesVal       *MatchesReply
	MatchesErr       error
	HealthVal        *models.Health
	HealthErr        error
	BaseURLVal       string

	ChatFunc        func(ctx context.Context, message string) (*ChatReply, error)
	QuickActionFunc func(ctx context.Context, id models.QuickActionID) (*QuickActionReply, error)
	LiveStatsFunc   func(ctx context.Context) (*LiveStatsReply, error)

	// Call recorders
	Calls        []string
	ChatMessages []string
	CloseCalled  bool
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// CallLog returns a copy of the recorded calls in order.
func (m *MockClient) CallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	copy(out, m.Calls)
	return out
}

func (m *MockClient) Chat(ctx context.Context, message string) (*ChatReply, error) {
	m.record(models.PathChat)
	m.mu.Lock()
	m.ChatMessages = append(m.ChatMessages, message)
	fn := m.ChatFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, message)
	}
	return m.ChatVal, m.ChatErr
}

func (m *MockClient) QuickAction(ctx context.Context, id models.QuickActionID) (*QuickActionReply, error) {
	m.record(models.PathQuickActions + string(id))
	if m.QuickActionFunc != nil {
		return m.QuickActionFunc(ctx, id)
	}
	return m.QuickActionVal, m.QuickActionErr
}

func (m *MockClient) LiveStats(ctx context.Context) (*LiveStatsReply, error) {
	m.record(models.PathLiveStats)
	if m.LiveStatsFunc != nil {
		return m.LiveStatsFunc(ctx)
	}
	return m.LiveStatsVal, m.LiveStatsErr
}

func (m *MockClient) MatchAnalysis(ctx context.Context) (*MatchAnalysisReply, error) {
	m.record(models.PathMatchAnalysis)
	return m.MatchAnalysisVal, m.MatchAnalysisErr
}

func (m *MockClient) Matches(ctx context.Context) (*MatchesReply, error) {
	m.record(models.PathMatches)
	return m.MatchesVal, m.MatchesErr
}

func (m *MockClient) Health(ctx context.Context) (*models.Health, error) {
	m.record(models.PathHealth)
	return m.HealthVal, m.HealthErr
}

func (m *MockClient) BaseURL() string {
	if m.BaseURLVal == "" {
		return models.DefaultBaseURL
	}
	return m.BaseURLVal
}

func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}
