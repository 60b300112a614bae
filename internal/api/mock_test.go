package api

import (
	"errors"
	"io"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody implements io.ReadCloser for testing
type MockResponseBody struct {
	data []byte
	pos  int
}

// NewMockResponseBody creates a new mock response body
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	return nil
}

// MockHttpClient answers every request with a canned response per path.
type MockHttpClient struct {
	mu        sync.Mutex
	Responses map[string]mockResponse
	Err       error
	Requests  []*fhttp.Request
	Bodies    []string
}

type mockResponse struct {
	status int
	body   string
}

func newMockHttpClient() *MockHttpClient {
	return &MockHttpClient{Responses: map[string]mockResponse{}}
}

func (m *MockHttpClient) respond(path string, status int, body string) *MockHttpClient {
	m.Responses[path] = mockResponse{status: status, body: body}
	return m
}

// Do implements HTTPDoer
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.Bodies = append(m.Bodies, string(data))
	}

	if m.Err != nil {
		return nil, m.Err
	}

	r, ok := m.Responses[req.URL.Path]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &fhttp.Response{
		StatusCode: r.status,
		Body:       NewMockResponseBody([]byte(r.body)),
		Header:     make(fhttp.Header),
	}, nil
}
