package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/delivery-core/internal/platform/config"
	"github.com/jsamuelsen11/delivery-core/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// script answers the n-th request (1-based) with statuses[n-1], repeating
// the last status once the script runs out. It records every request body.
type script struct {
	statuses []int
	calls    atomic.Int32

	mu     sync.Mutex
	bodies []string
}

func (s *script) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.bodies = append(s.bodies, string(b))
	s.mu.Unlock()

	n := int(s.calls.Add(1))
	status := s.statuses[min(n, len(s.statuses))-1]
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}

func serve(t *testing.T, statuses ...int) (*script, *httptest.Server) {
	t.Helper()

	s := &script{statuses: statuses}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func newClient(cfg *config.ClientConfig) *httpclient.Client {
	return httpclient.New(cfg, "delivery-api", nil, slog.New(slog.DiscardHandler))
}

// call sends one request and returns the status (0 for none), the body and
// the error. The response body is always closed.
func call(t *testing.T, ctx context.Context, c *httpclient.Client, method, url, body string) (int, string, error) {
	t.Helper()

	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), err
}

func TestDo_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		statuses   []int
		wantStatus int
		wantCalls  int32
		wantErr    bool
	}{
		{name: "ok", method: http.MethodGet, statuses: []int{200}, wantStatus: 200, wantCalls: 1},
		{name: "5xx retried until success", method: http.MethodGet, statuses: []int{500, 502, 200}, wantStatus: 200, wantCalls: 3},
		{name: "429 retried", method: http.MethodGet, statuses: []int{429, 200}, wantStatus: 200, wantCalls: 2},
		{name: "4xx not retried", method: http.MethodGet, statuses: []int{404}, wantStatus: 404, wantCalls: 1},
		{name: "retries exhausted keep last body", method: http.MethodGet, statuses: []int{503}, wantStatus: 503, wantCalls: 3, wantErr: true},
		{name: "post 500 not replayed", method: http.MethodPost, statuses: []int{500, 200}, wantStatus: 500, wantCalls: 1, wantErr: true},
		{name: "post 503 replayed", method: http.MethodPost, statuses: []int{503, 201}, wantStatus: 201, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, srv := serve(t, tt.statuses...)
			status, body, err := call(t, context.Background(), newClient(testConfig(srv.URL)), tt.method, srv.URL+"/dishes", "")

			if (err != nil) != tt.wantErr {
				t.Errorf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body != http.StatusText(tt.wantStatus) {
				t.Errorf("body = %q, want %q", body, http.StatusText(tt.wantStatus))
			}
			if got := s.calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_ReplaysBodyOnRetry(t *testing.T) {
	t.Parallel()

	s, srv := serve(t, http.StatusServiceUnavailable, http.StatusCreated)
	review := `{"dishId":"d1","rating":5,"text":"crispy"}`

	if _, _, err := call(t, context.Background(), newClient(testConfig(srv.URL)), http.MethodPost, srv.URL+"/reviews/d1", review); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) != 2 {
		t.Fatalf("requests = %d, want 2", len(s.bodies))
	}
	for i, b := range s.bodies {
		if b != review {
			t.Errorf("attempt %d body = %q, want %q", i+1, b, review)
		}
	}
}

func TestDo_HonorsRetryAfter(t *testing.T) {
	t.Parallel()

	var (
		calls atomic.Int32
		first atomic.Int64
		gap   atomic.Int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		now := time.Now().UnixNano()
		if calls.Add(1) == 1 {
			first.Store(now)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		gap.Store(now - first.Load())
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	// Retry-After is capped at MaxInterval.
	cfg := testConfig(srv.URL)
	cfg.Retry.InitialInterval = time.Millisecond
	cfg.Retry.MaxInterval = 60 * time.Millisecond

	if _, _, err := call(t, context.Background(), newClient(cfg), http.MethodGet, srv.URL+"/dishes", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if d := time.Duration(gap.Load()); d < 50*time.Millisecond || d > 900*time.Millisecond {
		t.Errorf("gap between attempts = %v, want the capped Retry-After of 60ms", d)
	}
}

func TestDo_Headers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		ctx        func() context.Context
		presetAuth string
		want       map[string]string
	}{
		{
			name: "task and visit ids",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "task-1")
				return httpclient.WithCorrelationID(ctx, "visit-1")
			},
			want: map[string]string{"X-Request-ID": "task-1", "X-Correlation-ID": "visit-1", "Authorization": ""},
		},
		{
			name: "untagged context",
			ctx:  context.Background,
			want: map[string]string{"X-Request-ID": "", "X-Correlation-ID": "", "Authorization": ""},
		},
		{
			name:  "bearer token",
			token: "s3cr3t",
			ctx:   context.Background,
			want:  map[string]string{"Authorization": "Bearer s3cr3t"},
		},
		{
			name:       "caller authorization wins",
			token:      "s3cr3t",
			ctx:        context.Background,
			presetAuth: "Bearer other",
			want:       map[string]string{"Authorization": "Bearer other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make(chan http.Header, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got <- r.Header.Clone()
			}))
			t.Cleanup(srv.Close)

			cfg := testConfig(srv.URL)
			cfg.Token = tt.token

			ctx := tt.ctx()
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/dishes", http.NoBody)
			if err != nil {
				t.Fatalf("creating request: %v", err)
			}
			if tt.presetAuth != "" {
				req.Header.Set("Authorization", tt.presetAuth)
			}
			resp, err := newClient(cfg).Do(ctx, req)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			_ = resp.Body.Close()

			h := <-got
			for k, want := range tt.want {
				if v := h.Get(k); v != want {
					t.Errorf("%s = %q, want %q", k, v, want)
				}
			}
		})
	}
}

func TestID_Accessors(t *testing.T) {
	t.Parallel()

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "r"), "c")
	if got := httpclient.RequestID(ctx); got != "r" {
		t.Errorf("RequestID() = %q, want %q", got, "r")
	}
	if got := httpclient.CorrelationID(ctx); got != "c" {
		t.Errorf("CorrelationID() = %q, want %q", got, "c")
	}
	if got := httpclient.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID(untagged) = %q, want empty", got)
	}
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	_, srv := serve(t, http.StatusOK)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := newClient(cfg)

	if _, _, err := call(t, context.Background(), client, http.MethodGet, srv.URL+"/dishes", ""); err != nil {
		t.Fatalf("first Do() error = %v, want the burst to allow it", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, _, err := call(t, ctx, client, http.MethodGet, srv.URL+"/dishes", ""); err == nil {
		t.Fatal("second Do() error = nil, want the limiter to refuse within the deadline")
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	s, srv := serve(t, http.StatusInternalServerError)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := call(t, ctx, newClient(testConfig(srv.URL)), http.MethodGet, srv.URL+"/dishes", ""); err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
	if got := s.calls.Load(); got > 1 {
		t.Errorf("calls = %d, want no retries after cancellation", got)
	}
}

// tripped returns a client whose breaker opened on one failed request.
func tripped(t *testing.T, breakerTimeout time.Duration, statuses ...int) (*httpclient.Client, *script, string) {
	t.Helper()

	s, srv := serve(t, statuses...)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = breakerTimeout
	cfg.Retry.MaxAttempts = 1
	client := newClient(cfg)

	_, _, _ = call(t, context.Background(), client, http.MethodGet, srv.URL+"/dishes", "")
	return client, s, srv.URL + "/dishes"
}

func TestBreaker_OpensAndRejects(t *testing.T) {
	t.Parallel()

	client, s, url := tripped(t, time.Second, http.StatusInternalServerError)

	_, _, err := call(t, context.Background(), client, http.MethodGet, url, "")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}
	if got := s.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (rejected without reaching the server)", got)
	}
	if got := client.BreakerState(); got != "open" {
		t.Errorf("BreakerState() = %q, want %q", got, "open")
	}
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want a failing error", err)
	}
}

func TestBreaker_CountsUnreplayedServerErrors(t *testing.T) {
	t.Parallel()

	s, srv := serve(t, http.StatusInternalServerError)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := newClient(cfg)

	_, _, _ = call(t, context.Background(), client, http.MethodPost, srv.URL+"/reviews/d1", `{}`)

	if got := s.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if got := client.BreakerState(); got != "open" {
		t.Errorf("BreakerState() = %q, want %q", got, "open")
	}
}

func TestBreaker_HalfOpenThenRecovers(t *testing.T) {
	t.Parallel()

	client, _, url := tripped(t, 50*time.Millisecond, http.StatusInternalServerError, http.StatusOK)
	time.Sleep(80 * time.Millisecond)

	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() = %v, want a degraded error", err)
	}

	status, _, err := call(t, context.Background(), client, http.MethodGet, url, "")
	if err != nil {
		t.Fatalf("Do() error = %v, want the probe to succeed", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if got := client.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want %q", got, "closed")
	}
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	client := newClient(testConfig("http://localhost:8081/api/v1"))

	if got := client.Name(); got != "delivery-api" {
		t.Errorf("Name() = %q, want %q", got, "delivery-api")
	}
	if got := client.BaseURL(); got != "http://localhost:8081/api/v1" {
		t.Errorf("BaseURL() = %q, want %q", got, "http://localhost:8081/api/v1")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
