package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/app/fanout"
)

func fetch(_ context.Context, id string) (string, error) {
	if strings.HasPrefix(id, "bad") {
		return "", fmt.Errorf("dish %s: boom", id)
	}
	return strings.ToUpper(id), nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		workers    int
		ids        []string
		wantValues []string
		wantErrAt  []int
	}{
		{name: "empty", workers: 3, ids: []string{}, wantValues: []string{}},
		{name: "all succeed", workers: 2, ids: []string{"d1", "d2", "d3"}, wantValues: []string{"D1", "D2", "D3"}},
		{name: "partial failure", workers: 3, ids: []string{"d1", "bad2", "d3"}, wantValues: []string{"D1", "", "D3"}, wantErrAt: []int{1}},
		{name: "zero workers runs serially", workers: 0, ids: []string{"d1", "d2"}, wantValues: []string{"D1", "D2"}},
		{name: "more workers than items", workers: 100, ids: []string{"d1"}, wantValues: []string{"D1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(context.Background(), tt.workers, tt.ids, fetch)
			if results == nil {
				t.Fatal("Run() = nil, want non-nil slice")
			}
			if len(results) != len(tt.wantValues) {
				t.Fatalf("len(results) = %d, want %d", len(results), len(tt.wantValues))
			}

			failed := map[int]bool{}
			for _, i := range tt.wantErrAt {
				failed[i] = true
			}
			for i, r := range results {
				if (r.Err != nil) != failed[i] {
					t.Errorf("results[%d].Err = %v, want failure %v", i, r.Err, failed[i])
				}
				if r.Value != tt.wantValues[i] {
					t.Errorf("results[%d].Value = %q, want %q", i, r.Value, tt.wantValues[i])
				}
			}
		})
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond}

	results := fanout.Run(context.Background(), 3, delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Value != delays[i] {
			t.Errorf("results[%d].Value = %v, want %v", i, r.Value, delays[i])
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3

	var active, peak atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), workers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want <= %d", p, workers)
	}
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		cancel()
		time.Sleep(50 * time.Millisecond)
		return n, nil
	})

	canceled := 0
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("no result carries context.Canceled")
	}
	if int(calls.Load())+canceled != 3 {
		t.Errorf("calls %d + canceled %d, want 3", calls.Load(), canceled)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")

	tests := []struct {
		name    string
		results []fanout.Result[int]
		want    []int
		wantErr []error
	}{
		{name: "empty", results: nil, want: []int{}},
		{
			name:    "all succeed",
			results: []fanout.Result[int]{{Value: 1}, {Value: 2}},
			want:    []int{1, 2},
		},
		{
			name:    "failures joined",
			results: []fanout.Result[int]{{Err: errA}, {Value: 2}, {Err: errB}},
			want:    []int{2},
			wantErr: []error{errA, errB},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fanout.Split(tt.results)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Split() values = %v, want %v", got, tt.want)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("Split() error = %v, want nil", err)
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(err, %v) = false, err = %v", want, err)
				}
			}
		})
	}
}
