package boomi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"boomictl/pkg/api"
)

func fastPoll(maxAttempts int) PollConfig {
	return PollConfig{
		Interval:    time.Millisecond,
		MaxInterval: 2 * time.Millisecond,
		MaxAttempts: maxAttempts,
		MaxErrors:   3,
	}
}

// statusSequenceHandler answers each status check with the next entry.
// An entry of "202" answers with HTTP 202, "500" with HTTP 500; the last
// entry repeats once the sequence is exhausted.
func statusSequenceHandler(t *testing.T, calls *atomic.Int32, sequence ...string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1)) - 1
		if n >= len(sequence) {
			n = len(sequence) - 1
		}
		switch sequence[n] {
		case "202":
			w.WriteHeader(http.StatusAccepted)
		case "500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			json.NewEncoder(w).Encode(queryResponse(api.QueryResult{
				Status:       sequence[n],
				RecordedDate: "2025-03-01T12:00:00Z",
			}))
		}
	}
}

func TestExecutionStatus_Recorded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET method, got %s", r.Method)
		}
		if r.URL.Path != "/api/rest/v1/test-account/ExecutionRecord/async/R123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(queryResponse(api.QueryResult{
			Status:       "COMPLETE",
			Message:      "done",
			RecordedDate: "2025-03-01T12:00:00Z",
		}))
	})

	record, err := client.ExecutionStatus(context.Background(), "R123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != StatusComplete {
		t.Errorf("expected COMPLETE, got %s", record.Status)
	}
	if record.Message != "done" {
		t.Errorf("expected message, got %q", record.Message)
	}
	if record.RecordedDate.IsZero() {
		t.Error("expected recorded date to be parsed")
	}
}

func TestExecutionStatus_RecordNotReady(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	record, err := client.ExecutionStatus(context.Background(), "R123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != StatusPending {
		t.Errorf("expected PENDING for 202 answer, got %s", record.Status)
	}
	if record.Status.Terminal() {
		t.Error("PENDING must not be terminal")
	}
}

func TestExecutionStatus_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(queryResponse())
	})

	_, err := client.ExecutionStatus(context.Background(), "R123")
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for empty result, got %v", err)
	}
}

func TestAwaitCompletion_TerminalAfterFourChecks(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls,
		"202", "INPROCESS", "INPROCESS", "COMPLETE"))

	record, err := client.AwaitCompletion(context.Background(), "R123", fastPoll(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != StatusComplete {
		t.Errorf("expected COMPLETE, got %s", record.Status)
	}
	if got := calls.Load(); got != 4 {
		t.Errorf("expected exactly 4 status checks, got %d", got)
	}
}

func TestAwaitCompletion_StopsOnFailureStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls, "INPROCESS", "ERROR"))

	record, err := client.AwaitCompletion(context.Background(), "R123", fastPoll(10))
	if err != nil {
		t.Fatalf("a terminal ERROR status is a result, not an error: %v", err)
	}
	if record.Status != StatusError {
		t.Errorf("expected ERROR, got %s", record.Status)
	}
	if record.Status.Succeeded() {
		t.Error("ERROR must not count as success")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected exactly 2 status checks, got %d", got)
	}
}

func TestAwaitCompletion_Timeout(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls, "INPROCESS"))

	_, err := client.AwaitCompletion(context.Background(), "R123", fastPoll(5))
	var timeout *PollTimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected PollTimeoutError, got %v", err)
	}
	if timeout.Attempts != 5 {
		t.Errorf("expected 5 attempts reported, got %d", timeout.Attempts)
	}
	if got := calls.Load(); got != 5 {
		t.Errorf("expected exactly 5 status checks, got %d", got)
	}
}

func TestAwaitCompletion_TransportFailureBound(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls, "500"))

	_, err := client.AwaitCompletion(context.Background(), "R123", fastPoll(10))
	var pollFailure *PollTransportError
	if !errors.As(err, &pollFailure) {
		t.Fatalf("expected PollTransportError, got %v", err)
	}
	if pollFailure.Errors != 3 {
		t.Errorf("expected 3 transport errors, got %d", pollFailure.Errors)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected exactly 3 status checks, got %d", got)
	}
}

func TestAwaitCompletion_RecoversFromTransportError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls, "500", "COMPLETE"))

	record, err := client.AwaitCompletion(context.Background(), "R123", fastPoll(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != StatusComplete {
		t.Errorf("expected COMPLETE after recovery, got %s", record.Status)
	}
}

func TestAwaitCompletion_ContextCancelled(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, statusSequenceHandler(t, &calls, "INPROCESS"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	cfg := fastPoll(1000)
	cfg.Interval = 500 * time.Millisecond
	cfg.MaxInterval = 500 * time.Millisecond

	_, err := client.AwaitCompletion(ctx, "R123", cfg)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status    Status
		terminal  bool
		succeeded bool
	}{
		{StatusQueued, false, false},
		{StatusPending, false, false},
		{StatusStarted, false, false},
		{StatusInProcess, false, false},
		{StatusComplete, true, true},
		{StatusCompleteWarn, true, true},
		{StatusError, true, false},
		{StatusAborted, true, false},
		{StatusDiscarded, true, false},
		{Status("SOMETHING_NEW"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.terminal {
				t.Errorf("Terminal() = %v, want %v", got, tt.terminal)
			}
			if got := tt.status.Succeeded(); got != tt.succeeded {
				t.Errorf("Succeeded() = %v, want %v", got, tt.succeeded)
			}
		})
	}
}

func TestPollConfigDefaults(t *testing.T) {
	cfg := PollConfig{}.withDefaults()
	if cfg.Interval != DefaultPollInterval || cfg.MaxInterval != DefaultMaxPollInterval {
		t.Errorf("unexpected interval defaults: %+v", cfg)
	}
	if cfg.MaxAttempts != DefaultMaxPollAttempts || cfg.MaxErrors != DefaultMaxPollErrors {
		t.Errorf("unexpected bound defaults: %+v", cfg)
	}
}

func TestPollTimeoutError_MessageDistinguishesGivingUp(t *testing.T) {
	err := &PollTimeoutError{Attempts: 5, Elapsed: 3 * time.Second}
	msg := err.Error()
	if want := "may still be in progress"; !strings.Contains(msg, want) {
		t.Errorf("expected %q in message, got %q", want, msg)
	}
}
