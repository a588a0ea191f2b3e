// internal/probe/probe_test.go
package probe

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// ---- fake transport ----

type fakeDoer struct {
	code int
	err  error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.code,
		Body:       io.NopCloser(strings.NewReader(`{"message":"ok"}`)),
	}, nil
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func newProber(t *testing.T, d Doer) *Prober {
	t.Helper()
	p, err := New(Config{URL: "http://127.0.0.1:8000/", Interval: time.Second}, d)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return p
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{URL: "", Interval: time.Second}, &fakeDoer{}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if _, err := New(Config{URL: "http://x/", Interval: 0}, &fakeDoer{}); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if _, err := New(Config{URL: "http://x/", Interval: time.Second}, nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestOnce_CapturesStatusCode(t *testing.T) {
	for _, code := range []int{200, 404, 500, 503} {
		p := newProber(t, &fakeDoer{code: code})

		res := p.Once(context.Background())
		if res.Err != nil {
			t.Fatalf("code %d: unexpected err=%v", code, res.Err)
		}
		if res.StatusCode != code {
			t.Fatalf("got code %d, want %d", res.StatusCode, code)
		}
	}
}

func TestOnce_Unreachable(t *testing.T) {
	p := newProber(t, &fakeDoer{err: errors.New("connection refused")})

	res := p.Once(context.Background())
	if res.Err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(res.Err, ErrTimeout) {
		t.Fatal("plain transport failure must not classify as timeout")
	}
	if res.StatusCode != 0 {
		t.Fatalf("no response means code 0, got %d", res.StatusCode)
	}
}

func TestOnce_TimeoutClassification(t *testing.T) {
	p := newProber(t, &fakeDoer{err: timeoutErr{}})

	res := p.Once(context.Background())
	if !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", res.Err)
	}

	p = newProber(t, &fakeDoer{err: context.DeadlineExceeded})

	res = p.Once(context.Background())
	if !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout for deadline exceeded, got %v", res.Err)
	}
}

func TestOnce_AgainstRealServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("probe used %s, want GET", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Smartphone Battery Health Prediction API is running."}`))
	}))
	defer srv.Close()

	p, err := New(Config{URL: srv.URL, Interval: time.Second}, srv.Client())
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.Once(context.Background())
	if res.Err != nil {
		t.Fatalf("Once err=%v", res.Err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("got code %d, want 200", res.StatusCode)
	}
}

func TestOnce_RealTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	p, err := New(Config{URL: srv.URL, Interval: time.Second}, client)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.Once(context.Background())
	if !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", res.Err)
	}
}

func TestRun_OneResultPerTick(t *testing.T) {
	p, err := New(Config{URL: "http://127.0.0.1:8000/", Interval: 10 * time.Millisecond}, &fakeDoer{code: 200})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan Result)
	go p.Run(ctx, out)

	for i := 0; i < 3; i++ {
		select {
		case res := <-out:
			if res.StatusCode != 200 {
				t.Fatalf("tick %d: got code %d", i, res.StatusCode)
			}
		case <-time.After(time.Second):
			t.Fatalf("tick %d: no result", i)
		}
	}

	cancel()
}
