package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(testConfig())

	result, err := cb.Execute(func() (interface{}, error) {
		return 42, nil
	})
	if err != nil || result != 42 {
		t.Fatalf("Execute() = %v, %v", result, err)
	}

	boom := errors.New("boom")
	_, err = cb.Execute(func() (interface{}, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestCircuitBreaker_TripsAndRecovers(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if !cb.IsOpen() {
		t.Fatalf("expected open after 3 failures, got %v", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) { return "unreachable", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}

	time.Sleep(80 * time.Millisecond)

	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("half-open probe failed: %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after successful probe, got %v", cb.State())
	}
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if cb.IsOpen() {
		t.Error("circuit must stay closed below MinRequests")
	}
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	expected := errors.New("expected outcome")
	cfg := testConfig()
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, expected) }
	cb := New(cfg)

	for i := 0; i < 10; i++ {
		_, err := cb.Execute(func() (interface{}, error) { return nil, expected })
		if !errors.Is(err, expected) {
			t.Fatalf("attempt %d: got %v", i, err)
		}
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("accepted errors must not trip the circuit, got %v", cb.State())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("svc")

	if cfg.Name != "svc" || cfg.MaxRequests != 3 || cfg.MinRequests != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.FailureThreshold != 0.6 {
		t.Errorf("expected FailureThreshold 0.6, got %v", cfg.FailureThreshold)
	}
}
