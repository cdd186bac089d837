package contactclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitFunc func(ctx context.Context, msg Message) (*Response, error)

func (f submitFunc) Submit(ctx context.Context, msg Message) (*Response, error) {
	return f(ctx, msg)
}

// fakeTimers collects scheduled callbacks so tests fire them by hand.
type fakeTimers struct {
	mu     sync.Mutex
	delays []time.Duration
	fns    []func()
}

type fakeTimer struct{}

func (fakeTimer) Stop() bool { return true }

func (ft *fakeTimers) afterFunc(d time.Duration, fn func()) Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.delays = append(ft.delays, d)
	ft.fns = append(ft.fns, fn)
	return fakeTimer{}
}

func (ft *fakeTimers) fire(i int) {
	ft.mu.Lock()
	fn := ft.fns[i]
	ft.mu.Unlock()
	fn()
}

func filled(f *Form) {
	f.Set(FieldName, "A")
	f.Set(FieldEmail, "a@x.com")
	f.Set(FieldMessage, "hi")
}

func newTestForm(s Submitter) (*Form, *fakeTimers, *[]State) {
	timers := &fakeTimers{}
	var states []State
	f := NewForm(s, WithAfterFunc(timers.afterFunc), OnStateChange(func(st State) { states = append(states, st) }))
	return f, timers, &states
}

func TestFormSuccessClearsFieldsAndResets(t *testing.T) {
	var sent Message
	f, timers, states := newTestForm(submitFunc(func(_ context.Context, msg Message) (*Response, error) {
		sent = msg
		return &Response{Message: "Message received (email service not configured)", Warning: "w"}, nil
	}))
	filled(f)

	resp, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Message{Name: "A", Email: "a@x.com", Message: "hi"}, sent)
	assert.Equal(t, DeliveryNotConfigured, resp.Delivery())
	assert.Equal(t, StateSuccess, f.State())
	assert.Equal(t, Message{}, f.Values())

	require.Len(t, timers.delays, 1)
	assert.Equal(t, 3000*time.Millisecond, timers.delays[0])
	timers.fire(0)

	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, []State{StateSubmitting, StateSuccess, StateIdle}, *states)
}

func TestFormErrorKeepsFields(t *testing.T) {
	f, timers, states := newTestForm(submitFunc(func(context.Context, Message) (*Response, error) {
		return nil, &StatusError{StatusCode: 500, Status: "500 Internal Server Error"}
	}))
	filled(f)

	_, err := f.Submit(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)

	assert.Equal(t, StateError, f.State())
	assert.Equal(t, Message{Name: "A", Email: "a@x.com", Message: "hi"}, f.Values())
	_, lastErr := f.Last()
	assert.Equal(t, err, lastErr)

	timers.fire(0)
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, []State{StateSubmitting, StateError, StateIdle}, *states)
}

func TestFormNetworkErrorIsError(t *testing.T) {
	f, _, _ := newTestForm(submitFunc(func(context.Context, Message) (*Response, error) {
		return nil, errors.New("connection refused")
	}))
	filled(f)

	_, err := f.Submit(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, StateError, f.State())
}

func TestFormIncompleteDoesNotSubmit(t *testing.T) {
	called := false
	f, timers, states := newTestForm(submitFunc(func(context.Context, Message) (*Response, error) {
		called = true
		return &Response{}, nil
	}))
	f.Set(FieldName, "A")
	f.Set(FieldEmail, "a@x.com")

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm)
	assert.False(t, called)
	assert.Equal(t, StateIdle, f.State())
	assert.Empty(t, timers.delays)
	assert.Empty(t, *states)
}

func TestFormSecondSubmitWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	f, _, _ := newTestForm(submitFunc(func(context.Context, Message) (*Response, error) {
		close(entered)
		<-release
		return &Response{Message: "ok"}, nil
	}))
	filled(f)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-entered

	assert.Equal(t, StateSubmitting, f.State())
	assert.False(t, f.CanSubmit())
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.True(t, f.CanSubmit())
}

func TestFormStaleResetIgnored(t *testing.T) {
	calls := 0
	f, timers, _ := newTestForm(submitFunc(func(context.Context, Message) (*Response, error) {
		calls++
		if calls == 1 {
			return &Response{Message: "ok"}, nil
		}
		return nil, errors.New("down")
	}))

	filled(f)
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	// resubmit before the first reset fires
	filled(f)
	_, err = f.Submit(context.Background())
	require.Error(t, err)
	require.Len(t, timers.fns, 2)

	timers.fire(0)
	assert.Equal(t, StateError, f.State(), "reset from the first submission must not apply")

	timers.fire(1)
	assert.Equal(t, StateIdle, f.State())
}

func TestFormRealTimer(t *testing.T) {
	f := NewForm(submitFunc(func(context.Context, Message) (*Response, error) {
		return &Response{Message: "ok"}, nil
	}), WithResetDelay(10*time.Millisecond))
	filled(f)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return f.State() == StateIdle }, time.Second, 5*time.Millisecond)
}
