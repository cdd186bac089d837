package contactclient

import (
	"context"
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ResetDelay is how long success and error stay visible before the form
// returns to idle.
const ResetDelay = 3 * time.Second

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

var (
	// ErrIncompleteForm mirrors the browser's required-field check: nothing
	// is sent and the state does not change.
	ErrIncompleteForm = errors.New("contactclient: name, email and message are required")
	// ErrSubmitInFlight is returned while the submit control is disabled.
	ErrSubmitInFlight = errors.New("contactclient: a submission is already in flight")
)

// Submitter is satisfied by *Client.
type Submitter interface {
	Submit(ctx context.Context, msg Message) (*Response, error)
}

// Timer is the part of *time.Timer the form needs.
type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

type FormOption func(*Form)

func WithResetDelay(d time.Duration) FormOption {
	return func(f *Form) {
		f.resetDelay = d
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling the reset to idle.
func WithAfterFunc(fn AfterFunc) FormOption {
	return func(f *Form) {
		if fn != nil {
			f.afterFunc = fn
		}
	}
}

// OnStateChange registers an observer called after every transition.
func OnStateChange(fn func(State)) FormOption {
	return func(f *Form) {
		if fn != nil {
			f.observers = append(f.observers, fn)
		}
	}
}

// Form holds the three input values and the submit state. It is safe for
// concurrent use. A submission cannot be cancelled once started except
// through the ctx passed to Submit.
type Form struct {
	submitter  Submitter
	resetDelay time.Duration
	afterFunc  AfterFunc
	observers  []func(State)

	mu      sync.Mutex
	state   State
	values  Message
	gen     uint64 // bumped on every transition; stale resets compare against it
	pending Timer
	lastErr error
	last    *Response
}

func NewForm(submitter Submitter, opts ...FormOption) *Form {
	f := &Form{
		submitter:  submitter,
		resetDelay: ResetDelay,
		afterFunc: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	}
}

func (f *Form) Values() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form) CanSubmit() bool {
	return f.State() != StateSubmitting
}

// Last returns the outcome of the most recent completed submission.
func (f *Form) Last() (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.lastErr
}

// Submit sends the current values. Any 2xx answer moves the form to
// success and clears the fields, whatever warning or error annotation the
// body carries; a non-2xx answer or transport error moves it to error and
// keeps the fields. Either way the form drops back to idle after the reset
// delay.
func (f *Form) Submit(ctx context.Context) (*Response, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	msg := f.values
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		f.mu.Unlock()
		return nil, ErrIncompleteForm
	}
	f.transitionLocked(StateSubmitting)
	f.mu.Unlock()
	f.notify(StateSubmitting)

	resp, err := f.submitter.Submit(ctx, msg)

	f.mu.Lock()
	next := StateSuccess
	if err != nil {
		next = StateError
	} else {
		f.values = Message{}
	}
	f.last, f.lastErr = resp, err
	gen := f.transitionLocked(next)
	f.pending = f.afterFunc(f.resetDelay, func() { f.reset(gen) })
	f.mu.Unlock()
	f.notify(next)

	return resp, err
}

func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	if f.gen != gen {
		f.mu.Unlock()
		return
	}
	f.transitionLocked(StateIdle)
	f.mu.Unlock()
	f.notify(StateIdle)
}

// transitionLocked sets the state, cancels any pending reset and returns
// the new generation.
func (f *Form) transitionLocked(s State) uint64 {
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	f.state = s
	f.gen++
	return f.gen
}

func (f *Form) notify(s State) {
	for _, fn := range f.observers {
		fn(s)
	}
}
