package formkit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/notify"
)

// PropIsBusy is the property name published when a command starts or
// finishes a run.
const PropIsBusy = "isBusy"

// Command binds a form to an asynchronous submit action. Execute validates
// the form synchronously and, when it is valid, launches the action on its
// own goroutine. A command runs at most one action at a time.
//
// Command methods other than Await must be called from the goroutine that
// owns the form.
type Command struct {
	form   *form.Form
	action func(context.Context) error
	log    *slog.Logger
	source *notify.Source

	mu     sync.Mutex
	busy   bool
	cancel context.CancelFunc
	run    *Run
}

type commandSettings struct {
	log    *slog.Logger
	source *notify.Source
}

// CommandOption configures a Command.
type CommandOption func(*commandSettings)

// WithCommandLogger sets the logger used to report action failures.
func WithCommandLogger(log *slog.Logger) CommandOption {
	return func(s *commandSettings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBusyNotifications publishes PropIsBusy on src when a run starts and
// when a completed run is awaited.
func WithBusyNotifications(src *notify.Source) CommandOption {
	return func(s *commandSettings) {
		s.source = src
	}
}

// NewCommand creates a command executing action on behalf of f.
// Panics when f or action is nil.
func NewCommand(f *form.Form, action func(context.Context) error, opts ...CommandOption) *Command {
	if f == nil {
		panic("formkit: NewCommand requires a form")
	}
	if action == nil {
		panic("formkit: NewCommand requires an action")
	}

	cfg := commandSettings{log: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Command{
		form:   f,
		action: action,
		log:    cfg.log,
		source: cfg.source,
	}
}

// Execute validates the form and, when it is valid, starts the action.
//
// A validation failure is not an error: Execute returns (nil, nil) and the
// form holds the messages. A configuration error from validation
// propagates unchanged. Execute returns ErrCommandBusy while a previous
// run has not been awaited.
func (c *Command) Execute(ctx context.Context) (*Run, error) {
	c.mu.Lock()
	busy := c.busy
	c.mu.Unlock()
	if busy {
		return nil, ErrCommandBusy
	}

	valid, err := c.form.Validate()
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, nil
	}

	actx, cancel := context.WithCancel(ctx)
	r := &Run{cmd: c, done: make(chan struct{})}

	c.mu.Lock()
	c.busy = true
	c.cancel = cancel
	c.run = r
	c.mu.Unlock()

	if c.source != nil {
		c.source.Publish(PropIsBusy)
	}

	go func() {
		defer close(r.done)

		err := c.action(actx)
		// A cancelled run keeps context.Canceled as its outcome even when
		// the action returned something else on the way out.
		if cause := actx.Err(); cause != nil {
			err = cause
		}
		r.err = err

		switch {
		case errors.Is(err, context.Canceled):
			c.log.InfoContext(actx, "formkit: command cancelled")
		case err != nil:
			c.log.ErrorContext(actx, "formkit: command action failed", "error", err)
		}
	}()

	return r, nil
}

// Cancel cancels the context of the in-flight action, if any. The
// cancelled run finishes with context.Canceled.
func (c *Command) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Busy reports whether a run is in flight or completed but not yet
// awaited.
func (c *Command) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// finish flips the command back to idle exactly once per run. It executes
// in the goroutine that awaits the run, so state changes are observed by
// the form's owner rather than the action goroutine.
func (c *Command) finish(r *Run) {
	r.applied.Do(func() {
		c.mu.Lock()
		if c.run == r {
			c.busy = false
			c.cancel = nil
			c.run = nil
		}
		c.mu.Unlock()

		if c.source != nil {
			c.source.Publish(PropIsBusy)
		}
	})
}

// Run is the handle of a started action.
//
// The command stays busy until a completed run is awaited: Await applies
// the completion in the calling goroutine, clearing the busy flag and
// publishing PropIsBusy.
type Run struct {
	cmd     *Command
	done    chan struct{}
	err     error
	applied sync.Once
}

// Await blocks until the action completes or ctx is done. When the action
// has completed, Await applies the completion and returns the action's
// outcome. When ctx is done first, the run stays in flight and Await
// returns the context error.
func (r *Run) Await(ctx context.Context) error {
	select {
	case <-r.done:
		r.cmd.finish(r)
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the action has completed. Reading it
// does not apply the completion; call Await for that.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Err returns the action's outcome after completion and nil while the
// action is still running.
func (r *Run) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}
