// Package execution drives the run-code request lifecycle and owns the
// console result.
//
// A run is split in three so the UI loop never blocks on the network:
// Start (on the loop) records intent and hands out a Ticket, Perform (off
// the loop) does the HTTP exchange, and Apply (back on the loop) folds the
// Completion into the Result. Every Ticket carries a monotonic id and only
// the most recently issued one may settle the Result, so an older run that
// finishes late is dropped.
package execution

import (
	"context"
	"time"

	"github.com/zhubert/codepad/internal/api"
	pkgerrors "github.com/zhubert/codepad/internal/errors"
	"github.com/zhubert/codepad/internal/logger"
)

// TransportErrorMessage is shown when the run request itself failed.
const TransportErrorMessage = "Network or server error."

// Runner submits programs for execution.
type Runner interface {
	Run(ctx context.Context, req api.RunRequest) (api.RunResponse, error)
}

// Status is the lifecycle state of the console.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Result is what the console shows. On completion exactly one of
// OutputText and ErrorText is meaningful, chosen by Status.
type Result struct {
	Status     Status
	OutputText string
	ErrorText  string
	Err        error // Set on failure; errors.KindApplication or errors.KindTransport
}

// Text returns the text to display for the current status.
func (r Result) Text() string {
	if r.Status == StatusFailed {
		return r.ErrorText
	}
	return r.OutputText
}

// Ticket identifies one issued run.
type Ticket struct {
	ID      uint64
	Request api.RunRequest
}

// Completion is the outcome of performing a Ticket.
type Completion struct {
	Ticket   Ticket
	Response api.RunResponse
	Err      error
}

// Controller owns the console Result.
type Controller struct {
	runner Runner
	now    func() time.Time

	result   Result
	latest   uint64
	started  time.Time
	finished time.Time
}

// NewController creates an idle controller.
func NewController(runner Runner) *Controller {
	return &Controller{runner: runner, now: time.Now}
}

// Start clears the previous result, marks the console running and issues a
// new Ticket. A Start while running supersedes the earlier run.
func (c *Controller) Start(code, language, input string) Ticket {
	c.latest++
	c.result = Result{Status: StatusRunning}
	c.started = c.now()
	c.finished = time.Time{}

	logger.WithComponent("execution").Debug("run started", "requestID", c.latest, "language", language)

	return Ticket{
		ID:      c.latest,
		Request: api.RunRequest{Code: code, Language: language, Input: input},
	}
}

// Perform sends the ticket's request once. It is safe to call off the UI
// loop because it touches nothing but the runner.
func (c *Controller) Perform(ctx context.Context, t Ticket) Completion {
	resp, err := c.runner.Run(ctx, t.Request)
	return Completion{Ticket: t, Response: resp, Err: err}
}

// Apply settles the Result from comp. Completions for anything but the
// latest ticket, or arriving after it already settled, are dropped. It
// reports whether the Result changed.
func (c *Controller) Apply(comp Completion) bool {
	log := logger.WithComponent("execution")

	if comp.Ticket.ID != c.latest || c.result.Status != StatusRunning {
		log.Debug("dropping stale run result", "requestID", comp.Ticket.ID, "latest", c.latest)
		return false
	}

	switch {
	case comp.Err != nil:
		log.Warn("run transport failure", "requestID", comp.Ticket.ID, "kind", pkgerrors.GetKind(comp.Err).String(), "error", comp.Err)
		c.result = Result{Status: StatusFailed, ErrorText: TransportErrorMessage, Err: comp.Err}
	case comp.Response.Error != "":
		err := pkgerrors.ServerReported(pkgerrors.Op("execution.Run"), comp.Response.Error)
		log.Info("run reported an error", "requestID", comp.Ticket.ID, "kind", pkgerrors.GetKind(err).String())
		c.result = Result{Status: StatusFailed, ErrorText: comp.Response.Error, Err: err}
	default:
		c.result = Result{Status: StatusSucceeded, OutputText: comp.Response.Output}
	}
	c.finished = c.now()

	log.Debug("run settled", "requestID", comp.Ticket.ID, "status", c.result.Status.String(), "elapsed", c.finished.Sub(c.started))
	return true
}

// Run is Start, Perform and Apply in one blocking call.
func (c *Controller) Run(ctx context.Context, code, language, input string) Result {
	t := c.Start(code, language, input)
	c.Apply(c.Perform(ctx, t))
	return c.result
}

// Clear resets the console to idle. It does nothing while a run is in flight.
func (c *Controller) Clear() bool {
	if c.result.Status == StatusRunning {
		return false
	}
	c.result = Result{}
	c.started = time.Time{}
	c.finished = time.Time{}
	return true
}

// Result returns the current console state.
func (c *Controller) Result() Result { return c.result }

// Running reports whether the latest run is outstanding.
func (c *Controller) Running() bool { return c.result.Status == StatusRunning }

// TriggerEnabled reports whether the run action is available.
func (c *Controller) TriggerEnabled() bool { return !c.Running() }

// Elapsed is the time since the latest run started, or its total duration once settled.
func (c *Controller) Elapsed() time.Duration {
	switch {
	case c.started.IsZero():
		return 0
	case c.result.Status == StatusRunning:
		return c.now().Sub(c.started)
	default:
		return c.finished.Sub(c.started)
	}
}
