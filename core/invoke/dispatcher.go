package invoke

import (
	"context"
	"fmt"

	"github.com/anoideaopen/inspector/core/action"
	"github.com/anoideaopen/inspector/core/introspect"
	"github.com/anoideaopen/inspector/core/logger"
	"github.com/anoideaopen/inspector/core/telemetry"
	"github.com/anoideaopen/inspector/core/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// Host is the editor-side collaborator surface: undo registration, change
// tracking and the live-simulation query. All calls are scoped to one target
// except MarkSceneChanged, which flags the containing scene or document.
type Host interface {
	// RegisterUndo records a reversible step for target under the operation's
	// caption, before the operation runs.
	RegisterUndo(target any, operation string)

	// MarkChanged flags target as having unsaved changes.
	MarkChanged(target any)

	// MarkSceneChanged flags the containing scene/document as dirty.
	MarkSceneChanged()

	// Playing reports whether the host runs in live-simulation mode; scene
	// dirty-marking is suppressed while it does.
	Playing() bool
}

// Dispatcher executes cataloged operations with their captured parameter
// values. Failures are logged and contained: nothing a dispatched operation
// does can take the form down.
type Dispatcher struct {
	intr    introspect.Introspector
	host    Host
	tracing *telemetry.TracingHandler
	log     *logrus.Entry
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithIntrospector substitutes the reflection capability.
func WithIntrospector(intr introspect.Introspector) DispatcherOption {
	return func(d *Dispatcher) {
		d.intr = intr
	}
}

// WithTracingHandler attaches a tracing handler.
func WithTracingHandler(th *telemetry.TracingHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.tracing = th
	}
}

// NewDispatcher creates a Dispatcher bound to the given host.
func NewDispatcher(host Host, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		intr: introspect.Reflect{},
		host: host,
		log:  logger.Logger().WithField("component", "invoke"),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the described operation with its current parameter values.
// Static operations run exactly once with no receiver, regardless of the
// selection. Instance operations run once per selection member in iteration
// order, each with the same captured values; a failing target is logged and
// skipped without aborting its siblings. Undo is registered per target before
// its invocation, successful targets are marked changed, and the scene is
// marked dirty once per dispatch when at least one target was processed and
// the host is not in live-simulation mode.
func (d *Dispatcher) Dispatch(ctx context.Context, desc *action.Descriptor, selection []any) {
	ctx, span := d.tracing.StartSpan(ctx, "invoke.Dispatch")
	defer span.End()

	log := d.log.WithFields(logrus.Fields{
		"invocation": uuid.NewString(),
		"op":         desc.DisplayName,
	})

	args := desc.Args()

	if desc.Kind == action.TargetStatic {
		if _, err := d.intr.InvokeFunc(desc.Func, args...); err != nil {
			log.Errorf("static invocation failed: %v", err)
			span.SetStatus(codes.Error, err.Error())
			return
		}

		span.SetStatus(codes.Ok, "")
		return
	}

	var dispatched, failures int
	for _, target := range selection {
		dispatched++

		d.host.RegisterUndo(target, desc.DisplayName)

		if _, err := d.intr.Invoke(target, desc.MethodName, args...); err != nil {
			failures++
			log.WithField("target", types.Identity(target)).Errorf("invocation failed: %v", err)
			continue
		}

		d.host.MarkChanged(target)
	}

	if dispatched > 0 && !d.host.Playing() {
		d.host.MarkSceneChanged()
	}

	if failures > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d targets failed", failures, dispatched))
		return
	}

	span.SetStatus(codes.Ok, "")
}
