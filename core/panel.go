package core

import (
	"context"
	"reflect"

	"github.com/anoideaopen/inspector/core/action"
	"github.com/anoideaopen/inspector/core/catalog"
	"github.com/anoideaopen/inspector/core/config"
	"github.com/anoideaopen/inspector/core/editor"
	"github.com/anoideaopen/inspector/core/foldstate"
	"github.com/anoideaopen/inspector/core/gui"
	"github.com/anoideaopen/inspector/core/introspect"
	"github.com/anoideaopen/inspector/core/invoke"
	"github.com/anoideaopen/inspector/core/logger"
	"github.com/anoideaopen/inspector/core/stringsx"
	"github.com/anoideaopen/inspector/core/telemetry"
	"github.com/anoideaopen/inspector/core/types"
	"go.opentelemetry.io/otel/trace"
)

// Panel is the inspector action panel. The host calls Redraw once per
// inspector repaint with the current selection; the panel completes all
// catalog lookups, widget draws and pending invocations before returning
// control. Everything runs synchronously on the host UI thread.
type Panel struct {
	engine     *editor.Engine
	dispatcher *invoke.Dispatcher
	folds      foldstate.Store
	tracing    *telemetry.TracingHandler
	disabled   []string

	selectionType reflect.Type
	selectionID   string
	descriptors   []*action.Descriptor
}

type panelOptions struct {
	folds    foldstate.Store
	intr     introspect.Introspector
	tp       trace.TracerProvider
	disabled []string
	cfg      *config.Config
}

// Option configures a Panel at construction time.
type Option func(*panelOptions) error

// WithFoldStore substitutes the fold-state store; the default keeps fold
// flags in memory for the session.
func WithFoldStore(s foldstate.Store) Option {
	return func(o *panelOptions) error {
		o.folds = s
		return nil
	}
}

// WithIntrospector substitutes the reflection capability for both editing
// and invocation.
func WithIntrospector(intr introspect.Introspector) Option {
	return func(o *panelOptions) error {
		o.intr = intr
		return nil
	}
}

// WithTracerProvider attaches tracing to redraws and dispatches.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *panelOptions) error {
		o.tp = tp
		return nil
	}
}

// WithDisabledActions hides operations by raw name from every panel.
func WithDisabledActions(names ...string) Option {
	return func(o *panelOptions) error {
		o.disabled = append(o.disabled, names...)
		return nil
	}
}

// WithConfig applies a loaded configuration: log level, disabled actions and,
// when a fold-state path is set and no explicit store was given, a persistent
// bbolt store at that path.
func WithConfig(cfg *config.Config) Option {
	return func(o *panelOptions) error {
		o.cfg = cfg
		return nil
	}
}

// NewPanel creates a Panel bound to the given host collaborator.
func NewPanel(host invoke.Host, opts ...Option) (*Panel, error) {
	options := &panelOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if options.cfg != nil {
		logger.SetLevel(options.cfg.LogLevel)
		options.disabled = append(options.disabled, options.cfg.DisabledActions...)

		if options.folds == nil && options.cfg.FoldStatePath != "" {
			store, err := foldstate.OpenBolt(options.cfg.FoldStatePath)
			if err != nil {
				return nil, err
			}
			options.folds = store
		}
	}

	if options.folds == nil {
		options.folds = foldstate.NewMemory()
	}

	tracing := telemetry.NewTracingHandler(options.tp)

	dispatcherOpts := []invoke.DispatcherOption{invoke.WithTracingHandler(tracing)}
	if options.intr != nil {
		dispatcherOpts = append(dispatcherOpts, invoke.WithIntrospector(options.intr))
	}

	return &Panel{
		engine:     editor.NewEngine(options.intr),
		dispatcher: invoke.NewDispatcher(host, dispatcherOpts...),
		folds:      options.folds,
		tracing:    tracing,
		disabled:   options.disabled,
	}, nil
}

// Redraw renders the action panel for the current selection. The catalog is
// rebuilt when the selection's type changes, discarding all in-progress
// parameter edits; on every repaint each cataloged operation draws its
// parameter form (under a persisted foldout) and its button, and a pressed
// button dispatches the operation before Redraw returns.
func (p *Panel) Redraw(r gui.Renderer, selection []any) {
	ctx, span := p.tracing.StartSpan(context.Background(), "panel.Redraw")
	defer span.End()

	if len(selection) == 0 {
		p.selectionType = nil
		p.selectionID = ""
		p.descriptors = nil
		return
	}

	// A new selection discards the old descriptors entirely, in-progress
	// parameter edits included.
	head := selection[0]
	headType := reflect.TypeOf(head)
	headID := types.Identity(head)
	if headType != p.selectionType || headID != p.selectionID {
		p.selectionType = headType
		p.selectionID = headID
		p.descriptors = p.filter(catalog.Build(head))
	}

	for _, descriptor := range p.descriptors {
		p.drawAction(ctx, r, descriptor, selection)
	}
}

func (p *Panel) filter(all []*action.Descriptor) []*action.Descriptor {
	if len(p.disabled) == 0 {
		return all
	}

	kept := make([]*action.Descriptor, 0, len(all))
	for _, descriptor := range all {
		if stringsx.OneOf(descriptor.MethodName, p.disabled...) {
			continue
		}
		kept = append(kept, descriptor)
	}

	return kept
}

func (p *Panel) drawAction(ctx context.Context, r gui.Renderer, d *action.Descriptor, selection []any) {
	if len(d.Params) > 0 {
		key := foldstate.Key(types.Identity(selection[0]), d.Declaring, d.MethodName)

		open := p.folds.Get(key)
		shown := r.Foldout(d.DisplayName, open)
		if shown != open {
			p.folds.Set(key, shown)
		}

		if shown {
			gui.Indented(r, func() {
				for i := range d.Params {
					param := &d.Params[i]
					param.Value = p.engine.Edit(r, param.Name, param.Type, param.Value)
				}
			})
		}
	}

	if r.Button(d.DisplayName) {
		p.dispatcher.Dispatch(ctx, d, selection)
	}
}
