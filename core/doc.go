// Package core wires the inspector action panel together.
//
// The panel turns marked methods of an inspected object into interactive
// buttons inside the host editor's property inspector. Types mark their
// operations through [github.com/anoideaopen/inspector/core/action.Register];
// on every repaint the host calls [Panel.Redraw] with the current selection,
// and the panel:
//
//   - rebuilds the operation catalog when the selection's type changed
//     ([github.com/anoideaopen/inspector/core/catalog.Build]);
//   - draws an editable parameter form for each operation that takes
//     parameters, using the recursive value editor
//     ([github.com/anoideaopen/inspector/core/editor.Engine]);
//   - dispatches a pressed operation to every selected target with the
//     captured parameter values
//     ([github.com/anoideaopen/inspector/core/invoke.Dispatcher]).
//
// Widget drawing, undo registration and dirty tracking stay with the host
// behind the [github.com/anoideaopen/inspector/core/gui.Renderer] and
// [github.com/anoideaopen/inspector/core/invoke.Host] interfaces. Everything
// runs synchronously on the host UI thread.
//
// # Example
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/anoideaopen/inspector/core"
//	    "github.com/anoideaopen/inspector/core/action"
//	)
//
//	type Spawner struct{ Count int }
//
//	func (s *Spawner) SpawnEnemies(count int) { s.Count += count }
//
//	func init() {
//	    action.Register(&Spawner{}, "SpawnEnemies",
//	        action.WithDisplayName("Spawn Enemies"),
//	        action.WithParamNames("count"),
//	        action.WithDefaults(5),
//	    )
//	}
//
//	func main() {
//	    panel, err := core.NewPanel(editorHost)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // from the host's repaint callback:
//	    panel.Redraw(renderer, selection)
//	}
package core
