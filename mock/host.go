package mock

import "github.com/anoideaopen/inspector/core/types"

// Host records the dispatcher's undo and dirty-tracking interactions.
type Host struct {
	// UndoRecords lists "identity|operation" entries in registration order.
	UndoRecords []string

	// Changed lists the identities marked as having unsaved changes.
	Changed []string

	// SceneChanges counts MarkSceneChanged calls.
	SceneChanges int

	// Live simulates the host's live-simulation (play) mode.
	Live bool

	// OnEvent, when set, observes every host call as "kind:identity".
	OnEvent func(event string)
}

func (h *Host) RegisterUndo(target any, operation string) {
	h.UndoRecords = append(h.UndoRecords, types.Identity(target)+"|"+operation)
	h.emit("undo:" + types.Identity(target))
}

func (h *Host) MarkChanged(target any) {
	h.Changed = append(h.Changed, types.Identity(target))
	h.emit("changed:" + types.Identity(target))
}

func (h *Host) MarkSceneChanged() {
	h.SceneChanges++
	h.emit("scene")
}

func (h *Host) Playing() bool {
	return h.Live
}

func (h *Host) emit(event string) {
	if h.OnEvent != nil {
		h.OnEvent(event)
	}
}
