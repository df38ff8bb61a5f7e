package foldstate

import "reflect"

// Store persists foldout open/closed flags across edit sessions. All access
// happens on the host UI thread; last write wins.
type Store interface {
	Get(key string) bool
	Set(key string, open bool)
}

// Key composes the fold-state key for one operation panel. The instance
// identity keeps two objects of the same type from colliding when they reuse
// the same panel; the declaring type keeps same-named operations on
// different types apart.
func Key(instanceID string, declaring reflect.Type, operation string) string {
	declaringName := "<nil>"
	if declaring != nil {
		declaringName = declaring.String()
	}

	return instanceID + "|" + declaringName + "|" + operation
}

// Memory is an in-process Store; flags live for one editor session.
type Memory struct {
	flags map[string]bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{flags: make(map[string]bool)}
}

// Get returns the stored flag, defaulting to closed.
func (m *Memory) Get(key string) bool {
	return m.flags[key]
}

// Set stores the flag immediately.
func (m *Memory) Set(key string, open bool) {
	m.flags[key] = open
}
