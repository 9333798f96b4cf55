package gltut

// ActionHandler is called when an action's key is pressed.
type ActionHandler func(e KeyEvent)

// ActionEntry holds a registered action with its key and handler.
type ActionEntry struct {
	Name    string // Action name for logging
	Key     Key
	Handler ActionHandler
}

// ActionRegistry maps keys to named actions.
// A key may carry several actions; they run in registration order.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty action registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]ActionEntry, 0, 16),
	}
}

// Register binds handler to key under name.
func (r *ActionRegistry) Register(name string, key Key, handler ActionHandler) {
	r.actions = append(r.actions, ActionEntry{
		Name:    name,
		Key:     key,
		Handler: handler,
	})
}

// Dispatch runs every action bound to e.Key.
// Returns true if any action was triggered.
func (r *ActionRegistry) Dispatch(e KeyEvent) bool {
	handled := false
	for i := range r.actions {
		a := &r.actions[i]
		if a.Key != e.Key || a.Handler == nil {
			continue
		}
		Logger.Debug("action", "name", a.Name, "key", e.Key)
		a.Handler(e)
		handled = true
	}
	return handled
}

// Bound returns the names of the actions bound to key.
func (r *ActionRegistry) Bound(key Key) []string {
	var names []string
	for _, a := range r.actions {
		if a.Key == key {
			names = append(names, a.Name)
		}
	}
	return names
}

// Unregister removes every action with the given name.
func (r *ActionRegistry) Unregister(name string) {
	kept := r.actions[:0]
	for _, a := range r.actions {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	r.actions = kept
}

// Len returns the number of registered actions.
func (r *ActionRegistry) Len() int {
	return len(r.actions)
}
