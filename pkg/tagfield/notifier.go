package tagfield

// Notifier keeps a set of change listeners and calls them in registration order.
// It is embedded into Controller rather than acting as a base type.
type Notifier struct {
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// AddListener registers fn and returns a function that unregisters it.
// Calling the returned function more than once is harmless.
func (n *Notifier) AddListener(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}

	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// HasListeners reports whether any listener is registered
func (n *Notifier) HasListeners() bool {
	return len(n.listeners) > 0
}

// NotifyListeners calls every registered listener once.
func (n *Notifier) NotifyListeners() {
	// Snapshot so a listener may unregister itself while being called
	snapshot := make([]listener, len(n.listeners))
	copy(snapshot, n.listeners)

	for _, l := range snapshot {
		l.fn()
	}
}

func (n *Notifier) removeAllListeners() {
	n.listeners = nil
}
