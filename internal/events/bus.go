package events

// Event is a single notification from the picker.
type Event[D any] struct {
	Type Type
	// Instant is set for SelectedChange and Save.
	Instant D
	// Close is set for CloseDialog.
	Close bool
}

// Listener receives events.
type Listener[D any] func(Event[D])

// Bus fans events out to its listeners synchronously.
// It is not safe for concurrent use; the picker drives it from one goroutine.
type Bus[D any] struct {
	nextID    int
	listeners []subscription[D]
}

type subscription[D any] struct {
	id int
	fn Listener[D]
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus[D]) Subscribe(fn Listener[D]) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, subscription[D]{id: id, fn: fn})
	return func() {
		for i, s := range b.listeners {
			if s.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of registered listeners.
func (b *Bus[D]) Len() int {
	return len(b.listeners)
}

// Emit delivers ev to every listener in subscription order.
func (b *Bus[D]) Emit(ev Event[D]) {
	// Snapshot so a listener that unsubscribes does not skip its neighbour.
	subs := make([]subscription[D], len(b.listeners))
	copy(subs, b.listeners)
	for _, s := range subs {
		s.fn(ev)
	}
}

// EmitSelectedChange emits a SelectedChange event carrying d.
func (b *Bus[D]) EmitSelectedChange(d D) {
	b.Emit(Event[D]{Type: SelectedChange, Instant: d})
}

// EmitSave emits a Save event carrying d.
func (b *Bus[D]) EmitSave(d D) {
	b.Emit(Event[D]{Type: Save, Instant: d})
}

// EmitCloseDialog emits a CloseDialog event.
func (b *Bus[D]) EmitCloseDialog() {
	b.Emit(Event[D]{Type: CloseDialog, Close: true})
}
