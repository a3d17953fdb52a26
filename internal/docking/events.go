package docking

import "github.com/bnema/dockyard/internal/domain/entity"

// Handler receives events.
type Handler func(entity.Event)

// HandlerID identifies a registered handler so it can be removed again.
type HandlerID uint64

type handlerEntry struct {
	id HandlerID
	fn Handler
}

type handlerTable map[entity.EventType][]handlerEntry

func (t handlerTable) add(event entity.EventType, id HandlerID, fn Handler) {
	t[event] = append(t[event], handlerEntry{id: id, fn: fn})
}

func (t handlerTable) remove(event entity.EventType, id HandlerID) bool {
	entries := t[event]
	for i, e := range entries {
		if e.id == id {
			t[event] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// dispatch calls a snapshot of the handlers so they may unregister themselves.
func (t handlerTable) dispatch(ev entity.Event) {
	entries := t[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]handlerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		e.fn(ev)
	}
}

// On registers a docker-wide handler. It also receives every panel event,
// with Event.Source set to the emitting panel.
func (d *Docker) On(event entity.EventType, fn Handler) HandlerID {
	d.nextHandler++
	d.handlers.add(event, d.nextHandler, fn)
	return d.nextHandler
}

// Off removes a handler registered with On.
func (d *Docker) Off(event entity.EventType, id HandlerID) bool {
	return d.handlers.remove(event, id)
}

// OffAll removes every docker-wide handler of event.
func (d *Docker) OffAll(event entity.EventType) {
	delete(d.handlers, event)
}

// Trigger broadcasts an event to every panel, then to docker-wide handlers.
func (d *Docker) Trigger(event entity.EventType, data any) {
	ev := entity.Event{Type: event, Data: data}
	for _, p := range d.Panels() {
		p.handlers.dispatch(ev)
	}
	d.handlers.dispatch(ev)
}

// emit delivers a panel event to the panel, then to docker-wide handlers.
func (p *Panel) emit(event entity.EventType, data any) {
	ev := entity.Event{Type: event, Source: p.id, Data: data}
	p.handlers.dispatch(ev)
	if p.docker != nil {
		p.docker.handlers.dispatch(ev)
	}
}

// On registers a handler for events emitted by this panel or broadcast by Trigger.
func (p *Panel) On(event entity.EventType, fn Handler) HandlerID {
	p.docker.nextHandler++
	p.handlers.add(event, p.docker.nextHandler, fn)
	return p.docker.nextHandler
}

// Off removes a handler registered with On.
func (p *Panel) Off(event entity.EventType, id HandlerID) bool {
	return p.handlers.remove(event, id)
}
