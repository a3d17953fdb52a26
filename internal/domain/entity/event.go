package entity

// EventType names an event emitted by panels or the docker.
// Custom event names are allowed; the constants below are the built-in ones.
type EventType string

const (
	EventInit              EventType = "panelInit"              // Panel laid out for the first time
	EventUpdated           EventType = "panelUpdated"           // Panel geometry refreshed
	EventVisibilityChanged EventType = "panelVisibilityChanged" // Panel became the shown/hidden tab
	EventBeginDock         EventType = "panelBeginDock"         // A dock drag started
	EventEndDock           EventType = "panelEndDock"           // A dock drag finished
	EventGainFocus         EventType = "panelGainFocus"
	EventLostFocus         EventType = "panelLostFocus"
	EventClosed            EventType = "panelClosed"
	EventButton            EventType = "panelButton" // Custom button clicked, payload ButtonEvent
	EventAttached          EventType = "panelAttached"
	EventDetached          EventType = "panelDetached"
	EventMoveStarted       EventType = "panelMoveStarted"
	EventMoved             EventType = "panelMoved"
	EventMoveEnded         EventType = "panelMoveEnded"
	EventResizeStarted     EventType = "panelResizeStarted"
	EventResized           EventType = "panelResized"
	EventResizeEnded       EventType = "panelResizeEnded"
	EventScrolled          EventType = "panelScrolled"
	EventSaveLayout        EventType = "layoutSave"    // Payload CustomState to fill
	EventRestoreLayout     EventType = "layoutRestore" // Payload CustomState to read
)

// Event is delivered to handlers.
type Event struct {
	Type EventType
	// Source is the id of the emitting panel, 0 when emitted by the docker.
	Source NodeID
	Data   any
}

// ButtonEvent is the payload of EventButton.
type ButtonEvent struct {
	Name      string
	IsToggled bool
}

// VisibilityEvent is the payload of EventVisibilityChanged.
type VisibilityEvent struct {
	Visible bool
}

// ScrollEvent is the payload of EventScrolled.
type ScrollEvent struct {
	Previous Vec2
	Current  Vec2
}

// CustomState is opaque per-panel state persisted in a layout.
// Handlers of EventSaveLayout write into it; EventRestoreLayout handlers read it.
type CustomState map[string]any
