package tick

// EventKind identifies a speed control request.
type EventKind uint8

const (
	IncreaseSpeed EventKind = iota
	DecreaseSpeed
	Pause
	TogglePause
)

var eventNames = [...]string{"increase-speed", "decrease-speed", "pause", "toggle-pause"}

// String returns a readable event kind name.
func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one discrete control request from a host. Paused is only read for
// Pause events.
type Event struct {
	Kind   EventKind
	Paused bool
}

// Increase requests one level faster.
func Increase() Event { return Event{Kind: IncreaseSpeed} }

// Decrease requests one level slower.
func Decrease() Event { return Event{Kind: DecreaseSpeed} }

// SetPause requests an explicit pause or resume.
func SetPause(paused bool) Event { return Event{Kind: Pause, Paused: paused} }

// Toggle requests a pause toggle.
func Toggle() Event { return Event{Kind: TogglePause} }

// Coalesce drops every event that a later event of the same kind supersedes.
// The result keeps arrival order.
func Coalesce(events []Event) []Event {
	if len(events) <= 1 {
		return events
	}
	var lastAt [len(eventNames)]int
	for i := range lastAt {
		lastAt[i] = -1
	}
	for i, ev := range events {
		if int(ev.Kind) < len(lastAt) {
			lastAt[ev.Kind] = i
		}
	}
	out := make([]Event, 0, len(lastAt))
	for i, ev := range events {
		if int(ev.Kind) < len(lastAt) && lastAt[ev.Kind] == i {
			out = append(out, ev)
		}
	}
	return out
}
