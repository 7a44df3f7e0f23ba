package booking

// State is the phase of a booking selection session. Using one enum instead
// of a pile of independent booleans keeps illegal combinations (a chosen slot
// with no slots loaded) unrepresentable.
type State int

const (
	// StateIdle: no court chosen yet.
	StateIdle State = iota
	// StateAwaitingSlots: court and date chosen, slot fetch in flight.
	StateAwaitingSlots
	// StateSlotsReady: fetch resolved; zero or more slots shown.
	StateSlotsReady
	// StateSlotChosen: the user picked a slot from the list.
	StateSlotChosen
	// StateSubmitting: checkout request in flight.
	StateSubmitting
	// StateRedirected: checkout succeeded and control left the app. Terminal.
	StateRedirected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSlots:
		return "awaiting_slots"
	case StateSlotsReady:
		return "slots_ready"
	case StateSlotChosen:
		return "slot_chosen"
	case StateSubmitting:
		return "submitting"
	case StateRedirected:
		return "redirected"
	default:
		return "unknown"
	}
}
