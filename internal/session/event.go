package session

// EventKind identifies an input event.
type EventKind int

const (
	// EventNext selects the next item.
	EventNext EventKind = iota
	// EventPrev selects the previous item.
	EventPrev
	// EventCollapse clears the current list's selection.
	EventCollapse
	// EventBack returns to the parent list.
	EventBack
	// EventDescend opens the selected item's sub-list.
	EventDescend
	// EventAdd enters add mode.
	EventAdd
	// EventDelete deletes the selected item.
	EventDelete
	// EventSave hands the current tree to the save callback.
	EventSave
	// EventExit ends the session.
	EventExit
	// EventChar appends Event.Rune to the add-mode buffer.
	EventChar
	// EventBackspace removes the last rune of the add-mode buffer.
	EventBackspace
	// EventConfirm commits the add-mode buffer as a new item.
	EventConfirm
	// EventCancel leaves add mode without adding anything.
	EventCancel
)

var eventNames = map[EventKind]string{
	EventNext:      "next",
	EventPrev:      "prev",
	EventCollapse:  "collapse",
	EventBack:      "back",
	EventDescend:   "descend",
	EventAdd:       "add",
	EventDelete:    "delete",
	EventSave:      "save",
	EventExit:      "exit",
	EventChar:      "char",
	EventBackspace: "backspace",
	EventConfirm:   "confirm",
	EventCancel:    "cancel",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single input event.
type Event struct {
	Kind EventKind
	// Rune is set for EventChar.
	Rune rune
}

// Key returns an event of the given kind.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// Char returns an EventChar for r.
func Char(r rune) Event {
	return Event{Kind: EventChar, Rune: r}
}

// Text returns one EventChar per rune of s.
func Text(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, Char(r))
	}
	return events
}

// Mode is the session's input mode.
type Mode int

const (
	// ModeNavigate is the default mode: events move through the hierarchy.
	ModeNavigate Mode = iota
	// ModeAdd collects text for a new item.
	ModeAdd
)

func (m Mode) String() string {
	if m == ModeAdd {
		return "add"
	}
	return "navigate"
}
