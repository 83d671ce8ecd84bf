package models

// Slot is one of the two comparison positions
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
)

// String returns "left" or "right"
func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseSlot accepts "left"/"right" and the page's "1"/"2" numbering
func ParseSlot(s string) (Slot, bool) {
	switch s {
	case "left", "1":
		return SlotLeft, true
	case "right", "2":
		return SlotRight, true
	default:
		return 0, false
	}
}

// Selection holds the chosen player id per slot. An empty id means no selection.
type Selection struct {
	Left  string
	Right string
}

// Get returns the id stored in slot
func (s Selection) Get(slot Slot) string {
	if slot == SlotRight {
		return s.Right
	}
	return s.Left
}

// Set stores id in slot
func (s *Selection) Set(slot Slot, id string) {
	switch slot {
	case SlotLeft:
		s.Left = id
	case SlotRight:
		s.Right = id
	}
}

// Clear empties both slots
func (s *Selection) Clear() {
	s.Left = ""
	s.Right = ""
}

// IsEmpty reports whether neither slot holds an id
func (s Selection) IsEmpty() bool {
	return s.Left == "" && s.Right == ""
}
