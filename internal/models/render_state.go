package models

// RenderState is the UI mode derived from how many slots resolve
type RenderState int

const (
	RenderEmpty RenderState = iota
	RenderPartial
	RenderComplete
)

func (s RenderState) String() string {
	switch s {
	case RenderPartial:
		return "partial"
	case RenderComplete:
		return "complete"
	default:
		return "empty"
	}
}
