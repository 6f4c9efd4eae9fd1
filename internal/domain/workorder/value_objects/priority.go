package valueobjects

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return ValidPriorities[p]
}

// SortWeight orders priorities for listing, highest urgency first.
func (p Priority) SortWeight() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
	PriorityNone:   true,
}
