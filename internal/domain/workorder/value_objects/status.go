package valueobjects

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

func (s Status) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusOpen:       {StatusInProgress, StatusOnHold, StatusCompleted},
		StatusInProgress: {StatusOnHold, StatusCompleted, StatusOpen},
		StatusOnHold:     {StatusInProgress, StatusOpen, StatusCompleted},
		StatusCompleted:  {StatusInProgress},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusCompleted:  true,
}
