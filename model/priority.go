package model

import "fmt"

// Priority is a closed set. It is stored as its name, not a lookup table.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities returns the full set, in ascending urgency, for form choice lists.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func ParsePriority(name string) (Priority, error) {
	switch Priority(name) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(name), nil
	}
	return "", fmt.Errorf("unknown priority %q", name)
}
