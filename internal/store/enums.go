package store

// Call status ENUMs
const (
	CallStatusInProgress = "in-progress"
	CallStatusCompleted  = "completed"
)
