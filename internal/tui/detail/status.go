package detail

// Status is the lifecycle flag that selects which view is rendered.
type Status int

const (
	// StatusInitial means no fetch cycle has started yet.
	StatusInitial Status = iota
	// StatusInProgress means a request is outstanding.
	StatusInProgress
	// StatusSuccess means the latest request returned normalized data.
	StatusSuccess
	// StatusFailure means the latest request failed for any reason.
	StatusFailure
)

// String returns the wire-style name of the status.
func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "INITIAL"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s ends a fetch cycle.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure
}
