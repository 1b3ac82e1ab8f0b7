package models

// UpdateStatus is the explicit outcome of a content-store mutation, so
// callers can tell an applied write from a rejected or unsaved one.
type UpdateStatus int

const (
	// UpdateApplied means the mutation took effect and was persisted.
	UpdateApplied UpdateStatus = iota
	// UpdateUnauthorized means the session role may not perform the
	// mutation; in-memory state is unchanged.
	UpdateUnauthorized
	// UpdatePersistFailed means the mutation took effect in memory but
	// writing it to storage failed. The change survives until restart.
	UpdatePersistFailed
	// UpdateInvalid means the mutation referenced an unknown collection
	// key and nothing changed.
	UpdateInvalid
)

// Applied reports whether the in-memory state changed.
func (s UpdateStatus) Applied() bool {
	return s == UpdateApplied || s == UpdatePersistFailed
}

func (s UpdateStatus) String() string {
	switch s {
	case UpdateApplied:
		return "applied"
	case UpdateUnauthorized:
		return "unauthorized"
	case UpdatePersistFailed:
		return "persist_failed"
	case UpdateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
