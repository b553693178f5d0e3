package apitype

type Command interface {
	IsThrottled() bool
}

// Throttled commands may be dropped or coalesced by a busy listener.
type Throttled struct {
}

type NotThrottled struct {
}

func (s *Throttled) IsThrottled() bool {
	return true
}

func (s *NotThrottled) IsThrottled() bool {
	return false
}
