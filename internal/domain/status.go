package domain

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusPending
	StatusError
	StatusSuccess
)

func (k StatusKind) String() string {
	switch k {
	case StatusPending:
		return "pending"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "idle"
	}
}

func (k StatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *StatusKind) UnmarshalText(text []byte) error {
	*k = ParseStatusKind(string(text))
	return nil
}

// ParseStatusKind maps a stored kind back, unknown values are idle
func ParseStatusKind(value string) StatusKind {
	switch value {
	case "pending":
		return StatusPending
	case "error":
		return StatusError
	case "success":
		return StatusSuccess
	default:
		return StatusIdle
	}
}

// Presentation classes rendered in the account table
const (
	ClassNeutral = "text-neutral-500"
	ClassPending = "text-neutral-800"
	ClassError   = "text-red-500"
)

// Status is the per-account progress shown on the board
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

func IdleStatus() Status {
	return Status{Kind: StatusIdle, Message: "No action"}
}

func PendingStatus(message string) Status {
	return Status{Kind: StatusPending, Message: message}
}

func ErrorStatus(message string) Status {
	return Status{Kind: StatusError, Message: message}
}

func SuccessStatus() Status {
	return Status{Kind: StatusSuccess, Message: "Done"}
}

// Class returns the styling for the status. Success goes back to neutral.
func (s Status) Class() string {
	switch s.Kind {
	case StatusPending:
		return ClassPending
	case StatusError:
		return ClassError
	default:
		return ClassNeutral
	}
}

// Terminal reports whether the account pipeline has finished
func (s Status) Terminal() bool {
	return s.Kind == StatusError || s.Kind == StatusSuccess
}
