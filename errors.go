package utm

import "fmt"

// ErrorKind classifies a conversion failure.
type ErrorKind int

const (
	// InvalidZone reports a zone outside [1,60] on the forward path.
	InvalidZone ErrorKind = iota + 1
	// InvalidOutput reports a missing output destination.
	InvalidOutput
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidZone:
		return "invalid zone"
	case InvalidOutput:
		return "invalid output target"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by the conversion functions. Every failure is detected
// before any computation, so no output is ever partially written.
type Error struct {
	Kind ErrorKind
	Zone int // offending zone, for InvalidZone
}

func (e *Error) Error() string {
	if e.Kind == InvalidZone {
		return fmt.Sprintf("utm: %s %d, must be in [%d,%d]", e.Kind, e.Zone, MinZone, MaxZone)
	}
	return "utm: " + e.Kind.String()
}

// Is makes errors.Is match any *Error of the same kind, so callers can
// compare against ErrInvalidZone and ErrInvalidOutput.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrInvalidZone matches every InvalidZone error.
	ErrInvalidZone = &Error{Kind: InvalidZone}
	// ErrInvalidOutput matches every InvalidOutput error.
	ErrInvalidOutput = &Error{Kind: InvalidOutput}
)
