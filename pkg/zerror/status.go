package zerror

// Status classifies a ZError independently of any transport.
type Status uint8

const (
	StatusBadRequest Status = iota
	StatusNotFound
	StatusValidationFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusValidationFailed:
		return "VALIDATION_FAILED"
	default:
		return "UNKNOWN"
	}
}
