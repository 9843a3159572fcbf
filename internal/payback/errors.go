package payback

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidInput is returned when a field is missing, non-numeric, zero or
	// negative, or when a new value is not lower than the old one.
	// Missing and malformed fields are not distinguished.
	ErrInvalidInput = constError("invalid input")

	// ErrUnknownInvestment indicates an unrecognized investment type name.
	ErrUnknownInvestment = constError("unknown investment type")
)
