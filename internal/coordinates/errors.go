package coordinates

// ErrorKind identifies why a raw coordinate string was rejected
type ErrorKind int

const (
	InputNeeded ErrorKind = iota + 1
	CommaNeeded
	TooManyCommas
	LatNotValidNumber
	LonNotValidNumber
	NotInLatRange
	NotInLonRange
)

// errorMessages maps each kind to the text shown to users. These strings are
// a stable contract with API and UI clients.
var errorMessages = map[ErrorKind]string{
	InputNeeded:       "No input provided",
	CommaNeeded:       "Separate latitude and longitude values with a comma for valid input.",
	TooManyCommas:     "Invalid input, too many commas.",
	LatNotValidNumber: "Invalid input, latitude must be a number.",
	LonNotValidNumber: "Invalid input, longitude must be a number.",
	NotInLatRange:     "Invalid input, latitude must be between -90 and 90.",
	NotInLonRange:     "Invalid input, longitude must be between -180 and 180.",
}

var errorCodes = map[ErrorKind]string{
	InputNeeded:       "input_needed",
	CommaNeeded:       "comma_needed",
	TooManyCommas:     "too_many_commas",
	LatNotValidNumber: "lat_not_valid_number",
	LonNotValidNumber: "lon_not_valid_number",
	NotInLatRange:     "not_in_lat_range",
	NotInLonRange:     "not_in_lon_range",
}

// Message returns the human-readable message for the kind
func (k ErrorKind) Message() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return "Invalid input."
}

// String returns the machine-readable code for the kind, e.g. "comma_needed"
func (k ErrorKind) String() string {
	if code, ok := errorCodes[k]; ok {
		return code
	}
	return "unknown"
}

// Sentinel errors for use with errors.Is. Any *ValidationError matches the
// sentinel of the same kind regardless of which point it was raised for.
var (
	ErrInputNeeded       = &ValidationError{Kind: InputNeeded}
	ErrCommaNeeded       = &ValidationError{Kind: CommaNeeded}
	ErrTooManyCommas     = &ValidationError{Kind: TooManyCommas}
	ErrLatNotValidNumber = &ValidationError{Kind: LatNotValidNumber}
	ErrLonNotValidNumber = &ValidationError{Kind: LonNotValidNumber}
	ErrNotInLatRange     = &ValidationError{Kind: NotInLatRange}
	ErrNotInLonRange     = &ValidationError{Kind: NotInLonRange}
)

// ValidationError reports a rejected coordinate string. Point names the
// input ("A" or "B") when the error comes out of a two-point evaluation.
type ValidationError struct {
	Kind  ErrorKind
	Point string
}

func (e *ValidationError) Error() string {
	return e.Kind.Message()
}

// Is reports whether target is a ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newValidationError(kind ErrorKind) *ValidationError {
	return &ValidationError{Kind: kind}
}
