package cmd

// SilentError wraps an error whose message has already been written to
// the log. Execute checks for this type to avoid printing it twice.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

// NewSilentError creates a SilentError wrapping the given error.
func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}
