package kata

import "context"

// Exercise is a runnable, self-describing wrapper around one library function
type Exercise interface {
	// Name returns the name used on the command line
	Name() string

	// Description returns a one-line summary of what the exercise does
	Description() string

	// Usage describes the expected arguments
	Usage() string

	// Execute parses args and runs the exercise
	Execute(ctx context.Context, args []string) (any, error)
}

// ArgError represents a failure to interpret exercise arguments
type ArgError struct {
	Exercise string `json:"exercise" yaml:"exercise"`
	Message  string `json:"message" yaml:"message"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
}

func (e *ArgError) Error() string {
	msg := e.Exercise + ": " + e.Message
	if e.Details != "" {
		return msg + ": " + e.Details
	}
	return msg
}
