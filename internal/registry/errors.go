package registry

import "fmt"

// ResolutionError reports a module that could not be resolved or
// instantiated. The host must abort startup when it sees one.
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("module '%s' could not be resolved: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
