package eoq

import "fmt"

// InvalidParameterError reports a model parameter or call argument that
// violates its constraint. It is the only error kind the package returns.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// invalidParam builds an InvalidParameterError for the named parameter.
func invalidParam(param string, value float64, reason string) error {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}
