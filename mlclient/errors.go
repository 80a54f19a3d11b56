package mlclient

import "fmt"

// ServiceError is returned when the classification service answers with a non-2xx status.
// Its message is the one the service reported, or a generic one naming the status.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// MalformedResponseError is returned when a 2xx response doesn't match the expected shape.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed service response: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed service response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
