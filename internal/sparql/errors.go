package sparql

import "fmt"

// ErrStoreUnavailable indicates a transport failure or a server-side
// error reaching the triple store.
type ErrStoreUnavailable struct {
	Endpoint string
	Cause    error
}

func (e *ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("store %s unavailable: %v", e.Endpoint, e.Cause)
}

func (e *ErrStoreUnavailable) Unwrap() error { return e.Cause }

// ErrQueryRejected indicates the store rejected the query itself,
// typically a syntax error. Message carries the store's own diagnostic
// unmodified.
type ErrQueryRejected struct {
	Message string
}

func (e *ErrQueryRejected) Error() string {
	return fmt.Sprintf("query rejected by store: %s", e.Message)
}
