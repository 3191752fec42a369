package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrMissingField      = fmt.Errorf("missing required field")
	ErrBusAlreadyStarted = fmt.Errorf("bus already started")
)
