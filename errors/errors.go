package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrStreamInterrupted = fmt.Errorf("message stream interrupted")
)
