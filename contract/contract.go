package contract

import (
	"context"
	"reflect"
	"time"

	"messenger/broadcast"
)

// Worker doesn't protect itself.
// Can be silly, focused. The Supervisor handles panics and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker lifecycle
// events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IBroadcaster is the seam between transports and the fan-out core.
type IBroadcaster interface {
	Publish(author, text string) time.Time
	Subscribe() *broadcast.Subscription
	Unsubscribe(sub *broadcast.Subscription)
}
