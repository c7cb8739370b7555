// Package domain contains core concepts of the messenger.
// Messages are immutable values; every subscriber gets its own copy.
package domain

import "time"

// ChatMessage represents an immutable published message.
// SendTime is assigned once by the broadcaster and never changes.
type ChatMessage struct {
	Author   string
	Text     string
	SendTime time.Time
}
