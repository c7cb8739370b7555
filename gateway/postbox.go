// Package gateway translates REST calls into calls on the messenger core
// and buffers the live stream for polling HTTP clients.
package gateway

import "sync"

// Message is the gateway's wire representation of a received message.
// SendTime is pre-rendered so that lexicographic comparison of the string
// matches chronological order.
type Message struct {
	Author   string `json:"author"`
	Text     string `json:"text"`
	SendTime string `json:"sendTime"`
}

// PostBox buffers messages received from the upstream stream until an HTTP
// client polls for them. Single writer (the stream consumer), any number of
// readers.
type PostBox struct {
	mu       sync.Mutex
	messages []Message
}

func NewPostBox() *PostBox {
	return &PostBox{}
}

func (p *PostBox) Put(msg Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

// CollectAndFlush returns everything buffered so far and empties the box.
// The returned slice is never nil so it always renders as a JSON array.
func (p *PostBox) CollectAndFlush() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	collected := p.messages
	p.messages = nil
	if collected == nil {
		collected = []Message{}
	}
	return collected
}

// Size reports how many messages are waiting to be collected.
func (p *PostBox) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}
