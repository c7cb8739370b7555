package gateway

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostBox_PutThenCollect(t *testing.T) {
	req := require.New(t)
	box := NewPostBox()

	// Given two buffered messages
	box.Put(Message{Author: "alice", Text: "hi", SendTime: "2026-08-26T09:00:00.000000001Z"})
	box.Put(Message{Author: "bob", Text: "yo", SendTime: "2026-08-26T09:00:00.000000002Z"})
	req.Equal(2, box.Size())

	// When collecting
	collected := box.CollectAndFlush()

	// Then messages come back in arrival order and the box is empty
	req.Len(collected, 2)
	req.Equal("alice", collected[0].Author)
	req.Equal("bob", collected[1].Author)
	req.Zero(box.Size())
}

func TestPostBox_CollectEmptyIsNotNil(t *testing.T) {
	req := require.New(t)
	box := NewPostBox()

	// An empty box must still render as a JSON array, not null
	collected := box.CollectAndFlush()
	req.NotNil(collected)
	req.Empty(collected)
}

func TestPostBox_ConcurrentPuts(t *testing.T) {
	req := require.New(t)
	box := NewPostBox()

	const writers = 8
	const perWriter = 100
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				box.Put(Message{Author: fmt.Sprintf("writer-%d", w)})
			}
		}(w)
	}
	wg.Wait()

	req.Len(box.CollectAndFlush(), writers*perWriter)
}
