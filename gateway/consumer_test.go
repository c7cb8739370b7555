package gateway

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "messenger/proto/messenger"
)

// scriptedStream delivers a fixed batch of messages, then EOF.
type scriptedStream struct {
	grpc.ClientStream
	messages chan *pb.ChatMessage
}

func (s *scriptedStream) Recv() (*pb.ChatMessage, error) {
	msg, ok := <-s.messages
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

// reconnectingClient hands out one scripted stream, then blocks further
// attempts until the context is cancelled.
type reconnectingClient struct {
	stream   *scriptedStream
	attempts atomic.Int32
}

func (c *reconnectingClient) SendMessage(context.Context, *pb.SendMessageRequest, ...grpc.CallOption) (*pb.SendMessageResponse, error) {
	panic("not used by the consumer")
}

func (c *reconnectingClient) ReadMessages(ctx context.Context, _ *emptypb.Empty, _ ...grpc.CallOption) (grpc.ServerStreamingClient[pb.ChatMessage], error) {
	if c.attempts.Add(1) == 1 {
		return c.stream, nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStreamConsumer_FillsPostBoxAndReconnects(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a stream carrying two messages before breaking
	stream := &scriptedStream{messages: make(chan *pb.ChatMessage, 2)}
	stream.messages <- &pb.ChatMessage{Author: "alice", Text: "hi",
		SendTime: timestamppb.New(time.Date(2026, 8, 26, 9, 0, 0, 1, time.UTC))}
	stream.messages <- &pb.ChatMessage{Author: "bob", Text: "yo",
		SendTime: timestamppb.New(time.Date(2026, 8, 26, 9, 0, 0, 2, time.UTC))}
	close(stream.messages)

	client := &reconnectingClient{stream: stream}
	postbox := NewPostBox()
	consumer := NewStreamConsumer(log, client, postbox, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- consumer.Run(ctx)
	}()

	// Then both messages land in the postbox with rendered send times
	req.Eventually(func() bool { return postbox.Size() == 2 },
		time.Second, 5*time.Millisecond)
	messages := postbox.CollectAndFlush()
	req.Equal("alice", messages[0].Author)
	req.Equal("2026-08-26T09:00:00.000000001Z", messages[0].SendTime)
	req.Equal("bob", messages[1].Author)

	// And the consumer went back for a new stream after the EOF
	req.Eventually(func() bool { return client.attempts.Load() >= 2 },
		time.Second, 5*time.Millisecond)

	// When shutting down, Run terminates properly
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Consumer did not stop on cancellation")
	}
}
