package test

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"messenger/broadcast"
	messengergrpc "messenger/grpc"
	pb "messenger/proto/messenger"
)

const bufSize = 1 << 20

// startMessenger runs a real gRPC server over an in-memory listener and
// returns a connected client plus the broadcaster for registry assertions.
func startMessenger(t *testing.T) (pb.MessengerServiceClient, *broadcast.Broadcaster) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	broadcaster := broadcast.NewBroadcaster(log)
	listener := bufconn.Listen(bufSize)

	s := grpc.NewServer()
	pb.RegisterMessengerServiceServer(s, messengergrpc.NewMessengerServer(log, broadcaster))
	go func() {
		_ = s.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		s.Stop()
	})

	return pb.NewMessengerServiceClient(conn), broadcaster
}

func Test_Scenario_PublishWithoutSubscribers(t *testing.T) {
	req := require.New(t)
	client, _ := startMessenger(t)
	ctx := context.Background()

	// When two messages are sent with nobody listening
	first, err := client.SendMessage(ctx, &pb.SendMessageRequest{Author: "alice", Text: "hi"})
	req.NoError(err)
	second, err := client.SendMessage(ctx, &pb.SendMessageRequest{Author: "bob", Text: "yo"})
	req.NoError(err)

	// Then both succeed with strictly increasing send times
	req.True(second.SendTime.AsTime().After(first.SendTime.AsTime()))
}

func Test_Scenario_SubscriberReceivesExactMessage(t *testing.T) {
	req := require.New(t)
	client, broadcaster := startMessenger(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Given an open subscription
	stream, err := client.ReadMessages(ctx, &emptypb.Empty{})
	req.NoError(err)
	req.Eventually(func() bool { return broadcaster.Subscribers() == 1 },
		time.Second, 5*time.Millisecond)

	// When a message is published
	resp, err := client.SendMessage(ctx, &pb.SendMessageRequest{Author: "alice", Text: "hi"})
	req.NoError(err)

	// Then the stream delivers exactly that message with the returned time
	msg, err := stream.Recv()
	req.NoError(err)
	req.Equal("alice", msg.Author)
	req.Equal("hi", msg.Text)
	req.Equal(resp.SendTime.AsTime(), msg.SendTime.AsTime())
}

func Test_Scenario_NoReplayForLateSubscriber(t *testing.T) {
	req := require.New(t)
	client, broadcaster := startMessenger(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Given a message published before anyone subscribed
	_, err := client.SendMessage(ctx, &pb.SendMessageRequest{Author: "alice", Text: "early"})
	req.NoError(err)

	// When a subscription opens afterwards
	stream, err := client.ReadMessages(ctx, &emptypb.Empty{})
	req.NoError(err)
	req.Eventually(func() bool { return broadcaster.Subscribers() == 1 },
		time.Second, 5*time.Millisecond)

	_, err = client.SendMessage(ctx, &pb.SendMessageRequest{Author: "bob", Text: "late"})
	req.NoError(err)

	// Then the first thing it receives is the later message
	msg, err := stream.Recv()
	req.NoError(err)
	req.Equal("late", msg.Text)
}

func Test_Scenario_TwoSubscribersSeeEveryMessageInSameOrder(t *testing.T) {
	req := require.New(t)
	client, broadcaster := startMessenger(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Given two open subscriptions
	stream1, err := client.ReadMessages(ctx, &emptypb.Empty{})
	req.NoError(err)
	stream2, err := client.ReadMessages(ctx, &emptypb.Empty{})
	req.NoError(err)
	req.Eventually(func() bool { return broadcaster.Subscribers() == 2 },
		time.Second, 5*time.Millisecond)

	// When a batch of messages is published
	const count = 50
	for i := 0; i < count; i++ {
		_, err := client.SendMessage(ctx, &pb.SendMessageRequest{Author: "alice", Text: "broadcast"})
		req.NoError(err)
	}

	collect := func(stream pb.MessengerService_ReadMessagesClient) []int64 {
		var times []int64
		for i := 0; i < count; i++ {
			msg, err := stream.Recv()
			req.NoError(err)
			times = append(times, msg.SendTime.AsTime().UnixNano())
		}
		return times
	}

	// Then both streams deliver the full batch in the same, increasing order
	got1 := collect(stream1)
	got2 := collect(stream2)
	req.Equal(got1, got2)
	for i := 1; i < len(got1); i++ {
		req.Greater(got1[i], got1[i-1])
	}
}

func Test_Scenario_DisconnectDeregisters(t *testing.T) {
	req := require.New(t)
	client, broadcaster := startMessenger(t)

	// Given a subscription whose context the client cancels
	streamCtx, cancelStream := context.WithCancel(context.Background())
	_, err := client.ReadMessages(streamCtx, &emptypb.Empty{})
	req.NoError(err)
	req.Eventually(func() bool { return broadcaster.Subscribers() == 1 },
		time.Second, 5*time.Millisecond)

	// When the client disconnects
	cancelStream()

	// Then the registry drops the subscription and publishing keeps working
	req.Eventually(func() bool { return broadcaster.Subscribers() == 0 },
		time.Second, 5*time.Millisecond)

	_, err = client.SendMessage(context.Background(), &pb.SendMessageRequest{Author: "alice", Text: "still fine"})
	req.NoError(err)
}
