package grpc

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"messenger/contract"
	"messenger/domain"
	pb "messenger/proto/messenger"
)

type MessengerServer struct {
	pb.UnimplementedMessengerServiceServer
	broadcaster contract.IBroadcaster
	log         *slog.Logger
}

func NewMessengerServer(log *slog.Logger, broadcaster contract.IBroadcaster) *MessengerServer {
	return &MessengerServer{broadcaster: broadcaster, log: log}
}

// SendMessage publishes a message to every currently open stream and
// returns the send time the broadcaster assigned to it. Empty author or
// text values are permitted: content validation belongs to the callers,
// not to this core.
func (s *MessengerServer) SendMessage(_ context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	sendTime := s.broadcaster.Publish(req.Author, req.Text)
	return &pb.SendMessageResponse{SendTime: timestamppb.New(sendTime)}, nil
}

// ReadMessages registers a subscription and forwards its backlog to the
// stream until the client disconnects. This method blocks for the whole
// lifetime of the stream. The deferred unsubscribe covers every exit path
// (client disconnect, send failure, server shutdown) so the registry never
// leaks dead subscriptions.
func (s *MessengerServer) ReadMessages(_ *emptypb.Empty, stream pb.MessengerService_ReadMessagesServer) error {
	sub := s.broadcaster.Subscribe()
	defer s.broadcaster.Unsubscribe(sub)

	for {
		msg, err := sub.Next(stream.Context())
		if err != nil {
			// The stream context is cancelled: the subscriber is gone.
			// Not an error of the core, just the end of the session.
			s.log.Warn(fmt.Sprintf("Subscriber %s disconnected", sub.ID()))
			return nil
		}
		if err := stream.Send(toChatMessage(msg)); err != nil {
			s.log.Error("failed to push message to stream",
				"subscription_id", sub.ID(),
				"error", err)
			return err
		}
	}
}

func toChatMessage(msg domain.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{
		Author:   msg.Author,
		Text:     msg.Text,
		SendTime: timestamppb.New(msg.SendTime),
	}
}
