package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/protobuf/types/known/emptypb"

	"messenger/errors"
	pb "messenger/proto/messenger"
)

// StreamConsumer keeps one ReadMessages stream open against the messenger
// server and drops every received message into the PostBox. On any stream
// error it reconnects after a short delay; the enclosing Supervisor also
// restarts it if it ever panics.
type StreamConsumer struct {
	log        *slog.Logger
	client     pb.MessengerServiceClient
	postbox    *PostBox
	retryDelay time.Duration
}

func NewStreamConsumer(log *slog.Logger, client pb.MessengerServiceClient,
	postbox *PostBox, retryDelay time.Duration) *StreamConsumer {
	return &StreamConsumer{log: log, client: client, postbox: postbox, retryDelay: retryDelay}
}

func (c *StreamConsumer) Run(ctx context.Context) error {
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			// Shutdown, not a failure: terminate properly, never restart.
			return nil
		}
		c.log.Warn("Upstream stream interrupted, reconnecting",
			"error", fmt.Errorf("%w: %w", errors.ErrStreamInterrupted, err))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.retryDelay):
		}
	}
}

// consume opens one stream and pumps it until it breaks.
func (c *StreamConsumer) consume(ctx context.Context) error {
	stream, err := c.client.ReadMessages(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	c.log.Info("Connected to upstream message stream")

	for {
		msg, err := stream.Recv()
		if err != nil {
			return err
		}
		c.postbox.Put(Message{
			Author:   msg.Author,
			Text:     msg.Text,
			SendTime: FormatSendTime(msg.SendTime.AsTime()),
		})
	}
}
