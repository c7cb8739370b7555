package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "messenger/proto/messenger"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"MESSENGER_SERVER_ADDR,default=localhost:51075"`
	Author        string `env:"MESSENGER_AUTHOR"`
	LogLevel      string `env:"LOG_LEVEL,default=info"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and message
// streaming. When MESSENGER_AUTHOR is set, stdin lines are published as
// messages while the stream keeps printing everyone's traffic.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the messenger server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := pb.NewMessengerServiceClient(conn)

	// 4. Initiate the broadcast stream.
	stream, err := client.ReadMessages(ctx, &emptypb.Empty{})
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Listening (Ctrl+C to quit)...", config.ServerAddress))

	// 5. Optional publisher: every stdin line becomes a message.
	if config.Author != "" {
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				_, err := client.SendMessage(ctx, &pb.SendMessageRequest{
					Author: config.Author,
					Text:   scanner.Text(),
				})
				if err != nil {
					log.Error("failed to send message", "error", err)
				}
			}
		}()
	}

	// 6. Message reception loop.
	// This loop runs until the context is canceled or the server closes the connection.
	for {
		msg, err := stream.Recv()
		if err != nil {
			// Normal exit if the user triggered a shutdown.
			if ctx.Err() != nil {
				log.Info("Stopping client...")
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}

		log.Info(fmt.Sprintf("[%s] %s: %s",
			msg.SendTime.AsTime().Format(time.TimeOnly),
			msg.Author,
			msg.Text,
		))
	}
}
