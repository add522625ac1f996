// Package cli wires the aerodesk binary: a serve command hosting the five
// gRPC services, and thin client commands for operating against a running
// server.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/internal/metrics"
	"github.com/groundops/aerodesk/internal/server"
)

// Config is the yaml-mapped service configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

var configFile string

// BuildCLI assembles the aerodesk command tree.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aerodesk",
		Short: "Aerodesk: airport check-in counter operations",
		Long: `Aerodesk manages airport check-in operations:
- sector and counter-range administration
- first-fit counter assignment with per-sector waiting queues
- passenger check-in ledger
- live event streams for airlines`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "configs/default.yaml", "config file path")

	rootCmd.AddCommand(buildServeCommand())
	rootCmd.AddCommand(buildSectorsCommand())
	rootCmd.AddCommand(buildAssignCommand())
	rootCmd.AddCommand(buildCheckinCommand())
	rootCmd.AddCommand(buildWatchCommand())

	return rootCmd
}

func buildServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the aerodesk gRPC server",
		Long:  "Host the admin, counter, passenger, events and query services",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config)")
	return cmd
}

func runServe(port int) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	collector := metrics.NewCollector()
	core := server.NewCore(collector)

	if cfg.Metrics.Enabled {
		go func() {
			log.Printf("Starting metrics server on :%d\n", cfg.Metrics.Port)
			if err := metrics.StartServer(cfg.Metrics.Port); err != nil {
				log.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAdminServiceServer(grpcServer, server.NewAdminServer(core))
	pb.RegisterCounterServiceServer(grpcServer, server.NewCounterServer(core))
	pb.RegisterPassengerServiceServer(grpcServer, server.NewPassengerServer(core))
	pb.RegisterEventsServiceServer(grpcServer, server.NewEventsServer(core))
	pb.RegisterQueryServiceServer(grpcServer, server.NewQueryServer(core))

	log.Printf("gRPC server listening on :%d\n", port)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Received shutdown signal, stopping gracefully...")
	grpcServer.GracefulStop()
	log.Println("Server stopped")
	return nil
}

func buildSectorsCommand() *cobra.Command {
	var serverAddr string

	cmd := &cobra.Command{
		Use:   "sectors",
		Short: "List sectors on a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSectors(serverAddr)
		},
	}

	cmd.Flags().StringVar(&serverAddr, "server", "localhost:50051", "server address")
	return cmd
}

func listSectors(addr string) error {
	conn, err := dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := pb.NewCounterServiceClient(conn).ListSectors(ctx, &pb.ListSectorsRequest{})
	if err != nil {
		return fmt.Errorf("list sectors failed: %w", err)
	}

	for _, sec := range resp.Sectors {
		spans := make([]string, 0, len(sec.MergedRanges))
		for _, r := range sec.MergedRanges {
			spans = append(spans, fmt.Sprintf("[%d-%d]", r.From, r.To))
		}
		fmt.Printf("%s: %d counters %s\n", sec.Name, sec.CounterCount, strings.Join(spans, " "))
	}
	return nil
}

func buildAssignCommand() *cobra.Command {
	var serverAddr, sector, airline string
	var flights []string
	var count int

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Request counters for an airline",
		Long:  "Assign a contiguous counter range, or queue the request when the sector is full",
		RunE: func(cmd *cobra.Command, args []string) error {
			return assignCounters(serverAddr, sector, airline, flights, count)
		},
	}

	cmd.Flags().StringVar(&serverAddr, "server", "localhost:50051", "server address")
	cmd.Flags().StringVar(&sector, "sector", "", "target sector")
	cmd.Flags().StringVar(&airline, "airline", "", "requesting airline")
	cmd.Flags().StringSliceVar(&flights, "flights", nil, "flight codes to serve")
	cmd.Flags().IntVar(&count, "count", 1, "number of contiguous counters")
	cmd.MarkFlagRequired("sector")
	cmd.MarkFlagRequired("airline")
	cmd.MarkFlagRequired("flights")

	return cmd
}

func assignCounters(addr, sector, airline string, flights []string, count int) error {
	conn, err := dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := pb.NewCounterServiceClient(conn).AssignCounters(ctx, &pb.AssignCountersRequest{
		Sector:  sector,
		Airline: airline,
		Flights: flights,
		Count:   int32(count),
	})
	if err != nil {
		return fmt.Errorf("assign failed: %w", err)
	}

	if resp.Queued {
		fmt.Printf("No counters available; queued at position %d\n", resp.QueuePosition)
		return nil
	}
	fmt.Printf("Assigned counters [%d-%d] in sector %s\n", resp.Range.From, resp.Range.To, sector)
	return nil
}

func buildCheckinCommand() *cobra.Command {
	var serverAddr, booking string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Check a passenger in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkinPassenger(serverAddr, booking)
		},
	}

	cmd.Flags().StringVar(&serverAddr, "server", "localhost:50051", "server address")
	cmd.Flags().StringVar(&booking, "booking", "", "booking code")
	cmd.MarkFlagRequired("booking")

	return cmd
}

func checkinPassenger(addr, booking string) error {
	conn, err := dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := pb.NewPassengerServiceClient(conn)
	info, err := client.FetchCounter(ctx, &pb.FetchCounterRequest{Booking: booking})
	if err != nil {
		return fmt.Errorf("fetch counter failed: %w", err)
	}
	if !info.HasCounters {
		return fmt.Errorf("flight %s has no counters assigned yet", info.Flight)
	}

	resp, err := client.CheckIn(ctx, &pb.CheckInRequest{Booking: booking})
	if err != nil {
		return fmt.Errorf("check-in failed: %w", err)
	}

	c := resp.Checkin
	fmt.Printf("Checked in %s for flight %s at sector %s counter %d (%d in queue)\n",
		c.Booking, c.Flight, c.Sector, c.Counter, resp.PassengersInQueue)
	return nil
}

func buildWatchCommand() *cobra.Command {
	var serverAddr, airline string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream an airline's operational events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchEvents(serverAddr, airline)
		},
	}

	cmd.Flags().StringVar(&serverAddr, "server", "localhost:50051", "server address")
	cmd.Flags().StringVar(&airline, "airline", "", "airline to subscribe as")
	cmd.MarkFlagRequired("airline")

	return cmd
}

func watchEvents(addr, airline string) error {
	conn, err := dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	stream, err := pb.NewEventsServiceClient(conn).Subscribe(ctx, &pb.SubscribeRequest{Airline: airline})
	if err != nil {
		return fmt.Errorf("subscribe failed: %w", err)
	}

	log.Printf("Watching events for %s (Ctrl+C to stop)\n", airline)
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			log.Println("Stream closed by server")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}

		switch ev.Type {
		case pb.EventType_EVENT_TYPE_COUNTERS_ASSIGNED:
			fmt.Printf("counters assigned: sector=%s range=[%d-%d] flights=%v\n",
				ev.Sector, ev.Range.From, ev.Range.To, ev.Flights)
		case pb.EventType_EVENT_TYPE_COUNTERS_FREED:
			fmt.Printf("counters freed: sector=%s range=[%d-%d]\n",
				ev.Sector, ev.Range.From, ev.Range.To)
		case pb.EventType_EVENT_TYPE_ASSIGNMENT_QUEUED:
			fmt.Printf("assignment queued: sector=%s position=%d flights=%v\n",
				ev.Sector, ev.QueuePosition, ev.Flights)
		case pb.EventType_EVENT_TYPE_QUEUE_MOVED:
			fmt.Printf("queue moved: sector=%s position=%d flights=%v\n",
				ev.Sector, ev.QueuePosition, ev.Flights)
		case pb.EventType_EVENT_TYPE_PASSENGER_ARRIVED:
			fmt.Printf("passenger arrived: booking=%s sector=%s in_queue=%d\n",
				ev.Booking, ev.Sector, ev.PassengersInQueue)
		case pb.EventType_EVENT_TYPE_PASSENGER_CHECKED_IN:
			fmt.Printf("passenger checked in: booking=%s sector=%s\n",
				ev.Booking, ev.Sector)
		default:
			fmt.Printf("event: %v\n", ev)
		}
	}
}

func dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return conn, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}
