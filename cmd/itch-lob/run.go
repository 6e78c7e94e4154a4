// Copyright (c) 2025 Neomantra Corp

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/relvacode/iso8601"
	"github.com/spf13/cobra"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/broadcast"
	"github.com/nimblemarkets-labs/itch-lob-go/bytesource"
	"github.com/nimblemarkets-labs/itch-lob-go/frame"
	"github.com/nimblemarkets-labs/itch-lob-go/internal/compressedio"
	"github.com/nimblemarkets-labs/itch-lob-go/internal/runsummary"
	"github.com/nimblemarkets-labs/itch-lob-go/internal/sink"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"
	"github.com/nimblemarkets-labs/itch-lob-go/locate"
	"github.com/nimblemarkets-labs/itch-lob-go/replay"
)

// broadcastQueueDepth is the bounded SPSC queue between the engine thread
// and the broadcaster thread, per §5. The engine thread blocks when it's
// full rather than drop a book-state update.
const broadcastQueueDepth = 8192

var (
	flagFile      string
	flagSymbol    string
	flagOutput    string
	flagFormat    string
	flagDepth     int
	flagWebsocket bool
	flagPort      int
	flagAsOf      string
	flagVerbose   bool
	flagZstd      bool
)

func bindRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Input ITCH 5.0 capture path (required)")
	cmd.Flags().StringVarP(&flagSymbol, "symbol", "s", "", "Target symbol, 1-8 uppercase ASCII characters (required)")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output snapshot file path (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", `Output format: "csv" or "jsonl"`)
	cmd.Flags().IntVar(&flagDepth, "depth", 10, "Number of price levels per side in each snapshot (K)")
	cmd.Flags().BoolVar(&flagWebsocket, "websocket", false, "Broadcast snapshots over a WebSocket as they're produced")
	cmd.Flags().IntVarP(&flagPort, "port", "p", 0, "TCP port to listen on (required if --websocket)")
	cmd.Flags().StringVar(&flagAsOf, "as-of", "", "ISO-8601 wall-clock instant to anchor replay pacing to, instead of the run's start time (only meaningful with --websocket)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
	cmd.Flags().BoolVar(&flagZstd, "zstd", false, "Force zstd (de)compression of the input and output files, regardless of their extension")

	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("symbol")
	cmd.MarkFlagRequired("output")
}

var symbolPattern = regexp.MustCompile(`^[A-Z]{1,8}$`)

// ErrConfigError is returned for CLI validation failures, mapped to exit
// code 2 per §7.
var ErrConfigError = errors.New("configuration error")

func runRun(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelInfo
	if flagVerbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if !symbolPattern.MatchString(flagSymbol) {
		exitCode = 2
		return fmt.Errorf("%w: --symbol must be 1-8 uppercase ASCII characters, got %q", ErrConfigError, flagSymbol)
	}
	if flagFormat != "csv" && flagFormat != "jsonl" {
		exitCode = 2
		return fmt.Errorf("%w: --format must be \"csv\" or \"jsonl\", got %q", ErrConfigError, flagFormat)
	}
	if flagDepth <= 0 {
		exitCode = 2
		return fmt.Errorf("%w: --depth must be positive, got %d", ErrConfigError, flagDepth)
	}
	if flagWebsocket && flagPort <= 0 {
		exitCode = 2
		return fmt.Errorf("%w: --port is required when --websocket is set", ErrConfigError)
	}
	var asOf time.Time
	if flagAsOf != "" {
		var err error
		asOf, err = iso8601.ParseString(flagAsOf)
		if err != nil {
			exitCode = 2
			return fmt.Errorf("%w: --as-of: %v", ErrConfigError, err)
		}
	}

	var src *bytesource.Source
	var err error
	if isZstdPath(flagFile, flagZstd) {
		src, err = bytesource.OpenCompressed(flagFile, flagZstd)
	} else {
		src, err = bytesource.Open(flagFile)
	}
	if err != nil {
		exitCode = 1
		return err
	}
	defer src.Close()

	outWriter, closeOut, err := compressedio.MakeWriter(flagOutput, flagZstd)
	if err != nil {
		exitCode = 1
		return fmt.Errorf("opening output: %w", err)
	}
	defer closeOut()

	var fileSink book.Sink
	var flusher interface{ Flush() error }
	if flagFormat == "jsonl" {
		s := sink.NewJSONLSink(outWriter)
		fileSink, flusher = s, s
	} else {
		s, err := sink.NewCSVSink(outWriter, flagDepth)
		if err != nil {
			exitCode = 1
			return fmt.Errorf("writing header: %w", err)
		}
		fileSink, flusher = s, s
	}

	summary := runsummary.New()

	sinks := []book.Sink{fileSink}

	var hub *broadcast.Hub
	var server *broadcast.Server
	var queue chan book.Snapshot
	var drainDone chan struct{}
	if flagWebsocket {
		hub = broadcast.NewHub(broadcast.Config{Symbol: flagSymbol, Depth: flagDepth, Logger: logger})
		server = broadcast.NewServer(hub, flagPort, logger)
		queue = make(chan book.Snapshot, broadcastQueueDepth)
		drainDone = make(chan struct{})

		clock := replay.NewClock(replay.Config{Logger: logger})
		if !asOf.IsZero() {
			clock.AnchorAt(asOf)
		}

		go func() {
			defer close(drainDone)
			for snap := range queue {
				clock.WaitFor(snap.TimestampNs)
				if err := hub.Accept(snap); err != nil {
					logger.Error("broadcast accept failed", "error", err)
				}
			}
		}()
		go func() {
			if err := server.ListenAndServe(); err != nil {
				logger.Error("broadcast server stopped", "error", err)
			}
		}()

		sinks = append(sinks, queueSink{queue: queue})
	}

	filter := locate.NewFilter(flagSymbol)
	engine := book.NewEngine(book.Config{Logger: logger})

	visitor := &bookVisitor{
		filter:  filter,
		engine:  engine,
		sinks:   sinks,
		depth:   flagDepth,
		summary: summary,
	}

	dec := frame.NewDecoder(src.Bytes())
	for dec.Next() {
		if err := itch.Visit(dec.Body(), visitor); err != nil {
			exitCode = 2
			return fmt.Errorf("offset %d: %w", dec.Offset(), err)
		}
		summary.ObserveFrame(itch.Tag(dec.Body()[0]))
	}
	if dec.Err() != nil {
		exitCode = 2
		return fmt.Errorf("offset %d: %w", dec.Offset(), dec.Err())
	}
	if err := flusher.Flush(); err != nil {
		exitCode = 1
		return fmt.Errorf("flushing output: %w", err)
	}

	if flagWebsocket {
		close(queue)
		<-drainDone
		summary.ObserveSubscriberDrops(hub.TotalDropped())
		if err := server.Shutdown(); err != nil {
			logger.Warn("broadcast server shutdown", "error", err)
		}
	}

	summary.WriteReport(os.Stdout)
	return nil
}

// isZstdPath reports whether path should be opened through a zstd
// decoder, either because useZstd forces it or the path carries a
// ".zst"/".zstd" suffix.
func isZstdPath(path string, useZstd bool) bool {
	return useZstd || strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".zstd")
}

// queueSink adapts a bounded channel to book.Sink, blocking on a full
// queue rather than dropping a book-state update, per §5.
type queueSink struct {
	queue chan<- book.Snapshot
}

func (q queueSink) Accept(snap book.Snapshot) error {
	q.queue <- snap
	return nil
}
