// Command transcode converts a video file to a compact MP3 suitable for the
// 25 MiB upload ceiling. Progress is logged as whole percentages.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"upload-ai-api/internal/logger"
	"upload-ai-api/internal/transcode"
)

func main() {
	input := flag.String("i", "", "input video file (required)")
	output := flag.String("o", "", "output mp3 file (required)")
	bitrate := flag.String("bitrate", transcode.DefaultBitrate, "target audio bitrate")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(&logger.Config{
		Level:     *logLevel,
		Format:    "console",
		Output:    "stderr",
		Timestamp: true,
	}, "transcode")

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := transcode.New(log)

	lastPercent := -1
	err := t.ExtractAudio(ctx, *input, *output, transcode.Options{
		Bitrate: *bitrate,
		OnProgress: func(fraction float64) {
			percent := int(fraction * 100)
			if percent == lastPercent {
				return
			}
			lastPercent = percent
			log.Info("Convert progress", map[string]interface{}{"percent": percent})
		},
	})
	if err != nil {
		log.Error("Conversion failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}
