package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	pviau "github.com/layaalk/PVI-AU"
	"github.com/layaalk/PVI-AU/audio"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/internal/config"
	"github.com/layaalk/PVI-AU/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dataprep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	tier := fs.String("tier", "", "tier holding the transcribed words (default from config: production)")
	dropTier := fs.String("drop-tier", "", "tier removed from the prepared annotations")
	arpabet := fs.Bool("arpabet", false, "build an ARPAbet dictionary for the us_english_arpa model")
	plainText := fs.Bool("txt", false, "write plain-text transcripts instead of TextGrids")
	stripStress := fs.Bool("strip-stress", false, "drop stress marks from transcriptions")
	noAudio := fs.Bool("no-audio", false, "do not normalize recordings")
	ffmpeg := fs.String("ffmpeg", "", "ffmpeg binary")
	workers := fs.Int("workers", 0, "concurrent ffmpeg jobs")
	verify := fs.Bool("verify", false, "check the format of every normalized recording")
	verbose := fs.Bool("v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: dataprep [flags] BASE_DIR OUTPUT_DIR")
		fmt.Fprintln(stderr, "  Builds an aligner corpus, pronunciation dictionary and vowel list")
		fmt.Fprintln(stderr, "  from annotated recordings under BASE_DIR.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return apperr.ExitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return apperr.ExitUsage
	}
	baseDir, outDir := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tier":
			cfg.Prepare.Tier = *tier
		case "drop-tier":
			cfg.Prepare.DropTier = *dropTier
		case "arpabet":
			cfg.Prepare.ARPAbet = *arpabet
		case "txt":
			cfg.Prepare.PlainText = *plainText
		case "strip-stress":
			cfg.Prepare.StripStress = *stripStress
		case "no-audio":
			cfg.Audio.Skip = *noAudio
		case "ffmpeg":
			cfg.Audio.FFmpeg = *ffmpeg
		case "workers":
			cfg.Audio.Workers = *workers
		case "verify":
			cfg.Audio.Verify = *verify
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}

	logger, err := logging.ForCommand(cfg.Log, *verbose, "dataprep")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	defer logger.Sync()

	opts := []pviau.Option{
		pviau.WithLogger(logger),
		pviau.WithTier(cfg.Prepare.Tier),
		pviau.WithDropTier(cfg.Prepare.DropTier),
		pviau.WithARPAbet(cfg.Prepare.ARPAbet),
		pviau.WithPlainText(cfg.Prepare.PlainText),
		pviau.WithStripStress(cfg.Prepare.StripStress),
	}
	if !cfg.Audio.Skip {
		n := audio.NewNormalizer(cfg.Audio.FFmpeg)
		n.Verify = cfg.Audio.Verify
		opts = append(opts, pviau.WithNormalizer(n, cfg.Audio.Workers))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := pviau.NewPreparer(opts...).Prepare(ctx, baseDir, outDir)
	if err != nil {
		logger.Error("data preparation failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitCode(err)
	}

	fmt.Fprintf(stdout, "Prepared %d samples in %s\n", summary.Samples, outDir)
	if !cfg.Audio.Skip {
		fmt.Fprintf(stdout, "Normalized %d recordings, %d missing\n", summary.Normalized, len(summary.MissingAudio))
		for _, e := range summary.AudioErrors() {
			fmt.Fprintf(stderr, "  %v\n", e)
		}
	}
	fmt.Fprintf(stdout, "Vowels: %s\n", strings.Join(summary.Vowels, " "))
	fmt.Fprintf(stdout, "Wrote %s and %s\n", summary.VowelsPath, summary.DictionaryPath)
	if n := len(summary.EntryFailures); n > 0 {
		fmt.Fprintf(stdout, "Skipped %d dictionary entries\n", n)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Now run:")
	fmt.Fprintf(stdout, "  %s\n", summary.AlignCommand(outDir))

	if summary.FileErrors != nil {
		for _, e := range pviau.FileErrors(summary.FileErrors) {
			fmt.Fprintf(stderr, "  %v\n", e)
		}
		return apperr.ExitInvalid
	}
	return apperr.ExitOK
}
