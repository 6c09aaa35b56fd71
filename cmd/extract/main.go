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
	"github.com/layaalk/PVI-AU/align"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/internal/config"
	"github.com/layaalk/PVI-AU/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	wordTiers := fs.String("word-tiers", "", "comma-separated word tier names (default from config: words,production)")
	phoneTiers := fs.String("phone-tiers", "", "comma-separated phone tier names (default from config: phones,vowels)")
	verbose := fs.Bool("v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: extract [flags] ALIGNED_DIR OUTPUT_JSON")
		fmt.Fprintln(stderr, "  Collects word and phone intervals of aligned TextGrids into one file.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return apperr.ExitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return apperr.ExitUsage
	}
	alignedDir, outFile := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "word-tiers":
			cfg.Extract.WordTiers = splitList(*wordTiers)
		case "phone-tiers":
			cfg.Extract.PhoneTiers = splitList(*phoneTiers)
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}

	logger, err := logging.ForCommand(cfg.Log, *verbose, "extract")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ex := pviau.NewExtractor(
		pviau.WithLogger(logger),
		pviau.WithWordTiers(cfg.Extract.WordTiers...),
		pviau.WithPhoneTiers(cfg.Extract.PhoneTiers...),
	)
	combined, summary, err := ex.Extract(ctx, alignedDir)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitCode(err)
	}
	if err := align.SaveCombined(outFile, combined); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitInvalid
	}
	logger.Info("wrote combined intervals", zap.String("path", outFile), zap.Int("files", summary.Files))
	fmt.Fprintf(stdout, "Extracted %d files to %s\n", summary.Files, outFile)

	if summary.FileErrors != nil {
		for _, e := range pviau.FileErrors(summary.FileErrors) {
			fmt.Fprintf(stderr, "  %v\n", e)
		}
		return apperr.ExitInvalid
	}
	return apperr.ExitOK
}
