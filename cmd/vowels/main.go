package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	pviau "github.com/layaalk/PVI-AU"
	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/internal/config"
	"github.com/layaalk/PVI-AU/internal/logging"
	"github.com/layaalk/PVI-AU/prosody"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vowels", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	vowelSet := fs.String("vowels", "", "vowel list JSON (e.g. the vowels.json written by dataprep)")
	strict := fs.Bool("strict", false, "stop at the first word without a vowel pair")
	verbose := fs.Bool("v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: vowels [flags] COMBINED_JSON REPORT_CSV")
		fmt.Fprintln(stderr, "  Writes the pairwise variability index of the first two vowels of every word.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return apperr.ExitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return apperr.ExitUsage
	}
	combinedPath, reportPath := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vowels":
			cfg.Vowels.VowelSet = *vowelSet
		case "strict":
			cfg.Vowels.Strict = *strict
		}
	})

	logger, err := logging.ForCommand(cfg.Log, *verbose, "vowels")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	defer logger.Sync()

	opts := []pviau.Option{pviau.WithLogger(logger), pviau.WithStrict(cfg.Vowels.Strict)}
	if cfg.Vowels.VowelSet != "" {
		vs, err := prosody.LoadVowelSet(cfg.Vowels.VowelSet)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return apperr.ExitUsage
		}
		opts = append(opts, pviau.WithVowelSet(vs))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pviau.NewVowelAnalyzer(opts...).AnalyzeFile(ctx, combinedPath, reportPath)
	if err != nil {
		logger.Error("vowel analysis failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitCode(err)
	}

	s := res.Summary
	fmt.Fprintf(stdout, "Wrote %d vowel pairs from %d files to %s\n", s.Count, res.Files, reportPath)
	if s.Count > 0 {
		fmt.Fprintf(stdout, "PVI mean %.5f, std dev %.5f, mean |PVI| %.5f\n", s.MeanPVI, s.StdDevPVI, s.MeanAbsPVI)
	}
	if res.FileErrors != nil {
		fmt.Fprintf(stderr, "%d words without a vowel pair:\n", res.Failed)
		for _, e := range pviau.FileErrors(res.FileErrors) {
			fmt.Fprintf(stderr, "  %v\n", e)
		}
		return apperr.ExitInvalid
	}
	return apperr.ExitOK
}
