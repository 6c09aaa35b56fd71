package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/layaalk/PVI-AU/internal/apperr"
	"github.com/layaalk/PVI-AU/internal/config"
	"github.com/layaalk/PVI-AU/internal/logging"
	"github.com/layaalk/PVI-AU/lexicon"
	"github.com/layaalk/PVI-AU/phonetic"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ipa2arpa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	stripStress := fs.Bool("strip-stress", false, "drop stress marks")
	check := fs.String("check", "", "re-translate the keys of an IPA dictionary file")
	verbose := fs.Bool("v", false, "verbose output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ipa2arpa [flags] [TRANSCRIPTION...]")
		fmt.Fprintln(stderr, "  Translates IPA transcriptions to ARPAbet. Without arguments, reads one")
		fmt.Fprintln(stderr, "  transcription per line from stdin.")
		fmt.Fprintln(stderr, "  ipa2arpa -check dictionary.txt writes the dictionary in ARPAbet.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return apperr.ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strip-stress" {
			cfg.Prepare.StripStress = *stripStress
		}
	})
	logger, err := logging.ForCommand(cfg.Log, *verbose, "ipa2arpa")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitUsage
	}
	defer logger.Sync()

	var opts []phonetic.Option
	if cfg.Prepare.StripStress {
		opts = append(opts, phonetic.WithoutStress())
	}
	tok := phonetic.NewIPATokenizer(opts...)

	if *check != "" {
		return checkDictionary(tok, *check, stdout, stderr, logger)
	}

	lines := fs.Args()
	if len(lines) == 0 {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return apperr.ExitInvalid
		}
	}

	var total, failed int
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		arpa, err := tok.Translate(line)
		if err != nil {
			failed++
			fmt.Fprintf(stderr, "line %d: %v\n", i+1, err)
			continue
		}
		fmt.Fprintln(stdout, arpa)
	}
	logger.Debug("translated", zap.Int("total", total), zap.Int("failed", failed))

	if failed > 0 {
		fmt.Fprintf(stderr, "Total: %d, Failed: %d\n", total, failed)
		return apperr.ExitInvalid
	}
	return apperr.ExitOK
}

// checkDictionary re-translates every key of an IPA dictionary, writes the
// ARPAbet dictionary to stdout and reports entries that cannot be translated.
func checkDictionary(tok *phonetic.Tokenizer, path string, stdout, stderr io.Writer, logger *zap.Logger) int {
	dict, err := lexicon.LoadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitInvalid
	}
	if dict.Len() == 0 {
		fmt.Fprintf(stderr, "Error: %s has no entries\n", path)
		return apperr.ExitNothingToDo
	}

	b := lexicon.NewBuilder(tok.Translate)
	for _, key := range dict.Keys() {
		b.AddWord(key)
	}
	if _, err := b.Dictionary().WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperr.ExitInvalid
	}

	code := apperr.ExitOK
	for _, f := range b.Failures() {
		fmt.Fprintf(stderr, "%s: %v\n", f.Key, f.Err)
		code = apperr.ExitInvalid
	}
	if err := b.Validate(phonetic.ARPAbetInventory); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		code = apperr.ExitInvalid
	}
	logger.Info("checked dictionary",
		zap.String("path", path),
		zap.Int("entries", dict.Len()),
		zap.Int("failed", len(b.Failures())),
	)
	fmt.Fprintf(stderr, "Total: %d, Failed: %d\n", dict.Len(), len(b.Failures()))
	return code
}
