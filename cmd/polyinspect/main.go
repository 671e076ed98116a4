// Command polyinspect inspects captured polyline blobs.
//
// Usage:
//
//	polyinspect [global flags] summary [-n N] [-header H -record-len R]
//	polyinspect [global flags] dump -id ID [-header H -record-len R] [-max-recs N]
//	polyinspect [global flags] synth -id ID [-n N] [-compress zstd|s2|lz4|none]
//
// Captures are read from (and written to) the blob directory, one "<id>.bin[.ext]"
// file per blob.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/internal/config"
)

// errUsage is returned after usage has been printed for a bad command line.
var errUsage = errors.New("invalid usage")

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("polyinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	blobDir := fs.String("dir", "", "Blob capture directory (overrides config)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFormat := fs.String("log-format", "", "Log format: json or console (overrides config)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: polyinspect [global flags] <summary|dump|synth> [flags]\n\nGlobal flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "polyinspect: %v\n", err)
		return 1
	}
	if *blobDir != "" {
		cfg.BlobDir = *blobDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "polyinspect: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "summary":
		err = a.runSummary(ctx, cmdArgs)
	case "dump":
		err = a.runDump(ctx, cmdArgs)
	case "synth":
		err = a.runSynth(cmdArgs)
	default:
		fmt.Fprintf(stderr, "polyinspect: unknown command %q\n", cmd)
		fs.Usage()

		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		logger.Error("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintf(stderr, "polyinspect %s: %v\n", cmd, err)

		return 1
	}
}

// formatFlags registers the -header/-record-len pair that forces a layout.
type formatFlags struct {
	header    int
	recordLen int
}

func (ff *formatFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&ff.header, "header", -1, "Force header length (requires -record-len)")
	fs.IntVar(&ff.recordLen, "record-len", -1, "Force record length (requires -header)")
}

// forced returns the forced format when both flags are set.
func (ff *formatFlags) forced() (format.Format, bool) {
	if ff.header < 0 || ff.recordLen < 0 {
		return format.Format{}, false
	}

	return format.Format{HeaderLen: ff.header, RecordLen: ff.recordLen}, true
}

func (a *app) newGuesser() (*blob.Guesser, error) {
	opts := append(a.cfg.GuessOptions(), blob.WithGuessLogger(a.logger))

	return blob.NewGuesser(opts...)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}
