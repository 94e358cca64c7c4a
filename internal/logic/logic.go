// Package logic implements the core business logic for enciphering and deciphering.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/filter"
	"github.com/idelchi/playfair/internal/playfair"
	"github.com/idelchi/playfair/internal/processor"
)

// IO bundles the streams a run reads from and writes to.
type IO struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// Run is the main logic of the application.
func Run(cfg *config.Config, streams IO) error {
	if cfg.Show {
		return show(cfg, streams.Out)
	}

	cipher, err := newCipher(cfg, streams.Logger)
	if err != nil {
		return err
	}

	if cfg.Files {
		return runFiles(cfg, cipher, streams)
	}

	return runText(cfg, cipher, streams)
}

// RunSquare prints the key square of the configured key.
func RunSquare(cfg *config.Config, streams IO) error {
	square, err := playfair.NewKeySquare(cfg.Key, cfg.IgnoreLetter(streams.Logger))
	if err != nil {
		return fmt.Errorf("building key square: %w", err)
	}

	fmt.Fprint(streams.Out, square)

	return nil
}

func newCipher(cfg *config.Config, logger *slog.Logger) (*playfair.Cipher, error) {
	square, err := playfair.NewKeySquare(cfg.Key, cfg.IgnoreLetter(logger))
	if err != nil {
		return nil, fmt.Errorf("building key square: %w", err)
	}

	logger.Debug("playfair key square\n" + square.String())

	return playfair.NewCipher(square, playfair.WithLogger(logger)), nil
}

// runText transforms the positional arguments, or stdin when there are none.
func runText(cfg *config.Config, cipher *playfair.Cipher, streams IO) error {
	text := cfg.Text()

	if len(cfg.Args) == 0 {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}

		text = string(data)
	}

	digraphs, err := cipher.Transform(playfair.Chunkify(text), cfg.Mode)
	if err != nil {
		return fmt.Errorf("running %s: %w", cfg.Mode, err)
	}

	result := playfair.Format(digraphs)

	streams.Logger.Info("result", "mode", cfg.Mode, "pairs", len(digraphs))

	fmt.Fprintln(streams.Out, result)

	return nil
}

// runFiles resolves the paths and transforms every file.
func runFiles(cfg *config.Config, cipher *playfair.Cipher, streams IO) error {
	start := time.Now()

	flt, err := newFilter(cfg)
	if err != nil {
		return err
	}

	files, scanned, err := filter.Resolve(cfg.Args, flt)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	proc := processor.New(cfg, cipher, streams.Logger, streams.Out)

	if cfg.Dry {
		dryRun(cfg, proc, files, streams)

		if cfg.Stats {
			summary := processor.Summary{Processed: len(files), TotalSize: inputSize(files)}
			printStats(streams.Err, scanned, scanned-len(files), summary, time.Since(start))
		}

		return nil
	}

	summary, err := proc.ProcessFiles(files)

	if cfg.Stats {
		printStats(streams.Err, scanned, scanned-len(files), summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// newFilter merges the pattern flags with the pattern files.
// Deciphering picks enciphered files out of directories, enciphering skips them.
func newFilter(cfg *config.Config) (filter.Filter, error) {
	includes := append([]string{}, cfg.Include...)
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return filter.Filter{}, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return filter.Filter{}, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	flt, err := filter.NewFilter(cfg.Suffixes.Encipher, cfg.Mode == playfair.Decipher, includes, excludes)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("building filter: %w", err)
	}

	return flt, nil
}

// dryRun lists what would be processed without reading or writing any file.
func dryRun(cfg *config.Config, proc *processor.Processor, files []string, streams IO) {
	if cfg.Quiet {
		return
	}

	for _, file := range files {
		fmt.Fprintf(streams.Out, "Processed %q -> %q\n", file, proc.OutputPath(file))
	}
}

func inputSize(files []string) int64 {
	var total int64

	for _, file := range files {
		if info, err := os.Stat(file); err == nil {
			total += info.Size()
		}
	}

	return total
}

// show prints the resolved configuration as YAML.
func show(cfg *config.Config, out io.Writer) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	fmt.Fprint(out, string(data))

	return nil
}

func printStats(w io.Writer, scanned, excluded int, summary processor.Summary, duration time.Duration) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nStats\n")
	fmt.Fprintf(&sb, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(&sb, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(&sb, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(&sb, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // TotalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(&sb, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.TotalSize))))
	fmt.Fprintf(&sb, "  Duration:  %s\n", duration.Round(time.Millisecond))

	fmt.Fprint(w, sb.String())
}
