// Package processor enciphers and deciphers whole files with a shared Playfair cipher.
package processor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/playfair/internal/config"
	"github.com/idelchi/playfair/internal/fileutil"
	"github.com/idelchi/playfair/internal/playfair"
)

// ErrOverwriteInput is returned when the output path of a file is the file itself.
var ErrOverwriteInput = errors.New("output would overwrite input")

// Processor transforms files and writes the formatted digraphs next to them.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher is read-only and shared by all workers
	cipher *playfair.Cipher

	// logger receives per-file errors and deletions
	logger *slog.Logger

	// out receives one line per processed file unless quiet
	out io.Writer
}

// New creates a Processor for the given configuration and cipher.
func New(cfg *config.Config, cipher *playfair.Cipher, logger *slog.Logger, out io.Writer) *Processor {
	return &Processor{
		cfg:    cfg,
		cipher: cipher,
		logger: logger,
		out:    out,
	}
}

// ProcessFiles concurrently processes files, at most cfg.Parallel at a time.
// A failing file does not stop the others; the first error is returned after all finished.
func (p *Processor) ProcessFiles(files []string) (Summary, error) {
	results := make(chan Result, len(files))

	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	var summary Summary

	go func() {
		defer close(done)

		for result := range results {
			p.report(result, &summary)
		}
	}()

	for _, file := range files {
		file := file

		group.Go(func() error {
			outPath := p.OutputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err := group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return summary, fmt.Errorf("processing files: %w", err)
	}

	return summary, nil
}

// report prints a single result and deletes the input if requested.
func (p *Processor) report(result Result, summary *Summary) {
	if result.Error != nil {
		summary.Errored++

		p.logger.Error("processing file", "file", result.Input, "error", result.Error)

		return
	}

	summary.Processed++
	summary.TotalSize += result.OutputSize

	if !p.cfg.Quiet {
		fmt.Fprintf(p.out, "Processed %q -> %q\n", result.Input, result.Output)
	}

	if !p.cfg.Delete || filepath.Clean(result.Output) == filepath.Clean(result.Input) {
		return
	}

	if err := os.Remove(result.Input); err != nil {
		p.logger.Error("deleting file", "file", result.Input, "error", err)

		return
	}

	if !p.cfg.Quiet {
		fmt.Fprintf(p.out, "Deleted %q\n", result.Input)
	}
}

// processFile reads the whole file, transforms it and writes the result atomically.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	if filepath.Clean(outPath) == filepath.Clean(filename) {
		return 0, fmt.Errorf("%q: %w, check the file suffixes", filename, ErrOverwriteInput)
	}

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	digraphs, err := p.cipher.Transform(playfair.Chunkify(string(data)), p.cfg.Mode)
	if err != nil {
		return 0, fmt.Errorf("%s file: %w", p.cfg.Mode, err)
	}

	output := playfair.Format(digraphs)
	if output != "" {
		output += "\n"
	}

	size, err := fileutil.WriteAtomic(filename, outPath, []byte(output), fileutil.WriteOptions{
		PreserveTimestamps: p.cfg.PreserveTimestamps,
	})
	if err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	return size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes.
func (p *Processor) OutputPath(filename string) string {
	ext := p.cfg.Suffixes.Encipher

	if p.cfg.Mode == playfair.Decipher {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encipher)
		ext = p.cfg.Suffixes.Decipher
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
