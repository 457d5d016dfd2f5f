package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/wippyai/xlcodec/hostmem"
	"github.com/wippyai/xlcodec/transcoder"
)

func main() {
	var (
		inFiles     = flag.String("in", "", "Wire message files to decode (comma-separated)")
		gen         = flag.String("gen", "", "Generate a sample message ("+strings.Join(sampleKinds, ", ")+")")
		outFile     = flag.String("out", "", "Write the generated message to this file")
		pages       = flag.Uint("pages", 0, "Initial host memory pages (64 KiB each)")
		debug       = flag.Bool("debug", false, "Log degraded conversions")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *gen == "" && *inFiles == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: xlwire -gen <kind> [-out file]")
		fmt.Fprintln(os.Stderr, "       xlwire -in <file.bin>[,<file.bin>...] [-debug]")
		fmt.Fprintln(os.Stderr, "       xlwire [-in <file.bin>,...] -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		transcoder.SetLogger(logger)
		hostmem.SetLogger(logger)
	}

	cfg := hostmem.Config{InitialPages: uint32(*pages)}
	files := splitList(*inFiles)

	var err error
	switch {
	case *interactive:
		err = runInteractive(cfg, files, *debug)
	case *gen != "":
		err = runGenerate(*gen, *outFile)
	default:
		err = runDecode(cfg, files, *debug)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func runGenerate(kind, outFile string) error {
	msg, err := sample(kind)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := os.WriteFile(outFile, msg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(msg), outFile)
		return nil
	}
	// Raw bytes only when piped; a terminal gets a hex dump.
	if isTerminal(os.Stdout) {
		fmt.Print(hex.Dump(msg))
		return nil
	}
	_, err = os.Stdout.Write(msg)
	return err
}

func runDecode(cfg hostmem.Config, files []string, debug bool) error {
	ctx := context.Background()

	s, err := newSession(ctx, cfg, debug)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	reports := make([]report, len(files))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, name := range files {
		i, name := i, name
		eg.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			reports[i] = s.decode(name, data)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	styled := isTerminal(os.Stdout)
	failed := 0
	for _, r := range reports {
		fmt.Println(r.render(styled))
		if r.err != nil {
			failed++
		}
	}
	st := s.heap.Stats()
	fmt.Printf("\nHeap: %d allocs, %d frees, %d outstanding, %d faults\n",
		st.Allocs, st.Frees, st.Outstanding, st.Faults)
	if failed > 0 {
		return fmt.Errorf("%d of %d messages failed", failed, len(reports))
	}
	return nil
}
