package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vivasaayi/custom32emu/config"
	"github.com/vivasaayi/custom32emu/vm"
)

// exitError pairs a process exit code with the message printed to
// stderr, so RunE can report failures cobra's own error path would
// otherwise turn into a flat exit(1).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	code := run(os.Args[1:])
	os.Exit(code)
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var (
		trace       bool
		maxSteps    uint64
		dumpAddr    string
		memorySize  int
		stats       bool
		statsFormat string
		statsOutput string
	)

	root := &cobra.Command{
		Use:           "custom32emu <assembly_file>",
		Short:         "Run a Custom32 assembly program",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, a []string) error {
			if len(a) < 1 {
				return &exitError{code: 1, err: fmt.Errorf(
					"usage: %s <assembly_file> [--trace] [--max-steps N] [--dump-addr ADDR]", cmd.Name())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, a []string) error {
			return runEmulator(runOptions{
				path:        a[0],
				trace:       trace,
				maxSteps:    maxSteps,
				dumpAddr:    dumpAddr,
				memorySize:  memorySize,
				traceMax:    cfg.Trace.MaxEntries,
				stats:       stats,
				statsFormat: statsFormat,
				statsOutput: statsOutput,
			})
		},
	}

	root.Flags().BoolVar(&trace, "trace", cfg.Trace.Enabled, "record and print a trace line for every executed instruction")
	root.Flags().Uint64Var(&maxSteps, "max-steps", cfg.Execution.MaxSteps, "maximum instruction steps before giving up")
	root.Flags().StringVar(&dumpAddr, "dump-addr", cfg.Execution.DumpAddr, "memory address to dump after the run (decimal or 0x-hex)")
	root.Flags().IntVar(&memorySize, "memory-size", cfg.Execution.MemorySize, "emulator memory size in bytes")
	root.Flags().BoolVar(&stats, "stats", cfg.Statistics.Enabled, "collect and report per-opcode execution statistics")
	root.Flags().StringVar(&statsFormat, "stats-format", cfg.Statistics.Format, "statistics report format: json, csv, or html")
	root.Flags().StringVar(&statsOutput, "stats-output", cfg.Statistics.OutputFile, "file to write the statistics report to (empty means stdout)")
	// cobra falls back to os.Args when given a nil slice.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if ee, ok := err.(*exitError); ok {
			fmt.Fprintln(os.Stderr, ee.err)
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}

type runOptions struct {
	path        string
	trace       bool
	maxSteps    uint64
	dumpAddr    string
	memorySize  int
	traceMax    int
	stats       bool
	statsFormat string
	statsOutput string
}

func runEmulator(opts runOptions) error {
	addr, err := parseAddr(opts.dumpAddr)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	e := vm.New(opts.memorySize)
	if err := e.LoadAssemblyFile(opts.path); err != nil {
		return &exitError{code: 3, err: fmt.Errorf("load failed: %w", err)}
	}

	var trace *vm.ExecutionTrace
	if opts.trace {
		trace = vm.NewExecutionTrace(opts.traceMax)
		e.Trace = trace
	}
	if opts.stats {
		e.Statistics = vm.NewPerformanceStatistics()
	}

	runErr := e.Run(int(opts.maxSteps), nil)

	if trace != nil {
		if _, werr := trace.WriteTo(os.Stdout); werr != nil {
			fmt.Fprintf(os.Stderr, "failed to write trace: %v\n", werr)
		}
	}
	if e.Statistics != nil {
		if err := writeStatistics(e.Statistics, opts.statsFormat, opts.statsOutput); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write statistics: %v\n", err)
		}
	}

	if runErr != nil {
		return &exitError{code: 4, err: fmt.Errorf("run failed: %w", runErr)}
	}

	v, err := e.ReadWord(addr)
	if err != nil {
		return &exitError{code: 5, err: fmt.Errorf("dump failed: %w", err)}
	}

	fmt.Println(e.Summary())
	fmt.Printf("mem[0x%08X] = 0x%08X (%d)\n", addr, v, int32(v))
	return nil
}

func writeStatistics(stats *vm.PerformanceStatistics, format, outputPath string) error {
	if outputPath == "" {
		return exportStatistics(stats, format, os.Stdout)
	}

	f, err := os.Create(outputPath) // #nosec G304 -- user-supplied output path
	if err != nil {
		return fmt.Errorf("failed to create statistics output file: %w", err)
	}
	defer f.Close()
	return exportStatistics(stats, format, f)
}

func exportStatistics(stats *vm.PerformanceStatistics, format string, w io.Writer) error {
	switch format {
	case "csv":
		return stats.ExportCSV(w)
	case "html":
		return stats.ExportHTML(w)
	default:
		return stats.ExportJSON(w)
	}
}

func parseAddr(token string) (uint32, error) {
	var addr uint32
	_, err := fmt.Sscanf(token, "0x%X", &addr)
	if err == nil {
		return addr, nil
	}
	_, err = fmt.Sscanf(token, "%d", &addr)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", token)
	}
	return addr, nil
}
