// Command misgen writes a random simple undirected graph for MIS solver tests.
//
//	misgen [flags] <filename> <#vertices> <#edges>
//
// Flags:
//
//	-strategy   exhaustive|rejection (default exhaustive)
//	-seed       RNG seed (default 0)
//	-max-draws  rejection draw budget, 0 = unbounded
//	-v          debug output, including graph statistics
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/misgen"
	"github.com/katalvlaran/misgen/builder"
)

// Exit codes.
const (
	exitOK      = 0
	exitUsage   = 1 // wrong arity, bad flag, non-integer count
	exitFailure = 2 // generation or I/O failure
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command with args (without the program name) and returns
// the process exit code. Usage, status lines and diagnostics go to stdout.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("misgen", flag.ContinueOnError)
	fs.SetOutput(stdout)

	strategy := builder.StrategyExhaustive
	fs.Var(&strategy, "strategy", "edge sampling strategy: exhaustive|rejection")
	seed := fs.Int64("seed", builder.DefaultSeed, "random seed")
	maxDraws := fs.Int("max-draws", builder.UnlimitedDraws, "rejection strategy draw budget (0 = unbounded)")
	verbose := fs.Bool("v", false, "debug output including graph statistics")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <filename> <#vertices> <#edges>\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return exitUsage
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := misgen.NewConsoleLogger(stdout, level)

	filename := fs.Arg(0)
	numVertices, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		logger.Error().Err(err).Msg("#vertices must be an integer")
		fs.Usage()
		return exitUsage
	}
	numEdges, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		logger.Error().Err(err).Msg("#edges must be an integer")
		fs.Usage()
		return exitUsage
	}
	if *maxDraws < 0 {
		logger.Error().Int("max-draws", *maxDraws).Msg("-max-draws must be >= 0")
		fs.Usage()
		return exitUsage
	}

	opts := []misgen.Option{
		misgen.WithStrategy(strategy),
		misgen.WithSeed(*seed),
		misgen.WithMaxDraws(*maxDraws),
		misgen.WithLogger(logger),
	}
	if _, err := misgen.GenerateWithStats(filename, numVertices, numEdges, opts...); err != nil {
		logger.Error().Err(err).Msg("Generation failed")
		return exitFailure
	}

	return exitOK
}
