// Command thunks compiles accessor thunks for a set of sample types and
// shows what each member supports.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/tgedikli/jsonfx"
	"github.com/tgedikli/jsonfx/accessor"
	"github.com/tgedikli/jsonfx/cache"
)

func main() {
	var (
		only        = flag.String("type", "", "Only inspect the named sample type")
		dump        = flag.Bool("dump", false, "Dump values read through compiled getters")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log compile decisions")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
		defer func() { _ = log.Sync() }()
	}
	accessor.SetLogger(log)

	registry := accessor.NewRegistry()
	thunks := cache.New(
		accessor.NewCompiler(accessor.WithLogger(log), accessor.WithRegistry(registry)),
		cache.WithLogger(log),
	)

	samples, err := catalog(registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *only != "" {
		samples = filterSamples(samples, *only)
		if len(samples) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no sample type %q\n", *only)
			os.Exit(1)
		}
	}

	if *interactive {
		if err := runInteractive(samples, thunks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, samples, thunks, *dump, stdoutIsTerminal()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, samples []*sample, thunks *cache.Thunks, dump, colored bool) error {
	st := newStyles(colored)

	for _, s := range samples {
		rows, err := inspect(s, thunks)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", s.name, err)
		}
		if err := renderSample(w, st, s, rows); err != nil {
			return err
		}
		if dump {
			if err := dumpValues(w, s, thunks); err != nil {
				return fmt.Errorf("dump %s: %w", s.name, err)
			}
		}
	}

	fmt.Fprintf(w, "%d thunks compiled\n", thunks.Len())
	return nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpValues reads every readable member through its getter and dumps the
// boxed results.
func dumpValues(w io.Writer, s *sample, src jsonfx.Source) error {
	values := make(map[string]any, len(s.members))
	for _, m := range s.members {
		get, err := src.Getter(m)
		if err != nil {
			return err
		}
		if get != nil {
			values[memberName(m)] = get(s.instance)
		}
	}
	dumper.Fdump(w, values)
	fmt.Fprintln(w)
	return nil
}

func filterSamples(samples []*sample, name string) []*sample {
	for _, s := range samples {
		if s.name == name {
			return []*sample{s}
		}
	}
	return nil
}
