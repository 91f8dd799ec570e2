// Command pfind is a parallel recursive file finder: given a starting
// directory and a name pattern, it enumerates matching filesystem entries
// across many worker goroutines and streams results to stdout as they
// are discovered.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofinch/parafind/internal/engine"
	"github.com/gofinch/parafind/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

// run exits 0 whenever the scan itself completed, even with an empty
// result set, and exits 1 for any RunE error: predicate parse failure,
// unreadable root, or a cobra usage error.
func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &findOptions{
		maxDepth: 100,
		symlinks: "P",
	}

	cmd := &cobra.Command{
		Use:     "pfind <pattern>",
		Short:   "Find files matching a pattern in parallel",
		Version: version + " (" + commit + ")",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFind(args[0], opts)
		},
	}

	bindFlags(cmd, opts)
	return cmd
}

// runFind builds the engine from opts, drains its result channel to
// stdout, and reports the exit-code-bearing error categories verbatim.
func runFind(pattern string, opts *findOptions) error {
	symlinkPolicy, err := opts.symlinkPolicy()
	if err != nil {
		return err
	}

	log, err := logging.NewStderr(opts.debug, "pfind")
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer func() { _ = log.Close() }()

	e, err := engine.New(engine.Options{
		Dir:      opts.dir,
		Pattern:  pattern,
		MaxDepth: opts.maxDepth,
		Threads:  opts.threads,
		Symlinks: symlinkPolicy,
		Type:     opts.typ,
		Mtime:    opts.mtime,
		Atime:    opts.atime,
		Ctime:    opts.ctime,
		Size:     opts.size,
		Perm:     opts.perm,
		UID:      opts.uidFilter(),
		GID:      opts.gidFilter(),
		Long:     opts.long,
		Log:      log,
	})
	if err != nil {
		return err
	}

	log.Info("scanning %q for pattern %q", opts.dirOrDefault(), pattern)

	delim := byte('\n')
	if opts.print0 {
		delim = 0
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for path := range e.Run() {
		w.WriteString(path)
		w.WriteByte(delim)
	}
	return nil
}
