package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gofinch/parafind/internal/scanner"
)

// findOptions holds the raw CLI flags as strings and ints; parsing them
// into predicate types happens in internal/predicate via
// internal/engine.New, keeping cobra flag binding separate from value
// parsing and validation.
type findOptions struct {
	dir      string
	maxDepth int
	threads  int

	symlinks string // one of "P", "H", "L"; set in PreRunE, "P" if none given

	typ   string
	mtime string
	atime string
	ctime string
	size  string
	perm  string

	uid int64
	gid int64

	print0 bool
	long   bool
	debug  bool
}

func bindFlags(cmd *cobra.Command, opts *findOptions) {
	flags := cmd.Flags()

	flags.StringVarP(&opts.dir, "dir", "d", "/", "Starting directory")
	flags.IntVarP(&opts.maxDepth, "max-depth", "m", opts.maxDepth, "Maximum depth")
	flags.IntVarP(&opts.threads, "threads", "j", 0, "Worker count (0 selects CPU count)")

	flags.BoolP("never-follow", "P", true, "Never follow symlinks (default)")
	flags.BoolP("follow-command", "H", false, "Follow symlink only if it is the starting directory")
	flags.BoolP("follow-all", "L", false, "Follow all symlinks")

	flags.StringVarP(&opts.typ, "type", "t", "", "Type filter: f|d|l|any")
	flags.StringVar(&opts.mtime, "mtime", "", "Modification-time predicate, e.g. -7d, +1h")
	flags.StringVar(&opts.atime, "atime", "", "Access-time predicate")
	flags.StringVar(&opts.ctime, "ctime", "", "Change-time predicate")
	flags.StringVar(&opts.size, "size", "", "Size predicate, e.g. -2k, +1M")
	flags.StringVar(&opts.perm, "perm", "", "Permission predicate (POSIX only), e.g. u+x")

	flags.Int64Var(&opts.uid, "uid", -1, "Owner uid filter (-1 disables)")
	flags.Int64Var(&opts.gid, "gid", -1, "Owner gid filter (-1 disables)")

	flags.BoolVar(&opts.print0, "print0", false, "Delimit output with NUL instead of newline")
	flags.BoolVar(&opts.long, "long", false, "Prefix each result with its ls -l-style permission string")
	flags.BoolVarP(&opts.debug, "debug", "v", false, "Enable debug logging")

	// Reject combinations of -P/-H/-L outright rather than taking
	// whichever was set last: pflag tracks only which flags changed,
	// not the order they changed in, so "last wins" isn't available
	// without hand-rolled ordering.
	cmd.MarkFlagsMutuallyExclusive("never-follow", "follow-command", "follow-all")

	cmd.PreRunE = func(c *cobra.Command, _ []string) error {
		switch {
		case c.Flags().Changed("follow-all"):
			opts.symlinks = "L"
		case c.Flags().Changed("follow-command"):
			opts.symlinks = "H"
		default:
			opts.symlinks = "P"
		}
		return nil
	}
}

func (o *findOptions) symlinkPolicy() (scanner.SymlinkPolicy, error) {
	switch o.symlinks {
	case "", "P":
		return scanner.SymlinkNever, nil
	case "H":
		return scanner.SymlinkCommand, nil
	case "L":
		return scanner.SymlinkAlways, nil
	default:
		return scanner.SymlinkNever, fmt.Errorf("invalid symlink policy %q", o.symlinks)
	}
}

func (o *findOptions) uidFilter() *uint32 {
	if o.uid < 0 {
		return nil
	}
	v := uint32(o.uid)
	return &v
}

func (o *findOptions) gidFilter() *uint32 {
	if o.gid < 0 {
		return nil
	}
	v := uint32(o.gid)
	return &v
}

func (o *findOptions) dirOrDefault() string {
	if o.dir == "" {
		return "/"
	}
	return o.dir
}
