// Package engine wires the predicate bundle, system-path filter, work
// queue, scanners, and result sink into the end-to-end scan driver.
package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/opencoff/go-logger"

	"github.com/gofinch/parafind/internal/predicate"
	"github.com/gofinch/parafind/internal/queue"
	"github.com/gofinch/parafind/internal/scanner"
	"github.com/gofinch/parafind/internal/sink"
	"github.com/gofinch/parafind/internal/syspath"
	"github.com/gofinch/parafind/internal/types"
)

// Options captures every engine-level knob; cmd/pfind fills this in from
// parsed flags.
type Options struct {
	Dir      string // requested root, exactly as given on the command line
	Pattern  string // name pattern; "" means no name filter
	MaxDepth int
	Threads  int // 0 selects runtime.NumCPU()

	Symlinks scanner.SymlinkPolicy

	Type  string // "" defaults to "any"
	Mtime string
	Atime string
	Ctime string
	Size  string
	Perm  string
	UID   *uint32
	GID   *uint32

	// Long prefixes each result with its permission string (cmd/pfind's
	// --long flag); display-only, does not affect matching.
	Long bool

	Log   logger.Logger
	Clock func() time.Time // nil defaults to time.Now
}

// Engine is a built, ready-to-run scan. Construct with New, run once
// with Run.
type Engine struct {
	opts Options

	bundle    *predicate.Bundle
	blocklist *syspath.Blocklist

	requestedRoot string
	canonicalRoot string

	// suppressTraversal is set when the root is a symlink that the
	// chosen policy forbids following: Run returns a closed, empty
	// result channel without spawning anything, rather than opening a
	// path the policy says to leave alone.
	suppressTraversal bool
}

// New parses every predicate option and canonicalizes the root before
// anything is spawned, so a bad filter string or an unreadable root
// surfaces as a returned error instead of a panic or a silent empty
// scan. It returns *predicate.InvalidFilterError or
// *UnreadableRootError on failure, both meant for exit code 1.
func New(opts Options) (*Engine, error) {
	bundle := &predicate.Bundle{}

	if opts.Pattern != "" {
		m, err := predicate.NewNameMatcher(opts.Pattern)
		if err != nil {
			return nil, err
		}
		bundle.Name = m
	}

	typeSpec := opts.Type
	if typeSpec == "" {
		typeSpec = "any"
	}
	typeFilter, err := predicate.ParseTypeFilter(typeSpec)
	if err != nil {
		return nil, err
	}
	bundle.Type = typeFilter

	if opts.Size != "" {
		sf, err := predicate.ParseSizeFilter(opts.Size)
		if err != nil {
			return nil, err
		}
		bundle.Size = sf
	}
	if opts.Mtime != "" {
		tf, err := predicate.ParseTimeFilter("mtime", opts.Mtime)
		if err != nil {
			return nil, err
		}
		bundle.Mtime = tf
	}
	if opts.Atime != "" {
		tf, err := predicate.ParseTimeFilter("atime", opts.Atime)
		if err != nil {
			return nil, err
		}
		bundle.Atime = tf
	}
	if opts.Ctime != "" {
		tf, err := predicate.ParseTimeFilter("ctime", opts.Ctime)
		if err != nil {
			return nil, err
		}
		bundle.Ctime = tf
	}
	if opts.Perm != "" {
		if !predicate.POSIXSupported {
			return nil, &predicate.InvalidFilterError{
				Kind:  "perm",
				Input: opts.Perm,
				Err:   errUnsupportedPlatform,
			}
		}
		pf, err := predicate.ParsePermissionFilter(opts.Perm)
		if err != nil {
			return nil, err
		}
		bundle.Perm = pf
	}
	if opts.UID != nil || opts.GID != nil {
		if !predicate.POSIXSupported {
			return nil, &predicate.InvalidFilterError{
				Kind:  "owner",
				Input: "uid/gid",
				Err:   errUnsupportedPlatform,
			}
		}
		bundle.Owner = predicate.NewOwnershipFilter(opts.UID, opts.GID)
	}

	requestedRoot := opts.Dir
	if requestedRoot == "" {
		requestedRoot = "/"
	}

	absRoot, err := filepath.Abs(requestedRoot)
	if err != nil {
		absRoot = requestedRoot
	}

	rootLstat, err := os.Lstat(absRoot)
	if err != nil {
		return nil, &UnreadableRootError{Path: absRoot, Err: err}
	}

	var (
		canonicalRoot     string
		suppressTraversal bool
	)

	switch {
	case rootLstat.Mode()&os.ModeSymlink != 0 && opts.Symlinks == scanner.SymlinkNever:
		// A symlink root under the never-follow policy yields an empty
		// result set, not a startup error — the engine never opens it.
		canonicalRoot = absRoot
		suppressTraversal = true
	case rootLstat.Mode()&os.ModeSymlink != 0:
		// Under the command or always policy, the seed is named
		// explicitly on the command line, so it is followed regardless:
		// this is the carve-out that lets "follow only the named root"
		// differ from "never follow."
		target, err := os.Stat(absRoot)
		if err != nil {
			return nil, &UnreadableRootError{Path: absRoot, Err: err}
		}
		if !target.IsDir() {
			return nil, &UnreadableRootError{Path: absRoot, Err: errNotADirectory}
		}
		canonicalRoot = absRoot
	default:
		canonicalRoot = absRoot
		if real, err := filepath.EvalSymlinks(absRoot); err == nil {
			canonicalRoot = real
		}
		info, err := os.Stat(canonicalRoot)
		if err != nil {
			return nil, &UnreadableRootError{Path: canonicalRoot, Err: err}
		}
		if !info.IsDir() {
			return nil, &UnreadableRootError{Path: canonicalRoot, Err: errNotADirectory}
		}
	}

	return &Engine{
		opts:              opts,
		bundle:            bundle,
		blocklist:         syspath.Default(),
		requestedRoot:     requestedRoot,
		canonicalRoot:     canonicalRoot,
		suppressTraversal: suppressTraversal,
	}, nil
}

// Run spawns the scanner pool and the queue distributor and returns the
// result channel immediately; it closes once every scanner and the
// distributor have finished, folding the final join into the closer
// goroutine below rather than blocking Run's caller.
func (e *Engine) Run() <-chan string {
	if e.suppressTraversal {
		out := sink.New(1)
		out.Close()
		return out.Results()
	}

	threads := e.opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	clock := e.opts.Clock
	if clock == nil {
		clock = time.Now
	}

	coord := queue.NewCoordinator(threads)
	out := sink.New(threads * 8)

	// Seed before starting workers or the distributor, so the initial
	// unit is already waiting in the buffered work channel when the first
	// worker starts. The distributor does not inspect the work channel:
	// it relies on its debounce window to give a worker time to receive
	// the seed and increment the active counter. Mirrors
	// original_source/src/main.rs's ordering.
	coord.Seed(types.WorkUnit{Path: e.canonicalRoot, Depth: 0})

	// Shared across every worker so the number of directories open for
	// reading at once stays bounded by thread count even though
	// directory enqueueing is otherwise decoupled from the worker pool
	// via the unbounded dir queue.
	dirSem := types.NewSemaphore(threads)

	cfg := scanner.Config{
		Coordinator:   coord,
		Sink:          out,
		Bundle:        e.bundle,
		Blocklist:     e.blocklist,
		MaxDepth:      e.opts.MaxDepth,
		Policy:        e.opts.Symlinks,
		RequestedRoot: e.requestedRoot,
		CanonicalRoot: e.canonicalRoot,
		Long:          e.opts.Long,
		DirReadSem:    dirSem,
		Log:           e.opts.Log,
		Clock:         clock,
	}

	var workers sync.WaitGroup
	for i := 0; i < threads; i++ {
		w := scanner.New(i, cfg)
		workers.Add(1)
		go func() {
			defer workers.Done()
			w.Run()
		}()
	}

	go coord.RunDistributor()

	go func() {
		workers.Wait()
		<-coord.Done()
		out.Close()
	}()

	return out.Results()
}
