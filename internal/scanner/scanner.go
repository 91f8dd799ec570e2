// Package scanner implements the parallel directory-traversal worker:
// one goroutine per worker, fed work-units off a shared
// queue.Coordinator, emitting matches to a shared sink.Sink.
//
// # Concurrency model
//
// Each Worker runs its own goroutine draining Coordinator.Work until the
// channel is closed by the distributor. Scanning a directory never
// blocks on another scanner: discovered child directories go onto the
// coordinator's unbounded dir queue, not directly onto Work, so a
// worker busy with a large directory never starves its siblings.
//
// # Why per-entry, not per-directory, metadata reads
//
// Each entry needs the full POSIX metadata set (uid/gid/atime/ctime)
// any of the active predicates might check, not just size and mtime, so
// listing a directory is split into a batched os.File.ReadDir call
// followed by an lstat per entry via internal/sysmeta rather than
// relying on entry.Info().
package scanner

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/opencoff/go-logger"

	"github.com/gofinch/parafind/internal/pathnorm"
	"github.com/gofinch/parafind/internal/predicate"
	"github.com/gofinch/parafind/internal/queue"
	"github.com/gofinch/parafind/internal/sink"
	"github.com/gofinch/parafind/internal/sysmeta"
	"github.com/gofinch/parafind/internal/syspath"
	"github.com/gofinch/parafind/internal/types"
)

// SymlinkPolicy selects when a scanner follows a symlink it discovers
// while listing a directory.
type SymlinkPolicy int

const (
	// SymlinkNever never follows a discovered symlink. Default.
	SymlinkNever SymlinkPolicy = iota
	// SymlinkCommand follows only the seed path itself, when the seed is
	// a symlink; the engine driver handles that case before any Worker
	// runs; discovered entries are never eligible under this policy.
	SymlinkCommand
	// SymlinkAlways follows every discovered symlink, subject to the
	// per-scanner visited-set cycle check.
	SymlinkAlways
)

func (p SymlinkPolicy) String() string {
	switch p {
	case SymlinkCommand:
		return "command"
	case SymlinkAlways:
		return "always"
	default:
		return "never"
	}
}

// Worker scans directories pulled from a shared queue.Coordinator and
// reports matches to a shared sink.Sink. A Worker is single-use: create
// with New, call Run once.
type Worker struct {
	id int

	coord     *queue.Coordinator
	out       *sink.Sink
	bundle    *predicate.Bundle
	blocklist *syspath.Blocklist

	maxDepth int
	policy   SymlinkPolicy

	requestedRoot string
	canonicalRoot string

	// long prefixes each emitted path with its ls -l-style permission
	// string (cmd/pfind's --long flag). Display-only: it never affects
	// which entries match.
	long bool

	// dirReadSem bounds how many directories this scan has open for
	// reading at once, shared across every worker in the run. The
	// worker pool size already limits concurrency, but a shared
	// semaphore keeps that bound explicit and independent of how many
	// goroutines happen to be draining the work channel.
	dirReadSem types.Semaphore

	log   logger.Logger
	clock func() time.Time

	// visited is the per-scanner symlink cycle-detection set: canonical
	// paths this worker has already followed. Intentionally not shared
	// across workers — see DESIGN.md for the trade-off.
	visited map[string]struct{}
}

// Config bundles the immutable, shared-by-reference state every Worker
// in a run needs.
type Config struct {
	Coordinator   *queue.Coordinator
	Sink          *sink.Sink
	Bundle        *predicate.Bundle
	Blocklist     *syspath.Blocklist
	MaxDepth      int
	Policy        SymlinkPolicy
	RequestedRoot string
	CanonicalRoot string
	Long          bool
	DirReadSem    types.Semaphore
	Log           logger.Logger
	Clock         func() time.Time
}

// New creates a Worker with the given id (used only in debug log lines).
func New(id int, cfg Config) *Worker {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Worker{
		id:            id,
		coord:         cfg.Coordinator,
		out:           cfg.Sink,
		bundle:        cfg.Bundle,
		blocklist:     cfg.Blocklist,
		maxDepth:      cfg.MaxDepth,
		policy:        cfg.Policy,
		requestedRoot: cfg.RequestedRoot,
		canonicalRoot: cfg.CanonicalRoot,
		long:          cfg.Long,
		dirReadSem:    cfg.DirReadSem,
		log:           cfg.Log,
		clock:         clock,
	}
}

// Run drains the coordinator's work channel until it is closed,
// incrementing the active count around every work-unit so the
// distributor can tell in-flight work from a drained queue.
func (w *Worker) Run() {
	for wu := range w.coord.Work {
		w.coord.IncActive()
		if wu.Depth > w.maxDepth {
			w.coord.DecActive()
			continue
		}
		w.scanDir(wu)
		w.coord.DecActive()
	}
}

// scanDir opens wu.Path and processes its entries in ReadDir batches of
// 1000 so large directories don't spike memory.
func (w *Worker) scanDir(wu types.WorkUnit) {
	if w.dirReadSem != nil {
		w.dirReadSem.Acquire()
		defer w.dirReadSem.Release()
	}

	dir, err := os.Open(wu.Path)
	if err != nil {
		w.debugf("open %s (depth %d): %v", wu.Path, wu.Depth, err)
		return
	}
	defer dir.Close()

	const batchSize = 1000
	for {
		entries, rerr := dir.ReadDir(batchSize)
		for _, entry := range entries {
			w.processEntry(wu, entry)
		}
		if rerr != nil {
			if rerr != io.EOF {
				w.debugf("readdir %s (depth %d): %v", wu.Path, wu.Depth, rerr)
			}
			return
		}
		if len(entries) == 0 {
			return
		}
	}
}

// processEntry filters fullPath against the system-path blocklist,
// lstats it, normalizes the result path, and then emits, enqueues, or
// follows it depending on entry type.
func (w *Worker) processEntry(wu types.WorkUnit, entry os.DirEntry) {
	fullPath := filepath.Join(wu.Path, entry.Name())

	if w.blocklist.Blocked(fullPath) {
		return
	}

	meta, err := sysmeta.Lstat(fullPath)
	if err != nil {
		w.debugf("lstat %s (depth %d): %v", fullPath, wu.Depth, err)
		return
	}

	visible := pathnorm.Normalize(w.requestedRoot, w.canonicalRoot, fullPath)
	now := w.clock()

	switch {
	case meta.IsSymlink:
		if w.bundle.Evaluate(&meta, now) {
			w.emit(visible, &meta)
		}
		if w.policy == SymlinkAlways {
			w.followSymlink(fullPath, wu.Depth)
		}
	case meta.IsDir:
		w.coord.EnqueueDir(types.WorkUnit{Path: fullPath, Depth: wu.Depth + 1})
		if w.bundle.Evaluate(&meta, now) {
			w.emit(visible, &meta)
		}
	default:
		if w.bundle.Evaluate(&meta, now) {
			w.emit(visible, &meta)
		}
	}
}

// emit sends path to the sink, prefixed with its ls -l-style permission
// string when --long is set. Display-only: it never affects matching.
func (w *Worker) emit(path string, meta *sysmeta.EntryMeta) {
	if !w.long {
		w.out.Emit(path)
		return
	}
	w.out.Emit(predicate.PermString(meta.RawMode, meta.IsDir, meta.IsSymlink) + " " + path)
}

// followSymlink resolves and, if it leads to an unvisited directory,
// enqueues linkPath's target. depth is the depth of the directory
// containing the symlink, not depth+1: a followed symlink's target
// directory is enqueued at the same depth as its link, since the link
// itself doesn't count as a directory edge.
func (w *Worker) followSymlink(linkPath string, depth int) {
	real, err := filepath.EvalSymlinks(linkPath)
	if err != nil {
		w.debugf("resolve symlink %s (depth %d): %v", linkPath, depth, err)
		return
	}

	if w.visited == nil {
		w.visited = make(map[string]struct{})
	}
	if _, seen := w.visited[real]; seen {
		return
	}
	w.visited[real] = struct{}{}

	info, err := os.Stat(linkPath)
	if err != nil {
		w.debugf("stat follow %s (depth %d): %v", linkPath, depth, err)
		return
	}
	if info.IsDir() {
		w.coord.EnqueueDir(types.WorkUnit{Path: linkPath, Depth: depth})
	}
}

func (w *Worker) debugf(format string, args ...interface{}) {
	if w.log != nil {
		w.log.Debug("worker %d: "+format, append([]interface{}{w.id}, args...)...)
	}
}
