// Package watch re-runs model validation when model documents change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Options configure a FileWatcher.
type Options struct {
	// Files are the documents to watch. Their directories are watched so
	// editors that replace files on save are still seen.
	Files    []string
	Debounce time.Duration
	Logger   *zap.Logger
}

// FileWatcher reports batches of changed model documents.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]struct{}
	logger    *zap.Logger
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewFileWatcher creates a watcher that calls onChange with the sorted list
// of changed files once edits settle. onChange runs on the debouncer's timer
// goroutine.
func NewFileWatcher(opts Options, onChange func([]string)) (*FileWatcher, error) {
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange cannot be nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]struct{}, len(opts.Files))
	for _, f := range opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		files[abs] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   watcher,
		debouncer: NewDebouncer(debounce, onChange),
		files:     files,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching in the background.
func (fw *FileWatcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range fw.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}

	for dir := range dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		fw.logger.Debug("watching directory", zap.String("dir", dir))
	}

	fw.wg.Add(1)
	go fw.watch()
	return nil
}

// Run starts the watcher and blocks until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) error {
	if err := fw.Start(); err != nil {
		_ = fw.Stop()
		return err
	}
	<-ctx.Done()
	return fw.Stop()
}

// Stop stops the watcher. It is safe to call more than once.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		close(fw.stopChan)
		fw.wg.Wait()
		fw.debouncer.Stop()
		err = fw.watcher.Close()
	})
	return err
}

func (fw *FileWatcher) watch() {
	defer fw.wg.Done()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("model changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			fw.debouncer.Add(event.Name)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watch error", zap.Error(err))

		case <-fw.stopChan:
			return
		}
	}
}

// relevant reports whether event touches one of the watched documents in a
// way that changes its content.
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := fw.files[abs]
	return ok
}

// Debouncer collects file names and hands them to a callback once no new
// name has arrived for the configured duration.
type Debouncer struct {
	duration time.Duration
	callback func([]string)

	mu      sync.Mutex
	timer   *time.Timer
	files   map[string]struct{}
	stopped bool
}

// NewDebouncer creates a Debouncer.
func NewDebouncer(duration time.Duration, callback func([]string)) *Debouncer {
	return &Debouncer{
		duration: duration,
		callback: callback,
		files:    make(map[string]struct{}),
	}
}

// Add records file and restarts the quiet period. Adds after Stop are dropped.
func (d *Debouncer) Add(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.Flush)
}

// Flush delivers pending files now. The callback runs without the lock held.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if len(d.files) == 0 || d.stopped {
		d.mu.Unlock()
		return
	}
	files := make([]string, 0, len(d.files))
	for f := range d.files {
		files = append(files, f)
	}
	d.files = make(map[string]struct{})
	d.mu.Unlock()

	sort.Strings(files)
	d.callback(files)
}

// Pending returns the number of files waiting to be delivered.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.files)
}

// Stop cancels any pending delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.stopped = true
	d.files = make(map[string]struct{})
}

// String describes the watched files, for logs.
func (fw *FileWatcher) String() string {
	names := make([]string, 0, len(fw.files))
	for f := range fw.files {
		names = append(names, f)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
