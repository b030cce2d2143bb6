package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpAdd indicates a file was created.
	OpAdd WatchOp = iota
	// OpChange indicates a file was modified.
	OpChange
	// OpUnlink indicates a file was removed or renamed away.
	OpUnlink
	// OpAddDir indicates a directory was created.
	OpAddDir
	// OpUnlinkDir indicates a directory was removed or renamed away.
	OpUnlinkDir
)

// String returns the event name used in logs.
func (op WatchOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpChange:
		return "change"
	case OpUnlink:
		return "unlink"
	case OpAddDir:
		return "addDir"
	case OpUnlinkDir:
		return "unlinkDir"
	default:
		return "unknown"
	}
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching file system changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, root string) error
	// Add registers an extra path for change notification.
	Add(path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a Watcher on demand, so that commands which never
// watch do not hold file descriptors.
type WatcherFactory func() (Watcher, error)
