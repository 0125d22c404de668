package out

import "context"

// FileWatcher is the outbound port for watching a crontab file for changes.
type FileWatcher interface {
	// Watch calls onChange after each write to path, debounced. It blocks
	// until the context is cancelled.
	Watch(ctx context.Context, path string, onChange func()) error
}
