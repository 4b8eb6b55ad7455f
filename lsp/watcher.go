package lsp

import (
	"os"
	"sync"
	"time"
)

// GrammarWatcher polls the configured grammar files and, when one changes,
// recompiles it and reports the documents checked again.
type GrammarWatcher struct {
	workspace    *Workspace
	onChange     func(docs []*Document)
	stopCh       chan struct{}
	stopOnce     sync.Once
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewGrammarWatcher(ws *Workspace, onChange func(docs []*Document)) *GrammarWatcher {
	return &GrammarWatcher{
		workspace:    ws,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *GrammarWatcher) Start() {
	go w.run()
}

func (w *GrammarWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *GrammarWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *GrammarWatcher) scan() {
	for path, name := range w.workspace.GrammarFiles() {
		var modTime time.Time
		if info, err := os.Stat(path); err == nil {
			modTime = info.ModTime()
		}

		lastMod, known := w.modTimes[path]
		w.modTimes[path] = modTime
		if !known || modTime.Equal(lastMod) {
			continue
		}

		log.Infof("grammar %s changed", name)
		if docs := w.workspace.InvalidateGrammar(name); len(docs) > 0 && w.onChange != nil {
			w.onChange(docs)
		}
	}
}
