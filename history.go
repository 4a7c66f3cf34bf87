package paintcore

import "sync"

// HistoryConfig controls memory and depth caps of a History.
type HistoryConfig struct {
	// MaxBytes is a soft cap on undo memory; the oldest groups are pruned
	// when it is exceeded. The newest group is always kept.
	MaxBytes int

	// MaxGroups limits the undo depth (0 means unlimited).
	MaxGroups int
}

// DefaultHistoryBytes is the undo memory cap used when none is configured.
const DefaultHistoryBytes = 64 * 1024 * 1024

// UndoGroup is one undoable stroke.
type UndoGroup struct {
	Label   string
	Entries []*UndoEntry
}

// ByteSize returns the memory held by the group.
func (g *UndoGroup) ByteSize() int {
	n := 0
	for _, e := range g.Entries {
		n += e.ByteSize()
	}
	return n
}

// History is an in-memory UndoSystem with undo and redo.
// It is safe for concurrent use.
type History struct {
	cfg HistoryConfig

	mu         sync.Mutex
	undo       []*UndoGroup
	redo       []*UndoGroup
	totalBytes int
}

// NewHistory creates a history. A non-positive MaxBytes selects
// DefaultHistoryBytes.
func NewHistory(cfg HistoryConfig) *History {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultHistoryBytes
	}
	return &History{cfg: cfg}
}

// PushGroup implements UndoSystem. Nil entries are dropped; a group with
// no entries is ignored. Any new group clears the redo stack.
func (h *History) PushGroup(label string, entries ...*UndoEntry) {
	g := &UndoGroup{Label: label}
	for _, e := range entries {
		if e != nil {
			g.Entries = append(g.Entries, e)
		}
	}
	if len(g.Entries) == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.redo {
		h.releaseLocked(r)
	}
	h.redo = nil
	h.undo = append(h.undo, g)
	h.totalBytes += g.ByteSize()
	h.enforceCapsLocked()

	Logger().Info("paintcore: undo group pushed",
		"label", label, "entries", len(g.Entries), "bytes", g.ByteSize())
}

// Undo reverts the newest group. It returns false when there is nothing
// to undo.
func (h *History) Undo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return "", false
	}
	g := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	for i := len(g.Entries) - 1; i >= 0; i-- {
		g.Entries[i].Swap()
	}
	h.totalBytes -= g.ByteSize()
	h.redo = append(h.redo, g)
	return g.Label, true
}

// Redo reapplies the newest undone group. It returns false when there is
// nothing to redo.
func (h *History) Redo() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return "", false
	}
	g := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	for _, e := range g.Entries {
		e.Swap()
	}
	h.undo = append(h.undo, g)
	h.totalBytes += g.ByteSize()
	h.enforceCapsLocked()
	return g.Label, true
}

// Stats returns the undo depth, redo depth and undo memory in bytes.
func (h *History) Stats() (undoGroups, redoGroups, totalBytes int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo), len(h.redo), h.totalBytes
}

// Clear drops every group and frees its tiles.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, g := range h.undo {
		h.releaseLocked(g)
	}
	for _, g := range h.redo {
		h.releaseLocked(g)
	}
	h.undo, h.redo, h.totalBytes = nil, nil, 0
}

func (h *History) enforceCapsLocked() {
	for len(h.undo) > 1 {
		overDepth := h.cfg.MaxGroups > 0 && len(h.undo) > h.cfg.MaxGroups
		if !overDepth && h.totalBytes <= h.cfg.MaxBytes {
			return
		}
		g := h.undo[0]
		h.undo = h.undo[1:]
		h.totalBytes -= g.ByteSize()
		h.releaseLocked(g)
		Logger().Debug("paintcore: undo group pruned", "label", g.Label)
	}
}

func (h *History) releaseLocked(g *UndoGroup) {
	for _, e := range g.Entries {
		e.Release()
	}
}
