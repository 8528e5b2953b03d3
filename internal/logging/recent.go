package logging

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// recentCapacity bounds how many formatted entries are kept for Tail.
const recentCapacity = 64

// recentHook keeps the last formatted entries in a ring so the TUI can show
// them without rereading the log file.
type recentHook struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

func newRecentHook(capacity int) *recentHook {
	return &recentHook{lines: make([]string, capacity)}
}

func (h *recentHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *recentHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines[h.next] = strings.TrimRight(line, "\n")
	h.next = (h.next + 1) % len(h.lines)
	if h.next == 0 {
		h.full = true
	}
	return nil
}

func (h *recentHook) last(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	size := h.next
	if h.full {
		size = len(h.lines)
	}
	if n > size {
		n = size
	}
	out := make([]string, 0, n)
	for i := size - n; i < size; i++ {
		// oldest entry sits at h.next once the ring has wrapped
		idx := i
		if h.full {
			idx = (h.next + i) % len(h.lines)
		}
		out = append(out, h.lines[idx])
	}
	return out
}
