package scheme

// DelayedRead is a read(2) call parked because its window's event queue
// was empty at call time. It is retried (not reissued) whenever new
// input arrives or the caller explicitly cancels it.
type DelayedRead struct {
	Handle   int
	WindowID int
	// MaxEvents caps how many events this read will drain once ready;
	// zero means "drain whatever is available".
	MaxEvents int
}

// DelayedQueue holds parked reads in arrival order. Retry performs a
// single forward scan, answering every entry whose window is now ready
// and leaving not-yet-ready entries in their original relative order —
// this is a scan-and-remove, not a requeue-to-the-back, so a read parked
// behind a still-empty window is not reordered past one that just became
// ready. This mirrors the original event loop's todo-vec retry.
type DelayedQueue struct {
	entries []DelayedRead
}

func (q *DelayedQueue) Push(d DelayedRead) {
	q.entries = append(q.entries, d)
}

// Cancel removes any parked read for handle, reporting whether one was
// found (callers answer it with ErrCanceled).
func (q *DelayedQueue) Cancel(handle int) bool {
	for i, e := range q.entries {
		if e.Handle == handle {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Retry scans the queue once, calling ready(windowID) for each entry; for
// every entry that reports ready, answer(entry) is invoked and the entry
// is removed, while not-ready entries are left in place and in order.
func (q *DelayedQueue) Retry(ready func(windowID int) bool, answer func(DelayedRead)) {
	remaining := q.entries[:0]
	for _, e := range q.entries {
		if ready(e.WindowID) {
			answer(e)
		} else {
			remaining = append(remaining, e)
		}
	}
	q.entries = remaining
}

func (q *DelayedQueue) Len() int { return len(q.entries) }
