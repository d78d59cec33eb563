package session

// Ticker is a cancellable periodic task. The event loop schedules each tick
// itself and stamps it with the generation returned by Start; a tick is only
// applied, and only re-armed, while its generation is current.
type Ticker struct {
	gen     uint64
	running bool
}

// Start begins a new generation and returns its stamp
func (t *Ticker) Start() uint64 {
	t.gen++
	t.running = true
	return t.gen
}

// Stop cancels the current generation. Ticks already scheduled become no-ops.
func (t *Ticker) Stop() {
	t.running = false
}

// Accept reports whether a tick stamped with gen should fire
func (t *Ticker) Accept(gen uint64) bool {
	return t.running && gen == t.gen
}

// Running reports whether a generation is live
func (t *Ticker) Running() bool {
	return t.running
}

// Generation returns the current stamp
func (t *Ticker) Generation() uint64 {
	return t.gen
}
