// Package speech models the two long-running audio collaborators of an
// exercise session as explicit, cancellable tasks: transcript capture and
// text narration. The session core only talks to these interfaces, so
// gameplay logic is testable with fakes and cannot leak a running
// narration past the session's lifetime.
package speech

import "sync"

// Capture is a streaming transcript source. Interim results replace the
// accumulated transcript until Stop, which returns the final text.
type Capture interface {
	// Available reports whether the runtime can capture speech at all.
	Available() bool
	Start()
	// Push replaces the interim transcript with the latest full result.
	Push(interim string)
	// Stop ends the capture and returns the final transcript.
	Stop() string
	Active() bool
}

// Narrator plays a text aloud at a given rate. Speak replaces any
// narration already playing; Cancel must always be safe to call.
type Narrator interface {
	Speak(text string, rate float64)
	Cancel()
	Speaking() bool
}

// RelayCapture is the server-side Capture: the client streams interim
// recognizer results over the API and the session relays them here.
type RelayCapture struct {
	mu         sync.Mutex
	enabled    bool
	active     bool
	transcript string
}

func NewRelayCapture(enabled bool) *RelayCapture {
	return &RelayCapture{enabled: enabled}
}

func (c *RelayCapture) Available() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *RelayCapture) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = true
	c.transcript = ""
}

func (c *RelayCapture) Push(interim string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.transcript = interim
}

func (c *RelayCapture) Stop() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	return c.transcript
}

func (c *RelayCapture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// PlaybackState tracks narration as the session sees it. Audio renders on
// the client; the server owns the authoritative playing/rate state so a
// closed session always tears narration down.
type PlaybackState struct {
	mu       sync.Mutex
	speaking bool
	text     string
	rate     float64
}

func NewPlaybackState() *PlaybackState {
	return &PlaybackState{rate: 1.0}
}

func (p *PlaybackState) Speak(text string, rate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speaking = true
	p.text = text
	p.rate = rate
}

func (p *PlaybackState) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speaking = false
}

func (p *PlaybackState) Speaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

// Rate returns the rate of the current or most recent narration.
func (p *PlaybackState) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}
