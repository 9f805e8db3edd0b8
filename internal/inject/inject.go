// Package inject translates platform-independent input events into native
// Windows input records and submits them through SendInput.
//
// The injector is one-shot and synchronous: each Post call classifies the
// event, builds exactly one native record, submits it, and returns. It holds
// no state between calls beyond the read-only extended key set, so calls may
// run concurrently from any goroutine as long as the supplied collaborators
// are themselves safe for concurrent use.
package inject

import (
	"log/slog"

	"winject/internal/event"
)

// Resolver maps an abstract key code to a Windows virtual-key code,
// returning 0 when no mapping exists.
type Resolver interface {
	Resolve(keycode uint16) uint16
}

// Screen reports the primary display extents in pixels. It is queried fresh
// on every mouse event so resolution changes are always picked up.
//
// Only the primary display is represented: coordinates that originate on a
// secondary monitor are still normalized against the primary's extents.
type Screen interface {
	PrimarySize() (width, height int32)
}

// Submitter hands one assembled record to the OS injection primitive. A
// returned error carries the native error code.
type Submitter interface {
	Submit(rec Record) error
}

// Injector posts input events to the OS input layer. Failures never reach
// the caller; they are reported through the diagnostic logger and the event
// is dropped, so a bad event can never take down the host process.
type Injector struct {
	resolver Resolver
	screen   Screen
	submit   Submitter
	log      *slog.Logger
}

// New creates an injector from explicit collaborators. A nil logger falls
// back to slog.Default.
func New(resolver Resolver, screen Screen, submitter Submitter, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Injector{
		resolver: resolver,
		screen:   screen,
		submit:   submitter,
		log:      logger,
	}
}

// Post injects a single event. Exactly one native record is submitted per
// call, except for ignored or malformed events which submit nothing.
func (in *Injector) Post(ev event.Event) {
	switch ev.Type {
	case event.KeyPressed, event.KeyReleased:
		vk := in.resolver.Resolve(ev.Keycode)
		if vk == 0 {
			// Best effort: a zero virtual key is still a valid SendInput
			// argument, so the record goes out regardless.
			in.log.Warn("unable to look up key code", "keycode", ev.Keycode)
		}
		in.submitRecord(buildKeyboardRecord(ev, vk))

	case event.MousePressed, event.MouseReleased, event.MouseWheel,
		event.MouseMoved, event.MouseDragged:
		width, height := in.screen.PrimarySize()
		if width <= 0 || height <= 0 {
			in.log.Warn("degenerate display geometry, dropping mouse event",
				"width", width, "height", height)
			return
		}
		in.submitRecord(buildMouseRecord(ev, width, height))

	case event.MouseClicked, event.KeyTyped:
		// Clicked and typed events are synthesized by the capture side from
		// press/release pairs; re-injecting them would double the input.

	case event.HookEnabled, event.HookDisabled:
		// Hook lifecycle markers, nothing to inject.

	default:
		// Unknown tags are ignored, not failed: events may arrive from
		// newer capture layers with types this build does not know.
		in.log.Warn("ignoring post event", "type", ev.Type)
	}
}

func (in *Injector) submitRecord(rec Record) {
	if err := in.submit.Submit(rec); err != nil {
		// No retry: injection is at-most-once.
		in.log.Error("input submission failed", "err", err)
	}
}
