package reader

import (
	"context"
	"time"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"go.uber.org/zap"
)

// DefaultCloseDelay is how long the selection outlives a close request, so
// the closing panel never shows empty content.
const DefaultCloseDelay = 300 * time.Millisecond

// Translator fetches translation details for a word.
type Translator interface {
	TranslateWord(ctx context.Context, word string) (wordahead.Patch, error)
}

// PanelState is the detail panel lifecycle.
type PanelState int

const (
	PanelClosed PanelState = iota
	// PanelOpening is visible with a translation request in flight.
	PanelOpening
	PanelOpen
	// PanelClosing is hidden but still holds the selection until Clear.
	PanelClosing
)

func (s PanelState) String() string {
	switch s {
	case PanelClosed:
		return "closed"
	case PanelOpening:
		return "opening"
	case PanelOpen:
		return "open"
	case PanelClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Ticket identifies one selection. Responses and timers carry it back so
// that work started for an older selection can be discarded.
type Ticket struct {
	Seq  uint64
	Word string
}

// Panel is the detail panel controller.
type Panel struct {
	state      PanelState
	selection  *wordahead.WordAnnotation
	index      int
	seq        uint64
	closeDelay time.Duration
	log        *zap.Logger
}

// NewPanel creates a closed panel. A non-positive delay selects
// DefaultCloseDelay.
func NewPanel(closeDelay time.Duration, log *zap.Logger) *Panel {
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Panel{
		index:      -1,
		closeDelay: closeDelay,
		log:        log.With(zap.String("component", "panel")),
	}
}

// State returns the lifecycle state.
func (p *Panel) State() PanelState {
	return p.state
}

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool {
	return p.state == PanelOpening || p.state == PanelOpen
}

// Selection returns the selected annotation, or nil.
func (p *Panel) Selection() *wordahead.WordAnnotation {
	return p.selection
}

// Index returns the position of the selected word in the word list, or -1.
func (p *Panel) Index() int {
	if p.selection == nil {
		return -1
	}
	return p.index
}

// CloseDelay returns the delay between Close and Clear.
func (p *Panel) CloseDelay() time.Duration {
	return p.closeDelay
}

// Current returns the ticket of the current selection.
func (p *Panel) Current() Ticket {
	t := Ticket{Seq: p.seq}
	if p.selection != nil {
		t.Word = p.selection.Word
	}
	return t
}

// Select makes w the selection and shows the panel at once. The returned
// ticket must accompany the translation result.
func (p *Panel) Select(index int, w wordahead.WordAnnotation) Ticket {
	p.seq++
	sel := w
	p.selection = &sel
	p.index = index
	p.state = PanelOpening
	return Ticket{Seq: p.seq, Word: w.Word}
}

// Resolve merges a translation result into the selection. It reports false
// and leaves the selection untouched when the ticket is stale.
func (p *Panel) Resolve(t Ticket, patch wordahead.Patch) bool {
	if !p.matches(t) {
		p.log.Debug("discarding stale translation",
			zap.String("word", t.Word),
			zap.Uint64("seq", t.Seq),
			zap.Uint64("current_seq", p.seq),
		)
		return false
	}

	merged, err := wordahead.Merge(*p.selection, patch)
	if err != nil {
		p.log.Error("merging translation", zap.String("word", t.Word), zap.Error(err))
		p.settle()
		return false
	}
	p.selection = &merged
	p.settle()
	return true
}

// Fail records a failed translation fetch. The error is only logged.
func (p *Panel) Fail(t Ticket, err error) {
	p.log.Error("translation fetch failed", zap.String("word", t.Word), zap.Error(err))
	if p.matches(t) {
		p.settle()
	}
}

// Close hides the panel immediately. The selection is kept until Clear is
// called with the returned ticket after CloseDelay.
func (p *Panel) Close() (Ticket, time.Duration) {
	if p.state == PanelOpening || p.state == PanelOpen {
		p.state = PanelClosing
	}
	return p.Current(), p.closeDelay
}

// Clear drops the selection once the close delay has elapsed. It does nothing
// if the panel was reopened in the meantime.
func (p *Panel) Clear(t Ticket) bool {
	if p.state != PanelClosing || t.Seq != p.seq {
		return false
	}
	p.selection = nil
	p.index = -1
	p.state = PanelClosed
	return true
}

// Reset closes the panel without delay.
func (p *Panel) Reset() {
	p.seq++
	p.selection = nil
	p.index = -1
	p.state = PanelClosed
}

// Fetch runs the translation request for t synchronously and applies the
// result.
func (p *Panel) Fetch(ctx context.Context, tr Translator, t Ticket) bool {
	patch, err := tr.TranslateWord(ctx, t.Word)
	if err != nil {
		p.Fail(t, err)
		return false
	}
	return p.Resolve(t, patch)
}

// settle ends the opening phase. A closing panel stays closing.
func (p *Panel) settle() {
	if p.state == PanelOpening {
		p.state = PanelOpen
	}
}

func (p *Panel) matches(t Ticket) bool {
	return p.selection != nil && t.Seq == p.seq && t.Word == p.selection.Word
}
