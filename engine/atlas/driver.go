package atlas

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/compositor"
	"github.com/npillmayer/fontbin/engine/packer"
)

// DefaultBatchSize is the number of code-points fetched from the rasterizer at once.
const DefaultBatchSize = 256

// State is the state of a conversion run.
type State int8

// States of a Driver. Fetching, Compositing and Packing are only visible to
// progress callbacks, between calls to Step a driver is Idle, Running, Done
// or Failed.
const (
	Idle State = iota
	Running
	Fetching
	Compositing
	Packing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Fetching:
		return "fetching"
	case Compositing:
		return "compositing"
	case Packing:
		return "packing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Progress is reported to a progress callback during conversion.
type Progress struct {
	State   State
	Batch   int // index of the current batch
	Batches int // total number of batches
	First   rune
	Glyphs  int // glyphs packed so far
}

// BatchError reports a rasterizer failure for one batch.
type BatchError struct {
	Batch int  // batch index
	First rune // first code-point of the batch
	Err   error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("batch %d (U+%04X) failed: %v", e.Batch, e.First, e.Err)
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a conversion.
type Result struct {
	Blob     *packer.Blob
	Coverage *bitset.BitSet // code-points for which the rasterizer returned a glyph
}

// GlyphCount returns the number of code-points covered by the font.
func (r Result) GlyphCount() int {
	if r.Coverage == nil {
		return 0
	}
	return int(r.Coverage.Count())
}

// Option configures a Driver.
type Option func(*Driver)

// WithBatchSize sets the number of code-points per batch.
func WithBatchSize(n int) Option {
	return func(d *Driver) {
		d.batchSize = n
	}
}

// WithLoadFlags sets the rasterizer flags. The default is anti-aliased and
// grid-fitted rendering.
func WithLoadFlags(flags glyph.LoadFlags) Option {
	return func(d *Driver) {
		d.flags = flags
	}
}

// WithProgress sets a callback which is called for every state change of a batch.
func WithProgress(f func(Progress)) Option {
	return func(d *Driver) {
		d.progress = f
	}
}

// Driver converts glyphs of a rasterizer session into a packed blob.
// A Driver is not safe for concurrent use.
type Driver struct {
	session   glyph.Rasterizer
	spec      compositor.BoxSpec
	layout    packer.Layout
	flags     glyph.LoadFlags
	batchSize int
	progress  func(Progress)
	state     State
	next      int // index of the next batch
	glyphs    int
	blob      *packer.Blob
	coverage  *bitset.BitSet
	err       error
}

// NewDriver creates a driver for a session and a box configuration. The
// configuration is checked here, before any glyph is requested.
func NewDriver(session glyph.Rasterizer, spec compositor.BoxSpec, opts ...Option) (*Driver, error) {
	if session == nil {
		return nil, core.Error(core.EINVALID, "conversion needs a rasterizer session")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	d := &Driver{
		session:   session,
		spec:      spec,
		layout:    packer.Layout{Width: spec.Width, Height: spec.Height, Orientation: spec.Orientation},
		flags:     glyph.AntiAlias | glyph.GridFit,
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.batchSize <= 0 || d.batchSize > packer.CodepointCount {
		return nil, core.Error(core.EINVALID, "batch size must be 1…%d, is %d",
			packer.CodepointCount, d.batchSize)
	}
	if !d.layout.VerticalLossless() {
		tracer().Infof("box %d×%d is lossy in vertical layout, columns overlap or exceed the block",
			spec.Width, spec.Height)
	}
	return d, nil
}

// Layout returns the blob layout the driver produces.
func (d *Driver) Layout() packer.Layout {
	return d.layout
}

// State returns the current state of the driver.
func (d *Driver) State() State {
	return d.state
}

// Err returns the error which caused the driver to fail, if any.
func (d *Driver) Err() error {
	return d.err
}

// Batches returns the total number of batches.
func (d *Driver) Batches() int {
	return (packer.CodepointCount + d.batchSize - 1) / d.batchSize
}

// BatchIndex returns the index of the next batch to process.
func (d *Driver) BatchIndex() int {
	return d.next
}

// Step processes the next batch. It returns true if the conversion has
// finished, either successfully or with an error. Calling Step on a finished
// driver does nothing.
func (d *Driver) Step() (bool, error) {
	switch d.state {
	case Done:
		return true, nil
	case Failed:
		return true, d.err
	case Idle:
		blob, err := packer.NewBlob(d.layout)
		if err != nil {
			return true, d.fail(err)
		}
		d.blob = blob
		d.coverage = bitset.New(packer.CodepointCount)
		d.state = Running
		tracer().Debugf("start conversion into %v, batch size %d", d.layout, d.batchSize)
	}
	if err := d.runBatch(d.next); err != nil {
		return true, d.fail(err)
	}
	d.next++
	if d.next >= d.Batches() {
		d.state = Done
		d.report(Done, d.next-1)
		tracer().Infof("conversion done, %d glyphs packed", d.glyphs)
		return true, nil
	}
	d.state = Running
	return false, nil
}

// Run processes all remaining batches. The context is checked between batches;
// if it is done, the driver fails with an error of code core.ECANCELED.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	for {
		select {
		case <-ctx.Done():
			if d.state != Done && d.state != Failed {
				d.fail(core.WrapError(ctx.Err(), core.ECANCELED,
					"conversion canceled before batch %d", d.next))
			}
		default:
		}
		finished, err := d.Step()
		if err != nil {
			return Result{}, err
		}
		if finished {
			return d.Result()
		}
	}
}

// Result returns the result of a finished conversion.
func (d *Driver) Result() (Result, error) {
	switch d.state {
	case Done:
		return Result{Blob: d.blob, Coverage: d.coverage}, nil
	case Failed:
		return Result{}, d.err
	}
	return Result{}, core.Error(core.EINVALID, "conversion is %s, not finished", d.state)
}

// Partial returns the blob as far as it has been filled. Blocks of
// unprocessed or failed batches are all zero. Partial returns nil before the
// first call to Step.
func (d *Driver) Partial() *packer.Blob {
	return d.blob
}

func (d *Driver) runBatch(batch int) error {
	first := batch * d.batchSize
	last := first + d.batchSize
	if last > packer.CodepointCount {
		last = packer.CodepointCount
	}
	codepoints := make([]rune, 0, last-first)
	for cp := first; cp < last; cp++ {
		codepoints = append(codepoints, rune(cp))
	}
	d.state = Fetching
	d.report(Fetching, batch)
	glyphs, err := d.session.LoadGlyphs(codepoints, d.flags)
	if err != nil {
		berr := BatchError{Batch: batch, First: rune(first), Err: err}
		return core.WrapError(berr, core.ERASTER, "cannot rasterize glyphs of batch %d", batch)
	}
	d.state = Compositing
	d.report(Compositing, batch)
	boxes := make(map[rune]*glyph.InkGrid, len(glyphs))
	for _, cp := range codepoints {
		g, ok := glyphs[cp]
		if !ok || g == nil {
			continue
		}
		// no kerning context in a blob, every glyph is first in its line
		boxes[cp] = compositor.Composite(g, d.spec, true)
	}
	d.state = Packing
	d.report(Packing, batch)
	for _, cp := range codepoints {
		box, ok := boxes[cp]
		if !ok {
			continue
		}
		if err := d.blob.Pack(box, cp); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot pack U+%04X", cp)
		}
		d.coverage.Set(uint(cp))
		d.glyphs++
	}
	return nil
}

func (d *Driver) fail(err error) error {
	d.state = Failed
	d.err = err
	tracer().Errorf("conversion failed: %v", err)
	d.report(Failed, d.next)
	return err
}

func (d *Driver) report(s State, batch int) {
	if d.progress == nil {
		return
	}
	d.progress(Progress{
		State:   s,
		Batch:   batch,
		Batches: d.Batches(),
		First:   rune(batch * d.batchSize),
		Glyphs:  d.glyphs,
	})
}
