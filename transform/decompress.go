package transform

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"
)

// Decompressor interposes a zlib inflater between the wire and the
// phase state machine once MCCP2 negotiation completes (spec.md §4.2).
// Switching is one-way per session: once Start is called, every
// subsequent Feed call decompresses, until Stop tears it down on a
// fatal error.
//
// Rather than hold a live streaming reader across calls (which would
// need a blocking io.Reader the transformer's synchronous Receive
// can't provide — see SPEC_FULL.md §15 on why this
// package avoids goroutines), Decompressor keeps the full compressed
// prefix seen so far and re-runs zlib over it each Feed. DEFLATE
// decompression is a pure function of its compressed prefix, so this
// is correct; it trades some CPU for staying entirely synchronous,
// matching spec.md §5.
type Decompressor struct {
	active     bool
	compressed []byte
	emitted    int
}

// Start engages the decompressor. Idempotent.
func (d *Decompressor) Start() { d.active = true }

// Active reports whether decompression is currently engaged.
func (d *Decompressor) Active() bool { return d.active }

// Stop tears the decompressor down, discarding all buffered state.
func (d *Decompressor) Stop() {
	d.active = false
	d.compressed = nil
	d.emitted = 0
}

// ErrCorrupt is returned when the compressed stream cannot be
// inflated (spec.md §7 kind 2, protocol-fatal).
var ErrCorrupt = errors.New("transform: corrupt compressed stream")

// Feed appends chunk to the compressed prefix and returns any newly
// decodable plaintext. A nil, nil result means more compressed bytes
// are needed before anything new can be produced; it is not an error.
func (d *Decompressor) Feed(chunk []byte) ([]byte, error) {
	d.compressed = append(d.compressed, chunk...)

	r, err := zlib.NewReader(bytes.NewReader(d.compressed))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, nil
		}
		return nil, ErrCorrupt
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, ErrCorrupt
	}
	if len(out) <= d.emitted {
		return nil, nil
	}
	fresh := out[d.emitted:]
	d.emitted = len(out)
	return fresh, nil
}
