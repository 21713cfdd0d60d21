package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Encoder writes frames as newline-delimited JSON and flushes after every
// frame so streaming consumers see each line as soon as it is produced.
type Encoder struct {
	w       io.Writer
	flusher http.Flusher
}

// NewEncoder wraps w. When w also implements http.Flusher, every frame is
// flushed through to the client immediately.
func NewEncoder(w io.Writer) *Encoder {
	e := &Encoder{w: w}
	if f, ok := w.(http.Flusher); ok {
		e.flusher = f
	}
	return e
}

// Encode writes one frame as a single `\n`-terminated JSON line.
func (e *Encoder) Encode(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}
	if _, err := e.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if e.flusher != nil {
		e.flusher.Flush()
	}
	return nil
}

// Parser reassembles frames from arbitrarily fragmented byte chunks. A chunk
// boundary may fall anywhere, including mid-line; the trailing partial line is
// buffered and never parsed until its delimiter arrives.
type Parser struct {
	buf bytes.Buffer
}

// Push appends a chunk and returns every frame completed by it, in arrival
// order. Blank lines are skipped. A malformed or unrecognized line stops
// parsing and returns the error.
func (p *Parser) Push(chunk []byte) ([]Frame, error) {
	p.buf.Write(chunk)

	var frames []Frame
	for {
		data := p.buf.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return frames, nil
		}

		line := make([]byte, idx)
		copy(line, data[:idx])
		p.buf.Next(idx + 1)

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var f Frame
		if err := json.Unmarshal(line, &f); err != nil {
			return frames, fmt.Errorf("bad frame line %q: %w", line, err)
		}
		frames = append(frames, f)
	}
}

// Close parses whatever remains in the buffer as a final unterminated line.
// Streams that end without a trailing newline still deliver their last frame.
func (p *Parser) Close() ([]Frame, error) {
	rest := bytes.TrimSpace(p.buf.Bytes())
	p.buf.Reset()
	if len(rest) == 0 {
		return nil, nil
	}

	var f Frame
	if err := json.Unmarshal(rest, &f); err != nil {
		return nil, fmt.Errorf("bad trailing frame %q: %w", rest, err)
	}
	return []Frame{f}, nil
}

// Decoder reads frames from an io.Reader using a Parser underneath.
type Decoder struct {
	r       io.Reader
	parser  Parser
	pending []Frame
	err     error
	eof     bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next returns the next frame in arrival order, or io.EOF when the stream is
// exhausted. Frames are never reordered or dropped.
func (d *Decoder) Next() (Frame, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return Frame{}, d.err
		}
		if d.eof {
			d.err = io.EOF
			return Frame{}, io.EOF
		}

		chunk := make([]byte, 4096)
		n, readErr := d.r.Read(chunk)
		if n > 0 {
			frames, parseErr := d.parser.Push(chunk[:n])
			d.pending = append(d.pending, frames...)
			if parseErr != nil {
				d.err = parseErr
			}
		}
		if readErr == io.EOF {
			d.eof = true
			frames, parseErr := d.parser.Close()
			d.pending = append(d.pending, frames...)
			if parseErr != nil && d.err == nil {
				d.err = parseErr
			}
		} else if readErr != nil {
			d.err = readErr
		}
	}

	f := d.pending[0]
	d.pending = d.pending[1:]
	return f, nil
}
