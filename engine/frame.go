// Package engine implements C1, the engine client: it dials the
// container engine's event-stream socket, reassembles the chunked
// HTTP/1.1 body into discrete JSON events, and issues restart requests
// over short-lived connections.
package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// frameReader decodes an HTTP/1.1 chunked-transfer body into raw
// frames. It is a pure function of the bytes it has been given: the
// same byte stream produces the same frames regardless of how it was
// split across reads (spec section 8, testable property for the
// chunked framer).
//
// Each frame is `<hex-size>\r\n<payload>\r\n`. A zero-size frame marks
// the end of the stream.
type frameReader struct {
	r   *bufio.Reader
	buf bytes.Buffer
}

func newFrameReader(r io.Reader) *frameReader {
	return &frameReader{r: bufio.NewReader(r)}
}

// next returns the next frame's payload. io.EOF is returned once the
// zero-size terminating frame has been consumed.
func (f *frameReader) next() ([]byte, error) {
	sizeLine, err := f.r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	sizeLine = trimCRLF(sizeLine)

	var size int
	if _, err := fmt.Sscanf(sizeLine, "%x", &size); err != nil {
		return nil, fmt.Errorf("chunked frame: bad size line %q: %w", sizeLine, err)
	}
	if size == 0 {
		return nil, io.EOF
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(f.r, payload); err != nil {
		return nil, err
	}

	// Trailing CRLF after the payload.
	if _, err := f.r.Discard(2); err != nil {
		return nil, err
	}

	return payload, nil
}

func trimCRLF(s string) string {
	return strings.TrimRight(s, "\r\n")
}
