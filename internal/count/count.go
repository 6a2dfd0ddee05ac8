package count

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Counts are the totals for one stream.
type Counts struct {
	Bytes int64
	Lines int64
	Words int64
	Chars int64
}

// Counter tallies bytes, lines and words as raw bytes are written to it and
// characters on the decoded side of a permissive UTF-8 decoder. Call Close
// once the stream is exhausted; Counts is only final after that.
//
// A word is counted when the whitespace that ends it arrives, so a final word
// with no trailing whitespace is never counted.
type Counter struct {
	counts  Counts
	inSpace bool
	chars   runeCounter
	decoder *transform.Writer
	closed  bool
}

func NewCounter() *Counter {
	c := &Counter{inSpace: true}
	c.decoder = transform.NewWriter(&c.chars, unicode.UTF8.NewDecoder())
	return c
}

func (c *Counter) Write(p []byte) (int, error) {
	if c.closed {
		return 0, fmt.Errorf("write on closed counter")
	}
	for _, b := range p {
		if b == '\n' {
			c.counts.Lines++
		}
		if IsSpace(b) {
			if !c.inSpace {
				c.counts.Words++
				c.inSpace = true
			}
		} else if c.inSpace {
			c.inSpace = false
		}
	}
	c.counts.Bytes += int64(len(p))
	if _, err := c.decoder.Write(p); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}
	return len(p), nil
}

// Close flushes a trailing partial character, which counts as one
// replacement character.
func (c *Counter) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.decoder.Close(); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func (c *Counter) Counts() Counts {
	out := c.counts
	out.Chars = int64(c.chars)
	return out
}

// Count drains r and returns its totals.
func Count(r io.Reader) (Counts, error) {
	c := NewCounter()
	if _, err := io.Copy(c, r); err != nil {
		return c.Counts(), err
	}
	if err := c.Close(); err != nil {
		return c.Counts(), err
	}
	return c.Counts(), nil
}

// IsSpace reports ASCII whitespace: space, \t, \n, \v, \f, \r.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// runeCounter counts characters in valid UTF-8 by their leading bytes, so a
// character split across two writes is counted once.
type runeCounter int64

func (n *runeCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if utf8.RuneStart(b) {
			*n++
		}
	}
	return len(p), nil
}
