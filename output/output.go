// Package output provides read access to captured subcommand output. An
// accessor either wraps text already held in memory or addresses an EBCDIC
// transcript file through a memory map, decoding characters on demand; both
// forms answer the same length, indexing, search, and field-extraction
// operations, so extraction code never cares where the text lives.
//
// Positions are byte offsets into the backing: offsets into the Go string
// for in-memory accessors, offsets into the encoded file image for
// file-backed ones. The code pages used for transcripts map one byte to one
// character, so a position found on one backing means the same thing on the
// other.
package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/zoskit/ipcskit/internal/mmfile"
	"github.com/zoskit/ipcskit/pkg/types"
)

// Output is a read-only view of subcommand output text.
type Output struct {
	back    backing
	path    string
	mapping *mmfile.Mapping
	closed  bool
}

// backing is the closed set of places output text can live.
type backing interface {
	length() int
	// slice returns decoded text for the in-bounds window [start, end).
	slice(start, end int) string
	// find and rfind locate the first (last) occurrence of needle lying
	// entirely inside [start, end), or -1.
	find(needle string, start, end int) int
	rfind(needle string, start, end int) int
	// width is the number of positions needle occupies in this backing.
	width(needle string) int
}

// New returns an accessor over text already held in memory.
func New(text string) *Output {
	return &Output{back: textBacking(text)}
}

// OpenBytes returns an accessor over a raw transcript image, decoding
// characters through cp.
func OpenBytes(data []byte, cp *charmap.Charmap) *Output {
	return &Output{back: &fileBacking{data: data, cp: cp}}
}

// Open maps the transcript file at path and returns an accessor decoding
// characters through cp. The accessor holds the mapping until Close.
func Open(path string, cp *charmap.Charmap) (*Output, error) {
	m, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &Output{
		back:    &fileBacking{data: m.Data, cp: cp},
		path:    path,
		mapping: m,
	}, nil
}

// FileBacked reports whether the accessor reads from a transcript image
// rather than an in-memory string.
func (o *Output) FileBacked() bool {
	_, ok := o.back.(textBacking)
	return !ok
}

// Path returns the transcript file path, or "" for accessors not built
// with Open.
func (o *Output) Path() string { return o.path }

// Close releases a transcript-backed accessor; every later operation on it
// fails with ErrReleased. In-memory accessors have nothing to release and
// ignore Close. Calling Close twice is a no-op.
func (o *Output) Close() error {
	if o.closed || !o.FileBacked() {
		return nil
	}
	o.closed = true
	if o.mapping != nil {
		return o.mapping.Close()
	}
	return nil
}

func (o *Output) ensureOpen() error {
	if o.closed {
		return fmt.Errorf("output: %w", types.ErrReleased)
	}
	return nil
}

// Len returns the length of the output in positions.
func (o *Output) Len() (int, error) {
	if err := o.ensureOpen(); err != nil {
		return 0, err
	}
	return o.back.length(), nil
}

// At returns the one-character string at index i. Negative indexes count
// from the end.
func (o *Output) At(i int) (string, error) {
	if err := o.ensureOpen(); err != nil {
		return "", err
	}
	n := o.back.length()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return "", fmt.Errorf("output: index %d of %d: %w", i, n, types.ErrOutOfBounds)
	}
	return o.back.slice(idx, idx+1), nil
}

// Slice returns the text in [start, end) under slice-expression rules with
// Python's relaxations: negative bounds count from the end and everything
// clamps to the data, so no window is an error.
func (o *Output) Slice(start, end int) (string, error) {
	if err := o.ensureOpen(); err != nil {
		return "", err
	}
	return o.sliceClamped(start, end), nil
}

func (o *Output) sliceClamped(start, end int) string {
	n := o.back.length()
	s, e := clampIndex(start, n), clampIndex(end, n)
	if s >= e {
		return ""
	}
	return o.back.slice(s, e)
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// Find returns the position of the first occurrence of needle lying
// entirely inside [start, end), or -1. A Start below zero is treated as
// zero; End at or below zero means the end of the output.
func (o *Output) Find(needle string, start, end int) (int, error) {
	if err := o.ensureOpen(); err != nil {
		return -1, err
	}
	s, e, ok := searchWindow(start, end, o.back.length())
	if !ok {
		return -1, nil
	}
	return o.back.find(needle, s, e), nil
}

// RFind is Find from the right: the position of the last occurrence of
// needle lying entirely inside [start, end), or -1.
func (o *Output) RFind(needle string, start, end int) (int, error) {
	if err := o.ensureOpen(); err != nil {
		return -1, err
	}
	s, e, ok := searchWindow(start, end, o.back.length())
	if !ok {
		return -1, nil
	}
	return o.back.rfind(needle, s, e), nil
}

// searchWindow normalizes a [start, end) search window against length n.
// ok is false when the window cannot contain anything.
func searchWindow(start, end, n int) (int, int, bool) {
	if start < 0 {
		start = 0
	}
	if end <= 0 || end > n {
		end = n
	}
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

// textBacking holds output produced directly as a Go string.
type textBacking string

func (b textBacking) length() int { return len(b) }

func (b textBacking) slice(start, end int) string { return string(b[start:end]) }

func (b textBacking) find(needle string, start, end int) int {
	i := strings.Index(string(b[start:end]), needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (b textBacking) rfind(needle string, start, end int) int {
	i := strings.LastIndex(string(b[start:end]), needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (b textBacking) width(needle string) int { return len(needle) }

// fileBacking holds a transcript image in the dataset's code page, decoded
// one character at a time. Searches run over the encoded bytes, so a needle
// the code page cannot represent occurs nowhere.
type fileBacking struct {
	data []byte
	cp   *charmap.Charmap
}

func (b *fileBacking) length() int { return len(b.data) }

func (b *fileBacking) slice(start, end int) string {
	var sb strings.Builder
	sb.Grow(end - start)
	for _, by := range b.data[start:end] {
		sb.WriteRune(b.cp.DecodeByte(by))
	}
	return sb.String()
}

func (b *fileBacking) find(needle string, start, end int) int {
	enc, ok := b.encode(needle)
	if !ok {
		return -1
	}
	i := bytes.Index(b.data[start:end], enc)
	if i < 0 {
		return -1
	}
	return start + i
}

func (b *fileBacking) rfind(needle string, start, end int) int {
	enc, ok := b.encode(needle)
	if !ok {
		return -1
	}
	i := bytes.LastIndex(b.data[start:end], enc)
	if i < 0 {
		return -1
	}
	return start + i
}

// width counts characters; in a single-byte code page that is exactly the
// encoded byte width, and it stays defined for needles the page cannot
// encode.
func (b *fileBacking) width(needle string) int {
	return utf8.RuneCountInString(needle)
}

func (b *fileBacking) encode(s string) ([]byte, bool) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		eb, ok := b.cp.EncodeRune(r)
		if !ok {
			return nil, false
		}
		out = append(out, eb)
	}
	return out, true
}
