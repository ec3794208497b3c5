package output

import (
	"fmt"

	"github.com/zoskit/ipcskit/hex"
	"github.com/zoskit/ipcskit/pkg/types"
)

// FieldOpts bounds and tunes a field extraction. The zero value means: no
// separator between label and value, search the whole output.
type FieldOpts struct {
	// Sep is the text expected between the label and the value. Only its
	// width matters; the characters it covers are skipped, not verified.
	Sep string
	// Start and End bound the label search, like the window of Find. End at
	// or below zero means the end of the output.
	Start int
	End   int
}

// Field is one extracted value and where it was found. The value always
// equals Slice(Start, End) on the accessor that produced it. When Found is
// false both indexes are -1 and Value is empty.
type Field struct {
	Value string
	Start int
	End   int
	Found bool
}

var notFound = Field{Start: -1, End: -1}

// Hex parses the field as a hexadecimal value. A Field that was not found
// does not parse.
func (f Field) Hex() (hex.Value, error) {
	if !f.Found {
		return hex.Value{}, fmt.Errorf("output: field not found: %w", types.ErrInvalidValue)
	}
	return hex.Parse(f.Value)
}

// Field locates the first occurrence of label inside the window, skips the
// label and separator, and returns everything up to the next endMark. The
// endMark must also lie inside the window; a label or endMark that does not
// occur yields a not-found Field, never an error.
func (o *Output) Field(label, endMark string, opts FieldOpts) (Field, error) {
	return o.delimited(label, endMark, opts, false)
}

// RField is Field anchored on the last occurrence of label inside the
// window. The value still reads forward from that label.
func (o *Output) RField(label, endMark string, opts FieldOpts) (Field, error) {
	return o.delimited(label, endMark, opts, true)
}

// FieldN locates the first occurrence of label inside the window, skips the
// label and separator, and returns the next n characters. The value may run
// past the window's end; it clamps only to the data itself.
func (o *Output) FieldN(label string, n int, opts FieldOpts) (Field, error) {
	return o.fixed(label, n, opts, false)
}

// RFieldN is FieldN anchored on the last occurrence of label inside the
// window.
func (o *Output) RFieldN(label string, n int, opts FieldOpts) (Field, error) {
	return o.fixed(label, n, opts, true)
}

func (o *Output) delimited(label, endMark string, opts FieldOpts, backward bool) (Field, error) {
	cur, end, err := o.anchor(label, opts, backward)
	if err != nil || cur < 0 {
		return notFound, err
	}
	if cur > end {
		return notFound, nil
	}
	stop := o.back.find(endMark, cur, end)
	if stop < 0 {
		return notFound, nil
	}
	return Field{Value: o.back.slice(cur, stop), Start: cur, End: stop, Found: true}, nil
}

func (o *Output) fixed(label string, n int, opts FieldOpts, backward bool) (Field, error) {
	cur, _, err := o.anchor(label, opts, backward)
	if err != nil || cur < 0 {
		return notFound, err
	}
	stop := cur + n
	return Field{Value: o.sliceClamped(cur, stop), Start: cur, End: stop, Found: true}, nil
}

// anchor finds the label inside the opts window and returns the cursor just
// past the label and separator, plus the normalized window end. A cursor of
// -1 means the label does not occur.
func (o *Output) anchor(label string, opts FieldOpts, backward bool) (int, int, error) {
	if err := o.ensureOpen(); err != nil {
		return -1, 0, err
	}
	start, end, ok := searchWindow(opts.Start, opts.End, o.back.length())
	if !ok {
		return -1, 0, nil
	}
	var idx int
	if backward {
		idx = o.back.rfind(label, start, end)
	} else {
		idx = o.back.find(label, start, end)
	}
	if idx < 0 {
		return -1, 0, nil
	}
	return idx + o.back.width(label) + o.back.width(opts.Sep), end, nil
}
