package format

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestCharField(t *testing.T) {
	b := make([]byte, 16)
	FillChars(b, 0, 16, charmap.CodePage1047, ' ')
	PutChars(b, 4, charmap.CodePage1047, "SY1")

	if got := CharField(b, 4, 8, charmap.CodePage1047); got != "SY1" {
		t.Fatalf("CharField = %q, want %q", got, "SY1")
	}
	if got := CharField(b, 8, 8, charmap.CodePage1047); got != "" {
		t.Fatalf("blank field = %q, want empty", got)
	}
}

func TestCharFieldTrimsNULs(t *testing.T) {
	b := make([]byte, 8)
	PutChars(b, 0, charmap.CodePage1047, "JOB1")

	if got := CharField(b, 0, 8, charmap.CodePage1047); got != "JOB1" {
		t.Fatalf("CharField = %q, want %q", got, "JOB1")
	}
}

func TestDecimalField(t *testing.T) {
	b := make([]byte, 4)
	PutChars(b, 0, charmap.CodePage1047, "0301")

	v, err := DecimalField(b, 0, 2, charmap.CodePage1047)
	if err != nil || v != 3 {
		t.Fatalf("DecimalField = %d, %v, want 3, nil", v, err)
	}
	v, err = DecimalField(b, 2, 2, charmap.CodePage1047)
	if err != nil || v != 1 {
		t.Fatalf("DecimalField = %d, %v, want 1, nil", v, err)
	}

	FillChars(b, 0, 4, charmap.CodePage1047, ' ')
	if _, err := DecimalField(b, 0, 2, charmap.CodePage1047); err == nil {
		t.Fatalf("blank field should not parse")
	}
}
