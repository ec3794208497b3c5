package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CharField decodes the n-byte text field at off through cp and trims the
// blank and NUL padding fixed fields carry on the right.
func CharField(b []byte, off, n int, cp *charmap.Charmap) string {
	var sb strings.Builder
	sb.Grow(n)
	for _, by := range b[off : off+n] {
		sb.WriteRune(cp.DecodeByte(by))
	}
	return strings.TrimRight(sb.String(), " \x00")
}

// DecimalField parses the n-character field at off as decimal text, the way
// version and release are recorded.
func DecimalField(b []byte, off, n int, cp *charmap.Charmap) (int, error) {
	return strconv.Atoi(strings.TrimSpace(CharField(b, off, n, cp)))
}
