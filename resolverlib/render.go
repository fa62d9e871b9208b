package resolverlib

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alecthomas/repr"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/line"
)

// Render prints ln's text with the given attribute types annotated under
// each token they cover, one tabwriter-aligned row per token: index,
// token text, then one column per requested type holding "*" if an
// occurrence of that type covers the token and blank otherwise. The
// attribute values themselves are not printed. Adapted from the teacher's
// sqltest.DumpRows, which aligns one tabwriter row per result row with
// repr-rendered string values; here one row is one token and the
// "columns" are the requested attribute types.
func Render(w io.Writer, ln *line.Line, types ...attrstore.AttrType) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "idx\ttoken\t"
	for _, t := range types {
		header += t.String() + "\t"
	}
	fmt.Fprintln(tw, header)

	for i, tok := range ln.Tokens() {
		row := fmt.Sprintf("%d\t%s\t", i, repr.String(tok.Text))
		for _, t := range types {
			row += reprAttrAt(ln, t, i) + "\t"
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}

// RenderString is Render writing to a string instead of an io.Writer, for
// test failure messages.
func RenderString(ln *line.Line, types ...attrstore.AttrType) string {
	var buf bytes.Buffer
	Render(&buf, ln, types...)
	return buf.String()
}

func reprAttrAt(ln *line.Line, t attrstore.AttrType, tokenIdx int) string {
	for _, rng := range attrstore.RangesOfTypeErased(ln.Store(), t) {
		if rng.Contains(tokenIdx) {
			return "*"
		}
	}
	return ""
}
