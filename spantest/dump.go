package spantest

import (
	"fmt"
	"strings"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/resolverlib"
)

// DumpAttrs renders every line of f.Doc with the given attribute types
// annotated, for inclusion in a test failure message. Adapted from the
// teacher's QueryDump, which bracketed a DumpRows call with a query
// banner; here each line's text stands in for the banner.
func (f *Fixture) DumpAttrs(types ...attrstore.AttrType) string {
	var b strings.Builder
	for i, ln := range f.Doc.Lines() {
		fmt.Fprintf(&b, "=== line %d: %q ===\n", i, ln.Text())
		b.WriteString(resolverlib.RenderString(ln, types...))
	}
	return b.String()
}
