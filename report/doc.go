/*
Package report renders measurement series as charts and tables.

Charts are drawn with characters for terminals, one glyph and one color per
series. Series may also be exported as CSV for external plotting tools.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bst.report'.
func tracer() tracing.Trace {
	return tracing.Select("bst.report")
}
