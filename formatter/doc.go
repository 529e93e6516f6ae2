/*
Package formatter prints the content of a bimap to output devices with
fixed-width fonts, as a two-column table of pairs. It is a debugging and
inspection aid, think of it in terms of `fmt.Println` for bimaps.

Column widths are measured in display cells, not in bytes or runes. Cell
widths follow UAX#29 (graphemes) and UAX#11 (East Asian width), so tables
stay aligned for CJK keys and values as well. Cells exceeding the column width
are truncated with an ellipsis.

Output to interactive terminals is colored; output to anything else is plain
text unless the configuration asks for colors explicitly.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'bimap'.
func T() tracing.Trace {
	return tracing.Select("bimap")
}
