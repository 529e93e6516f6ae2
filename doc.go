/*
Package bimap offers an ordered bidirectional map.

Bimaps

A bimap stores a set of unique (Left, Right) pairs and answers queries from
either side. It behaves like two ordered maps, one from Left to Right and one
from Right to Left, which always agree on membership: every Left value occurs
at most once, every Right value occurs at most once, and a pair is either
present in both views or in none.

Internally each pair lives in exactly one node. The node takes part in two
splay trees at the same time, one ordered by Left values and one ordered by
Right values. Every access moves the accessed node to the root of the tree it
was found in, so frequently used pairs are cheap to reach and no balance
bookkeeping is needed.

	Operation         |   Bimap
	------------------+-----------------------
	Insert            |   O(log n) amortized
	Erase (key)       |   O(log n) amortized
	Erase (iterator)  |   O(log n) amortized
	Find, At, Bounds  |   O(log n) amortized
	Flip iterator     |   O(1)
	Iterate           |   O(n)

Insert allocates exactly one node; no other operation allocates.

Bimaps are not safe for concurrent use. Even lookups restructure the trees, so
concurrent readers need external synchronization as well.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bimap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
