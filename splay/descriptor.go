package splay

// Links is the intrusive linkage record a node carries for one tree.
type Links[N comparable] struct {
	Left   N
	Right  N
	Parent N
}

// Descriptor selects the linkage record and the ordering value of a node.
//
// A node type taking part in two trees implements two descriptors, one for
// each tree. Descriptors should be zero-size types; they carry no state.
type Descriptor[N comparable, V any] interface {
	Links(n N) *Links[N]
	Value(n N) V
}

// Compare is a total order over values: negative if a < b, zero if a and b
// are equal, positive if a > b.
type Compare[V any] func(a, b V) int
