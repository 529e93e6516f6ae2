package splay

import (
	"math/rand"
	"testing"
)

func BenchmarkInsertRandom(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := newIntTree(b)
	keys := r.Perm(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(&intNode{val: keys[i]})
	}
}

func BenchmarkLookupSkewed(b *testing.B) {
	tree := newIntTree(b)
	for i := 0; i < 1<<16; i++ {
		tree.Insert(&intNode{val: i})
	}
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// 90% of accesses hit a small hot set
		key := r.Intn(64)
		if r.Intn(10) == 0 {
			key = r.Intn(1 << 16)
		}
		tree.Lookup(key)
	}
}
