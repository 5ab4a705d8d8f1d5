package cmps

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bAddN     = 1 << 16
	bHotRange = 64 //skewed lookups only touch this many distinct values.
)

var sideEff bool

func keys(seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(bAddN)
}

func BenchmarkSplayTree_Insert(b *testing.B) {
	ks := keys(0)
	for range b.N {
		t := Trees.New[int]()
		for _, k := range ks {
			t.Insert(k)
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	ks := keys(0)
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range ks {
			t.Put(k, nil)
		}
	}
}

func BenchmarkAVL_Insert(b *testing.B) {
	ks := keys(0)
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, k := range ks {
			t.Put(k, nil)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	ks := keys(0)
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, k := range ks {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	ks := keys(0)
	for range b.N {
		t := llrb.New()
		for _, k := range ks {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

// skewed lookups are where splaying pays off: the hot values stay near the root.
func BenchmarkSplayTree_HotContains(b *testing.B) {
	t := Trees.From(sorted())
	hot := keys(1)[:bHotRange]
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Contains(hot[i%bHotRange])
	}
}

func BenchmarkRedBlack_HotContains(b *testing.B) {
	t := redblacktree.NewWithIntComparator()
	for _, k := range sorted() {
		t.Put(k, nil)
	}
	hot := keys(1)[:bHotRange]
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = t.Get(hot[i%bHotRange])
	}
}

func BenchmarkBTree_HotContains(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, k := range sorted() {
		t.ReplaceOrInsert(k)
	}
	hot := keys(1)[:bHotRange]
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(hot[i%bHotRange])
	}
}

func BenchmarkLLRB_HotContains(b *testing.B) {
	t := llrb.New()
	for _, k := range sorted() {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	hot := keys(1)[:bHotRange]
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(llrb.Int(hot[i%bHotRange]))
	}
}

func BenchmarkSplayTree_Remove(b *testing.B) {
	ks := keys(2)
	for range b.N {
		b.StopTimer()
		t := Trees.From(sorted())
		b.StartTimer()
		for _, k := range ks {
			t.Remove(k)
		}
	}
}

func sorted() []int {
	s := make([]int, bAddN)
	for i := range s {
		s[i] = i
	}
	return s
}
