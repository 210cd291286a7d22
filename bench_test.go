package kdtree

import "testing"

func BenchmarkInsert(b *testing.B) {
	tree, _ := New[Vector[int], int](Of[int](2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(Vector[int]{i % 4096, i / 4096}, i)
	}
}

func BenchmarkFind(b *testing.B) {
	tree, _ := New[Vector[int], int](Of[int](2))
	for i := 0; i < 4096; i++ {
		tree.Insert(Vector[int]{i % 64, i / 64}, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find(Vector[int]{i % 64, (i / 64) % 64})
	}
}

func BenchmarkFindMin(b *testing.B) {
	tree, _ := New[Vector[int], int](Of[int](2))
	for i := 0; i < 4096; i++ {
		tree.Insert(Vector[int]{i % 64, i / 64}, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.FindMin(i)
	}
}
