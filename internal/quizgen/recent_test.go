package quizgen

import "testing"

func TestRecent_Eviction(t *testing.T) {
	r := NewRecent(3)
	for _, id := range []string{"a", "b", "c", "d"} {
		r.Remember(id)
	}

	if r.Contains("a") {
		t.Fatal("oldest id should be evicted")
	}
	for _, id := range []string{"b", "c", "d"} {
		if !r.Contains(id) {
			t.Fatalf("expected %q in window", id)
		}
	}
	if r.Len() != 3 {
		t.Fatalf("expected window of 3, got %d", r.Len())
	}
}

func TestRecent_DefaultCapacity(t *testing.T) {
	r := NewRecent(0)
	for i := range RecentWindow + 1 {
		r.Remember(string(rune('a' + i)))
	}
	if r.Len() != RecentWindow {
		t.Fatalf("expected default window of %d, got %d", RecentWindow, r.Len())
	}
}
