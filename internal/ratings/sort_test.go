package ratings

import "testing"

type rated struct {
	name  string
	score *float64
}

func f(v float64) *float64 { return &v }

func names(items []rated) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestSortByScoreNilLast(t *testing.T) {
	items := []rated{
		{"A", f(7.0)},
		{"B", nil},
		{"C", f(9.0)},
	}
	SortByScore(items, func(r rated) *float64 { return r.score })

	want := []string{"C", "A", "B"}
	for i, n := range names(items) {
		if n != want[i] {
			t.Fatalf("order = %v, want %v", names(items), want)
		}
	}
}

func TestSortByScoreStableOnTiesAndNils(t *testing.T) {
	items := []rated{
		{"A", nil},
		{"B", f(5.0)},
		{"C", nil},
		{"D", f(5.0)},
		{"E", f(8.0)},
	}
	SortByScore(items, func(r rated) *float64 { return r.score })

	want := []string{"E", "B", "D", "A", "C"}
	for i, n := range names(items) {
		if n != want[i] {
			t.Fatalf("order = %v, want %v", names(items), want)
		}
	}
}

func TestSortByScoreAllNilKeepsInputOrder(t *testing.T) {
	items := []rated{{"A", nil}, {"B", nil}, {"C", nil}}
	SortByScore(items, func(r rated) *float64 { return r.score })

	want := []string{"A", "B", "C"}
	for i, n := range names(items) {
		if n != want[i] {
			t.Fatalf("order = %v, want %v", names(items), want)
		}
	}
}
