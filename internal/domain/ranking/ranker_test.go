package ranking

import (
	"context"
	"reflect"
	"testing"
)

func sample() []Candidate {
	return []Candidate{
		{Index: 0, Name: "Data Mining", DegreeType: "MSc", Country: "Greece", Language: "English", UniversityID: 1, ProgramID: 10, Score: 0.5},
		{Index: 1, Name: "Algorithms", DegreeType: "BSc", Country: "Greece", Language: "Greek", UniversityID: 1, ProgramID: 11, Score: 0.5},
		{Index: 2, Name: "Machine Learning", DegreeType: "MSc", Country: "Germany", Language: "English", UniversityID: 2, ProgramID: 20, Score: 1.0},
		{Index: 3, Name: "Basket Weaving", DegreeType: "BSc", Country: "Greece", Language: "Greek", UniversityID: 1, ProgramID: 11, Score: 0},
	}
}

func TestRank_ExcludesZeroScores(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{}, 10)
	for _, c := range out {
		if c.Score <= 0 {
			t.Fatalf("zero-score candidate %q survived ranking", c.Name)
		}
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(out))
	}
}

func TestRank_OrderScoreThenName(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{}, 10)
	want := []string{"Machine Learning", "Algorithms", "Data Mining"}
	got := make([]string, 0, len(out))
	for _, c := range out {
		got = append(got, c.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order mismatch: got %v want %v", got, want)
	}
}

func TestRank_Deterministic(t *testing.T) {
	a := Rank(context.Background(), sample(), Filters{}, 10)
	b := Rank(context.Background(), sample(), Filters{}, 10)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two identical ranking calls disagreed")
	}
}

func TestRank_FiltersCaseInsensitive(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{DegreeType: "msc", Country: "GREECE"}, 10)
	if len(out) != 1 || out[0].Name != "Data Mining" {
		t.Fatalf("unexpected filtered result: %v", out)
	}
}

func TestRank_FilterIdempotent(t *testing.T) {
	f := Filters{Country: "Greece", Language: "Greek"}
	once := Rank(context.Background(), sample(), f, 10)
	twice := Rank(context.Background(), once, f, 10)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", once, twice)
	}
}

func TestRank_FilterByIDs(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{UniversityID: 1, ProgramID: 11}, 10)
	if len(out) != 1 || out[0].Name != "Algorithms" {
		t.Fatalf("unexpected result: %v", out)
	}
}

func TestRank_DefaultTopN(t *testing.T) {
	cands := make([]Candidate, 0, 25)
	for i := 0; i < 25; i++ {
		cands = append(cands, Candidate{Index: i, Name: string(rune('a' + i)), Score: 0.5})
	}
	out := Rank(context.Background(), cands, Filters{}, 0)
	if len(out) != DefaultTopN {
		t.Fatalf("expected default cap %d, got %d", DefaultTopN, len(out))
	}
}

func TestRank_TopNTruncates(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{}, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2, got %d", len(out))
	}
	if out[0].Name != "Machine Learning" {
		t.Fatalf("truncation lost the best candidate")
	}
}

func TestRank_EmptyResultIsNotError(t *testing.T) {
	out := Rank(context.Background(), sample(), Filters{Country: "Atlantis"}, 10)
	if out == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected no candidates, got %d", len(out))
	}
}
