package matching

import (
	"errors"
	"testing"
)

func TestCalculate_EmptyTarget(t *testing.T) {
	_, err := Calculate(nil, []Skill{{ID: 1, Name: "Go"}})
	if !errors.Is(err, ErrNoTargetSkills) {
		t.Fatalf("expected ErrNoTargetSkills, got %v", err)
	}
}

func TestCalculate_FullMatch(t *testing.T) {
	target := []Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}}
	candidate := []Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}, {ID: 3, Name: "Databases"}}

	res, err := Calculate(target, candidate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 1.0 {
		t.Fatalf("expected score 1.0, got %v", res.Score)
	}
	if len(res.Matched) != 2 || res.Matched[0].Name != "Python" || res.Matched[1].Name != "SQL" {
		t.Fatalf("unexpected matched skills: %v", res.Matched)
	}
	if len(res.New) != 1 || res.New[0].Name != "Databases" {
		t.Fatalf("unexpected new skills: %v", res.New)
	}
}

func TestCalculate_NoOverlap(t *testing.T) {
	target := []Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}}
	candidate := []Skill{{ID: 4, Name: "Java"}}

	res, err := Calculate(target, candidate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if len(res.Matched) != 0 || len(res.Compatible) != 0 {
		t.Fatalf("expected no matched/compatible skills")
	}
	if len(res.New) != 1 {
		t.Fatalf("expected candidate skills to land in New, got %v", res.New)
	}
}

func TestCalculate_PartialMatch(t *testing.T) {
	target := []Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}, {ID: 5, Name: "Statistics"}}
	candidate := []Skill{{ID: 2, Name: "SQL"}}

	res, err := Calculate(target, candidate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := 1.0 / 3.0
	if res.Score != want {
		t.Fatalf("expected score %v, got %v", want, res.Score)
	}
}

func TestCalculate_PartitionCoversCandidateSet(t *testing.T) {
	target := []Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}}
	candidate := []Skill{
		{ID: 2, Name: "SQL"},
		{ID: 3, Name: "Databases"},
		{ID: 6, Name: "Algebra"},
		{ID: 3, Name: "Databases"}, // duplicate collapses
	}

	res, err := Calculate(target, candidate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	seen := map[int]int{}
	for _, s := range res.Compatible {
		seen[s.ID]++
	}
	for _, s := range res.New {
		seen[s.ID]++
	}
	if len(seen) != 3 {
		t.Fatalf("expected partition over 3 distinct skills, got %d", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("skill %d appears %d times across partition", id, n)
		}
	}
}

func TestCalculate_ScoreBounds(t *testing.T) {
	target := []Skill{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}
	cases := [][]Skill{
		nil,
		{{ID: 1, Name: "a"}},
		{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}, {ID: 4, Name: "d"}},
	}
	for i, candidate := range cases {
		res, err := Calculate(target, candidate)
		if err != nil {
			t.Fatalf("case %d: unexpected err: %v", i, err)
		}
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("case %d: score out of range: %v", i, res.Score)
		}
	}
}

func TestCalculate_ResultsSortedByName(t *testing.T) {
	target := []Skill{{ID: 1, Name: "Zig"}, {ID: 2, Name: "Ada"}}
	candidate := []Skill{{ID: 1, Name: "Zig"}, {ID: 2, Name: "Ada"}, {ID: 9, Name: "ml"}, {ID: 8, Name: "AI"}}

	res, err := Calculate(target, candidate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Matched[0].Name != "Ada" || res.Matched[1].Name != "Zig" {
		t.Fatalf("matched not sorted: %v", res.Matched)
	}
	if res.New[0].Name != "AI" || res.New[1].Name != "ml" {
		t.Fatalf("new not sorted case-insensitively: %v", res.New)
	}
}
