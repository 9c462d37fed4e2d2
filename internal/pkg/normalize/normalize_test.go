package normalize

import "testing"

func TestDegreeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Data Science (M.Sc.)", "DATA SCIENCE MSC"},
		{"data   science  m.sc.", "DATA SCIENCE MSC"},
		{"Πληροφορική", "ΠΛΗΡΟΦΟΡΙΚΗ"},
		{"  B.Sc. Informatics ", "BSC INFORMATICS"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DegreeTitle(tc.in); got != tc.want {
			t.Errorf("DegreeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSkillName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Python", "python"},
		{"C++", "c++"},
		{"C#", "c#"},
		{".NET", ".net"},
		{"scikit-learn", "scikit-learn"},
		{"  Machine   Learning  ", "machine learning"},
		{"SQL (advanced)", "sql advanced"},
	}
	for _, tc := range cases {
		if got := SkillName(tc.in); got != tc.want {
			t.Errorf("SkillName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(" Germany ", "germany") {
		t.Error("trimmed case-insensitive comparison should match")
	}
	if Equal("Germany", "Greece") {
		t.Error("distinct values must not compare equal")
	}
}
