package repository

import (
	"reflect"
	"testing"
)

func TestParseDegreeTitles(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []DegreeTitle
	}{
		{
			name: "array of strings",
			raw:  `["Data Science", " Datenwissenschaft "]`,
			want: []DegreeTitle{{Title: "Data Science"}, {Title: "Datenwissenschaft"}},
		},
		{
			name: "object keyed by language",
			raw:  `{"en": "Data Science", "de": "Datenwissenschaft"}`,
			want: []DegreeTitle{{Language: "de", Title: "Datenwissenschaft"}, {Language: "en", Title: "Data Science"}},
		},
		{
			name: "bare string",
			raw:  `"Data Science"`,
			want: []DegreeTitle{{Title: "Data Science"}},
		},
		{
			name: "empty input",
			raw:  "",
			want: []DegreeTitle{},
		},
		{
			name: "json null",
			raw:  "null",
			want: []DegreeTitle{},
		},
		{
			name: "unexpected shape",
			raw:  `[{"nested": true}]`,
			want: []DegreeTitle{},
		},
		{
			name: "blank entries dropped",
			raw:  `["", "  ", "Informatics"]`,
			want: []DegreeTitle{{Title: "Informatics"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDegreeTitles([]byte(tc.raw))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseDegreeTitles(%s) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestProgramDisplayTitle(t *testing.T) {
	p := Program{Titles: []DegreeTitle{
		{Language: "de", Title: "Datenwissenschaft"},
		{Language: "en", Title: "Data Science"},
	}}
	if got := p.DisplayTitle(); got != "Data Science" {
		t.Errorf("DisplayTitle() = %q, want the English title", got)
	}

	p.Titles = p.Titles[:1]
	if got := p.DisplayTitle(); got != "Datenwissenschaft" {
		t.Errorf("DisplayTitle() = %q, want the first declared title", got)
	}

	if got := (Program{}).DisplayTitle(); got != "" {
		t.Errorf("DisplayTitle() on no titles = %q", got)
	}
}
