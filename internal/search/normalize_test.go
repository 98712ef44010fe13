// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "testing"

func md(pairs map[string][]string) Metadata {
	m := make(Metadata, len(pairs))
	for field, values := range pairs {
		for _, v := range values {
			m[field] = append(m[field], MetadataValue{Value: v})
		}
	}
	return m
}

func TestNormalizeRemoteTitleFallback(t *testing.T) {
	tests := []struct {
		name    string
		md      Metadata
		display string
		want    string
	}{
		{
			name: "dc.title wins over dcterms.title",
			md: md(map[string][]string{
				"dc.title":      {"Preferred title"},
				"dcterms.title": {"Secondary title"},
			}),
			display: "Display name",
			want:    "Preferred title",
		},
		{
			name: "dcterms.title when dc.title absent",
			md: md(map[string][]string{
				"dcterms.title": {"Secondary title"},
			}),
			display: "Display name",
			want:    "Secondary title",
		},
		{
			name:    "display name when no title field present",
			md:      Metadata{},
			display: "Display name",
			want:    "Display name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NormalizeRemote(tt.md, tt.display, "", "")
			if r.Title != tt.want {
				t.Errorf("Title = %q, want %q", r.Title, tt.want)
			}
		})
	}
}

func TestNormalizeRemoteYearChain(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want int
	}{
		{
			name: "dcterms.issued parses",
			md:   md(map[string][]string{"dcterms.issued": {"2020-05-01"}}),
			want: 2020,
		},
		{
			name: "unparseable dc.date.issued yields absent",
			md:   md(map[string][]string{"dc.date.issued": {"not-a-date"}}),
			want: 0,
		},
		{
			name: "specific field preferred over generic",
			md: md(map[string][]string{
				"dcterms.issued": {"2018"},
				"dc.date.issued": {"2022-01-01"},
			}),
			want: 2018,
		},
		{
			name: "unparseable first candidate falls through to the next",
			md: md(map[string][]string{
				"dcterms.issued": {"n.d."},
				"dc.date.issued": {"2015-06-30"},
			}),
			want: 2015,
		},
		{
			name: "only the first value of the winning field is inspected",
			md: Metadata{
				"dcterms.issued": {{Value: "draft"}, {Value: "2019"}},
				"dc.date.issued": {{Value: "2001"}},
			},
			want: 2001,
		},
		{
			name: "no date fields",
			md:   Metadata{},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NormalizeRemote(tt.md, "", "", "")
			if r.Year != tt.want {
				t.Errorf("Year = %d, want %d", r.Year, tt.want)
			}
		})
	}
}

func TestNormalizeRemoteCountryFirstCandidateWins(t *testing.T) {
	m := md(map[string][]string{
		"cg.coverage.country": {"Colombia", "Peru"},
		"dc.coverage.spatial": {"Latin America"},
	})
	r := NormalizeRemote(m, "", "", "")
	if r.Country != "Colombia" {
		t.Errorf("Country = %q, want %q", r.Country, "Colombia")
	}
}

func TestNormalizeRemoteKeywordsJoinAllValues(t *testing.T) {
	m := md(map[string][]string{
		"cg.subject.agrovoc": {"coffee", "plant diseases", "fungi"},
		"dc.subject":         {"ignored"},
	})
	r := NormalizeRemote(m, "", "", "")
	if r.Keywords != "coffee; plant diseases; fungi" {
		t.Errorf("Keywords = %q", r.Keywords)
	}
}

func TestNormalizeRemoteLink(t *testing.T) {
	r := NormalizeRemote(Metadata{}, "", "10568/12345", "https://cgspace.cgiar.org")
	if r.Link != "https://cgspace.cgiar.org/handle/10568/12345" {
		t.Errorf("Link = %q", r.Link)
	}

	r = NormalizeRemote(Metadata{}, "", "", "https://cgspace.cgiar.org")
	if r.Link != "" {
		t.Errorf("Link = %q, want empty for absent handle", r.Link)
	}
}

func TestNormalizeRemoteMissingFieldsStayAbsent(t *testing.T) {
	r := NormalizeRemote(Metadata{}, "", "", "")
	if r.Title != "" || r.Year != 0 || r.Country != "" || r.Keywords != "" || r.Link != "" {
		t.Errorf("empty metadata should normalize to zero values, got %+v", r)
	}
}

func TestParseYearPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"2020-05-01", 2020, true},
		{"1998", 1998, true},
		{"20200501", 2020, true},
		{"not-a-date", 0, false},
		{"99", 0, false},
		{"20x0", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseYearPrefix(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseYearPrefix(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
