package domain

import "testing"

func TestCapitalizeWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"senior software engineer", "Senior Software Engineer"},
		{"ACME CORP", "Acme Corp"},
		{"école polytechnique", "École Polytechnique"},
		{"über  gmbh", "Über  Gmbh"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CapitalizeWords(tc.in); got != tc.want {
			t.Fatalf("CapitalizeWords(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
