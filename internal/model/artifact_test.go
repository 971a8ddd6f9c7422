package model

import "testing"

func TestNormalizeJavaVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "1.8.0_292", want: "8"},
		{in: "1.8", want: "8"},
		{in: "11", want: "11"},
		{in: "17.0.2", want: "17.0.2"},
		{in: "", want: ""},
		{in: "   ", want: "   "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			if got := NewArtifact("a.zip", "", "", tc.in).JavaVersion(); got != tc.want {
				t.Fatalf("NormalizeJavaVersion(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
