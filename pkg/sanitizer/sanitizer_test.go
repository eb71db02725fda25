package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Dana Levi  ",
			want:  "Dana Levi",
		},
		{
			name:  "multiple spaces between words",
			input: "Dana    Levi",
			want:  "Dana Levi",
		},
		{
			name:  "tabs and newlines",
			input: "Dana\t\nLevi",
			want:  "Dana Levi",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	input := "  Dana   Levi "
	once := NormalizeName(input)
	twice := NormalizeName(once)

	if once != twice {
		t.Errorf("NormalizeName must be idempotent: %q != %q", once, twice)
	}
}
