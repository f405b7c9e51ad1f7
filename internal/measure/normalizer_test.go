package measure

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "missing decimal positive",
			input:    "+150",
			expected: "+1.50",
		},
		{
			name:     "missing decimal negative",
			input:    "-450",
			expected: "-4.50",
		},
		{
			name:     "already decimal untouched",
			input:    "+1.50",
			expected: "+1.50",
		},
		{
			name:     "two digit number untouched",
			input:    "+15",
			expected: "+15",
		},
		{
			name:     "four digit number untouched",
			input:    "+1500",
			expected: "+1500",
		},
		{
			name:     "comma as decimal separator",
			input:    "+1,50",
			expected: "+1.50",
		},
		{
			name:     "spaces inside compound measure",
			input:    "+1.50 -1.50",
			expected: "+1.50-1.50",
		},
		{
			name:     "space inside broken decimal",
			input:    "+1.50 -4. 50",
			expected: "+1.50-4.50",
		},
		{
			name:     "back to back implicit decimals",
			input:    "+150-450",
			expected: "+1.50-4.50",
		},
		{
			name:     "cilindro keyword uppercase",
			input:    "CILINDRO -0.25",
			expected: "cil -0.25",
		},
		{
			name:     "cil keyword no space",
			input:    "cil-0.25",
			expected: "cil -0.25",
		},
		{
			name:     "cil keeps single following space",
			input:    "cil  -0.50",
			expected: "cil -0.50",
		},
		{
			name:     "mixed case cil",
			input:    "Cil -0.50",
			expected: "cil -0.50",
		},
		{
			name:     "lowercases result",
			input:    "Medida: +1.25",
			expected: "medida:+1.25",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "unique measure unchanged",
			input:    "Única",
			expected: "única",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"+150",
		"-450",
		"+1,50",
		"cil  -0.25",
		"CILINDRO -0.25",
		"+1.50 -1.50",
		"Medida: +1.25",
		"Medida: cil -0.50",
		"Base: 4_Adds: 225",
		"Única",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeEquivalences(t *testing.T) {
	pairs := []struct {
		name string
		a, b string
	}{
		{"comma vs point", "+1,50", "+1.50"},
		{"extra spaces after cil", "cil  -0.25", "cil -0.25"},
		{"compound spacing", "+1.50 -1.50", "+1.50-1.50"},
		{"cilindro vs cil", "CILINDRO -0.25", "cil-0.25"},
		{"implicit vs explicit decimal", "+125", "+1.25"},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if Normalize(tt.a) != Normalize(tt.b) {
				t.Errorf("expected %q and %q to normalize identically, got %q and %q",
					tt.a, tt.b, Normalize(tt.a), Normalize(tt.b))
			}
		})
	}
}

func TestNormalizeBlockAdds(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+1.50", "150"},
		{"-1.50", "150"},
		{"1,50", "150"},
		{"225", "225"},
		{"2.25", "225"},
		{" +2,50 ", "250"},
	}

	for _, tt := range tests {
		result := NormalizeBlockAdds(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeBlockAdds(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
