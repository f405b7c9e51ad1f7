package measure

import (
	"errors"
	"testing"
)

func TestQueryKeys(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{
			name:     "lens implicit decimal",
			query:    LensQuery{Measure: "+125"},
			expected: "medida:+1.25",
		},
		{
			name:     "lens cilindro",
			query:    LensQuery{Measure: "CILINDRO -0.50"},
			expected: "medida:cil-0.50",
		},
		{
			name:     "ready material measure and adds",
			query:    ReadyQuery{Measure: "-2.75", Adds: "+1,25"},
			expected: "medida:-2.75_adds:+1.25",
		},
		{
			name:     "block integer adds from decimal",
			query:    BlockQuery{Base: "4", Adds: "+2.25"},
			expected: "base:4_adds:225",
		},
		{
			name:     "block adds already integer",
			query:    BlockQuery{Base: " 6 ", Adds: "250"},
			expected: "base:6_adds:250",
		},
		{
			name:     "frame code lowercased",
			query:    FrameQuery{Code: " 8057-A "},
			expected: "8057-a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Key(); got != tt.expected {
				t.Errorf("Key() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		wantField string
	}{
		{"lens empty measure", LensQuery{Measure: "  "}, "medida"},
		{"ready empty measure", ReadyQuery{Adds: "+1.25"}, "medida"},
		{"ready empty adds", ReadyQuery{Measure: "-2.75"}, "adds"},
		{"block empty base", BlockQuery{Adds: "225"}, "base"},
		{"block empty adds", BlockQuery{Base: "4"}, "adds"},
		{"frame empty code", FrameQuery{}, "codigo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}

	valid := []Query{
		LensQuery{Measure: "+1.25"},
		ReadyQuery{Measure: "-2.75", Adds: "+1.25"},
		BlockQuery{Base: "4", Adds: "225"},
		FrameQuery{Code: "8057"},
	}
	for _, q := range valid {
		if err := q.Validate(); err != nil {
			t.Errorf("%T: unexpected validation error: %v", q, err)
		}
	}
}

func TestQueryMatchesStoredVariants(t *testing.T) {
	tests := []struct {
		name   string
		query  Query
		stored string
		want   bool
	}{
		{"lens labeled catalog measure", LensQuery{Measure: "+125"}, "Medida: +1.25", true},
		{"lens bare catalog measure", LensQuery{Measure: "+125"}, "+1.25", true},
		{"lens cil labeled", LensQuery{Measure: "cil -0.50"}, "Medida: cil -0.50", true},
		{"lens cil bare", LensQuery{Measure: "CILINDRO-0.50"}, "cil -0.50", true},
		{"lens mismatch", LensQuery{Measure: "+1.25"}, "Medida: +1.50", false},
		{"ready labeled", ReadyQuery{Measure: "-2.75", Adds: "+1.25"}, "Medida: -2.75_Adds: +1.25", true},
		{"block labeled", BlockQuery{Base: "4", Adds: "+2.25"}, "Base: 4_Adds: 225", true},
		{"block wrong base", BlockQuery{Base: "6", Adds: "225"}, "Base: 4_Adds: 225", false},
		{"frame substring", FrameQuery{Code: "8057"}, "Codigo: 8057 Metal Negro", true},
		{"frame case insensitive", FrameQuery{Code: "metal"}, "Codigo: 8057 Metal Negro", true},
		{"frame no match", FrameQuery{Code: "9999"}, "Codigo: 8057 Metal Negro", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(tt.stored); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestNewQuery(t *testing.T) {
	f := Fields{Measure: "+1.25", Adds: "225", Base: "4", Code: "8057"}

	cases := []struct {
		category string
		want     any
	}{
		{CategoryLens, LensQuery{Measure: "+1.25"}},
		{CategoryReady, ReadyQuery{Measure: "+1.25", Adds: "225"}},
		{CategoryBlock, BlockQuery{Base: "4", Adds: "225"}},
		{CategoryFrame, FrameQuery{Code: "8057"}},
	}

	for _, tt := range cases {
		q, err := NewQuery(tt.category, f)
		if err != nil {
			t.Fatalf("NewQuery(%q) error: %v", tt.category, err)
		}
		if q != tt.want {
			t.Errorf("NewQuery(%q) = %#v, want %#v", tt.category, q, tt.want)
		}
	}

	if _, err := NewQuery("Accesorios", f); err == nil {
		t.Error("expected error for unknown category")
	}
}
