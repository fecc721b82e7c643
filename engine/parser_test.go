package engine

import (
	"errors"
	"testing"
)

func TestCompile_Valid(t *testing.T) {
	tests := []string{
		"2+3*4",
		"(1+2)*(3+4)",
		"sin(x)",
		"sin((x))",
		"-5",
		"--5",
		"2^3^2",
		"5!",
		"sqrt(16)",
		"min(1, 2, 3)",
		"6×7",
		"8÷2",
		"√(9)",
		"2*π",
		"1.5e3+.25",
		"pow(2, 10)",
	}

	for _, in := range tests {
		if _, err := Compile(in); err != nil {
			t.Fatalf("Compile(%q) error: %v", in, err)
		}
	}
}

func TestCompile_Syntax(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"(2+3",
		"2+3)",
		"2+",
		"*3",
		"sin(",
		"sin 3",
		"1 2",
		"2 @ 3",
		"min(1,)",
	}

	for _, in := range tests {
		_, err := Compile(in)
		if err == nil {
			t.Fatalf("Compile(%q) succeeded, want syntax error", in)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("Compile(%q) error %v, want ErrSyntax", in, err)
		}
	}
}

func TestCompile_GlyphNormalization(t *testing.T) {
	env := NewEnv(Radians)

	tests := []struct {
		in   string
		want float64
	}{
		{in: "6×7", want: 42},
		{in: "8÷2", want: 4},
		{in: "√(16)", want: 4},
		{in: "3−1", want: 2},
	}

	for _, tt := range tests {
		ex, err := Compile(tt.in)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tt.in, err)
		}
		got, err := ex.Eval(env)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Eval(%q)=%g, want %g", tt.in, got, tt.want)
		}
	}
}
