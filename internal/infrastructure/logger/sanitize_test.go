package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain folder", input: "/shots/sh010_comp", expected: "/shots/sh010_comp"},
		{name: "empty", input: "", expected: ""},
		{name: "unicode kept", input: "/plans/café_タケ_🎬", expected: "/plans/café_タケ_🎬"},
		{name: "newline escaped", input: "ShotA\nERROR: fake", expected: `ShotA\nERROR: fake`},
		{name: "carriage return from progress line", input: "frame=  10 fps=0.0\r", expected: `frame=  10 fps=0.0\r`},
		{name: "tab escaped", input: "a\tb", expected: `a\tb`},
		{name: "null byte", input: "a\x00b", expected: `a\x00b`},
		{name: "ansi colour from encoder", input: "\x1b[31mError\x1b[0m", expected: `\x1b[31mError\x1b[0m`},
		{name: "DEL", input: "x\x7fy", expected: `x\x7fy`},
		{name: "C1 control", input: "x\u0085y", expected: `x\u0085y`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeForLog(tt.input))
		})
	}
}

func TestSanitizeForLog_NoRawControlCharsRemain(t *testing.T) {
	for i := 0; i < 32; i++ {
		out := SanitizeForLog(string(rune(i)))
		for _, r := range out {
			assert.False(t, r < 32, "control char %d leaked", i)
		}
	}
}

func BenchmarkSanitizeForLog(b *testing.B) {
	inputs := map[string]string{
		"clean":    "/shots/sh010/sh010_0001.png",
		"progress": "frame=  240 fps= 48 q=-1.0 Lsize=    2048kB time=00:00:10.00\r",
		"hostile":  "x\nERROR: fake\x1b[31mred",
	}
	for name, in := range inputs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = SanitizeForLog(in)
			}
		})
	}
}
