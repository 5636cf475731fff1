// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

package brmath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convertml/convertml/internal/braille"
	"github.com/convertml/convertml/internal/tex"
)

func math(body string) string {
	return `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block">` + body + `</math>`
}

// dots formats cells as space separated dot numbers with 0 for a blank.
func dots(s braille.String) string {
	out := s.Dots()
	for i, d := range out {
		if d == "" {
			out[i] = "0"
		}
	}
	return strings.Join(out, " ")
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"superscript", `<msup><mi>x</mi><mn>2</mn></msup>`, "6 1346 34 23"},
		{"sum", `<mi>a</mi><mo>+</mo><mi>b</mi>`, "6 1 0 235 12"},
		{"numbers", `<mn>2</mn><mo>+</mo><mn>2</mn>`, "3456 12 0 235 3456 12"},
		{"decimal", `<mn>3.14</mn>`, "3456 14 2 1 145"},
		{"function", "<mi>sin</mi><mo>\u2061</mo><mi>x</mi>", "1246 234 6 1346"},
		{"square root", `<msqrt><mn>2</mn></msqrt>`, "146 156 3456 12 1456"},
		{"square root inferred row", `<msqrt><mi>x</mi><mo>+</mo><mn>1</mn></msqrt>`, "146 156 6 1346 0 235 3456 1 1456"},
		{"radical", `<mroot><mi>x</mi><mn>3</mn></mroot>`, "146 25 156 6 1346 1456"},
		{"numeric fraction", `<mfrac><mn>1</mn><mn>2</mn></mfrac>`, "3456 1 23"},
		{"simple fraction", `<mfrac><mi>x</mi><mn>2</mn></mfrac>`, "6 1346 1256 23"},
		{
			"complex fraction",
			`<mfrac><mrow><mi>x</mi><mo>+</mo><mn>1</mn></mrow><mi>y</mi></mfrac>`,
			"23 6 1346 0 235 3456 1 0 1256 13456 56",
		},
		{"subscript", `<msub><mi>x</mi><mi>i</mi></msub>`, "6 1346 16 24 156"},
		{"subsuperscript", `<msubsup><mi>x</mi><mn>1</mn><mn>2</mn></msubsup>`, "6 1346 16 2 34 23"},
		{"signed exponent", `<msup><mi>x</mi><mrow><mo>-</mo><mn>1</mn></mrow></msup>`, "6 1346 34 36 2"},
		{
			"big operator limits",
			`<munderover><mo>∑</mo><mrow><mi>i</mi><mo>=</mo><mn>1</mn></mrow><mi>n</mi></munderover>`,
			"456 234 46 16 6 24 0 2356 3456 1 156 46 34 1345 156",
		},
		{"prime", `<msup><mi>f</mi><mo>′</mo></msup>`, "6 124 35"},
		{"overline", `<mover><mi>x</mi><mo>‾</mo></mover>`, "6 1346 45 25"},
		{"letter after number without lower dots", `<mi>a</mi><mn>2</mn><mi>a</mi>`, "6 1 3456 12 6 1"},
		{"letter after number with lower dots", `<mi>x</mi><mn>2</mn><mi>x</mi>`, "6 1346 3456 12 1346"},
		{"greek", `<mi>α</mi>`, "56 1"},
		{"capital greek", `<mi>Ω</mi>`, "456 2456"},
		{"bold", "<mi>\U0001d431</mi>", "6 1456 1346"},
		{"double struck letterlike", `<mi>ℝ</mi>`, "46 12456 1235"},
		{"fraktur", "<mi>\U0001d524</mi>", "5 1245"},
		{"switching alphabets", `<mi>a</mi><mi>A</mi><mi>α</mi>`, "6 1 46 1 56 1"},
		{"unknown tag is skipped", `<mi>x</mi><mtext>if</mtext>`, "6 1346"},
		{"unknown symbol", `<mo>∇</mo>`, "123456"},
		{
			"semantics keeps presentation only",
			`<semantics><mrow><mi>x</mi></mrow><annotation encoding="application/x-tex">x</annotation></semantics>`,
			"6 1346",
		},
		{"style is transparent", `<mstyle displaystyle="true"><mn>1</mn></mstyle>`, "3456 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(math(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, dots(got))
		})
	}
}

func TestRender_Empty(t *testing.T) {
	got, err := Render(math(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unbalanced", `<math><mi>x</math>`, "failed to parse MathML"},
		{"no root", ``, "failed to parse MathML"},
		{"missing denominator", math(`<mfrac><mn>1</mn></mfrac>`), "malformed <mfrac>"},
		{"missing script", math(`<msubsup><mi>x</mi><mn>1</mn></msubsup>`), "malformed <msubsup>"},
		{"empty square root", math(`<msqrt></msqrt>`), "malformed <msqrt>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender_FromMarkup(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{`x^2`, "6 1346 34 23"},
		{`\frac{1}{2}`, "3456 1 23"},
		{`\sqrt{2}`, "146 156 3456 12 1456"},
		{`a - b`, "6 1 0 36 12"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ml, err := tex.RenderToString(tt.expr, tex.Options{DisplayMode: true, ThrowOnError: true})
			require.NoError(t, err)

			got, err := Render(ml)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dots(got))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ε-≥\U0001d549", strings.Map(normalize, "ϵ\u2061−⩾ℝ"))
	assert.Equal(t, "abc", strings.Map(normalize, "a\u2062b\u2064c"))
}

func TestClassify(t *testing.T) {
	l, ok := classify('z')
	require.True(t, ok)
	assert.Equal(t, 25, l.index)
	assert.Equal(t, classifier{scriptLatin, fontNormal, false}, l.class)

	l, ok = classify('\U0001d4d0') // bold script capital A
	require.True(t, ok)
	assert.Equal(t, 0, l.index)
	assert.Equal(t, "46 3456", dots(l.class.prefix()))

	_, ok = classify('1')
	assert.False(t, ok)
	_, ok = classify('∞')
	assert.False(t, ok)
}

func TestHasAffinity(t *testing.T) {
	assert.True(t, hasAffinity('′', scriptSup))
	assert.True(t, hasAffinity('^', scriptOver))
	assert.False(t, hasAffinity('′', scriptSub))
	assert.False(t, hasAffinity('‾', scriptOver))
}
