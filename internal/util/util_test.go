package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Sunset Over Hills!", want: "sunset-over-hills"},
		{in: "  Hello    World  ", want: "hello-world"},
		{in: "__a__b--c", want: "a-b-c"},
		{in: "Rock & Roll -- Live!!", want: "rock-roll-live"},
		{in: "Tab\tand\nnewline", want: "tab-and-newline"},
		{in: "vertical\vtab", want: "vertical-tab"},
		{in: "unit\x1fsep\x1cfile", want: "unit-sep-file"},
		{in: "next\u0085line", want: "next-line"},
		{in: "line\u2028para\u2029end", want: "line-para-end"},
		{in: "no\u00a0break", want: "no-break"},
		{in: "Café Noir", want: "café-noir"},
		{in: "Mona Lisa (1503)", want: "mona-lisa-1503"},
		{in: "!!!", want: ""},
		{in: "", want: ""},
		{in: "already-a-slug", want: "already-a-slug"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	t.Parallel()

	once := Slugify("  The -- Starry_Night? ")
	assert.Equal(t, "the-starry-night", once)
	assert.Equal(t, once, Slugify(once))
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	from, limit := Calculate(0, 0)
	assert.Equal(t, 0, from)
	assert.Equal(t, DefaultPageSize, limit)

	from, limit = Calculate(3, 10)
	assert.Equal(t, 20, from)
	assert.Equal(t, 10, limit)

	_, limit = Calculate(1, 1000)
	assert.Equal(t, MaxPageSize, limit)
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, ParseIntDefault("", 5))
	assert.Equal(t, 5, ParseIntDefault("five", 5))
	assert.Equal(t, 12, ParseIntDefault("12", 5))
}
