package a2svg

import (
	"testing"

	"github.com/maruel/ut"
)

func TestColorToRGB(t *testing.T) {
	t.Parallel()
	data := []struct {
		color   string
		rgb     []int
		isError bool
	}{
		{"#fff", []int{255, 255, 255}, false},
		{"#FFF", []int{255, 255, 255}, false},
		{"#ffffff", []int{255, 255, 255}, false},
		{"#FFFFFF", []int{255, 255, 255}, false},
		{"#fFfFFf", []int{255, 255, 255}, false},
		{"#000000", []int{0, 0, 0}, false},
		{"#notacolor", nil, true},
		{"alsonotacolor", nil, true},
		{"#ffg", nil, true},
		{"#fffffg", nil, true},
	}

	for i, v := range data {
		r, g, b, err := colorToRGB(v.color)

		switch v.isError {
		case true:
			if err == nil {
				t.Fatalf("test %d (%s): wanted error, got none", i, v.color)
			}
		case false:
			ut.AssertEqualIndex(t, i, nil, err)
			ut.AssertEqualIndex(t, i, v.rgb, []int{r, g, b})
		}
	}
}

func TestAccessibleTextColor(t *testing.T) {
	t.Parallel()
	data := []struct {
		fill string
		want string
	}{
		{"#000000", "#fff"},
		{"#ffffff", "#000"},
		{"#ff0000", "#fff"},
	}

	for i, v := range data {
		got, err := accessibleTextColor(v.fill)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, v.want, got)
	}
}
