package svgconv

import (
	"errors"
	"math"
	"testing"
)

func TestResolveLength(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"72pt", 72},
		{"1in", 72},
		{"2.54cm", 72},
		{"25.4mm", 72},
		{"1pc", 12},
		{"96px", 72},
		{"101.6Q", 72},
		{"10", 10}, // user units are points
		{" 4pt ", 4},
		{"-3", -3},
	} {
		got, err := resolveLength(test.in, "pt")
		if err != nil {
			t.Fatalf("resolveLength(%q): %s", test.in, err)
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Fatalf("resolveLength(%q) = %g, want %g", test.in, got, test.want)
		}
	}
}

func TestRelativeUnits(t *testing.T) {
	for _, in := range []string{"2em", "1.5ex", "10vmin", "3rem"} {
		_, err := resolveLength(in, "pt")
		var unsupported UnsupportedFeatureError
		if !errors.As(err, &unsupported) {
			t.Fatalf("resolveLength(%q) should report an unsupported unit, got %v", in, err)
		}
	}
}

func TestInvalidLengths(t *testing.T) {
	for _, in := range []string{"3foo", "abc", "", "..1pt"} {
		_, err := resolveLength(in, "pt")
		var format FormatError
		if !errors.As(err, &format) {
			t.Fatalf("resolveLength(%q) should fail with a format error, got %v", in, err)
		}
	}
}

func TestResolveAngle(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"90deg", math.Pi / 2},
		{"100grad", math.Pi / 2},
		{"0.25turn", math.Pi / 2},
		{"1rad", 1},
		{"180", math.Pi}, // degrees by default
	} {
		got, err := resolveAngle(test.in, "deg")
		if err != nil {
			t.Fatalf("resolveAngle(%q): %s", test.in, err)
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Fatalf("resolveAngle(%q) = %g, want %g", test.in, got, test.want)
		}
	}

	if _, err := resolveAngle("1pt", "deg"); err == nil {
		t.Fatal("length units are not angles")
	}
}

func TestParseRootLength(t *testing.T) {
	got, err := parseRootLength("2cm")
	if err != nil {
		t.Fatal(err)
	}
	if got.Percent || !got.IsSet || math.Abs(got.Value-2*72/2.54) > 1e-9 {
		t.Fatalf("unexpected length %v", got)
	}

	got, err = parseRootLength("50%")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Percent || got.Value != 0.5 {
		t.Fatalf("unexpected percentage %v", got)
	}

	got, err = parseRootLength("")
	if err != nil || got.IsSet {
		t.Fatalf("an absent dimension resolves to the zero Length, got %v, %v", got, err)
	}
}
