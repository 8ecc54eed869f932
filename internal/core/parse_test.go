package core

import (
	"errors"
	"testing"
)

func TestParseMeasure(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"", 0, true}, // missing value
		{"10", 10, true},
		{"12.5", 12.5, true},
		{" 3 ", 3, true},
		{"-1.25", -1.25, true},
		{"1e3", 1000, true},
		{"  ", 0, false}, // whitespace is not empty
		{"bad", 0, false},
		{"1,5", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMeasure(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("%q expected ErrInvalidNumber, got %v", tc.in, err)
			}
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1412175000", 1412175000, true},
		{"1,412,175,000", 1412175000, true},
		{" 42 ", 42, true},
		{"1234.0", 1234, true},
		{"1234.5", 0, false},
		{"", 0, false},
		{"n/a", 0, false},
		{"1e300", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseCount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}
