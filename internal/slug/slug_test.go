package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Intro to Go", "intro-to-go"},
		{"  Hello,   World!  ", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"C++ & Rust: a comparison", "c-rust-a-comparison"},
		{"100 Days of Code", "100-days-of-code"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
