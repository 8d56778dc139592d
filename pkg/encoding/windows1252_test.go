package encoding

import "testing"

func TestWindows1252ToUTF8(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252.
	got := Windows1252ToUTF8([]byte("45\xb0 Ramp 2x"))
	want := "45° Ramp 2x"
	if got != want {
		t.Errorf("Windows1252ToUTF8() = %q, want %q", got, want)
	}
}

func TestUTF8ToWindows1252RoundTrip(t *testing.T) {
	in := "-25° Ramp Corner"
	enc := UTF8ToWindows1252(in)
	if len(enc) != len(in)-1 {
		t.Errorf("encoded length = %d, want %d", len(enc), len(in)-1)
	}
	if got := Windows1252ToUTF8(enc); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestTrimLineEnding(t *testing.T) {
	tests := map[string]string{
		"1x1\r\n": "1x1",
		"1x1\n":   "1x1",
		"1x1":     "1x1",
		"\r\n":    "",
	}
	for in, want := range tests {
		if got := TrimLineEnding(in); got != want {
			t.Errorf("TrimLineEnding(%q) = %q, want %q", in, got, want)
		}
	}
}
