package isaac

import (
	"strings"
	"testing"
)

// TestMarshalRoundTrip verifies that every reachable state survives the
// text encoding: fresh, mid-batch, exactly exhausted, and after a refill.
func TestMarshalRoundTrip(t *testing.T) {
	advances := []uint64{0, 1, 200, 256, 300}

	for _, n := range advances {
		gen, err := New(Config{Seed: 1234})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		gen.Discard(n)

		text, err := gen.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}

		restored, _ := New(Config{})
		if err := restored.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText() error = %v", err)
		}

		if !gen.Equal(restored) {
			t.Errorf("after %d advances: restored engine differs from original", n)
		}
		if gen.Uint() != restored.Uint() {
			t.Errorf("after %d advances: restored stream diverged", n)
		}
	}
}

func TestMarshalRoundTrip64(t *testing.T) {
	gen, err := New64(Config{Alpha: 4, Seed: 77})
	if err != nil {
		t.Fatalf("New64() error = %v", err)
	}
	gen.Discard(21)

	text, err := gen.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	restored, _ := New64(Config{Alpha: 4})
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !gen.Equal(restored) {
		t.Error("restored engine differs from original")
	}
}

// TestMarshalFormat checks the field layout: count, the output buffer, the
// memory array, then a, b, c.
func TestMarshalFormat(t *testing.T) {
	gen, err := New(Config{Alpha: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text, err := gen.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	fields := strings.Fields(string(text))
	if want := 2*16 + 4; len(fields) != want {
		t.Fatalf("encoded %d fields, want %d", len(fields), want)
	}
	if fields[0] != "16" {
		t.Errorf("count field = %q, want \"16\" for a fresh engine", fields[0])
	}
}

func TestUnmarshalErrors(t *testing.T) {
	gen, err := New(Config{Alpha: 4, Seed: 5})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	text, _ := gen.MarshalText()
	fields := strings.Fields(string(text))

	corrupt := func(mutate func([]string) []string) string {
		fs := append([]string(nil), fields...)
		return strings.Join(mutate(fs), " ")
	}

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"truncated", corrupt(func(fs []string) []string { return fs[:len(fs)-1] })},
		{"surplus field", corrupt(func(fs []string) []string { return append(fs, "7") })},
		{"non-numeric", corrupt(func(fs []string) []string { fs[3] = "banana"; return fs })},
		{"negative", corrupt(func(fs []string) []string { fs[5] = "-1"; return fs })},
		{"word overflow", corrupt(func(fs []string) []string { fs[1] = "4294967296"; return fs })},
		{"count too large", corrupt(func(fs []string) []string { fs[0] = "17"; return fs })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := gen.Clone()
			before := target.Clone()

			if err := target.UnmarshalText([]byte(tt.text)); err == nil {
				t.Fatal("UnmarshalText() should fail")
			}
			if !target.Equal(before) {
				t.Error("failed UnmarshalText() should leave the engine unchanged")
			}
		})
	}
}

// TestUnmarshalWhitespace verifies the decoder accepts any whitespace
// separation, matching the reference stream reader.
func TestUnmarshalWhitespace(t *testing.T) {
	gen, _ := New(Config{Alpha: 4, Seed: 8})
	text, _ := gen.MarshalText()

	padded := "  " + strings.ReplaceAll(string(text), " ", "\n\t ") + "\n"
	restored, _ := New(Config{Alpha: 4})
	if err := restored.UnmarshalText([]byte(padded)); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !gen.Equal(restored) {
		t.Error("restored engine differs from original")
	}
}
