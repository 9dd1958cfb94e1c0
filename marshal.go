package isaac

import (
	"fmt"
	"strconv"
	"strings"
)

// MarshalText encodes the engine state as whitespace-separated decimal
// fields in the reference stream order:
//
//	count res[0] ... res[n-1] mem[0] ... mem[n-1] a b c
//
// for a total of 2n+4 fields, where n is the state size. The encoding
// never fails.
func (e *engine[W, V]) MarshalText() ([]byte, error) {
	// count + 2n words + a b c, up to 20 decimal digits each.
	out := make([]byte, 0, (2*len(e.res)+4)*21)
	out = strconv.AppendInt(out, int64(e.cnt), 10)
	for _, w := range e.res {
		out = append(out, ' ')
		out = strconv.AppendUint(out, uint64(w), 10)
	}
	for _, w := range e.mem {
		out = append(out, ' ')
		out = strconv.AppendUint(out, uint64(w), 10)
	}
	out = append(out, ' ')
	out = strconv.AppendUint(out, uint64(e.a), 10)
	out = append(out, ' ')
	out = strconv.AppendUint(out, uint64(e.b), 10)
	out = append(out, ' ')
	out = strconv.AppendUint(out, uint64(e.c), 10)
	return out, nil
}

// UnmarshalText restores an engine state written by MarshalText. The field
// count must match the engine's state size exactly; a missing, surplus,
// non-numeric or out-of-range field fails the whole operation and leaves
// the engine unchanged. All fields are decoded into scratch state and
// committed only on full success.
func (e *engine[W, V]) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	n := len(e.res)
	want := 2*n + 4
	if len(fields) != want {
		return fmt.Errorf("isaac: state text has %d fields, want %d", len(fields), want)
	}

	cnt, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return fmt.Errorf("isaac: count field: %w", err)
	}
	if cnt > uint64(n) {
		return fmt.Errorf("isaac: count %d exceeds state size %d", cnt, n)
	}

	bitSize := wordBits[W]()
	words := make([]W, 2*n+3)
	for i, f := range fields[1:] {
		v, err := strconv.ParseUint(f, 10, bitSize)
		if err != nil {
			return fmt.Errorf("isaac: state field %d: %w", i+1, err)
		}
		words[i] = W(v)
	}

	copy(e.res, words[:n])
	copy(e.mem, words[n:2*n])
	e.a, e.b, e.c = words[2*n], words[2*n+1], words[2*n+2]
	e.cnt = int(cnt)
	return nil
}
