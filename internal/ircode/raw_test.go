package ircode

import "testing"

func TestParseRaw_FlipperStyle(t *testing.T) {
	// Flipper captures end on a mark; the parser appends a trailing gap.
	values := []int{9024, 4512, 564, 564, 564, 1692, 564}
	seq, err := ParseRaw(values, 38000)
	if err != nil {
		t.Fatalf("ParseRaw: %v", err)
	}
	if len(seq.Pulses) != 8 {
		t.Fatalf("got %d pulses, want 8 (trailing space appended)", len(seq.Pulses))
	}
	if seq.Pulses[7] != trailingSpaceMicros {
		t.Fatalf("trailing space = %d µs, want %d", seq.Pulses[7], trailingSpaceMicros)
	}
	if seq.Frequency != 38000 {
		t.Fatalf("carrier = %d, want caller-resolved 38000", seq.Frequency)
	}
	if !seq.IsWellFormed() {
		t.Fatalf("parsed sequence not well-formed: %+v", seq)
	}
}

func TestParseRaw_SignedConvention(t *testing.T) {
	seq, err := ParseRaw([]int{9024, -4512, 564, -564}, 38000)
	if err != nil {
		t.Fatalf("ParseRaw: %v", err)
	}
	if seq.Pulses[1] != 4512 {
		t.Fatalf("space = %d µs, want sign-normalized 4512", seq.Pulses[1])
	}
}

func TestParseRaw_Failures(t *testing.T) {
	cases := []struct {
		name    string
		values  []int
		carrier uint32
	}{
		{"empty", nil, 38000},
		{"zero duration", []int{9024, 0, 564}, 38000},
		{"above ceiling", []int{9024, 4512, 200_000}, 38000},
		{"negative at mark position", []int{-9024, 4512}, 38000},
		{"carrier below band", []int{9024, 4512}, 9_000},
		{"carrier above band", []int{9024, 4512}, 455_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRaw(tc.values, tc.carrier)
			if kind, ok := KindOf(err); !ok || kind != MalformedInput {
				t.Fatalf("expected MalformedInput, got %v", err)
			}
		})
	}
}

func TestIsWellFormed(t *testing.T) {
	cases := []struct {
		name string
		seq  TimingSequence
		want bool
	}{
		{"ok", TimingSequence{Frequency: 38000, Pulses: []uint32{9000, 4500}}, true},
		{"ok unmodulated", TimingSequence{Pulses: []uint32{9000, 4500}}, true},
		{"single pulse", TimingSequence{Pulses: []uint32{9000}}, false},
		{"zero duration", TimingSequence{Pulses: []uint32{9000, 0}}, false},
		{"duration above ceiling", TimingSequence{Pulses: []uint32{9000, 100_001}}, false},
		{"carrier below band", TimingSequence{Frequency: 9_999, Pulses: []uint32{9000, 4500}}, false},
		{"carrier above band", TimingSequence{Frequency: 100_001, Pulses: []uint32{9000, 4500}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seq.IsWellFormed(); got != tc.want {
				t.Fatalf("IsWellFormed() = %v, want %v", got, tc.want)
			}
		})
	}
}
