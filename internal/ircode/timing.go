package ircode

// Duration and carrier bounds. Durations outside the range indicate a
// malformed source code and are rejected, never clamped.
const (
	// MaxDurationMicros is the ceiling for a single mark or space.
	MaxDurationMicros = 100_000
	// MinCarrierHz / MaxCarrierHz bound the plausible IR carrier band.
	MinCarrierHz = 10_000
	MaxCarrierHz = 100_000
	// maxRepeat is the largest retransmission count the wire format can
	// carry (a single byte).
	maxRepeat = 0xFF
)

// TimingSequence is a pulse train: durations in microseconds, alternating
// mark/space with the first entry always a mark. Frequency is the carrier in
// Hz (0 = unspecified/unmodulated). Repeat is how many times the transceiver
// retransmits the payload. Sequences are built once by a parser and never
// mutated afterwards.
type TimingSequence struct {
	Frequency uint32
	Pulses    []uint32
	Repeat    uint32
}

// IsWellFormed reports whether the sequence satisfies the structural
// invariants: at least two pulses, every duration in (0, MaxDurationMicros],
// and a carrier that is either 0 or inside the IR band.
func (t TimingSequence) IsWellFormed() bool {
	if len(t.Pulses) < 2 {
		return false
	}
	for _, d := range t.Pulses {
		if d == 0 || d > MaxDurationMicros {
			return false
		}
	}
	if t.Frequency != 0 && (t.Frequency < MinCarrierHz || t.Frequency > MaxCarrierHz) {
		return false
	}
	return true
}
