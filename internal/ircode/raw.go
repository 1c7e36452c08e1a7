package ircode

// trailingSpaceMicros is appended when a raw array omits the final gap
// (Flipper captures end on a mark). One wire clock tick.
const trailingSpaceMicros = 31

// ParseRaw normalizes a raw pulse array into a TimingSequence. Values
// alternate mark/space starting with a mark; a negative value is the space
// of a signed source convention and may only appear at space positions.
// carrierHz comes from the caller's protocol-to-frequency table — the parser
// never infers it.
func ParseRaw(values []int, carrierHz uint32) (TimingSequence, error) {
	if len(values) == 0 {
		return TimingSequence{}, malformed("empty pulse array")
	}
	if carrierHz != 0 && (carrierHz < MinCarrierHz || carrierHz > MaxCarrierHz) {
		return TimingSequence{}, malformed("carrier %d Hz outside IR band [%d, %d]", carrierHz, MinCarrierHz, MaxCarrierHz)
	}

	pulses := make([]uint32, 0, len(values)+1)
	for i, v := range values {
		d := v
		if v < 0 {
			if i%2 == 0 {
				return TimingSequence{}, malformed("space duration %d at mark position %d", v, i)
			}
			d = -v
		}
		if d == 0 || d > MaxDurationMicros {
			return TimingSequence{}, malformed("duration %d µs at position %d, outside (0, %d]", d, i, MaxDurationMicros)
		}
		pulses = append(pulses, uint32(d))
	}

	// Trains ending on a mark get a canonical trailing gap.
	if len(pulses)%2 != 0 {
		pulses = append(pulses, trailingSpaceMicros)
	}

	return TimingSequence{Frequency: carrierHz, Pulses: pulses}, nil
}
