package ircode

import (
	"math"
	"strconv"
	"strings"
)

// Pronto preamble layout: type, carrier reference, "once" burst-pair count,
// "repeat" burst-pair count. Two groups per burst pair follow.
const (
	prontoTypeRaw        = 0x0000 // raw learned code
	prontoTypeRawCarrier = 0x0100 // raw with explicit carrier
	prontoHeaderGroups   = 4

	// One Pronto carrier reference unit is 0.241246 µs. Inherited from the
	// Philips Pronto hardware clock; must not be simplified.
	prontoRefUnitMicros = 0.241246
)

// ParsePronto decodes a Pronto hex string (whitespace-separated 4-digit hex
// groups) into a TimingSequence. Only the raw encodings 0000 and 0100 are
// accepted; protocol-defined Pronto codes need a protocol encoder and fail
// with UnsupportedProtocol.
func ParsePronto(code string) (TimingSequence, error) {
	groups, err := splitProntoGroups(code)
	if err != nil {
		return TimingSequence{}, err
	}
	if len(groups) < prontoHeaderGroups {
		return TimingSequence{}, malformed("pronto code has %d groups, need at least %d", len(groups), prontoHeaderGroups)
	}
	if len(groups)%2 != 0 {
		return TimingSequence{}, malformed("pronto code has odd group count %d", len(groups))
	}

	switch groups[0] {
	case prontoTypeRaw, prontoTypeRawCarrier:
	default:
		return TimingSequence{}, unsupported("pronto type 0x%04X requires a protocol encoder", groups[0])
	}

	ref := groups[1]
	if ref == 0 {
		return TimingSequence{}, malformed("pronto carrier reference is zero")
	}
	carrierHz := uint32(math.Round(1_000_000 / (float64(ref) * prontoRefUnitMicros)))

	oncePairs := int(groups[2])
	repeatPairs := int(groups[3])
	want := prontoHeaderGroups + 2*(oncePairs+repeatPairs)
	if len(groups) != want {
		return TimingSequence{}, malformed("pronto code has %d groups, preamble promises %d", len(groups), want)
	}

	// Each unit is one carrier period; convert to µs via the resolved
	// carrier. The repeat fragment is appended inline: the Broadlink repeat
	// byte retransmits the whole payload, which is not what a Pronto repeat
	// fragment means.
	microsPerUnit := 1_000_000 / float64(carrierHz)
	pulses := make([]uint32, 0, len(groups)-prontoHeaderGroups)
	for _, u := range groups[prontoHeaderGroups:] {
		if u == 0 {
			return TimingSequence{}, malformed("pronto burst contains a zero time unit")
		}
		d := uint32(math.Round(float64(u) * microsPerUnit))
		if d == 0 || d > MaxDurationMicros {
			return TimingSequence{}, malformed("pronto burst of %d units is %d µs, outside (0, %d]", u, d, MaxDurationMicros)
		}
		pulses = append(pulses, d)
	}

	return TimingSequence{Frequency: carrierHz, Pulses: pulses}, nil
}

// splitProntoGroups splits on whitespace and parses each field as exactly
// four hex digits.
func splitProntoGroups(code string) ([]uint16, error) {
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return nil, malformed("empty pronto code")
	}
	groups := make([]uint16, 0, len(fields))
	for _, f := range fields {
		if len(f) != 4 {
			return nil, malformed("pronto group %q is not 4 hex digits", f)
		}
		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, malformed("pronto group %q is not valid hex", f)
		}
		groups = append(groups, uint16(v))
	}
	return groups, nil
}
