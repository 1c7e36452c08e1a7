package ircode

import (
	"encoding/base64"
	"encoding/binary"
)

// Broadlink packet framing. The 269/8192 tick scale (one tick ≈ 32.84 µs) is
// the transceiver's hardware clock ratio; downstream devices decode bit-exact
// ticks, so the constants and rounding must be preserved exactly.
const (
	headerIR    = 0x26
	headerRF433 = 0xB2

	tickNumerator   = 269
	tickDenominator = 8192

	terminatorHi = 0x0D
	terminatorLo = 0x05

	// escapeByte introduces a big-endian two-byte tick value.
	escapeByte = 0x00

	// packets are zero-padded to this alignment for transmission.
	packetAlign = 16

	maxTick = 0xFFFF
)

// EncodedCommand is the wire encoding of one command. Always produced by
// Encode, never hand-constructed; Base64 is the persisted field.
type EncodedCommand struct {
	Wire   []byte
	Base64 string
}

// Encode serializes a TimingSequence into the Broadlink wire format and
// base64-wraps it. Encoding is deterministic: identical input yields
// byte-identical output.
func Encode(t TimingSequence) (EncodedCommand, error) {
	if len(t.Pulses) == 0 {
		return EncodedCommand{}, malformed("empty pulse train")
	}
	if t.Repeat > maxRepeat {
		return EncodedCommand{}, malformed("repeat count %d exceeds the one-byte wire field", t.Repeat)
	}

	stream := make([]byte, 0, len(t.Pulses))
	for _, d := range t.Pulses {
		tick := (uint64(d)*tickNumerator + tickDenominator/2) / tickDenominator
		if tick > maxTick {
			return EncodedCommand{}, outOfRange("duration %d µs is %d ticks, above the two-byte escape capacity %d", d, tick, maxTick)
		}
		// A literal zero byte would read back as the escape marker;
		// sub-tick durations round up to one tick.
		if tick == 0 {
			tick = 1
		}
		if tick <= 0xFF {
			stream = append(stream, byte(tick))
		} else {
			stream = append(stream, escapeByte, byte(tick>>8), byte(tick))
		}
	}
	if len(stream) > 0xFFFF {
		return EncodedCommand{}, outOfRange("duration stream is %d bytes, above the two-byte length field", len(stream))
	}

	wire := make([]byte, 0, 4+len(stream)+2+packetAlign)
	wire = append(wire, headerIR, byte(t.Repeat))
	wire = binary.LittleEndian.AppendUint16(wire, uint16(len(stream)))
	wire = append(wire, stream...)
	wire = append(wire, terminatorHi, terminatorLo)
	if rem := len(wire) % packetAlign; rem != 0 {
		wire = append(wire, make([]byte, packetAlign-rem)...)
	}

	return EncodedCommand{
		Wire:   wire,
		Base64: base64.StdEncoding.EncodeToString(wire),
	}, nil
}

// Decode is the inverse of Encode, used for round-trip verification and the
// schema validator's structural checks — never in the production conversion
// path. The reconstructed sequence carries no carrier frequency; durations
// are exact to one wire tick.
func Decode(wire []byte) (TimingSequence, error) {
	if len(wire) < 6 {
		return TimingSequence{}, malformed("packet of %d bytes is shorter than header+terminator", len(wire))
	}
	switch wire[0] {
	case headerIR:
	case headerRF433:
		return TimingSequence{}, unsupported("RF-433 payload (header 0x%02X)", wire[0])
	default:
		return TimingSequence{}, malformed("unknown header byte 0x%02X", wire[0])
	}
	repeat := uint32(wire[1])

	n := int(binary.LittleEndian.Uint16(wire[2:4]))
	if 4+n+2 > len(wire) {
		return TimingSequence{}, malformed("length field promises %d stream bytes, packet has %d left", n, len(wire)-6)
	}
	stream := wire[4 : 4+n]

	pulses := make([]uint32, 0, n)
	for i := 0; i < len(stream); {
		var tick uint32
		if b := stream[i]; b != escapeByte {
			tick = uint32(b)
			i++
		} else {
			if i+3 > len(stream) {
				return TimingSequence{}, malformed("truncated escape sequence at stream offset %d", i)
			}
			tick = uint32(stream[i+1])<<8 | uint32(stream[i+2])
			i += 3
		}
		if tick == 0 {
			return TimingSequence{}, malformed("zero-tick duration in stream")
		}
		pulses = append(pulses, uint32((uint64(tick)*tickDenominator+tickNumerator/2)/tickNumerator))
	}

	if wire[4+n] != terminatorHi || wire[4+n+1] != terminatorLo {
		return TimingSequence{}, malformed("missing terminator after duration stream")
	}
	for _, b := range wire[4+n+2:] {
		if b != 0 {
			return TimingSequence{}, malformed("nonzero padding byte 0x%02X after terminator", b)
		}
	}

	return TimingSequence{Pulses: pulses, Repeat: repeat}, nil
}

// DecodeBase64 strictly decodes a base64 command and parses the wire bytes.
func DecodeBase64(code string) (TimingSequence, error) {
	wire, err := base64.StdEncoding.Strict().DecodeString(code)
	if err != nil {
		return TimingSequence{}, malformed("invalid base64: %v", err)
	}
	return Decode(wire)
}
