package service

import "strings"

// defaultCarrierHz is the fallback for protocol tags absent from the table;
// nearly all consumer IR remotes modulate at 38 kHz.
const defaultCarrierHz = 38_000

// defaultProtocolHz maps the common source protocol tags to their carrier.
// The table is policy, not engine knowledge: callers may replace it via
// Config.ProtocolHz.
func defaultProtocolHz() map[string]uint32 {
	return map[string]uint32{
		"raw":       38_000,
		"NEC":       38_000,
		"NECext":    38_000,
		"Samsung32": 37_900,
		"RC5":       36_000,
		"RC6":       36_000,
		"SIRC":      40_000,
		"SIRC15":    40_000,
		"SIRC20":    40_000,
		"Kaseikyo":  37_000,
	}
}

// sourceCommandNames maps source button labels (Flipper and IRDB spellings)
// to canonical command names.
var sourceCommandNames = map[string]string{
	// TV / media player
	"Power":        "power",
	"Power On":     "turn_on",
	"Power Off":    "turn_off",
	"Vol_up":       "volume_up",
	"Volume Up":    "volume_up",
	"Vol_dn":       "volume_down",
	"Volume Down":  "volume_down",
	"Mute":         "mute",
	"Ch_next":      "channel_up",
	"Channel Up":   "channel_up",
	"Ch_prev":      "channel_down",
	"Channel Down": "channel_down",
	"Source":       "source",
	"Input":        "source",
	"Menu":         "menu",
	"Up":           "up",
	"Down":         "down",
	"Left":         "left",
	"Right":        "right",
	"Ok":           "select",
	"OK":           "select",
	"Enter":        "select",
	"Back":         "back",
	"Exit":         "exit",
	"Home":         "home",
	"Play":         "play",
	"Pause":        "pause",
	"Stop":         "stop",
	"Record":       "record",
	"Rewind":       "rewind",
	"Fast Forward": "fast_forward",

	// climate
	"Cool":      "cool",
	"Heat":      "heat",
	"Auto":      "auto",
	"Dry":       "dry",
	"Fan":       "fan_only",
	"Temp_up":   "temp_up",
	"Temp Up":   "temp_up",
	"Temp_dn":   "temp_down",
	"Temp Down": "temp_down",
	"Speed":     "fan_speed",
	"Fan Speed": "fan_speed",
	"Swing":     "swing",
	"Timer":     "timer",
}

// NormalizeCommandName maps a source button label to its canonical SmartIR
// name; unmapped labels are sanitized to lower_snake_case.
func NormalizeCommandName(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := sourceCommandNames[name]; ok {
		return canonical
	}
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
