package models

import "time"

// Fixed descriptor fields for the Broadlink/Base64 output format.
const (
	ControllerBroadlink = "Broadlink"
	EncodingBase64      = "Base64"
)

// DeviceDescriptor is the SmartIR-compatible record mapping a
// manufacturer/model to its named command encodings. Assembled once by the
// converter; discarded (never patched) when validation fails.
type DeviceDescriptor struct {
	Manufacturer        string            `json:"manufacturer"`
	SupportedModels     []string          `json:"supportedModels"`
	SupportedController string            `json:"supportedController"`
	CommandsEncoding    string            `json:"commandsEncoding"`
	Commands            map[string]string `json:"commands"` // name -> base64 wire payload
}

// CommandFailure records one command that could not be converted.
type CommandFailure struct {
	Command string `json:"command"`
	Kind    string `json:"kind"` // malformed input | unsupported protocol | value out of range
	Message string `json:"message"`
}

// StoredDevice is a catalog row: a validated descriptor plus bookkeeping.
type StoredDevice struct {
	ID           string           `json:"id"`
	Category     string           `json:"category"` // media_player | climate | fan | light
	Descriptor   DeviceDescriptor `json:"descriptor"`
	CommandCount int              `json:"command_count"`
	CreatedAt    time.Time        `json:"created_at"`
}

// IndexEntry is one line of the manufacturer/model index built from the
// catalog.
type IndexEntry struct {
	Manufacturer string   `json:"manufacturer"`
	Models       []string `json:"models"`
	Category     string   `json:"category"`
	DeviceID     string   `json:"device_id"`
	Commands     int      `json:"commands"`
}

// ValidationResult is the schema validator's verdict.
type ValidationResult struct {
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations,omitempty"`
}
