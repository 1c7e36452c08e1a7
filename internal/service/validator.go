package service

import (
	"fmt"
	"sort"
	"strings"

	"smartir_service/internal/ircode"
	"smartir_service/internal/models"
)

// requiredCommandsByCategory is the per-category required-key policy. The
// validator only applies whatever set it is handed; this table is the
// default policy for the known categories.
var requiredCommandsByCategory = map[string][]string{
	"media_player": {"power"},
	"climate":      {"off"},
	"fan":          {"off"},
	"light":        {"off"},
}

// ValidatorService checks device descriptors against the structural schema
// invariants. It never panics past its own boundary; callers decide whether
// to discard or quarantine a failing descriptor.
type ValidatorService struct{}

func NewValidatorService() *ValidatorService { return &ValidatorService{} }

var _ Validator = (*ValidatorService)(nil)

// RequiredFor returns the required command names for a category. Unknown
// categories require nothing.
func (s *ValidatorService) RequiredFor(category string) []string {
	return requiredCommandsByCategory[strings.TrimSpace(category)]
}

// Validate collects every violation instead of stopping at the first, so
// reports show the whole damage at once.
func (s *ValidatorService) Validate(d models.DeviceDescriptor, requiredKeys []string) models.ValidationResult {
	var violations []string

	if strings.TrimSpace(d.Manufacturer) == "" {
		violations = append(violations, "manufacturer is empty")
	}
	if len(d.SupportedModels) == 0 {
		violations = append(violations, "supportedModels is empty")
	}
	for i, m := range d.SupportedModels {
		if strings.TrimSpace(m) == "" {
			violations = append(violations, fmt.Sprintf("supportedModels[%d] is empty", i))
		}
	}
	if d.SupportedController != models.ControllerBroadlink {
		violations = append(violations, fmt.Sprintf("supportedController is %q, want %q", d.SupportedController, models.ControllerBroadlink))
	}
	if d.CommandsEncoding != models.EncodingBase64 {
		violations = append(violations, fmt.Sprintf("commandsEncoding is %q, want %q", d.CommandsEncoding, models.EncodingBase64))
	}
	if len(d.Commands) == 0 {
		violations = append(violations, "commands is empty")
	}

	for _, key := range requiredKeys {
		if _, ok := d.Commands[key]; !ok {
			violations = append(violations, fmt.Sprintf("required command %q is missing", key))
		}
	}

	// Deterministic order for the per-command wire checks.
	names := make([]string, 0, len(d.Commands))
	for name := range d.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		code := d.Commands[name]
		if code == "" {
			violations = append(violations, fmt.Sprintf("command %q has an empty value", name))
			continue
		}
		if _, err := ircode.DecodeBase64(code); err != nil {
			violations = append(violations, fmt.Sprintf("command %q: %v", name, err))
		}
	}

	return models.ValidationResult{Passed: len(violations) == 0, Violations: violations}
}
