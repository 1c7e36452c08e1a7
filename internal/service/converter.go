package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartir_service/internal/ircode"
	"smartir_service/internal/models"
	"smartir_service/internal/repository"

	"github.com/google/uuid"
)

// Event types appended to the conversion log.
const (
	EventDeviceStored   = "DEVICE_STORED"
	EventDeviceRejected = "DEVICE_REJECTED"
	EventCommandFailed  = "COMMAND_FAILED"
	EventJobStarted     = "JOB_STARTED"
	EventJobFinished    = "JOB_FINISHED"
)

// Policy defaults, overridable via Config.
const (
	defaultMinCommands = 1
	defaultJobWorkers  = 4
)

// CommandSource is one named command in its source format. Exactly one of
// Pronto or Raw is set.
type CommandSource struct {
	Name     string `json:"name"`
	Pronto   string `json:"pronto,omitempty"`
	Raw      []int  `json:"raw,omitempty"`
	Protocol string `json:"protocol,omitempty"` // tag resolved through the frequency table for raw sources
}

// DeviceInput is one device worth of command sources plus metadata.
type DeviceInput struct {
	Manufacturer string          `json:"manufacturer"`
	Model        string          `json:"model"`
	Category     string          `json:"category"`
	Commands     []CommandSource `json:"commands"`
}

// ConvertResult is the outcome of a one-shot conversion.
type ConvertResult struct {
	Base64    string `json:"base64"`
	CarrierHz uint32 `json:"carrier_hz"`
	Pulses    int    `json:"pulses"`
}

var (
	errNoCommands      = errors.New("device has no command sources")
	errMissingMetadata = errors.New("manufacturer and model are required")
)

type ConverterService struct {
	deviceRepo  repository.DeviceRepo
	eventRepo   repository.EventRepo
	validator   Validator
	protocolHz  map[string]uint32
	minCommands int
}

func NewConverterService(deviceRepo repository.DeviceRepo, eventRepo repository.EventRepo, validator Validator, cfg Config) *ConverterService {
	protocolHz := cfg.ProtocolHz
	if len(protocolHz) == 0 {
		protocolHz = defaultProtocolHz()
	}
	minCommands := cfg.MinCommands
	if minCommands <= 0 {
		minCommands = defaultMinCommands
	}
	return &ConverterService{
		deviceRepo:  deviceRepo,
		eventRepo:   eventRepo,
		validator:   validator,
		protocolHz:  protocolHz,
		minCommands: minCommands,
	}
}

// ConvertPronto converts a single Pronto hex code to Broadlink base64.
func (s *ConverterService) ConvertPronto(_ context.Context, code string) (ConvertResult, error) {
	seq, err := ircode.ParsePronto(code)
	if err != nil {
		return ConvertResult{}, err
	}
	return encodeResult(seq)
}

// ConvertRaw converts a raw pulse array to Broadlink base64. The protocol
// tag resolves the carrier through the configured frequency table; unknown
// tags fall back to the common 38 kHz carrier.
func (s *ConverterService) ConvertRaw(_ context.Context, values []int, protocol string) (ConvertResult, error) {
	seq, err := ircode.ParseRaw(values, s.carrierFor(protocol))
	if err != nil {
		return ConvertResult{}, err
	}
	return encodeResult(seq)
}

func encodeResult(seq ircode.TimingSequence) (ConvertResult, error) {
	cmd, err := ircode.Encode(seq)
	if err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{
		Base64:    cmd.Base64,
		CarrierHz: seq.Frequency,
		Pulses:    len(seq.Pulses),
	}, nil
}

func (s *ConverterService) carrierFor(protocol string) uint32 {
	tag := strings.TrimSpace(protocol)
	if hz, ok := s.protocolHz[tag]; ok {
		return hz
	}
	// Config loaders may lowercase table keys.
	if hz, ok := s.protocolHz[strings.ToLower(tag)]; ok {
		return hz
	}
	return defaultCarrierHz
}

// AssembleDevice folds every command source through parser + encoder into a
// descriptor. Failures are collected per command; the descriptor holds the
// successes. When nothing converts, the error reports a total failure.
func (s *ConverterService) AssembleDevice(_ context.Context, in DeviceInput) (models.DeviceDescriptor, []models.CommandFailure, error) {
	if strings.TrimSpace(in.Manufacturer) == "" || strings.TrimSpace(in.Model) == "" {
		return models.DeviceDescriptor{}, nil, errMissingMetadata
	}
	if len(in.Commands) == 0 {
		return models.DeviceDescriptor{}, nil, errNoCommands
	}

	commands := make(map[string]string, len(in.Commands))
	var failures []models.CommandFailure
	for _, src := range in.Commands {
		name := NormalizeCommandName(src.Name)
		code, err := s.convertSource(src)
		if err != nil {
			failures = append(failures, commandFailure(name, err))
			continue
		}
		commands[name] = code
	}

	if len(commands) == 0 {
		return models.DeviceDescriptor{}, failures, fmt.Errorf("no command of %q %q could be converted", in.Manufacturer, in.Model)
	}
	if len(commands) < s.minCommands {
		return models.DeviceDescriptor{}, failures, fmt.Errorf("%q %q has %d usable commands, need at least %d", in.Manufacturer, in.Model, len(commands), s.minCommands)
	}

	return models.DeviceDescriptor{
		Manufacturer:        in.Manufacturer,
		SupportedModels:     []string{in.Model},
		SupportedController: models.ControllerBroadlink,
		CommandsEncoding:    models.EncodingBase64,
		Commands:            commands,
	}, failures, nil
}

// StoreDevice assembles, validates and persists a device, logging the
// outcome. Validation failure discards the descriptor; callers re-assemble
// rather than patch.
func (s *ConverterService) StoreDevice(ctx context.Context, in DeviceInput) (*models.StoredDevice, []models.CommandFailure, error) {
	descriptor, failures, err := s.AssembleDevice(ctx, in)
	s.logCommandFailures(ctx, in, failures)
	if err != nil {
		s.appendEvent(ctx, EventDeviceRejected, err.Error(), map[string]any{
			"manufacturer": in.Manufacturer,
			"model":        in.Model,
		})
		return nil, failures, err
	}

	if res := s.validator.Validate(descriptor, s.validator.RequiredFor(in.Category)); !res.Passed {
		err := fmt.Errorf("descriptor for %q %q failed validation: %s", in.Manufacturer, in.Model, strings.Join(res.Violations, "; "))
		s.appendEvent(ctx, EventDeviceRejected, err.Error(), map[string]any{
			"manufacturer": in.Manufacturer,
			"model":        in.Model,
			"violations":   res.Violations,
		})
		return nil, failures, err
	}

	stored := models.StoredDevice{
		ID:           uuid.NewString(),
		Category:     in.Category,
		Descriptor:   descriptor,
		CommandCount: len(descriptor.Commands),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.deviceRepo.Save(ctx, stored); err != nil {
		return nil, failures, err
	}

	s.appendEvent(ctx, EventDeviceStored, fmt.Sprintf("stored %q %q with %d commands", in.Manufacturer, in.Model, stored.CommandCount), map[string]any{
		"device_id": stored.ID,
		"category":  in.Category,
		"commands":  stored.CommandCount,
		"failures":  len(failures),
	})
	return &stored, failures, nil
}

func (s *ConverterService) convertSource(src CommandSource) (string, error) {
	var (
		seq ircode.TimingSequence
		err error
	)
	switch {
	case src.Pronto != "":
		seq, err = ircode.ParsePronto(src.Pronto)
	case len(src.Raw) > 0:
		seq, err = ircode.ParseRaw(src.Raw, s.carrierFor(src.Protocol))
	default:
		return "", &ircode.ConvertError{Kind: ircode.MalformedInput, Msg: "command has neither pronto nor raw source data"}
	}
	if err != nil {
		return "", err
	}
	cmd, err := ircode.Encode(seq)
	if err != nil {
		return "", err
	}
	return cmd.Base64, nil
}

func commandFailure(name string, err error) models.CommandFailure {
	kind := "error"
	if k, ok := ircode.KindOf(err); ok {
		kind = k.String()
	}
	return models.CommandFailure{Command: name, Kind: kind, Message: err.Error()}
}

func (s *ConverterService) logCommandFailures(ctx context.Context, in DeviceInput, failures []models.CommandFailure) {
	for _, f := range failures {
		s.appendEvent(ctx, EventCommandFailed, fmt.Sprintf("%q %q command %q: %s", in.Manufacturer, in.Model, f.Command, f.Message), map[string]any{
			"manufacturer": in.Manufacturer,
			"model":        in.Model,
			"command":      f.Command,
			"kind":         f.Kind,
		})
	}
}

// appendEvent is best-effort: the conversion outcome never depends on the
// log write.
func (s *ConverterService) appendEvent(ctx context.Context, typ, description string, meta map[string]any) {
	_ = s.eventRepo.Append(ctx, models.ConversionEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
}
