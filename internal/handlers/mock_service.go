package handlers

import (
	"context"
	"net/http"
	"time"

	"smartir_service/internal/models"
	"smartir_service/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockConverter struct {
	convertRes service.ConvertResult
	convertErr error
	stored     *models.StoredDevice
	failures   []models.CommandFailure
	storeErr   error

	lastProntoCode string
	lastRawValues  []int
	lastProtocol   string
	lastInput      service.DeviceInput
	storeCalls     int
}

func (m *mockConverter) ConvertPronto(ctx context.Context, code string) (service.ConvertResult, error) {
	m.lastProntoCode = code
	return m.convertRes, m.convertErr
}
func (m *mockConverter) ConvertRaw(ctx context.Context, values []int, protocol string) (service.ConvertResult, error) {
	m.lastRawValues = values
	m.lastProtocol = protocol
	return m.convertRes, m.convertErr
}
func (m *mockConverter) AssembleDevice(ctx context.Context, in service.DeviceInput) (models.DeviceDescriptor, []models.CommandFailure, error) {
	m.lastInput = in
	if m.stored == nil {
		return models.DeviceDescriptor{}, m.failures, m.storeErr
	}
	return m.stored.Descriptor, m.failures, m.storeErr
}
func (m *mockConverter) StoreDevice(ctx context.Context, in service.DeviceInput) (*models.StoredDevice, []models.CommandFailure, error) {
	m.lastInput = in
	m.storeCalls++
	return m.stored, m.failures, m.storeErr
}

type mockJobs struct {
	startID   string
	startErr  error
	snap      models.JobSnapshot
	snapOK    bool
	cancelOK  bool
	lastBatch []service.DeviceInput
	lastJobID string
}

func (m *mockJobs) StartBatch(devices []service.DeviceInput) (string, error) {
	m.lastBatch = devices
	return m.startID, m.startErr
}
func (m *mockJobs) Snapshot(jobID string) (models.JobSnapshot, bool) {
	m.lastJobID = jobID
	return m.snap, m.snapOK
}
func (m *mockJobs) Cancel(jobID string) bool {
	m.lastJobID = jobID
	return m.cancelOK
}
func (m *mockJobs) Shutdown() {}

type mockValidator struct {
	result       models.ValidationResult
	required     []string
	lastCategory string
}

func (m *mockValidator) Validate(d models.DeviceDescriptor, requiredKeys []string) models.ValidationResult {
	return m.result
}
func (m *mockValidator) RequiredFor(category string) []string {
	m.lastCategory = category
	return m.required
}

type mockCatalog struct {
	devices      []models.StoredDevice
	device       *models.StoredDevice
	index        []models.IndexEntry
	err          error
	lastCategory string
	lastID       string
}

func (m *mockCatalog) ListDevices(ctx context.Context, category string) ([]models.StoredDevice, error) {
	m.lastCategory = category
	return m.devices, m.err
}
func (m *mockCatalog) GetDevice(ctx context.Context, id string) (*models.StoredDevice, error) {
	m.lastID = id
	return m.device, m.err
}
func (m *mockCatalog) BuildIndex(ctx context.Context) ([]models.IndexEntry, error) {
	return m.index, m.err
}

type mockEventLog struct {
	resp     []models.ConversionEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ConversionEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
