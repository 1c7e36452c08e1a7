package handlers

import (
	"net/http"

	"smartir_service/internal/models"
	"smartir_service/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListDevices = "failed to list devices"
	errGetDevice   = "failed to load device"
	errBuildIndex  = "failed to build index"
)

// @Summary      Assemble and store a device
// @Description  Converts every command source, validates the descriptor and stores it. Per-command failures are returned alongside the result.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body   service.DeviceInput  true  "Device command sources"
// @Success      201   {object}  map[string]interface{}  "device, failures"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}  "error, failures"
// @Router       /api/v1/devices [post]
// @Security     BearerAuth
func (h *Handler) storeDevice(c *gin.Context) {
	var in service.DeviceInput
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	stored, failures, err := h.services.Converter.StoreDevice(c.Request.Context(), in)
	if err != nil {
		if h.log != nil {
			h.log.Infow("device_rejected", "manufacturer", in.Manufacturer, "model", in.Model, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "failures": failures})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"device": stored, "failures": failures})
}

// @Summary      List stored devices
// @Tags         devices
// @Produce      json
// @Param        category  query  string  false  "Filter by category"  Enums(media_player,climate,fan,light)
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.Catalog.ListDevices(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListDevices, "devices_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(devices), "devices": devices})
}

// @Summary      Get a stored device
// @Tags         devices
// @Produce      json
// @Param        id  path  string  true  "Device ID"
// @Success      200  {object}  models.StoredDevice
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	device, err := h.services.Catalog.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDevice, "device_get_failed", err, "id", c.Param("id"))
		return
	}
	if device == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.JSON(http.StatusOK, device)
}

// @Summary      Manufacturer/model index
// @Description  Flattens the catalog into the cross-device manifest consumed by downstream tooling
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, index"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices/index [get]
// @Security     BearerAuth
func (h *Handler) deviceIndex(c *gin.Context) {
	index, err := h.services.Catalog.BuildIndex(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errBuildIndex, "device_index_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(index), "index": index})
}

// Request DTO for standalone descriptor validation.
type validateRequest struct {
	Category   string                  `json:"category,omitempty"`
	Descriptor models.DeviceDescriptor `json:"descriptor" binding:"required"`
}

// @Summary      Validate a descriptor
// @Description  Structural and wire-format checks without storing anything
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body   validateRequest  true  "Descriptor to validate"
// @Success      200   {object}  models.ValidationResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/validate [post]
// @Security     BearerAuth
func (h *Handler) validateDescriptor(c *gin.Context) {
	var req validateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	required := h.services.Validator.RequiredFor(req.Category)
	c.JSON(http.StatusOK, h.services.Validator.Validate(req.Descriptor, required))
}
