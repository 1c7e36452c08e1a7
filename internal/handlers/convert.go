package handlers

import (
	"net/http"

	"smartir_service/internal/ircode"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// conversionStatus maps engine error kinds onto HTTP codes: every conversion
// failure is the client's data, never a server fault.
func conversionStatus(err error) int {
	if _, ok := ircode.KindOf(err); ok {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// Request DTO for Pronto conversion.
type prontoRequest struct {
	Code string `json:"code" binding:"required"` // whitespace-separated 4-digit hex groups
}

// Request DTO for raw pulse conversion.
type rawRequest struct {
	Pulses   []int  `json:"pulses" binding:"required"` // µs, mark first; negative = space
	Protocol string `json:"protocol,omitempty"`        // tag resolved through the frequency table
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Convert a Pronto hex code
// @Description  Accepts raw Pronto types 0000/0100 and returns the Broadlink base64 payload
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        body  body   prontoRequest  true  "Pronto code"
// @Success      200   {object}  service.ConvertResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/convert/pronto [post]
// @Security     BearerAuth
func (h *Handler) convertPronto(c *gin.Context) {
	var req prontoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	res, err := h.services.Converter.ConvertPronto(c.Request.Context(), req.Code)
	if err != nil {
		h.logAndJSONError(c, conversionStatus(err), err.Error(), "convert_pronto_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Convert a raw pulse array
// @Description  Durations in µs, mark first; the protocol tag resolves the carrier frequency
// @Tags         convert
// @Accept       json
// @Produce      json
// @Param        body  body   rawRequest  true  "Raw pulses"
// @Success      200   {object}  service.ConvertResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/convert/raw [post]
// @Security     BearerAuth
func (h *Handler) convertRaw(c *gin.Context) {
	var req rawRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	res, err := h.services.Converter.ConvertRaw(c.Request.Context(), req.Pulses, req.Protocol)
	if err != nil {
		h.logAndJSONError(c, conversionStatus(err), err.Error(), "convert_raw_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
