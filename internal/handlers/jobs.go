package handlers

import (
	"net/http"

	"smartir_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for starting a batch job.
type batchRequest struct {
	Devices []service.DeviceInput `json:"devices" binding:"required"`
}

// @Summary      Start a batch conversion job
// @Description  Converts many devices concurrently with a bounded worker pool and returns the job handle
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body   batchRequest  true  "Devices to convert"
// @Success      202   {object}  map[string]string  "job_id"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/jobs [post]
// @Security     BearerAuth
func (h *Handler) startJob(c *gin.Context) {
	var req batchRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.Jobs.StartBatch(req.Devices)
	if err != nil {
		if h.log != nil {
			h.log.Infow("job_start_rejected", "devices", len(req.Devices), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		h.log.Infow("job_started", "job_id", id, "devices", len(req.Devices))
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": id})
}

// @Summary      Job snapshot
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  models.JobSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/jobs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getJob(c *gin.Context) {
	snap, ok := h.services.Jobs.Snapshot(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Cancel a running job
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/jobs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) cancelJob(c *gin.Context) {
	if !h.services.Jobs.Cancel(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
