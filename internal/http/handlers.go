package http

import (
	"net/http"

	"github.com/GriffinCanCode/SandboxFS/internal/monitoring"
	"github.com/GriffinCanCode/SandboxFS/internal/service"
	"github.com/GriffinCanCode/SandboxFS/internal/session"
	"github.com/GriffinCanCode/SandboxFS/internal/types"
	"github.com/GriffinCanCode/SandboxFS/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	sessions *session.Manager
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, sessions *session.Manager, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		sessions: sessions,
		metrics:  metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "SandboxFS Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"sessions":         h.sessions.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SandboxID != nil {
		if err := utils.ValidateID(*req.SandboxID, "sandbox_id", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var ctx *types.Context
	if req.SandboxID != nil && *req.SandboxID != "" {
		if _, ok := h.sessions.Get(*req.SandboxID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown sandbox session: " + *req.SandboxID})
			return
		}
		ctx = &types.Context{SandboxID: req.SandboxID}
	}

	var timer *monitoring.Timer
	if h.metrics != nil {
		timer = monitoring.NewTimer(h.metrics, "filesystem", req.ToolID)
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		if timer != nil {
			timer.Stop("error")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if timer != nil {
		if result.Success {
			timer.Stop("success")
		} else {
			timer.Stop("failure")
			if code, ok := result.Data["code"].(string); ok {
				h.metrics.RecordToolError("filesystem", req.ToolID, code)
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

// CreateSession creates a new sandbox session
func (h *Handlers) CreateSession(c *gin.Context) {
	info, _, err := h.sessions.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.IncSessionsCreated()
		h.metrics.SetSessionsActive(len(h.sessions.List()))
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": info.ID,
		"created_at": info.CreatedAt,
	})
}

// ListSessions lists all sandbox sessions
func (h *Handlers) ListSessions(c *gin.Context) {
	sessions := h.sessions.List()

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// GetSession gets details of a specific session
func (h *Handlers) GetSession(c *gin.Context) {
	id := c.Param("id")

	fs, ok := h.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found: " + id})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":        id,
		"current_directory": fs.CurrentDir(),
	})
}

// DestroySession destroys a sandbox session
func (h *Handlers) DestroySession(c *gin.Context) {
	id := c.Param("id")
	purge := c.Query("purge") == "true"

	if err := h.sessions.Destroy(id, purge); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.SetSessionsActive(len(h.sessions.List()))
	}

	c.JSON(http.StatusOK, gin.H{
		"destroyed":  true,
		"session_id": id,
		"purged":     purge,
	})
}

// Stats returns aggregate request metrics as JSON
func (h *Handlers) Stats(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}
