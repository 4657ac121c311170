package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/utilkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/utilkit/internal/presentation"
	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/service"
	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
	"github.com/GriffinCanCode/utilkit/internal/shared/utils"
	"github.com/GriffinCanCode/utilkit/internal/types"
)

const (
	serviceName    = "utilkit"
	serviceVersion = "0.1.0"
	discoverLimit  = 5
)

// Handlers contains all HTTP handlers
type Handlers struct {
	calculator *calculator.Calculator
	formatter  *formatter.Formatter
	registry   *service.Registry
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(
	calc *calculator.Calculator,
	f *formatter.Formatter,
	registry *service.Registry,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		calculator: calc,
		formatter:  f,
		registry:   registry,
		metrics:    metrics,
		logger:     logger,
	}
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/calculate", h.Calculate)
	r.POST("/format", h.Format)
	r.GET("/services", h.ListServices)
	r.POST("/services/discover", h.DiscoverServices)
	r.POST("/services/execute", h.ExecuteService)
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// Calculate evaluates calculator form input
func (h *Handlers) Calculate(c *gin.Context) {
	var form presentation.CalculationForm
	if !h.bind(c, &form) {
		return
	}

	for name, value := range map[string]presentation.Field{
		"value1":   form.Value1,
		"value2":   form.Value2,
		"multiple": form.Multiple,
	} {
		if err := utils.ValidateField(string(value), name); err != nil {
			h.fail(c, evalerr.New(evalerr.CodeInvalidArgument, form.Operation, "%s", err.Error()))
			return
		}
	}

	timer := h.timer(calculator.ServiceID, calculatorLabel(form.Operation))

	parsed, err := presentation.ParseCalculation(form)
	if err == nil {
		var res *calculator.CalculationResult
		res, err = h.calculator.Calculate(parsed.Operation, parsed.Operands...)
		if err == nil {
			timer.StopEvaluation("")
			h.respond(c, res, func() (string, error) { return presentation.RenderCalculation(res) })
			return
		}
	}

	timer.StopEvaluation(string(evalerr.CodeOf(err)))
	h.fail(c, err)
}

// Format evaluates formatter form input
func (h *Handlers) Format(c *gin.Context) {
	var form presentation.FormatForm
	if !h.bind(c, &form) {
		return
	}

	if err := utils.ValidateInput(string(form.Input)); err != nil {
		h.fail(c, evalerr.New(evalerr.CodeInvalidArgument, form.Operation, "%s", err.Error()))
		return
	}
	if err := utils.ValidateField(string(form.MaxLength), "maxLength"); err != nil {
		h.fail(c, evalerr.New(evalerr.CodeInvalidArgument, form.Operation, "%s", err.Error()))
		return
	}

	timer := h.timer(formatter.ServiceID, formatterLabel(form.Operation))

	parsed, err := presentation.ParseFormat(form, h.formatter.MaxLength())
	if err == nil {
		var res *formatter.FormatResult
		res, err = h.formatter.Format(parsed.Operation, parsed.Input, parsed.Options)
		if err == nil {
			timer.StopEvaluation("")
			h.respond(c, res, func() (string, error) { return presentation.RenderFormat(res) })
			return
		}
	}

	timer.StopEvaluation(string(evalerr.CodeOf(err)))
	h.fail(c, err)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free-text intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateMessage(req.Message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Message,
		"services": h.registry.Discover(req.Message, discoverLimit),
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

	ctx := &types.Context{}
	if traceID := tracing.GetTraceID(c.Request.Context()); traceID != "" {
		id := string(traceID)
		ctx.RequestID = &id
	}
	clientIP := c.ClientIP()
	ctx.ClientIP = &clientIP

	serviceID, tool, _ := strings.Cut(req.ToolID, ".")
	if _, ok := h.registry.Get(serviceID); !ok {
		serviceID, tool = unknownLabel, unknownLabel
	}
	timer := h.timer(serviceID, tool)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		timer.Stop("error")
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidToolID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("service execution failed", zap.String("tool_id", req.ToolID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}
	c.JSON(http.StatusOK, result)
}

// bind decodes a form from JSON or URL-encoded bodies, answering 400 on
// failure. The body is capped at utils.MaxBodySize.
func (h *Handlers) bind(c *gin.Context, obj interface{}) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.MaxBodySize)
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  string(evalerr.CodeInvalidArgument),
		})
		return false
	}
	return true
}

// Metric labels for operations outside the known set collapse to one value
const unknownLabel = "unknown"

func calculatorLabel(op string) string {
	lower := strings.ToLower(op)
	for _, known := range calculator.Operations() {
		if string(known) == lower {
			return lower
		}
	}
	return unknownLabel
}

func formatterLabel(op string) string {
	for _, known := range formatter.Operations() {
		if string(known) == op {
			return op
		}
	}
	return unknownLabel
}

func (h *Handlers) timer(service, tool string) *monitoring.Timer {
	if h.metrics == nil {
		return nil
	}
	return monitoring.NewTimer(h.metrics, service, tool)
}

// wantsHTML reports whether the client prefers a rendered result card
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

func (h *Handlers) respond(c *gin.Context, body interface{}, render func() (string, error)) {
	if !wantsHTML(c) {
		c.JSON(http.StatusOK, body)
		return
	}

	html, err := render()
	if err != nil {
		h.logger.Error("render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, gin.MIMEHTML+"; charset=utf-8", []byte(html))
}

func (h *Handlers) fail(c *gin.Context, err error) {
	code := evalerr.CodeOf(err)
	h.logger.Debug("evaluation rejected",
		zap.String("code", string(code)),
		zap.Error(err),
	)

	if !wantsHTML(c) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  string(code),
		})
		return
	}

	html, renderErr := presentation.RenderError(err.Error())
	if renderErr != nil {
		h.logger.Error("render failed", zap.Error(renderErr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": renderErr.Error()})
		return
	}
	c.Data(http.StatusBadRequest, gin.MIMEHTML+"; charset=utf-8", []byte(html))
}
