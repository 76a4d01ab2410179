package recordstore

import (
	"net/http"
	"time"

	"go-outpass/internal/shared/apperror"
	"go-outpass/internal/shared/timeslot"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the raw record-store wire format. Bodies are bare JSON, not
// the envelope, because the leave desk gateway decodes them directly.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("recordstore.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recordstore.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("record store request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	c.JSON(httpErr.Status, gin.H{"code": httpErr.Code, "message": httpErr.Message})
}

func (h *Handler) StudentByPhone(c *gin.Context) {
	resp, err := h.service.StudentByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OutingReasons(c *gin.Context) {
	resp, err := h.service.Reasons(c.Request.Context(), KindOuting)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StayReasons(c *gin.Context) {
	resp, err := h.service.Reasons(c.Request.Context(), KindStay)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterOuting(c *gin.Context) {
	var req RegisterOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register outing validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"code": apperror.CodeInvalidInput, "message": err.Error()})
		return
	}

	if err := h.service.RegisterOuting(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) ListOutings(c *gin.Context) {
	rows, err := h.service.ListOutings(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ReturnOuting(c *gin.Context) {
	var req ReturnOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http outing return validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"code": apperror.CodeInvalidInput, "message": err.Error()})
		return
	}

	// The arrival moment is authoritative here, on the same 10-minute grid
	// the rest of the system uses.
	resp, err := h.service.ReturnOuting(c.Request.Context(), req, timeslot.RoundClock(time.Now()))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterStay(c *gin.Context) {
	var req RegisterStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register stay validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"code": apperror.CodeInvalidInput, "message": err.Error()})
		return
	}

	if err := h.service.RegisterStay(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) ListStays(c *gin.Context) {
	rows, err := h.service.ListStays(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ReturnStay(c *gin.Context) {
	var req ReturnStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http stay return validation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"code": apperror.CodeInvalidInput, "message": err.Error()})
		return
	}

	now := time.Now()
	err := h.service.ReturnStay(c.Request.Context(), req, now.Format("2006-01-02"), timeslot.RoundClock(now))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/students/:phone", handler.StudentByPhone)

	r.GET("/outing/reasons", handler.OutingReasons)
	r.POST("/outing/register", handler.RegisterOuting)
	r.GET("/outing/list/:studentId", handler.ListOutings)
	r.POST("/outing/return", handler.ReturnOuting)

	r.GET("/stay/reasons", handler.StayReasons)
	r.POST("/stay/register", handler.RegisterStay)
	r.GET("/stay/list/:studentId", handler.ListStays)
	r.POST("/stay/return", handler.ReturnStay)
}
