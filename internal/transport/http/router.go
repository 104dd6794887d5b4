package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/checkout_gate/internal/domain"
	"github.com/Gunvolt24/checkout_gate/internal/ports"
	"github.com/Gunvolt24/checkout_gate/internal/usecase"
	"github.com/Gunvolt24/checkout_gate/pkg/ctxmeta"
	"github.com/Gunvolt24/checkout_gate/pkg/httpx"
	"github.com/Gunvolt24/checkout_gate/pkg/validate"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	// maxBasketBody — предел тела POST /checkout/validate.
	maxBasketBody = 1 << 20
)

// Handler — HTTP-слой поверх сервиса корзин.
type Handler struct {
	service    ports.BasketService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 отключает таймаут обработки запроса.
func NewHandler(service ports.BasketService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

// NewRouter — gin-роутер с request-id и логированием запросов.
// Непустой otelServiceName включает трейсинг входящих запросов.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/basket/:id", h.getBasketByID)
	r.POST("/basket/:id/validate", h.validateBasket)
	r.POST("/checkout/validate", h.validateSnapshot)
	r.GET("/customer/:id/baskets", h.listBasketsByCustomer)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

func (h *Handler) getBasketByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	basket, err := h.service.GetBasket(ctxmeta.WithBasketID(ctx, id), id)
	if err != nil {
		h.log.Errorf(ctx, "GetBasket failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if basket == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "basket not found"})
		return
	}
	c.JSON(http.StatusOK, basket)
}

func (h *Handler) listBasketsByCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty customer id"})
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, defaultLimit, maxLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	baskets, err := h.service.BasketsByCustomer(ctx, id, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "BasketsByCustomer failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if baskets == nil {
		baskets = []*domain.Basket{}
	}
	c.JSON(http.StatusOK, baskets)
}

// validateBasket — POST /basket/:id/validate?tax=true
func (h *Handler) validateBasket(c *gin.Context) {
	id := c.Param("id")
	taxRequired, ok := parseTax(c)
	if !ok {
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	outcome, err := h.service.ValidateCheckout(ctx, id, taxRequired)
	if err != nil {
		h.writeValidationError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, validate.Report{BasketID: id, Outcome: outcome})
}

// validateSnapshot — POST /checkout/validate?tax=true, тело — JSON корзины.
func (h *Handler) validateSnapshot(c *gin.Context) {
	taxRequired, ok := parseTax(c)
	if !ok {
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBasketBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "basket body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}
	basket, err := validate.DecodeBasket(raw)
	if err != nil {
		h.writeValidationError(c, "", err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	outcome, err := h.service.ValidateSnapshot(ctx, basket, taxRequired)
	if err != nil {
		h.writeValidationError(c, basket.BasketID, err)
		return
	}
	c.JSON(http.StatusOK, validate.Report{BasketID: basket.BasketID, Outcome: outcome})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// writeValidationError — отображение ошибок проверки в HTTP-статусы.
func (h *Handler) writeValidationError(c *gin.Context, id string, err error) {
	ctx := c.Request.Context()
	status, msg := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, validate.ErrInvalidBasket):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrBasketNotFound):
		status, msg = http.StatusNotFound, "basket not found"
	case errors.Is(err, validate.ErrDataIntegrity):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status, msg = http.StatusGatewayTimeout, "validation timed out"
	}

	if status >= http.StatusInternalServerError {
		h.log.Errorf(ctx, "checkout validation failed basket_id=%s err=%v", id, err)
	} else {
		h.log.Warnf(ctx, "checkout validation rejected basket_id=%s status=%d err=%v", id, status, err)
	}
	c.JSON(status, gin.H{"error": msg, "status": domain.StatusError, "enable_checkout": false})
}

func parseTax(c *gin.Context) (bool, bool) {
	v, err := httpx.QueryBool(c, "tax", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false, false
	}
	return v, true
}
