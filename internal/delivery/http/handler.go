package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shopbot/backend/internal/domain"
	"github.com/shopbot/backend/internal/platform/logger"
	"github.com/shopbot/backend/internal/usecase"
)

const (
	serviceName    = "shopbot-backend"
	serviceVersion = "1.0.0"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog          *usecase.CatalogService
	maxMessageLength int
	log              *logger.Logger
}

// NewHandler creates a new HTTP handler. maxMessageLength bounds direct message text in characters.
func NewHandler(catalog *usecase.CatalogService, maxMessageLength int, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if maxMessageLength <= 0 {
		maxMessageLength = 1000
	}
	return &Handler{
		catalog:          catalog,
		maxMessageLength: maxMessageLength,
		log:              log.With("component", "http"),
	}
}

// HealthCheck reports whether the catalog store is reachable
func (h *Handler) HealthCheck(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"error":   "catalog not configured",
		})
		return
	}

	if err := h.catalog.Ping(c.Request.Context()); err != nil {
		h.log.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"version":  serviceVersion,
		"products": len(h.catalog.Products()),
	})
}

// Stats returns catalog statistics
func (h *Handler) Stats(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}

	stats, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SearchProducts handles GET /api/v1/products/search?q=...&limit=...
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}

	query := strings.TrimSpace(c.Query("q"))

	limit := h.catalog.DefaultLimit()
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = min(parsed, h.catalog.MaxLimit())
	}

	products, err := h.catalog.Search(c.Request.Context(), query, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.SearchResponse{
		Query:    query,
		Limit:    limit,
		Products: products,
		Count:    len(products),
	})
}

// PostMessage handles an incoming direct message and replies with the products it refers to
func (h *Handler) PostMessage(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}

	var msg domain.DirectMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message: " + err.Error()})
		return
	}

	// Length is checked on the text as sent; surrounding whitespace is dropped afterwards
	if n := utf8.RuneCountInString(msg.Text); n > h.maxMessageLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message text exceeds " + strconv.Itoa(h.maxMessageLength) + " characters",
		})
		return
	}
	msg.Text = strings.TrimSpace(msg.Text)

	products, err := h.catalog.Search(c.Request.Context(), msg.Text, h.catalog.DefaultLimit())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.Info("direct message handled",
		"sender_id", msg.SenderID,
		"message_id", msg.MessageID,
		"results", len(products))

	c.JSON(http.StatusOK, domain.MessageReply{
		MessageID: msg.MessageID,
		Query:     msg.Text,
		Products:  products,
		Count:     len(products),
	})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrCatalogUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes {"error": ...} with the status for err. Unexpected
// errors are not echoed to the client.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondError logs err at a level matching its status and writes it
func (h *Handler) respondError(c *gin.Context, err error) {
	switch statusFor(err) {
	case http.StatusServiceUnavailable:
		h.log.Warn("request could not be served", "error", err)
	case http.StatusInternalServerError:
		h.log.Error("unexpected error", "error", err)
	}
	abortWithError(c, err)
}
