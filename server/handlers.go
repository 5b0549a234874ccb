package server

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tenebris-tech/x2post/adapter"
	"github.com/tenebris-tech/x2post/adapter/text"
)

// Endpoint labels used in adaptation metrics
const (
	endpointAdapt = "adapt"
	endpointTopic = "topic"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     string `json:"error"`
	Hint      string `json:"hint,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// TopicRequest asks for content built from a topic and its key points
type TopicRequest struct {
	Topic     string   `json:"topic"`
	KeyPoints []string `json:"key_points"`
	Title     string   `json:"title,omitempty"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: s.config.ServiceName,
		Version: s.config.Version,
	})
}

func (s *Server) handleAdapt(c *gin.Context) {
	var req adapter.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, endpointAdapt, errors.WithHint(
			errors.Wrap(err, "malformed request body"),
			`send a JSON object such as {"content": "..."}`,
		))
		return
	}

	result, err := s.adapter.Adapt(req)
	if err != nil {
		s.badRequest(c, endpointAdapt, err)
		return
	}

	s.metrics.ObserveAdaptation(endpointAdapt, OutcomeOK, text.Len(req.Content))
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleTopic(c *gin.Context) {
	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, endpointTopic, errors.WithHint(
			errors.Wrap(err, "malformed request body"),
			`send a JSON object such as {"topic": "...", "key_points": ["..."]}`,
		))
		return
	}

	result, err := s.adapter.AdaptTopic(req.Topic, req.KeyPoints, req.Title)
	if err != nil {
		s.badRequest(c, endpointTopic, err)
		return
	}

	s.metrics.ObserveAdaptation(endpointTopic, OutcomeOK, text.Len(result.Original))
	c.JSON(http.StatusOK, result)
}

// badRequest reports a client error with any hints the error carries
func (s *Server) badRequest(c *gin.Context, endpoint string, err error) {
	s.metrics.ObserveAdaptation(endpoint, OutcomeInvalid, 0)
	_ = c.Error(err)
	s.logger.Debug("rejected request",
		zap.String("endpoint", endpoint),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	)

	status := http.StatusBadRequest
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		status = http.StatusRequestEntityTooLarge
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     err.Error(),
		Hint:      strings.Join(errors.GetAllHints(err), "; "),
		RequestID: c.GetString(requestIDKey),
	})
}
