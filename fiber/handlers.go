package fiber

import (
	"encoding/json"

	"github.com/fwojciec/sitechat"
	"github.com/gofiber/fiber/v2"
)

// AssistantResponse is the body of a successful answer.
type AssistantResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports the state of the page cache.
type HealthResponse struct {
	Status string `json:"status"`
	Pages  int    `json:"pages"`
	Failed int    `json:"failed"`
}

// handleAssistant answers a visitor question. Answer failures are reported
// in the body with status 200; only unreadable bodies get a 400.
func (s *Server) handleAssistant(c *fiber.Ctx) error {
	var req sitechat.Request
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body."})
		}
	}

	result := s.assistant.Answer(c.UserContext(), req)
	if !result.OK() {
		s.logger.Warn("assistant failed",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"code", sitechat.ErrorCode(result.Err),
			"err", result.Err,
		)
		return c.JSON(ErrorResponse{Error: sitechat.ErrorMessage(result.Err)})
	}

	return c.JSON(AssistantResponse{Response: result.Response})
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "ok",
		Pages:  s.cache.Len(),
		Failed: s.cache.Failed(),
	})
}
