// Package gin provides the HTTP API for the chatbot: a chat endpoint
// backed by a cdpdoc.Answerer and a health endpoint for probes.
package gin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/askcdp/cdpdoc"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ChatRequest is the request body for POST /api/chat. ConversationID is
// echoed back for client-side bookkeeping; the server keeps no
// conversation state. Message is kept raw so a non-string value degrades
// to an empty message instead of a binding error.
type ChatRequest struct {
	Message        json.RawMessage `json:"message"`
	ConversationID string          `json:"conversation_id"`
}

// MessageText returns the message as a string. Missing or non-string
// values coerce to "", which the pipeline answers with the off-topic
// fallback.
func (r *ChatRequest) MessageText() string {
	var s string
	if err := json.Unmarshal(r.Message, &s); err != nil {
		return ""
	}
	return s
}

// ChatReply is the answer payload nested under the response key.
type ChatReply struct {
	Content   string            `json:"content"`
	Intent    cdpdoc.Intent     `json:"intent"`
	Platforms []cdpdoc.Platform `json:"platforms"`
}

// ChatResponse is the response body for POST /api/chat.
type ChatResponse struct {
	Response       ChatReply `json:"response"`
	ConversationID string    `json:"conversation_id,omitempty"`
}

// ErrorResponse is the response body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the chatbot HTTP API.
type Server struct {
	answerer cdpdoc.Answerer
	router   *gin.Engine
	srv      *http.Server

	// Addr is the listen address, e.g. ":8080". Must be set before Open.
	Addr string
}

// NewServer creates a Server around an answerer and registers routes.
func NewServer(answerer cdpdoc.Answerer) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	s := &Server{answerer: answerer, router: router}

	api := router.Group("/api")
	api.POST("/chat", s.handleChat)
	api.GET("/health", s.handleHealth)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on Addr. It blocks until the server stops.
func (s *Server) Open() error {
	s.srv = &http.Server{Addr: s.Addr, Handler: s.router}
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// An empty or non-string message flows through the pipeline and comes
	// back as an off-topic answer; it is not a protocol error.
	resp, err := s.answerer.Answer(c.Request.Context(), req.MessageText())
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: cdpdoc.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Response: ChatReply{
			Content:   resp.Content,
			Intent:    resp.Intent,
			Platforms: resp.Platforms,
		},
		ConversationID: req.ConversationID,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusFromError(err error) int {
	switch cdpdoc.ErrorCode(err) {
	case cdpdoc.EINVALID:
		return http.StatusBadRequest
	case cdpdoc.ENOTFOUND:
		return http.StatusNotFound
	case cdpdoc.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
