package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numengine/internal/middleware"
	"github.com/GriffinCanCode/numengine/internal/monitoring"
	"github.com/GriffinCanCode/numengine/internal/service"
	"github.com/GriffinCanCode/numengine/internal/types"
	"github.com/GriffinCanCode/numengine/internal/utils"
)

// RequestTimeout bounds a single execute frame.
const RequestTimeout = 30 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS middleware governs browser origins
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry  *service.Registry
	metrics   *monitoring.Metrics
	logger    *zap.Logger
	validator *utils.JSONSizeValidator
	maxSize   int64
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, logger *zap.Logger, maxMessageSize int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxMessageSize <= 0 {
		maxMessageSize = utils.MaxJSONSize
	}
	return &Handler{
		registry:  registry,
		metrics:   metrics,
		logger:    logger,
		validator: utils.NewJSONSizeValidator(int(maxMessageSize)),
		maxSize:   maxMessageSize,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.maxSize)

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	// Get request context for propagation
	reqCtx := c.Request.Context()
	appCtx := &types.Context{
		RequestID: middleware.GetRequestID(c),
		ClientIP:  c.ClientIP(),
		Transport: "websocket",
	}

	// Send welcome message
	if err := h.send(conn, types.StreamMessage{Type: "system", Value: "Connected to Numeric Engine"}); err != nil {
		return
	}

	// Listen for messages
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var msg types.StreamMessage
		if err := h.validator.Decode(data, &msg); err != nil {
			h.record("in", "invalid")
			if h.sendError(conn, "", err.Error()) != nil {
				return
			}
			continue
		}
		h.record("in", inbound(msg.Type))

		switch msg.Type {
		case "execute":
			err = h.handleExecute(reqCtx, conn, msg, appCtx)
		case "ping":
			err = h.send(conn, types.StreamMessage{Type: "pong", ID: msg.ID})
		default:
			err = h.sendError(conn, msg.ID, "unknown message type")
		}
		if err != nil {
			h.logger.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
}

// handleExecute runs one tool. Streaming tools send an item frame per
// element and finish with done; other tools answer with a single result
// frame. Only write errors are returned.
func (h *Handler) handleExecute(reqCtx context.Context, conn *websocket.Conn, msg types.StreamMessage, appCtx *types.Context) error {
	if err := utils.ValidateToolID(msg.ToolID, "tool_id", true); err != nil {
		return h.sendError(conn, msg.ID, err.Error())
	}
	if msg.Params == nil {
		msg.Params = map[string]any{}
	}
	if err := utils.ValidateParams(msg.Params); err != nil {
		return h.sendError(conn, msg.ID, err.Error())
	}

	// Derive from parent context to respect cancellations
	ctx, cancel := context.WithTimeout(reqCtx, RequestTimeout)
	defer cancel()

	tool, ok := h.registry.Tool(msg.ToolID)
	if !ok || !tool.Streams {
		result, err := h.registry.Execute(ctx, msg.ToolID, msg.Params, appCtx)
		if err != nil {
			return h.sendError(conn, msg.ID, err.Error())
		}
		return h.send(conn, types.StreamMessage{Type: "result", ID: msg.ID, ToolID: msg.ToolID, Result: result})
	}

	seq, err := h.registry.Stream(ctx, msg.ToolID, msg.Params)
	if err != nil {
		return h.sendError(conn, msg.ID, err.Error())
	}

	count := 0
	for v := range seq {
		if err := ctx.Err(); err != nil {
			return h.sendError(conn, msg.ID, err.Error())
		}
		if err := h.send(conn, types.StreamMessage{Type: "item", ID: msg.ID, Index: count, Value: v}); err != nil {
			return err
		}
		count++
	}
	return h.send(conn, types.StreamMessage{Type: "done", ID: msg.ID, ToolID: msg.ToolID, Index: count})
}

func (h *Handler) send(conn *websocket.Conn, msg types.StreamMessage) error {
	h.record("out", msg.Type)
	return conn.WriteJSON(msg)
}

func (h *Handler) sendError(conn *websocket.Conn, id, message string) error {
	return h.send(conn, types.StreamMessage{Type: "error", ID: id, Error: message})
}

// inbound folds client-chosen message types into a bounded label set.
func inbound(msgType string) string {
	switch msgType {
	case "execute", "ping":
		return msgType
	}
	return "unknown"
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
