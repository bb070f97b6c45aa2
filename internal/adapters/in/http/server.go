// Package http exposes the ship-notice pipeline over HTTP. It coordinates
// between echo handlers and the application use cases; all order validation
// happens in the order intake parser before any command is built.
package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shipnotice/internal/adapters/in/order"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
)

// Error is the JSON error body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShipNoticeResponse is the JSON body returned for a generated ship notice.
type ShipNoticeResponse struct {
	NoticeID      string   `json:"notice_id"`
	ShipmentID    string   `json:"shipment_id"`
	ControlNumber string   `json:"control_number"`
	DocumentPath  string   `json:"document_path"`
	SegmentCount  int      `json:"segment_count"`
	TotalCartons  int      `json:"total_cartons"`
	TotalUnits    int      `json:"total_units"`
	ContainerIDs  []string `json:"container_ids"`
	Document      string   `json:"document"`
}

// PreviewResponse is the JSON body of a container identifier preview.
type PreviewResponse struct {
	ContainerIDs  []string `json:"container_ids"`
	CurrentSerial int      `json:"current_serial"`
}

// Server wires the HTTP surface to the application layer.
type Server struct {
	parser         *order.Parser
	generateNotice *commands.GenerateShipNoticeCommandHandler
	previewIDs     queries.PreviewContainerIDsQueryHandler
}

// NewServer creates a Server with the required parser and handlers.
func NewServer(
	parser *order.Parser,
	generateNotice *commands.GenerateShipNoticeCommandHandler,
	previewIDs queries.PreviewContainerIDsQueryHandler,
) *Server {
	return &Server{
		parser:         parser,
		generateNotice: generateNotice,
		previewIDs:     previewIDs,
	}
}

// RegisterRoutes mounts the server's routes on an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/ship-notices", s.CreateShipNotice)
	e.GET("/api/v1/container-ids/preview", s.PreviewContainerIDs)
	e.GET("/health", s.Health)
}

// CreateShipNotice handles POST /api/v1/ship-notices: one order JSON in, one
// generated document out.
func (s *Server) CreateShipNotice(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	request, err := s.parser.Parse(payload)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid order payload: " + err.Error(),
		})
	}

	cmd, err := request.ToCommand()
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	response, err := s.generateNotice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate ship notice: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, ShipNoticeResponse{
		NoticeID:      response.NoticeID.String(),
		ShipmentID:    response.ShipmentID,
		ControlNumber: response.ControlNumber,
		DocumentPath:  response.DocumentPath,
		SegmentCount:  response.SegmentCount,
		TotalCartons:  response.TotalCartons,
		TotalUnits:    response.TotalUnits,
		ContainerIDs:  response.ContainerIDs,
		Document:      response.Document,
	})
}

// PreviewContainerIDs handles GET /api/v1/container-ids/preview - shows the
// identifiers upcoming shipments would receive. The count query parameter
// defaults to 1.
func (s *Server) PreviewContainerIDs(ctx echo.Context) error {
	count := 1
	if raw := ctx.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "count must be an integer",
			})
		}
		count = parsed
	}

	query, err := queries.NewPreviewContainerIDsQuery(count)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid preview request: " + err.Error(),
		})
	}

	response, err := s.previewIDs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to preview container identifiers",
		})
	}

	return ctx.JSON(http.StatusOK, PreviewResponse{
		ContainerIDs:  response.ContainerIDs,
		CurrentSerial: response.CurrentSerial,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
