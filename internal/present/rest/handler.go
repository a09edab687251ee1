package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	workmesh "github.com/workmesh/metadata-indexer"
	"github.com/workmesh/metadata-indexer/internal/domain"
	"github.com/workmesh/metadata-indexer/internal/present/rest/presenter"
	"github.com/workmesh/metadata-indexer/internal/usecase"
)

const maxDocumentSize = 1 << 22 // 4MiB

// Fetcher retrieves raw document bytes by content id.
type Fetcher interface {
	Fetch(ctx context.Context, cid string) ([]byte, error)
}

// Streamer feeds indexed events for a subscription set until ctx is done.
type Streamer interface {
	Realtime(ctx context.Context, input chan []string, output chan workmesh.Event)
}

type Handler struct {
	document *usecase.DocumentUsecase
	fetcher  Fetcher
	signal   Streamer
}

func NewHandler(
	document *usecase.DocumentUsecase,
	fetcher Fetcher,
	signal Streamer,
) *Handler {
	return &Handler{
		document: document,
		fetcher:  fetcher,
		signal:   signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.handleHealth)
	e.POST("/documents/:category", h.handleIngest)
	e.GET("/descriptions/:category/:id", h.handleGetDescription)
	e.GET("/credentials/:id", h.handleGetCredential)
	e.GET("/realtime", h.handleRealtime)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleIngest(c echo.Context) error {
	ctx := c.Request().Context()

	category, ok := workmesh.ParseCategory(c.Param("category"))
	if !ok {
		return presenter.BadRequestMessage(c, "unknown document category")
	}

	subject := c.QueryParam("subject")
	if subject == "" {
		return presenter.BadRequestMessage(c, "subject parameter is required")
	}

	var content []byte
	cid := c.QueryParam("cid")
	if cid != "" {
		fetched, err := h.fetcher.Fetch(ctx, cid)
		if err != nil {
			return presenter.BadRequestMessage(c, "failed to fetch document: "+err.Error())
		}
		content = fetched
	} else {
		body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxDocumentSize))
		if err != nil {
			return presenter.BadRequest(c, err)
		}
		content = body
	}

	documentID := c.QueryParam("id")
	if documentID == "" {
		if cid != "" {
			documentID = cid
		} else {
			documentID = workmesh.DeriveDocumentID(content)
		}
	}

	dc := workmesh.DocumentContext{
		DocumentID: documentID,
		SubjectID:  subject,
	}

	err := h.document.Ingest(ctx, category, content, dc)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDocument) {
			return presenter.BadRequest(c, err)
		}
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok", "id": documentID})
}

func (h *Handler) handleGetDescription(c echo.Context) error {
	ctx := c.Request().Context()

	category, ok := workmesh.ParseCategory(c.Param("category"))
	if !ok {
		return presenter.BadRequestMessage(c, "unknown document category")
	}

	value, err := h.document.GetDescription(ctx, category, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "description not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, value)
}

func (h *Handler) handleGetCredential(c echo.Context) error {
	ctx := c.Request().Context()

	value, err := h.document.GetCredential(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "credential not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, value)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Request struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	// The streamer owns its send on output and exits on cancel; closing the
	// channels here would race its pending send.
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	input := make(chan []string)
	output := make(chan workmesh.Event)

	go h.signal.Realtime(ctx, input, output)

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			var req Request
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				return
			}

			switch req.Type {
			case "listen":
				select {
				case input <- req.Categories:
				case <-ctx.Done():
					return
				}
				slog.DebugContext(
					ctx, fmt.Sprintf("Socket subscribe: %s", req.Categories),
					slog.String("module", "socket"),
				)
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
