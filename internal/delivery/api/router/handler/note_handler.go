package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"notes/internal/delivery/api/middleware"
	"notes/internal/delivery/api/response"
	"notes/internal/delivery/api/validator"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler serves the owner-scoped note endpoints. It must sit behind AuthMiddleware.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"max=20000"`
	Pinned  bool   `json:"pinned"`
}

// UpdateNoteRequest represents a partial update; absent fields stay unchanged
type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Content *string `json:"content" validate:"omitempty,max=20000"`
	Pinned  *bool   `json:"pinned"`
}

// PinNoteRequest represents the request body for pinning or unpinning a note
type PinNoteRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

// ownerAndNote extracts the caller's account id and the :id path parameter.
// On failure the error response has already been written.
func (h *NoteHandler) ownerAndNote(c echo.Context) (uuid.UUID, uuid.UUID, bool, error) {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, response.BindingError(c, "invalid note id")
	}

	return ownerID, noteID, true, nil
}

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid note input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Fields(err))
	}

	note, err := h.noteUC.Create(c.Request().Context(), ownerID, &usecase.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Pinned:  req.Pinned,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toNoteResponse(note))
}

// ListNotes handles listing the caller's notes, optionally filtered by ?pinned= and ?q=
func (h *NoteHandler) ListNotes(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	input := &usecase.ListNotesInput{Query: c.QueryParam("q")}
	if raw := c.QueryParam("pinned"); raw != "" {
		pinned, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BindingError(c, "pinned must be true or false")
		}
		input.Pinned = &pinned
	}

	notes, err := h.noteUC.List(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNoteResponses(notes))
}

// SearchNotes handles free-text search over the caller's notes
func (h *NoteHandler) SearchNotes(c echo.Context) error {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	notes, err := h.noteUC.Search(c.Request().Context(), ownerID, c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNoteResponses(notes))
}

// GetNote handles retrieving a single note
func (h *NoteHandler) GetNote(c echo.Context) error {
	ownerID, noteID, ok, err := h.ownerAndNote(c)
	if !ok {
		return err
	}

	note, err := h.noteUC.Get(c.Request().Context(), ownerID, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNoteResponse(note))
}

// UpdateNote handles a partial note update
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	ownerID, noteID, ok, err := h.ownerAndNote(c)
	if !ok {
		return err
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid note input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Fields(err))
	}

	note, err := h.noteUC.Update(c.Request().Context(), ownerID, noteID, &usecase.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Pinned:  req.Pinned,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNoteResponse(note))
}

// PinNote handles pinning or unpinning a note
func (h *NoteHandler) PinNote(c echo.Context) error {
	ownerID, noteID, ok, err := h.ownerAndNote(c)
	if !ok {
		return err
	}

	var req PinNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "invalid pin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.Fields(err))
	}

	note, err := h.noteUC.SetPinned(c.Request().Context(), ownerID, noteID, *req.Pinned)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNoteResponse(note))
}

// DeleteNote handles note deletion
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	ownerID, noteID, ok, err := h.ownerAndNote(c)
	if !ok {
		return err
	}

	if err := h.noteUC.Delete(c.Request().Context(), ownerID, noteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "note deleted"})
}
