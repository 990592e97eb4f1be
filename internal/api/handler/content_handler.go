package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upturn/portfolio-api/internal/core/domain"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// ContentHandler serves one content collection. Every collection shares the
// same CRUD shape, so the router instantiates this handler once per
// collection with its name and display label.
type ContentHandler struct {
	content    ports.ContentService
	collection string
	label      string
}

func NewContentHandler(content ports.ContentService, collection, label string) *ContentHandler {
	return &ContentHandler{content: content, collection: collection, label: label}
}

type insertResponse struct {
	InsertedID   string `json:"insertedId"`
	Acknowledged bool   `json:"acknowledged"`
}

type deleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// List returns every document in the collection, public.
//
// @Summary      List collection documents
// @Tags         content
// @Produce      json
// @Success      200  {array}  map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /{collection} [get]
func (h *ContentHandler) List(c echo.Context) error {
	docs, err := h.content.List(c.Request().Context(), h.collection)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create inserts a new document, admin only.
//
// @Summary      Add a document to the collection
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  insertResponse
// @Failure      400  {object}  map[string]string
// @Router       /add{collection} [post]
func (h *ContentHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	id, err := h.content.Create(c.Request().Context(), h.collection, doc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, insertResponse{InsertedID: id, Acknowledged: true})
}

// Update applies a partial update to the document in the path, admin only.
// 404 when nothing was modified.
//
// @Summary      Update a document
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id (hex)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /update{collection}/{id} [put]
func (h *ContentHandler) Update(c echo.Context) error {
	var fields domain.Document
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	return h.update(c, c.Param("id"), fields)
}

// UpdateProfileImage handles the profile variant where the id travels in the
// body next to the new image URL, matching the admin panel's contract.
//
// @Summary      Update the profile image
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /updateprofile [put]
func (h *ContentHandler) UpdateProfileImage(c echo.Context) error {
	var req struct {
		ID       string `json:"id"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	return h.update(c, req.ID, domain.Document{"imageUrl": req.ImageURL})
}

func (h *ContentHandler) update(c echo.Context, id string, fields domain.Document) error {
	err := h.content.Update(c.Request().Context(), h.collection, id, fields)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"message": h.label + " updated successfully"})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": h.label + " not found or no changes made"})
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	default:
		return err
	}
}

// Delete removes the document in the path, admin only. 404 when the id is
// well-formed but deletes nothing.
//
// @Summary      Delete a document
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id (hex)"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /delete{collection}/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	err := h.content.Delete(c.Request().Context(), h.collection, c.Param("id"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, deleteResponse{Message: h.label + " deleted successfully", DeletedCount: 1})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": h.label + " not found"})
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	default:
		return err
	}
}
