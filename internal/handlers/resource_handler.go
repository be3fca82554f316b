package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// ResourceHandler serves the public and admin REST surface of one
// content type. The binder funcs close over the type's DTOs so this
// handler stays generic.
type ResourceHandler[T any, PT interface {
	*T
	services.Content
}] struct {
	store      *services.Store[T, PT]
	bindCreate func(*gin.Context) (PT, error)
	bindUpdate func(*gin.Context) (map[string]any, error)
}

func NewResourceHandler[T any, PT interface {
	*T
	services.Content
}](
	store *services.Store[T, PT],
	bindCreate func(*gin.Context) (PT, error),
	bindUpdate func(*gin.Context) (map[string]any, error),
) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{
		store:      store,
		bindCreate: bindCreate,
		bindUpdate: bindUpdate,
	}
}

// Register mounts the routes under both groups, e.g. /jobs and
// /jobs/:idOrSlug on public, full CRUD on admin.
func (h *ResourceHandler[T, PT]) Register(public, admin *gin.RouterGroup) {
	collection := "/" + h.store.Schema().Name + "s"

	public.GET(collection, h.PublicList)
	public.GET(collection+"/:idOrSlug", h.PublicDetail)

	admin.GET(collection, h.AdminList)
	admin.POST(collection, h.AdminCreate)
	admin.PUT(collection+"/:id", h.AdminUpdate)
	admin.DELETE(collection+"/:id", h.AdminDelete)
}

// PublicList returns published records matching the query filters.
// Listing never touches view counters.
func (h *ResourceHandler[T, PT]) PublicList(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), queryParams(c), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// PublicDetail resolves an id or slug among published records and
// bumps the view counter as an observable side effect.
func (h *ResourceHandler[T, PT]) PublicDetail(c *gin.Context) {
	ctx := c.Request.Context()
	item, err := h.store.GetByKey(ctx, c.Param("idOrSlug"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.IncrementViews(ctx, item.GetID()); err != nil {
		respondError(c, err)
		return
	}
	// Re-read so the response carries the incremented counter.
	item, err = h.store.GetByID(ctx, item.GetID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdminList returns every record, drafts included, with the same
// filters the public list understands.
func (h *ResourceHandler[T, PT]) AdminList(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), queryParams(c), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T, PT]) AdminCreate(c *gin.Context) {
	item, err := h.bindCreate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if err := h.store.Create(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ResourceHandler[T, PT]) AdminUpdate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	patch, err := h.bindUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	item, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T, PT]) AdminDelete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("id", "must be a positive integer")
	}
	return uint(id), nil
}

// BindCreateJSON adapts a create DTO's ToModel into the handler's
// binder shape.
func BindCreateJSON[R any, PT any](toModel func(*R) PT) func(*gin.Context) (PT, error) {
	return func(c *gin.Context) (PT, error) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			var zero PT
			return zero, err
		}
		return toModel(&req), nil
	}
}

// BindUpdateJSON adapts an update DTO's ToPatch into the handler's
// binder shape.
func BindUpdateJSON[R any](toPatch func(*R) map[string]any) func(*gin.Context) (map[string]any, error) {
	return func(c *gin.Context) (map[string]any, error) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return toPatch(&req), nil
	}
}
