package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-system/internal/api/metrics"
	"github.com/pressroom/publishing-system/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations. Errors from
// the service layer are returned as-is; the central error handler maps them
// to HTTP statuses.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /v1/articles — the published feed.
//
// @Summary      List published articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listArticlesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListPublished(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(views))
}

// Mine handles GET /v1/articles/mine — the actor's own articles, drafts included.
//
// @Summary      List the caller's own articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listArticlesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/articles/mine [get]
func (h *ArticleHandler) Mine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(views))
}

// Get handles GET /v1/articles/:id.
//
// @Summary      Get a single article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id (e.g. art-7A8B9C2D)"
// @Success      200  {object}  articleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(*view))
}

// Create handles POST /v1/articles.
//
// @Summary      Create a draft article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article fields"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), actor, req.Title, req.Content)
	if err != nil {
		return err
	}

	metrics.ArticlesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toArticleResponse(*view))
}

// Update handles PUT /v1/articles/:id — a partial patch of title/content.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to patch"
// @Success      200   {object}  articleResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(*view))
}

// Delete handles DELETE /v1/articles/:id.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Article id"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.ArticlesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Publish handles PATCH /v1/articles/:id/publish — the draft → published
// transition.
//
// @Summary      Publish an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  articleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/articles/{id}/publish [patch]
func (h *ArticleHandler) Publish(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.Publish(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ArticlesPublishedTotal.Inc()
	return c.JSON(http.StatusOK, toArticleResponse(*view))
}
