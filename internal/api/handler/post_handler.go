package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edublog/blog-system/internal/core/ports"
)

const msgPostDeleted = "post deleted successfully"

// PostHandler handles HTTP requests for post operations. Every route it
// serves sits behind the Authenticate middleware.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// AdminList handles GET /posts/admin. Only reachable by teachers.
//
// @Summary      List posts (teachers only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts/admin [get]
func (h *PostHandler) AdminList(c echo.Context) error {
	role, err := ctxRole(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListForRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Search handles GET /posts/search?q=.
//
// @Summary      Search posts by title or content
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive substring"
// @Success      200  {array}   postResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /posts/search [get]
func (h *PostHandler) Search(c echo.Context) error {
	posts, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Update handles PUT /posts/:id. Title, content and author are replaced as a whole.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "Post fields"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      plain
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {string}  string  "post deleted successfully"
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.String(http.StatusOK, msgPostDeleted)
}
