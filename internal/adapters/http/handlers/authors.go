// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotable/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotable/internal/app"
	"github.com/jsamuelsen/quotable/internal/domain"
)

// AuthorHandler handles author-related HTTP endpoints.
type AuthorHandler struct {
	authors *app.AuthorService
	quotes  *app.QuoteService
}

// NewAuthorHandler creates a new author handler.
func NewAuthorHandler(authors *app.AuthorService, quotes *app.QuoteService) *AuthorHandler {
	return &AuthorHandler{
		authors: authors,
		quotes:  quotes,
	}
}

// AuthorResponse is the HTTP representation of an author. FormattedName
// is derived, never stored.
type AuthorResponse struct {
	ID            int64  `json:"id"`
	First         string `json:"first"`
	Last          string `json:"last"`
	FormattedName string `json:"formatted_name"`
}

func toAuthorResponse(a *domain.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:            a.ID,
		First:         a.First,
		Last:          a.Last,
		FormattedName: a.FormattedName(),
	}
}

func toAuthorList(authors []domain.Author) []AuthorResponse {
	items := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		items = append(items, *toAuthorResponse(&authors[i]))
	}

	return items
}

// ListAuthors handles GET /authors.
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var params dto.ListParams
	if err := dto.BindQueryAndValidate(c, &params); err != nil {
		dto.HandleError(c, err)
		return
	}

	authors, err := h.authors.ListAuthors(c.Request.Context(), params.GetSkip(), params.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthorList(authors))
}

// GetAuthor handles GET /authors/:id.
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseID(c, "author")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	author, err := h.authors.GetAuthor(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponse(author))
}

// ListAuthorQuotes handles GET /authors/:id/quotes.
// Missing authors surface as 404 rather than an empty page.
func (h *AuthorHandler) ListAuthorQuotes(c *gin.Context) {
	id, err := parseID(c, "author")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var params dto.ListParams
	if err := dto.BindQueryAndValidate(c, &params); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.quotes.ListQuotesByAuthor(c.Request.Context(), id, params.GetSkip(), params.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteList(quotes))
}

// RegisterAuthorRoutes registers author routes on the given router group.
func (h *AuthorHandler) RegisterAuthorRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	authors.GET("", h.ListAuthors)
	authors.GET("/:id", h.GetAuthor)
	authors.GET("/:id/quotes", h.ListAuthorQuotes)
}

// parseID extracts and parses the :id path parameter. Non-numeric ids
// are payload errors, not routing misses.
func parseID(c *gin.Context, field string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.NewInvalidPayloadError(map[string]string{
			field + "_id": "must be an integer",
		})
	}

	return id, nil
}
