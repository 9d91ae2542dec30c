package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotable/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotable/internal/app"
	"github.com/jsamuelsen/quotable/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the full HTTP representation of a quote, used for
// single-quote views and creation responses.
type QuoteResponse struct {
	ID       int64           `json:"id"`
	Content  string          `json:"content"`
	Author   *AuthorResponse `json:"author,omitempty"`
	PostedAt string          `json:"posted_at"`
}

// QuoteListItem is the reduced projection used by list views: id and
// content only, no author and no timestamp.
type QuoteListItem struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		ID:       q.ID,
		Content:  q.Content,
		PostedAt: q.PostedAt.UTC().Format(time.RFC3339),
	}

	if q.Author != nil {
		resp.Author = toAuthorResponse(q.Author)
	}

	return resp
}

func toQuoteList(quotes []domain.Quote) []QuoteListItem {
	items := make([]QuoteListItem, 0, len(quotes))
	for i := range quotes {
		items = append(items, QuoteListItem{
			ID:      quotes[i].ID,
			Content: quotes[i].Content,
		})
	}

	return items
}

// ListQuotes handles GET /quotes/.
// Returns a page of quotes in the reduced id/content projection.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var params dto.ListParams
	if err := dto.BindQueryAndValidate(c, &params); err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes, err := h.service.ListQuotes(c.Request.Context(), params.GetSkip(), params.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteList(quotes))
}

// GetQuote handles GET /quotes/:id.
// Returns the full quote representation with its author nested.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := parseID(c, "quote")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// CreateQuote handles POST /quotes/.
// The author is resolved by exact name match and created when absent;
// the response nests whichever author the quote ended up attached to.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), app.CreateQuoteInput{
		Content: req.Content,
		Author: app.AuthorName{
			First: req.Author.First,
			Last:  req.Author.Last,
		},
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/", h.ListQuotes)
	quotes.POST("/", h.CreateQuote)
	quotes.GET("/:id", h.GetQuote)
}
