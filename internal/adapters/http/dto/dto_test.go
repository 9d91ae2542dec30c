package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotable/internal/domain"
)

func TestAuthorValueUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected AuthorValue
	}{
		{
			name:     "object form",
			payload:  `{"first": "Tim", "last": "Peters"}`,
			expected: AuthorValue{First: "Tim", Last: "Peters"},
		},
		{
			name:     "string splits on first space",
			payload:  `"Tim Peters"`,
			expected: AuthorValue{First: "Tim", Last: "Peters"},
		},
		{
			name:     "multi-word last name stays intact",
			payload:  `"Ludwig van Beethoven"`,
			expected: AuthorValue{First: "Ludwig", Last: "van Beethoven"},
		},
		{
			name:     "single token yields empty pair",
			payload:  `"Plato"`,
			expected: AuthorValue{},
		},
		{
			name:     "trailing space yields empty pair",
			payload:  `"Plato "`,
			expected: AuthorValue{},
		},
		{
			name:     "empty string yields empty pair",
			payload:  `""`,
			expected: AuthorValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var author AuthorValue
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &author))
			assert.Equal(t, tt.expected, author)
		})
	}

	t.Run("non-string non-object rejected", func(t *testing.T) {
		var author AuthorValue
		assert.Error(t, json.Unmarshal([]byte(`42`), &author))
	})
}

func TestValidateCreateQuoteRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := CreateQuoteRequest{
			Content: "Simple is better than complex.",
			Author:  AuthorValue{First: "Tim", Last: "Peters"},
		}

		assert.NoError(t, Validate(req))
	})

	tests := []struct {
		name  string
		req   CreateQuoteRequest
		field string
	}{
		{
			name:  "missing content",
			req:   CreateQuoteRequest{Author: AuthorValue{First: "Tim", Last: "Peters"}},
			field: "content",
		},
		{
			name: "blank content",
			req: CreateQuoteRequest{
				Content: "   ",
				Author:  AuthorValue{First: "Tim", Last: "Peters"},
			},
			field: "content",
		},
		{
			name:  "missing author",
			req:   CreateQuoteRequest{Content: "Now is better than never."},
			field: "author",
		},
		{
			name: "half an author",
			req: CreateQuoteRequest{
				Content: "Now is better than never.",
				Author:  AuthorValue{First: "Tim"},
			},
			field: "author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)

			require.ErrorIs(t, err, domain.ErrInvalidPayload)

			var invalid *domain.InvalidPayloadError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "Data not provided.", invalid.Fields[tt.field])
		})
	}
}

func TestListParamsDefaults(t *testing.T) {
	tests := []struct {
		name          string
		params        ListParams
		expectedSkip  int
		expectedLimit int
	}{
		{"zero values use defaults", ListParams{}, 0, 5},
		{"explicit values pass through", ListParams{Skip: 10, Limit: 20}, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedSkip, tt.params.GetSkip())
			assert.Equal(t, tt.expectedLimit, tt.params.GetLimit())
		})
	}
}

func TestListParamsRejectsOversizedLimit(t *testing.T) {
	err := Validate(ListParams{Limit: MaxLimit + 1})

	require.ErrorIs(t, err, domain.ErrInvalidPayload)

	var invalid *domain.InvalidPayloadError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "must be less than or equal to 500", invalid.Fields["limit"])
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "invalid payload",
			err:             domain.NewInvalidPayloadError(map[string]string{"content": "Data not provided."}),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MessageInvalidPayload,
		},
		{
			name:            "business rule",
			err:             domain.NewBusinessRuleError("quota", "limit reached"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MessageBusinessRule,
		},
		{
			name:            "author not found",
			err:             domain.NewNotFoundError("author", 7),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Author Not Found",
		},
		{
			name:            "quote not found",
			err:             domain.NewNotFoundError("quote", 7),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Quote Not Found",
		},
		{
			name:            "bare not-found sentinel",
			err:             domain.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MessageNotFound,
		},
		{
			name:            "unclassified error",
			err:             errors.New("connection reset"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MessageServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}

	t.Run("invalid payload carries fields", func(t *testing.T) {
		fields := map[string]string{"author": "Data not provided."}

		_, resp := MapDomainError(domain.NewInvalidPayloadError(fields))

		assert.Equal(t, fields, resp.Fields)
	})

	t.Run("nil error maps to OK", func(t *testing.T) {
		status, resp := MapDomainError(nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})
}
