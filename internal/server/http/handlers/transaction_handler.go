package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/server/http/dto"
)

// TransactionHandler manages record endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// List handles GET /api/expenses. The result always covers exactly the
// caller's records; an owner with no records gets an empty array, not
// null.
func (h *TransactionHandler) List(c *gin.Context) {
	owner := CurrentIdentity(c)
	items, err := h.facade.Transactions(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch records", Details: err.Error()})
		return
	}

	response := make([]dto.TransactionResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toTransactionResponse(item))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/expenses.
func (h *TransactionHandler) Create(c *gin.Context) {
	owner := CurrentIdentity(c)

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}
	if req.Amount == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		return
	}

	created, err := h.facade.Record(c.Request.Context(), owner, req.Description, *req.Amount, model.TransactionKind(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid input"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to add record", Details: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(*created))
}

// Delete handles DELETE /api/expenses/:id. Missing and foreign records
// produce the same 404 so record ids of other owners stay unknowable.
func (h *TransactionHandler) Delete(c *gin.Context) {
	owner := CurrentIdentity(c)
	id := c.Param("id")

	if err := h.facade.Delete(c.Request.Context(), owner, id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "record not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to delete record", Details: err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary handles GET /api/summary.
func (h *TransactionHandler) Summary(c *gin.Context) {
	owner := CurrentIdentity(c)
	summary, err := h.facade.Summary(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch summary", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Income:  summary.Income,
		Expense: summary.Expense,
		Balance: summary.Balance,
	})
}

func toTransactionResponse(t model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Kind),
	}
}
