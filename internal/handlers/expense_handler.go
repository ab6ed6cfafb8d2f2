package handlers

import (
	"net/http"

	"finnote/internal/dto"
	"finnote/internal/errors"
	"finnote/internal/models"
	"finnote/internal/repositories"
	"finnote/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ExpenseHandler handles expense journal endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// List returns a page of the authenticated user's expenses, newest first
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseExpenseFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	expenses, total, err := h.expenseService.ListExpenses(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalPages := total / int64(filters.Limit)
	if total%int64(filters.Limit) != 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses:    expenses,
		TotalPages:  totalPages,
		CurrentPage: filters.Page,
	})
}

// Create records a new expense and debits the linked vault
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(userID, &req)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// Analytics returns the authenticated user's spending grouped by category
func (h *ExpenseHandler) Analytics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	breakdown, totalSpent, err := h.expenseService.Analytics(userID, startDate, endDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnalyticsResponse{
		CategoryBreakdown: breakdown,
		TotalSpent:        totalSpent,
	})
}

// Update applies a partial update to an expense owned by the authenticated user
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseNotFound)
	}

	var req dto.UpdateExpenseRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, &req)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete removes an expense and credits the amount back to its vault
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseNotFound)
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

func parseExpenseFilters(c echo.Context) (models.ExpenseFilters, error) {
	filters := models.ExpenseFilters{
		Category: c.QueryParam("category"),
		Page:     getIntParam(c, "page", 1),
		Limit:    getIntParam(c, "limit", defaultPageSize),
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = defaultPageSize
	}
	if filters.Limit > maxPageSize {
		filters.Limit = maxPageSize
	}

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return filters, err
	}
	filters.StartDate = startDate

	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return filters, err
	}
	filters.EndDate = endDate

	return filters, nil
}
