package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions and their payments.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	paymentService     portssvc.PaymentLedgerSvc
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, paymentService portssvc.PaymentLedgerSvc) {
	registerValidators()
	h := &transactionHandler{
		transactionService: transactionService,
		paymentService:     paymentService,
	}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.GET("/recurrence-groups/:groupID", h.listRecurrenceGroup)
		transactions.POST("/:id/mark-as-paid", h.markAsPaid)
		transactions.POST("/:id/reverse-payment", h.reversePayment)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates one transaction, or one per occurrence when the request is recurring
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txns, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions by date with token-based pagination
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listRecurrenceGroup godoc
// @Summary List the occurrences of a recurring transaction
// @Tags transactions
// @Produce  json
// @Param   groupID path string true "Recurrence group ID"
// @Success 200 {object} dto.CreateTransactionResponse
// @Failure 404 {object} map[string]string "Recurrence group not found"
// @Failure 500 {object} map[string]string "Failed to retrieve recurrence group"
// @Router /transactions/recurrence-groups/{groupID} [get]
func (h *transactionHandler) listRecurrenceGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("recurrence_group_id", c.Param("groupID")))

	txns, err := h.transactionService.ListRecurrenceGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve recurrence group")
		return
	}
	c.JSON(http.StatusOK, dto.CreateTransactionResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// markAsPaid godoc
// @Summary Mark a transaction as paid
// @Description Records a payment. Credit card payments also add a charge to the card's statement.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   payment body dto.MarkAsPaidRequest true "Payment details"
// @Success 200 {object} dto.MarkAsPaidResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already paid"
// @Failure 422 {object} map[string]string "Credit card payment without a valid card"
// @Failure 500 {object} map[string]string "Failed to mark transaction as paid"
// @Router /transactions/{id}/mark-as-paid [post]
func (h *transactionHandler) markAsPaid(c *gin.Context) {
	transactionID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	var req dto.MarkAsPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkAsPaid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.paymentService.MarkAsPaid(c.Request.Context(), transactionID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to mark transaction as paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToMarkAsPaidResponse(result))
}

// reversePayment godoc
// @Summary Reverse the payment of a transaction
// @Description Reopens a paid transaction and removes its card charge, if any
// @Tags payments
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.ReversePaymentResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not paid"
// @Failure 500 {object} map[string]string "Failed to reverse payment"
// @Router /transactions/{id}/reverse-payment [post]
func (h *transactionHandler) reversePayment(c *gin.Context) {
	transactionID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	txn, err := h.paymentService.ReversePayment(c.Request.Context(), transactionID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse payment")
		return
	}
	c.JSON(http.StatusOK, dto.ReversePaymentResponse{Transaction: dto.ToTransactionResponse(txn)})
}
