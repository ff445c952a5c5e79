package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to credit cards and their statements.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

// RegisterCardRoutes registers routes related to cards.
func RegisterCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	registerValidators()
	h := &cardHandler{cardService: cardService}

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("/:id", h.getCard)
		cards.GET("/:id/statement-preview", h.previewStatement)
		cards.GET("/:id/statements/:dueDate", h.getStatement)
	}
}

// createCard godoc
// @Summary Register a credit card
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create card"
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create card")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// getCard godoc
// @Summary Get a card by ID
// @Tags cards
// @Produce  json
// @Param   id path string true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve card"
// @Router /cards/{id} [get]
func (h *cardHandler) getCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("card_id", c.Param("id")))

	card, err := h.cardService.GetCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// previewStatement godoc
// @Summary Preview the statement a date is billed on
// @Description Returns the closing and due dates of the statement an event on the given date falls into
// @Tags cards
// @Produce  json
// @Param   id path string true "Card ID"
// @Param   date query string true "Event date (YYYY-MM-DD)"
// @Success 200 {object} dto.StatementPreviewResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to preview statement"
// @Router /cards/{id}/statement-preview [get]
func (h *cardHandler) previewStatement(c *gin.Context) {
	cardID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("card_id", cardID))

	var params dto.StatementPreviewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for PreviewStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	date, err := domain.ParseCalendarDate(params.Date)
	if err != nil {
		respondWithError(c, logger, err, "Failed to preview statement")
		return
	}

	statement, err := h.cardService.PreviewStatement(c.Request.Context(), cardID, date)
	if err != nil {
		respondWithError(c, logger, err, "Failed to preview statement")
		return
	}
	c.JSON(http.StatusOK, dto.StatementPreviewResponse{
		CardID:      cardID,
		EventDate:   date,
		ClosingDate: statement.ClosingDate,
		DueDate:     statement.DueDate,
	})
}

// getStatement godoc
// @Summary Get the charges due on a date
// @Tags cards
// @Produce  json
// @Param   id path string true "Card ID"
// @Param   dueDate path string true "Due date (YYYY-MM-DD)"
// @Success 200 {object} dto.CardStatementResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve statement"
// @Router /cards/{id}/statements/{dueDate} [get]
func (h *cardHandler) getStatement(c *gin.Context) {
	cardID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("card_id", cardID))

	dueDate, err := domain.ParseCalendarDate(c.Param("dueDate"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve statement")
		return
	}

	statement, err := h.cardService.GetStatement(c.Request.Context(), cardID, dueDate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardStatementResponse(statement))
}
