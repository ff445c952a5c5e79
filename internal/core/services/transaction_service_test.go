package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	ctx      context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo,
		services.WithMaxOccurrences(24),
		services.WithTransactionClock(func() time.Time { return fixedNow }))
	suite.ctx = context.Background()
}

func intPtr(i int) *int { return &i }

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Single() {
	req := dto.CreateTransactionRequest{
		Description:     "  Rent  ",
		Amount:          decimal.NewFromInt(1500),
		TransactionDate: domain.MustCalendarDate(2025, time.January, 31),
	}
	suite.mockRepo.On("SaveTransactions", suite.ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].Description == "Rent" &&
			txns[0].RecurrenceGroupID == nil &&
			txns[0].PaymentStatus == domain.PaymentPending &&
			txns[0].CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	txns, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.NotEmpty(txns[0].TransactionID)
	suite.Zero(txns[0].RecurrenceIndex)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MonthlyCount() {
	req := dto.CreateTransactionRequest{
		Description:     "Rent",
		Amount:          decimal.NewFromInt(1500),
		TransactionDate: domain.MustCalendarDate(2024, time.January, 31),
		IsRecurring:     true,
		RecurrenceType:  domain.RecurrenceMonthly,
		RecurrenceCount: intPtr(3),
	}
	suite.mockRepo.On("SaveTransactions", suite.ctx, mock.Anything).Return(nil).Once()

	txns, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	expected := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	groupID := txns[0].RecurrenceGroupID
	suite.Require().NotNil(groupID)
	for i, txn := range txns {
		suite.Equal(expected[i], txn.TransactionDate.String())
		suite.Equal(i+1, txn.RecurrenceIndex)
		suite.Equal(3, txn.RecurrenceTotal)
		suite.Equal(*groupID, *txn.RecurrenceGroupID)
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EndDateWinsOverCount() {
	end := domain.MustCalendarDate(2025, time.September, 10)
	req := dto.CreateTransactionRequest{
		Description:       "Gym",
		Amount:            decimal.NewFromInt(30),
		TransactionDate:   domain.MustCalendarDate(2025, time.August, 25),
		IsRecurring:       true,
		RecurrenceType:    domain.RecurrenceWeekly,
		RecurrenceWeekday: intPtr(int(time.Wednesday)),
		RecurrenceCount:   intPtr(10),
		RecurrenceEndDate: &end,
	}
	suite.mockRepo.On("SaveTransactions", suite.ctx, mock.Anything).Return(nil).Once()

	txns, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	dates := make([]string, len(txns))
	for i, txn := range txns {
		dates[i] = txn.TransactionDate.String()
	}
	suite.Equal([]string{"2025-08-25", "2025-08-27", "2025-09-03", "2025-09-10"}, dates)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidInput() {
	date := domain.MustCalendarDate(2025, time.January, 1)
	cases := []struct {
		name   string
		req    dto.CreateTransactionRequest
		target error
	}{
		{"blank description", dto.CreateTransactionRequest{Description: " ", Amount: decimal.NewFromInt(1), TransactionDate: date}, apperrors.ErrValidation},
		{"zero amount", dto.CreateTransactionRequest{Description: "x", Amount: decimal.Zero, TransactionDate: date}, apperrors.ErrValidation},
		{"missing date", dto.CreateTransactionRequest{Description: "x", Amount: decimal.NewFromInt(1)}, apperrors.ErrInvalidDate},
		{"weekly without weekday", dto.CreateTransactionRequest{
			Description: "x", Amount: decimal.NewFromInt(1), TransactionDate: date,
			IsRecurring: true, RecurrenceType: domain.RecurrenceWeekly, RecurrenceCount: intPtr(2),
		}, apperrors.ErrInvalidRecurrenceRule},
		{"unknown kind", dto.CreateTransactionRequest{
			Description: "x", Amount: decimal.NewFromInt(1), TransactionDate: date,
			IsRecurring: true, RecurrenceType: "daily", RecurrenceCount: intPtr(2),
		}, apperrors.ErrInvalidRecurrenceRule},
		{"no stop condition", dto.CreateTransactionRequest{
			Description: "x", Amount: decimal.NewFromInt(1), TransactionDate: date,
			IsRecurring: true, RecurrenceType: domain.RecurrenceMonthly,
		}, apperrors.ErrInvalidRecurrenceRule},
		{"end before anchor", dto.CreateTransactionRequest{
			Description: "x", Amount: decimal.NewFromInt(1), TransactionDate: date,
			IsRecurring: true, RecurrenceType: domain.RecurrenceMonthly,
			RecurrenceEndDate: func() *domain.CalendarDate { d := domain.MustCalendarDate(2024, time.December, 1); return &d }(),
		}, apperrors.ErrInvalidRecurrenceRule},
		{"over the occurrence cap", dto.CreateTransactionRequest{
			Description: "x", Amount: decimal.NewFromInt(1), TransactionDate: date,
			IsRecurring: true, RecurrenceType: domain.RecurrenceMonthly, RecurrenceCount: intPtr(25),
		}, apperrors.ErrInvalidRecurrenceRule},
	}

	for _, tc := range cases {
		_, err := suite.service.CreateTransaction(suite.ctx, tc.req)
		suite.ErrorIs(err, tc.target, tc.name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	repoErr := apperrors.NewAppError(500, "failed to save transactions", errors.New("db down"))
	suite.mockRepo.On("SaveTransactions", suite.ctx, mock.Anything).Return(repoErr).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Description:     "Rent",
		Amount:          decimal.NewFromInt(1500),
		TransactionDate: domain.MustCalendarDate(2025, time.January, 1),
	})

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	suite.mockRepo.On("FindTransactionByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransaction(suite.ctx, "missing")

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsLimit() {
	token := "next"
	rows := []domain.Transaction{{TransactionID: "t1"}, {TransactionID: "t2"}}
	suite.mockRepo.On("ListTransactions", suite.ctx, 20, (*string)(nil)).Return(rows, token, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListRecurrenceGroup_EmptyIsNotFound() {
	suite.mockRepo.On("ListTransactionsByRecurrenceGroup", suite.ctx, "group-x").Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListRecurrenceGroup(suite.ctx, "group-x")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
