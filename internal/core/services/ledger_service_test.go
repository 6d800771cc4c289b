package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/core/services"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, monthDelta domain.MonthHistory, yearDelta domain.YearHistory) error {
	args := m.Called(ctx, txn, monthDelta, yearDelta)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, from, to, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockLedgerRepository) GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceStats), args.Error(1)
}

func (m *MockLedgerRepository) GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStats), args.Error(1)
}

func (m *MockLedgerRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockLedgerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByName(ctx context.Context, userID, name string) (*domain.Category, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockCategoryRepo)
}

const testUserID = "u1"

func salaryCategory() *domain.Category {
	return &domain.Category{
		Name:   "Salary",
		UserID: testUserID,
		Icon:   "💰",
		Type:   domain.Income,
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Success() {
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(1000),
		Date:     date,
		Category: "Salary",
		Type:     "income",
	}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Salary").Return(salaryCategory(), nil).Once()

	suite.mockLedgerRepo.On("SaveTransaction", ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.UserID == testUserID &&
				txn.Amount.Equal(decimal.NewFromInt(1000)) &&
				txn.Type == domain.Income &&
				txn.Category == "Salary" &&
				txn.CategoryIcon == "💰" &&
				txn.Date.Equal(date) &&
				txn.TransactionID != ""
		}),
		mock.MatchedBy(func(md domain.MonthHistory) bool {
			return md.UserID == testUserID &&
				md.Day == 15 && md.Month == 2 && md.Year == 2024 &&
				md.Income.Equal(decimal.NewFromInt(1000)) &&
				md.Expense.IsZero()
		}),
		mock.MatchedBy(func(yd domain.YearHistory) bool {
			return yd.UserID == testUserID &&
				yd.Month == 2 && yd.Year == 2024 &&
				yd.Income.Equal(decimal.NewFromInt(1000)) &&
				yd.Expense.IsZero()
		}),
	).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Salary", txn.Category)
	suite.Equal("💰", txn.CategoryIcon)
	suite.Equal(domain.Income, txn.Type)
	suite.NotEmpty(txn.TransactionID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ExpenseFillsExpenseDelta() {
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(500),
		Date:     date,
		Category: "Groceries",
		Type:     "expense",
	}
	groceries := &domain.Category{Name: "Groceries", UserID: testUserID, Icon: "🛒", Type: domain.Expense}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Groceries").Return(groceries, nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(md domain.MonthHistory) bool {
			return md.Income.IsZero() && md.Expense.Equal(decimal.NewFromInt(500))
		}),
		mock.MatchedBy(func(yd domain.YearHistory) bool {
			return yd.Income.IsZero() && yd.Expense.Equal(decimal.NewFromInt(500))
		}),
	).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, txn.Type)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ZeroAmountIsAllowed() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.Zero,
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     "income",
	}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Salary").Return(salaryCategory(), nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.MonthHistory"), mock.AnythingOfType("domain.YearHistory")).Return(nil).Once()

	_, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Unauthenticated() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Now().UTC(),
		Category: "Salary",
		Type:     "income",
	}

	txn, err := suite.service.RecordTransaction(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByName")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ValidationErrors() {
	ctx := context.Background()
	validDate := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     dto.CreateTransactionRequest
		errPart string
	}{
		{
			name: "negative amount",
			req: dto.CreateTransactionRequest{
				Amount:   decimal.NewFromInt(-1),
				Date:     validDate,
				Category: "Salary",
				Type:     "income",
			},
			errPart: "amount",
		},
		{
			name: "invalid type",
			req: dto.CreateTransactionRequest{
				Amount:   decimal.NewFromInt(1),
				Date:     validDate,
				Category: "Salary",
				Type:     "transfer",
			},
			errPart: "type",
		},
		{
			name: "zero date",
			req: dto.CreateTransactionRequest{
				Amount:   decimal.NewFromInt(1),
				Category: "Salary",
				Type:     "income",
			},
			errPart: "date",
		},
		{
			name: "missing category",
			req: dto.CreateTransactionRequest{
				Amount: decimal.NewFromInt(1),
				Date:   validDate,
				Type:   "income",
			},
			errPart: "category",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			txn, err := suite.service.RecordTransaction(ctx, tt.req, testUserID)
			suite.Require().Error(err)
			suite.Nil(txn)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.errPart)
		})
	}

	// No store access for any invalid intent
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByName")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_CategoryNotFound() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Nonexistent",
		Type:     "expense",
	}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Nonexistent").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, services.ErrCategoryNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_LookupIgnoresCategoryType() {
	// A same-named category of the other type still resolves; the icon comes
	// from whichever row matched while the deltas follow the request type.
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(50),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     "expense",
	}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Salary").Return(salaryCategory(), nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Type == domain.Expense && txn.CategoryIcon == "💰"
		}),
		mock.MatchedBy(func(md domain.MonthHistory) bool {
			return md.Income.IsZero() && md.Expense.Equal(decimal.NewFromInt(50))
		}),
		mock.AnythingOfType("domain.YearHistory"),
	).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().NoError(err)
	suite.Equal("💰", txn.CategoryIcon)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_SaveError() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     "income",
	}
	expectedErr := assert.AnError

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Salary").Return(salaryCategory(), nil).Once()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.MonthHistory"), mock.AnythingOfType("domain.YearHistory")).Return(expectedErr).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, testUserID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_GeneratesFreshIDs() {
	// Each call gets a fresh transaction ID: resubmitting the same intent
	// records a second transaction rather than deduplicating.
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     "income",
	}

	var seenIDs []string
	suite.mockCategoryRepo.On("FindCategoryByName", ctx, testUserID, "Salary").Return(salaryCategory(), nil).Twice()
	suite.mockLedgerRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.MonthHistory"), mock.AnythingOfType("domain.YearHistory")).
		Run(func(args mock.Arguments) {
			txn := args.Get(1).(domain.Transaction)
			seenIDs = append(seenIDs, txn.TransactionID)
		}).Return(nil).Twice()

	_, err := suite.service.RecordTransaction(ctx, req, testUserID)
	suite.Require().NoError(err)
	_, err = suite.service.RecordTransaction(ctx, req, testUserID)
	suite.Require().NoError(err)

	suite.Require().Len(seenIDs, 2)
	suite.NotEqual(seenIDs[0], seenIDs[1])
}

func (suite *LedgerServiceTestSuite) TestListTransactions_InvalidRange() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, _, err := suite.service.ListTransactions(ctx, testUserID, from, to, 20, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *LedgerServiceTestSuite) TestGetBalanceStats_Success() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	expected := &domain.BalanceStats{
		Income:  decimal.NewFromInt(1000),
		Expense: decimal.NewFromInt(400),
	}

	suite.mockLedgerRepo.On("GetBalanceStats", ctx, testUserID, from, to).Return(expected, nil).Once()

	stats, err := suite.service.GetBalanceStats(ctx, testUserID, from, to)

	suite.Require().NoError(err)
	suite.Equal(expected, stats)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
