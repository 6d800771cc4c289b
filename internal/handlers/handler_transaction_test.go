package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/core/services"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
	"github.com/budgetwise/budget_tracker_app/internal/handlers"
	"github.com/budgetwise/budget_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
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

func (m *MockLedgerService) GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceStats), args.Error(1)
}

func (m *MockLedgerService) GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStats), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, userID, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, name string, txnType domain.TransactionType) error {
	args := m.Called(ctx, userID, name, txnType)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) ListPeriods(ctx context.Context, userID string) ([]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockHistoryService) GetMonthHistory(ctx context.Context, userID string, month, year int) ([]domain.MonthHistory, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthHistory), args.Error(1)
}

func (m *MockHistoryService) GetYearHistory(ctx context.Context, userID string, year int) ([]domain.YearHistory, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearHistory), args.Error(1)
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateUserCurrency(ctx context.Context, userID, currencyCode string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bta-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedgerService = new(MockLedgerService)

	cfg := &config.Config{
		JWTSecret: suite.jwtSecret,
		// Swagger routes stay off so the suite only wires the API surface.
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		Ledger:   suite.mockLedgerService,
		Category: new(MockCategoryService),
		History:  new(MockHistoryService),
		Settings: new(MockSettingsService),
		Currency: new(MockCurrencyService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	reqBody := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(1000),
		Date:     date,
		Category: "Salary",
		Type:     "income",
	}
	recorded := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(1000),
		Date:          date,
		Type:          domain.Income,
		Category:      "Salary",
		CategoryIcon:  "💰",
	}

	suite.mockLedgerService.On("RecordTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Category == "Salary" && req.Type == "income" && req.Amount.Equal(decimal.NewFromInt(1000))
		}),
		userID,
	).Return(recorded, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(recorded.TransactionID, resp.TransactionID)
	suite.Equal("Salary", resp.Category)
	suite.Equal("💰", resp.CategoryIcon)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingToken() {
	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Now().UTC(),
		Category: "Salary",
		Type:     "income",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	userID := uuid.NewString()
	body := []byte(`{"amount":"10","date":"2024-03-15T00:00:00Z","category":"Salary","type":"transfer"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// Rejected by binding validation before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_CategoryNotFound() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Ghost",
		Type:     "expense",
	}

	suite.mockLedgerService.On("RecordTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.CreateTransactionRequest"),
		userID,
	).Return(nil, fmt.Errorf("%w: %q", services.ErrCategoryNotFound, "Ghost")).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorFromService() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(-5),
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Type:     "income",
	}

	suite.mockLedgerService.On("RecordTransaction",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.CreateTransactionRequest"),
		userID,
	).Return(nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	expected := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			Amount:        decimal.NewFromInt(1000),
			Date:          time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Type:          domain.Income,
			Category:      "Salary",
			CategoryIcon:  "💰",
		},
	}

	suite.mockLedgerService.On("ListTransactions",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time"),
		50,
		(*string)(nil),
	).Return(expected, nil, nil).Once()

	url := "/api/v1/transactions?from=2024-03-01&to=2024-03-31"
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal(expected[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.Nil(resp.NextToken)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
