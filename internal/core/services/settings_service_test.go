package services_test

import (
	"context"
	"testing"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertUserSettings(ctx context.Context, settings domain.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo, suite.mockCurrencyRepo)
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestGetUserSettings_Existing() {
	ctx := context.Background()
	existing := &domain.UserSettings{UserID: testUserID, Currency: "EUR"}

	suite.mockSettingsRepo.On("FindUserSettings", ctx, testUserID).Return(existing, nil).Once()

	settings, err := suite.service.GetUserSettings(ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal("EUR", settings.Currency)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertUserSettings")
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetUserSettings_ProvisionsDefault() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindUserSettings", ctx, testUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("UpsertUserSettings", ctx, domain.UserSettings{UserID: testUserID, Currency: "USD"}).Return(nil).Once()

	settings, err := suite.service.GetUserSettings(ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal("USD", settings.Currency)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetUserSettings_Unauthenticated() {
	ctx := context.Background()

	settings, err := suite.service.GetUserSettings(ctx, "")

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "FindUserSettings")
}

func (suite *SettingsServiceTestSuite) TestGetUserSettings_RepoError() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindUserSettings", ctx, testUserID).Return(nil, assert.AnError).Once()

	settings, err := suite.service.GetUserSettings(ctx, testUserID)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, assert.AnError)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertUserSettings")
}

func (suite *SettingsServiceTestSuite) TestUpdateUserCurrency_Success() {
	ctx := context.Background()
	brl := &domain.Currency{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real"}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "BRL").Return(brl, nil).Once()
	suite.mockSettingsRepo.On("UpsertUserSettings", ctx, domain.UserSettings{UserID: testUserID, Currency: "BRL"}).Return(nil).Once()

	settings, err := suite.service.UpdateUserCurrency(ctx, testUserID, "BRL")

	suite.Require().NoError(err)
	suite.Equal("BRL", settings.Currency)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateUserCurrency_Unsupported() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.UpdateUserCurrency(ctx, testUserID, "XXX")

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertUserSettings")
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
