package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wealthway/internal/dto"
	"wealthway/internal/models"
	"wealthway/internal/repositories"
	"wealthway/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)           {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)       {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ledger  services.LedgerServiceInterface
	handler *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	ledger, err := services.NewLedgerService(repositories.NewMemoryBlobStore(), noopMetrics{})
	s.Require().NoError(err)
	s.ledger = ledger
	s.handler = NewTransactionHandler(s.ledger)
}

func (s *TransactionHandlerTestSuite) postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *TransactionHandlerTestSuite) createTransaction(body string) models.Transaction {
	c, rec := s.postJSON("/api/v1/transactions", body)
	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Transaction
}

// ========================================
// POST /api/v1/transactions Tests
// ========================================

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := s.createTransaction(`{"date":"2024-06-15","amount":"4200","category":"Food","memo":"groceries","type":"expense"}`)

	s.NotEqual(uuid.Nil, created.ID)
	s.Equal("2024-06-15", created.Date.String())
	s.Equal(int64(4200), created.Amount)
	s.Equal(models.CategoryFood, created.Category)
	s.Equal("groceries", created.Memo)

	s.Len(s.ledger.All(), 1)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_FractionalAmountFloored() {
	created := s.createTransaction(`{"date":"2024-06-15","amount":"4200.99","category":"Food","type":"expense"}`)
	s.Equal(int64(4200), created.Amount)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidPayload() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing amount", body: `{"date":"2024-06-15","category":"Food","type":"expense"}`},
		{name: "missing category", body: `{"date":"2024-06-15","amount":"100","type":"expense"}`},
		{name: "bad date", body: `{"date":"2024-13-45","amount":"100","category":"Food","type":"expense"}`},
		{name: "bad type", body: `{"date":"2024-06-15","amount":"100","category":"Food","type":"transfer"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, _ := s.postJSON("/api/v1/transactions", tc.body)
			err := s.handler.CreateTransaction(c)
			s.Error(err)
			s.Empty(s.ledger.All())
		})
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_NonNumericAmount() {
	c, rec := s.postJSON("/api/v1/transactions", `{"date":"2024-06-15","amount":"lots","category":"Food","type":"expense"}`)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_002", response.Error.Code)
	s.Empty(s.ledger.All())
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	c, rec := s.postJSON("/api/v1/transactions", `{"date":"2024-06-15","amount":"100","category":"Salary","type":"expense"}`)

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_005", response.Error.Code)
}

// ========================================
// GET /api/v1/transactions Tests
// ========================================

func (s *TransactionHandlerTestSuite) TestListTransactions_All() {
	s.createTransaction(`{"date":"2024-06-01","amount":"100","category":"Food","type":"expense"}`)
	s.createTransaction(`{"date":"2024-06-02","amount":"200","category":"Salary","type":"income"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Count)
	// Newest first.
	s.Equal("2024-06-02", response.Transactions[0].Date.String())
}

func (s *TransactionHandlerTestSuite) TestListTransactions_RangeFilter() {
	s.createTransaction(`{"date":"2024-05-31","amount":"100","category":"Food","type":"expense"}`)
	s.createTransaction(`{"date":"2024-06-01","amount":"200","category":"Food","type":"expense"}`)
	s.createTransaction(`{"date":"2024-06-30","amount":"300","category":"Food","type":"expense"}`)
	s.createTransaction(`{"date":"2024-07-01","amount":"400","category":"Food","type":"expense"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?start_date=2024-06-01&end_date=2024-06-30", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Count)
	s.Equal("2024-06-01", response.StartDate)
	s.Equal("2024-06-30", response.EndDate)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidRange() {
	s.createTransaction(`{"date":"2024-06-15","amount":"100","category":"Food","type":"expense"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?start_date=2024-07-01&end_date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_005", response.Error.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_HalfOpenRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?start_date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// PUT /api/v1/transactions/:id Tests
// ========================================

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	created := s.createTransaction(`{"date":"2024-06-15","amount":"100","category":"Food","type":"expense"}`)

	body := `{"date":"2024-06-16","amount":"250","category":"Transportation","memo":"bus pass","type":"expense"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/transactions/"+created.ID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.ID, response.Transaction.ID)
	s.Equal(int64(250), response.Transaction.Amount)
	s.Equal(models.CategoryTransportation, response.Transaction.Category)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_UnknownID() {
	body := `{"date":"2024-06-16","amount":"250","category":"Food","type":"expense"}`
	unknownID := uuid.New().String()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/transactions/"+unknownID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(unknownID)

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_001", response.Error.Code)
}

func (s *TransactionHandlerTestSuite) TestUpdateTransaction_MalformedID() {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/transactions/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// DELETE /api/v1/transactions/:id Tests
// ========================================

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_RequiresConfirmation() {
	created := s.createTransaction(`{"date":"2024-06-15","amount":"100","category":"Food","type":"expense"}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+created.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("TRANSACTION_003", response.Error.Code)
	s.Len(s.ledger.All(), 1)
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_Confirmed() {
	created := s.createTransaction(`{"date":"2024-06-15","amount":"100","category":"Food","type":"expense"}`)

	url := fmt.Sprintf("/api/v1/transactions/%s?confirm=true", created.ID)
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.ledger.All())
}

func (s *TransactionHandlerTestSuite) TestDeleteTransaction_UnknownID() {
	unknownID := uuid.New().String()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/"+unknownID+"?confirm=true", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(unknownID)

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
