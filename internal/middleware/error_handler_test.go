package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite covers the translation of stray errors into the
// standard error envelope
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

// tracedContext builds a context for the given route with a trace ID already
// assigned, the way RequestID leaves it.
func (s *ErrorHandlerTestSuite) tracedContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "4fd1a9c3-ledger-trace")
	return c, rec
}

// TestCustomHTTPErrorHandler_EchoHTTPError tests that an echo.HTTPError
// keeps its status and message while gaining the envelope fields.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	c, rec := s.tracedContext(http.MethodGet, "/api/v1/transactions/unknown")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Transaction not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "4fd1a9c3-ledger-trace")
	s.Contains(rec.Body.String(), "Transaction not found")
}

// TestCustomHTTPErrorHandler_OpaqueError tests that an error no layer
// classified collapses to the internal system code.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_OpaqueError() {
	c, rec := s.tracedContext(http.MethodPost, "/api/v1/transactions")

	CustomHTTPErrorHandler(errors.New("blob store rejected the write"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "4fd1a9c3-ledger-trace")
	s.NotContains(rec.Body.String(), "blob store", "internal wording must not leak")
}

// TestCustomHTTPErrorHandler_MissingTraceID tests the "unknown" trace
// fallback for requests that bypassed the RequestID middleware.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_MissingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(errors.New("summary failed"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

// TestCustomHTTPErrorHandler_CommittedResponse tests that a response already
// written to the client is never overwritten.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycle/current", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("too late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

// TestCustomHTTPErrorHandler_StatusToCodeMapping tests the domain code
// chosen for each HTTP status an echo.HTTPError can carry.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_StatusToCodeMapping() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "TRANSACTION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.tracedContext(http.MethodGet, "/api/v1/transactions")

			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

// TestCustomHTTPErrorHandler_ContentType tests that the envelope goes out as
// JSON.
func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ContentType() {
	c, rec := s.tracedContext(http.MethodGet, "/api/v1/settings/cycle-start-day")

	CustomHTTPErrorHandler(errors.New("boom"), c)

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
