package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kidsactivity/internal/delivery/http/validator"
	"kidsactivity/internal/domain/entity"
	mockUC "kidsactivity/internal/mocks/usecase"
	"kidsactivity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// postJSONContext builds an echo context with the server's validator wired,
// the way NewServer configures it.
func postJSONContext(t *testing.T, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "parent@example.com", input.Email)
			assert.Equal(t, "A Parent", input.Name)

			return &usecase.AuthOutput{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &entity.User{Email: input.Email},
			}, nil
		})

	c, rec := postJSONContext(t, "/api/v1/auth/register",
		`{"email":"parent@example.com","password":"correct-horse","name":"A Parent"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_Register_RejectsInvalidEmail(t *testing.T) {
	// No expectations: the usecase must never see an address that fails
	// format validation.
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := postJSONContext(t, "/api/v1/auth/register",
		`{"email":"not-an-email","password":"correct-horse","name":"A Parent"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Register_RejectsShortPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := postJSONContext(t, "/api/v1/auth/register",
		`{"email":"parent@example.com","password":"short","name":"A Parent"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Login_RejectsMissingPassword(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := postJSONContext(t, "/api/v1/auth/login",
		`{"email":"parent@example.com"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
