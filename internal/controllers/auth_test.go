package controllers_test

import (
	"net/http"

	"github.com/chitieu/backend/internal/controllers"
	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegisterMissingFields() {
	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "missing@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Thiếu dữ liệu cần thiết", response.Message)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	body := map[string]string{
		"name":     "A",
		"email":    "twice@example.com",
		"password": "secret",
	}

	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "/api/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Email đã tồn tại", response.Message)
}

func (suite *TestSuiteStandard) TestLoginUnknownAccount() {
	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Tài khoản không tồn tại", response.Message)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "A",
		"email":    "login@example.com",
		"password": "secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Sai mật khẩu", response.Message)
}

func (suite *TestSuiteStandard) TestLoginResponse() {
	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Nguyễn Văn A",
		"email":    "Case.Sensitive@Example.com",
		"password": "secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Login is case insensitive on the email
	r = test.Request(suite.T(), http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "case.sensitive@example.com",
		"password": "secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Message string                   `json:"message"`
		Token   string                   `json:"token"`
		User    controllers.UserResponse `json:"user"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Đăng nhập thành công", response.Message)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "Nguyễn Văn A", response.User.Name)
	assert.Equal(suite.T(), "case.sensitive@example.com", response.User.Email)
}

func (suite *TestSuiteStandard) TestMe() {
	token := suite.signUp()

	r := test.Request(suite.T(), http.MethodGet, "/api/v1/auth/me", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Nguyễn Văn A", response.Name)
}

func (suite *TestSuiteStandard) TestMeRequiresToken() {
	r := test.Request(suite.T(), http.MethodGet, "/api/v1/auth/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Không có token", response.Message)
}

func (suite *TestSuiteStandard) TestMeGarbageToken() {
	r := test.Request(suite.T(), http.MethodGet, "/api/v1/auth/me", "", suite.authHeader("not-a-jwt"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Token không hợp lệ", response.Message)
}

func (suite *TestSuiteStandard) TestLogoutRevokesToken() {
	token := suite.signUp()

	r := test.Request(suite.T(), http.MethodPost, "/api/v1/auth/logout", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Đăng xuất thành công", response.Message)

	// The token is now revoked even though it is still within its
	// validity period
	r = test.Request(suite.T(), http.MethodGet, "/api/v1/auth/me", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Token đã bị thu hồi", response.Message)
}
