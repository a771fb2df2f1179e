package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/backend/internal/application/services"
	"github.com/travelease/backend/internal/domain/entities"
	apperrors "github.com/travelease/backend/pkg/errors"
)

type stubAuthService struct {
	signupInput services.SignupInput
	loginEmail  string
	result      *services.AuthResult
	err         error
}

func (s *stubAuthService) Signup(_ context.Context, input services.SignupInput) (*services.AuthResult, error) {
	s.signupInput = input
	return s.result, s.err
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*services.AuthResult, error) {
	s.loginEmail = email
	return s.result, s.err
}

const validSignupBody = `{
	"email": "asha@example.com",
	"password": "secret123",
	"full_name": "Asha Verma",
	"age": 28,
	"gender": "female",
	"interests": ["trekking"]
}`

func TestSignupCreated(t *testing.T) {
	svc := &stubAuthService{result: &services.AuthResult{
		Token: "signed-token",
		User:  &entities.User{ID: 1, Email: "asha@example.com"},
	}}
	handler := NewAuthHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(validSignupBody))
	handler.Signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `"signed-token"`, string(body["token"]))
	assert.Contains(t, string(body["user"]), "asha@example.com")
	assert.Equal(t, "asha@example.com", svc.signupInput.Email)
	assert.Equal(t, []string{"trekking"}, svc.signupInput.Interests)
}

func TestSignupValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{`, "Invalid request payload"},
		{"bad email", `{"email":"nope","password":"secret123","full_name":"Asha","age":28,"gender":"female"}`, "valid email"},
		{"short password", `{"email":"a@b.com","password":"abc","full_name":"Asha","age":28,"gender":"female"}`, "password"},
		{"short name", `{"email":"a@b.com","password":"secret123","full_name":"A","age":28,"gender":"female"}`, "full_name"},
		{"underage", `{"email":"a@b.com","password":"secret123","full_name":"Asha","age":17,"gender":"female"}`, "age"},
		{"bad gender", `{"email":"a@b.com","password":"secret123","full_name":"Asha","age":28,"gender":"robot"}`, "gender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(&stubAuthService{})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tc.body))
			handler.Signup(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := &stubAuthService{err: apperrors.NewConflictError("User with this email already exists")}
	handler := NewAuthHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(validSignupBody))
	handler.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with this email already exists")
}

func TestLoginOK(t *testing.T) {
	svc := &stubAuthService{result: &services.AuthResult{
		Token: "signed-token",
		User:  &entities.User{ID: 1, Email: "asha@example.com"},
	}}
	handler := NewAuthHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"asha@example.com","password":"secret123"}`))
	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Equal(t, "asha@example.com", svc.loginEmail)
}

func TestLoginRejected(t *testing.T) {
	svc := &stubAuthService{err: apperrors.NewUnauthorizedError("Invalid email or password")}
	handler := NewAuthHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"asha@example.com","password":"wrong"}`))
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}
