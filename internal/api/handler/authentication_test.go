package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Credenciais válidas - devolve o token",
			body: `{"email": "cassa@negozio.it", "password": "Segreta!2024"}`,
			setup: func() {
				mockAuth.EXPECT().LoginUser(gomock.Any(), "cassa@negozio.it", "Segreta!2024").Return("jwt-token", nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"token": "jwt-token"}`, rec.Body.String())
			},
		},
		{
			name: "Credenciais inválidas - 401",
			body: `{"email": "cassa@negozio.it", "password": "errata"}`,
			setup: func() {
				mockAuth.EXPECT().
					LoginUser(gomock.Any(), "cassa@negozio.it", "errata").
					Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Usuário desativado - 403",
			body: `{"email": "ex@negozio.it", "password": "Segreta!2024"}`,
			setup: func() {
				mockAuth.EXPECT().
					LoginUser(gomock.Any(), "ex@negozio.it", "Segreta!2024").
					Return("", authenticating.NewAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
		{
			name:  "E-mail malformado - validação",
			body:  `{"email": "cassa", "password": "x"}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
				assert.Equal(t, map[string]any{"Email": "email"}, apiErr.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := serve(http.MethodPost, "/v1/login", Login(mockAuth), jsonRequest(http.MethodPost, "/v1/login", tt.body))
			tt.validate(t, rec)
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)
	operator := &domain.Claims{UserID: 5, UserRoleID: domain.RoleOperator}
	body := `{"current_password": "Vecchia!2023", "new_password": "Nuova!2024x"}`

	tests := []struct {
		name     string
		request  func() *http.Request
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Própria senha - 204",
			request: func() *http.Request {
				return withUser(jsonRequest(http.MethodPost, "/v1/users/5/change-password", body), operator)
			},
			setup: func() {
				mockAuth.EXPECT().ChangePassword(gomock.Any(), int64(5), "Vecchia!2023", "Nuova!2024x").Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			},
		},
		{
			name: "Senha de outro usuário - 403",
			request: func() *http.Request {
				return withUser(jsonRequest(http.MethodPost, "/v1/users/6/change-password", body), operator)
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Sem usuário no contexto - 401",
			request: func() *http.Request {
				return jsonRequest(http.MethodPost, "/v1/users/5/change-password", body)
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name: "Senha atual errada",
			request: func() *http.Request {
				return withUser(jsonRequest(http.MethodPost, "/v1/users/5/change-password", body), operator)
			},
			setup: func() {
				mockAuth.EXPECT().
					ChangePassword(gomock.Any(), int64(5), "Vecchia!2023", "Nuova!2024x").
					Return(authenticating.NewUserAuthError(authenticating.ErrWrongPassword, apiErrors.ErrInvalidCredentials, 5, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := serve(http.MethodPost, "/v1/users/:id/change-password", ChangePassword(mockAuth), tt.request())
			tt.validate(t, rec)
		})
	}
}

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	t.Run("Administrador consulta outro usuário", func(t *testing.T) {
		mockAuth.EXPECT().GetUserProfile(gomock.Any(), int64(8)).Return(&domain.User{ID: 8, Name: "Giulia"}, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/v1/users/8", nil), &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin})
		rec := serve(http.MethodGet, "/v1/users/:id", GetUser(mockAuth), req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Giulia", user.Name)
	})

	t.Run("Operador não consulta outro usuário", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/v1/users/8", nil), &domain.Claims{UserID: 5, UserRoleID: domain.RoleOperator})
		rec := serve(http.MethodGet, "/v1/users/:id", GetUser(mockAuth), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	t.Run("Senha em texto vai para o serviço", func(t *testing.T) {
		mockAuth.EXPECT().
			CreateUser(gomock.Any(), &domain.User{Name: "Marco", Email: "marco@negozio.it", PasswordHash: "Segreta!2024", RoleID: 2}).
			Return(&domain.User{ID: 3, Name: "Marco", Email: "marco@negozio.it", RoleID: 2, Active: true}, nil)

		rec := serve(http.MethodPost, "/v1/users", CreateUser(mockAuth), jsonRequest(http.MethodPost, "/v1/users",
			`{"name": "Marco", "email": "marco@negozio.it", "password": "Segreta!2024", "role_id": 2}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Segreta")
	})

	t.Run("Papel inexistente", func(t *testing.T) {
		rec := serve(http.MethodPost, "/v1/users", CreateUser(mockAuth), jsonRequest(http.MethodPost, "/v1/users",
			`{"name": "Marco", "email": "marco@negozio.it", "password": "Segreta!2024", "role_id": 7}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"RoleID": "oneof"}, decodeAPIError(t, rec).Details)
	})

	t.Run("E-mail já cadastrado - 409", func(t *testing.T) {
		mockAuth.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, ""))

		rec := serve(http.MethodPost, "/v1/users", CreateUser(mockAuth), jsonRequest(http.MethodPost, "/v1/users",
			`{"name": "Marco", "email": "marco@negozio.it", "password": "Segreta!2024"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
