package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/api/handler/router"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/middleware"
)

// serve registra uma única rota para que os parâmetros do httprouter cheguem ao handler
func serve(method, path string, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(router.Route{
		Path:    path,
		Method:  method,
		Handler: handler,
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

// multipartRequest monta um upload com o campo "file" e campos extras
func multipartRequest(t *testing.T, target, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}
