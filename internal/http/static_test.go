package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	gh "guestbook/internal/http"
)

func writeStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("INDEX"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("CSS"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0o700))
	return dir
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterStatic_EmptyDir(t *testing.T) {
	e := echo.New()
	gh.RegisterStatic(e, "", "")
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_MissingIndex(t *testing.T) {
	e := echo.New()
	gh.RegisterStatic(e, "", t.TempDir())
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_ServesFiles(t *testing.T) {
	e := echo.New()
	gh.RegisterStatic(e, "", writeStaticDir(t))

	rec := serve(e, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "INDEX")

	rec = serve(e, http.MethodGet, "/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "CSS")

	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/missing").Code)
	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/img").Code)
	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/test").Code)
}

func TestRegisterStatic_Prefix(t *testing.T) {
	e := echo.New()
	gh.RegisterStatic(e, "/book", writeStaticDir(t))

	rec := serve(e, http.MethodGet, "/book")
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/book/", rec.Header().Get("Location"))

	rec = serve(e, http.MethodGet, "/book/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "INDEX")

	rec = serve(e, http.MethodGet, "/book/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "CSS")

	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/style.css").Code)
	require.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/book/api/nothing").Code)
}
