package controller_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedir/controller"
	"cafedir/model"
	"cafedir/repository"
	"cafedir/route"
	"cafedir/utils"
)

const testSessionSecret = "test-session-secret"

func newAuthServer(t *testing.T, name string) (*gin.Engine, *utils.SessionAuth) {
	t.Helper()
	db := openTestDB(t, name, &model.User{}, &model.Session{})

	fileDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(fileDir, "cheat_sheet.pdf"), []byte("%PDF-1.4 test"), 0o644))

	auth := &utils.SessionAuth{
		Secret:   testSessionSecret,
		Sessions: repository.NewSessionRepo(db),
		Users:    repository.NewUserRepo(db),
	}
	ctrl := controller.NewAuthController(auth, time.Hour, fileDir, "cheat_sheet.pdf")

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")
	route.AuthRoutes(router, ctrl, auth)
	return router, auth
}

func postForm(router *gin.Engine, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerForm() url.Values {
	return url.Values{
		"email":    {"angela@example.com"},
		"name":     {"Angela"},
		"password": {"chimpanzee"},
	}
}

func TestRegisterLogsInAndRedirects(t *testing.T) {
	router, auth := newAuthServer(t, "authregister")

	w := postForm(router, "/register", registerForm())
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/secrets", w.Header().Get("Location"))
	cookie := sessionCookie(t, w)

	// The stored row carries a hash, never the plaintext.
	user, err := auth.Users.GetByEmail("angela@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "pbkdf2:sha256:"))
	assert.NotContains(t, user.PasswordHash, "chimpanzee")

	w = get(router, "/secrets", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Angela")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _ := newAuthServer(t, "authregdup")

	w := postForm(router, "/register", registerForm())
	require.Equal(t, http.StatusFound, w.Code)

	w = postForm(router, "/register", registerForm())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already signed up")
}

func TestLoginAfterRegister(t *testing.T) {
	router, _ := newAuthServer(t, "authlogin")
	postForm(router, "/register", registerForm())

	w := postForm(router, "/login", url.Values{
		"email":    {"angela@example.com"},
		"password": {"chimpanzee"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/secrets", w.Header().Get("Location"))

	cookie := sessionCookie(t, w)
	w = get(router, "/secrets", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newAuthServer(t, "authloginbad")
	postForm(router, "/register", registerForm())

	w := postForm(router, "/login", url.Values{
		"email":    {"angela@example.com"},
		"password": {"gorilla"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	// No session is established on a failed login.
	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, utils.SessionCookieName, cookie.Name)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _ := newAuthServer(t, "authloginnone")

	w := postForm(router, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestSecretsRequiresSession(t *testing.T) {
	router, _ := newAuthServer(t, "authsecrets")

	w := get(router, "/secrets")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogoutDestroysSession(t *testing.T) {
	router, _ := newAuthServer(t, "authlogout")

	w := postForm(router, "/register", registerForm())
	cookie := sessionCookie(t, w)

	w = get(router, "/logout", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The token is still well signed, but its session row is gone.
	w = get(router, "/secrets", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDownload(t *testing.T) {
	router, _ := newAuthServer(t, "authdownload")

	w := get(router, "/download")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	reg := postForm(router, "/register", registerForm())
	cookie := sessionCookie(t, reg)

	w = get(router, "/download", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cheat_sheet.pdf")
	assert.Contains(t, w.Body.String(), "%PDF")
}

func TestDownloadMissingFile(t *testing.T) {
	db := openTestDB(t, "authdownloadmissing", &model.User{}, &model.Session{})
	auth := &utils.SessionAuth{
		Secret:   testSessionSecret,
		Sessions: repository.NewSessionRepo(db),
		Users:    repository.NewUserRepo(db),
	}
	ctrl := controller.NewAuthController(auth, time.Hour, t.TempDir(), "cheat_sheet.pdf")

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")
	route.AuthRoutes(router, ctrl, auth)

	w := postForm(router, "/register", registerForm())
	cookie := sessionCookie(t, w)

	w = get(router, "/download", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForgedCookieIsAnonymous(t *testing.T) {
	router, _ := newAuthServer(t, "authforged")
	postForm(router, "/register", registerForm())

	forged, err := utils.GenerateSessionToken("some-other-secret", "fake-session", 1, time.Now().Add(time.Hour))
	require.NoError(t, err)

	w := get(router, "/secrets", &http.Cookie{Name: utils.SessionCookieName, Value: forged})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestHomeShowsLoginState(t *testing.T) {
	router, _ := newAuthServer(t, "authhome")

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login")

	reg := postForm(router, "/register", registerForm())
	cookie := sessionCookie(t, reg)

	w = get(router, "/", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Log Out")
}
