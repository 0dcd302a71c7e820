//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"storefront-rules/internal/handler/dto/request"
	"storefront-rules/internal/pkg/cookie"
	"storefront-rules/tests/common/dbtest"
	"storefront-rules/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, rewardPoints int64) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role, rewardPoints)
	return LoginUser(t, router, email, "password123")
}
