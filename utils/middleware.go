package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafedir/model"
	"cafedir/repository"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionAuth resolves the session cookie against the server-side session
// store. The cookie alone is never trusted: a well-signed token whose row
// has been deleted or has expired counts as anonymous.
type SessionAuth struct {
	Secret   string
	Sessions *repository.SessionRepo
	Users    *repository.UserRepo
}

// CurrentUser returns the logged-in user and session for this request,
// or ok=false when the request is anonymous.
func (a *SessionAuth) CurrentUser(c *gin.Context) (*model.User, *model.Session, bool) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil || tokenString == "" {
		return nil, nil, false
	}

	claims, err := ValidateSessionToken(a.Secret, tokenString)
	if err != nil {
		return nil, nil, false
	}

	session, err := a.Sessions.Get(claims.SessionID)
	if err != nil || session.UserID != claims.UserID {
		return nil, nil, false
	}

	user, err := a.Users.GetByID(session.UserID)
	if err != nil {
		return nil, nil, false
	}
	return user, session, true
}

// RequireSessionPage gates HTML routes: anonymous requests are sent to the
// login form.
func (a *SessionAuth) RequireSessionPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, session, ok := a.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Set("session", session)
		c.Next()
	}
}

// RequireSessionFile gates the file download: anonymous requests get a
// plain 401 rather than a redirect.
func (a *SessionAuth) RequireSessionFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, session, ok := a.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Set("session", session)
		c.Next()
	}
}
