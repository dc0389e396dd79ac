package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"cafedir/model"
	"cafedir/repository"
	"cafedir/utils"
)

// AuthController owns the registration/login demo routes. The predecessor
// app shipped with a broken login lookup and an empty logout; this
// implements the intended state machine for both.
type AuthController struct {
	auth       *utils.SessionAuth
	sessionTTL time.Duration
	fileDir    string
	fileName   string
}

func NewAuthController(auth *utils.SessionAuth, sessionTTL time.Duration, fileDir, fileName string) *AuthController {
	return &AuthController{
		auth:       auth,
		sessionTTL: sessionTTL,
		fileDir:    fileDir,
		fileName:   fileName,
	}
}

func (ctrl *AuthController) Home(c *gin.Context) {
	_, _, loggedIn := ctrl.auth.CurrentUser(c)
	c.HTML(http.StatusOK, "home.html", gin.H{"logged_in": loggedIn})
}

func (ctrl *AuthController) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates an account, hashes the password before it is stored,
// logs the new user in and redirects to the protected page. A duplicate
// email re-renders the form instead of leaking a server error.
func (ctrl *AuthController) Register(c *gin.Context) {
	type Request struct {
		Email    string `form:"email" binding:"required"`
		Name     string `form:"name" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"error": "Email, name and password are all required.",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"error": "Something went wrong, please try again.",
		})
		return
	}

	user := model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := ctrl.auth.Users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"error": "You've already signed up with that email, log in instead.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"error": "Something went wrong, please try again.",
		})
		return
	}

	if err := ctrl.establishSession(c, user.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"error": "Something went wrong, please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/secrets")
}

func (ctrl *AuthController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies the submitted credentials against the stored hash. An
// unknown email and a wrong password look the same to the client, and
// neither establishes a session.
func (ctrl *AuthController) Login(c *gin.Context) {
	type Request struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"error": "Email and password are required.",
		})
		return
	}

	user, err := ctrl.auth.Users.GetByEmail(req.Email)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid email or password.",
		})
		return
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid email or password.",
		})
		return
	}

	if err := ctrl.establishSession(c, user.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"error": "Something went wrong, please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/secrets")
}

func (ctrl *AuthController) Secrets(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	c.HTML(http.StatusOK, "secrets.html", gin.H{"name": user.Name})
}

// Logout deletes the server-side session row and expires the cookie, so
// the token the client still holds no longer resolves to anything.
func (ctrl *AuthController) Logout(c *gin.Context) {
	session := c.MustGet("session").(*model.Session)
	if err := ctrl.auth.Sessions.Delete(session.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{
			"error": "Something went wrong, please try again.",
		})
		return
	}

	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Download streams the one protected file. Session checks happen in the
// middleware; this only has to cope with the file being gone.
func (ctrl *AuthController) Download(c *gin.Context) {
	path := filepath.Join(ctrl.fileDir, ctrl.fileName)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.FileAttachment(path, ctrl.fileName)
}

func (ctrl *AuthController) establishSession(c *gin.Context, userID uint) error {
	session, err := ctrl.auth.Sessions.Create(userID, ctrl.sessionTTL)
	if err != nil {
		return err
	}

	token, err := utils.GenerateSessionToken(ctrl.auth.Secret, session.ID, userID, session.ExpiresAt)
	if err != nil {
		return err
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie(utils.SessionCookieName, token, maxAge, "/", "", false, true)
	return nil
}
