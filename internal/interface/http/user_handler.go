package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/helpers"
	"github.com/videotube/backend/pkg/response"
	"github.com/videotube/backend/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewUserHandler(svc *application.UserService, cookies *helpers.CookieManager, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// Register handles the multipart signup form: text fields plus a required
// avatar and optional coverImage file.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required,username"`
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required,pwd"`
		FullName string `form:"fullName" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}

	avatar, closeAvatar, err := formFileUpload(c, "avatar")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer closeAvatar()

	in := application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Avatar:   avatar,
	}
	if cover, closeCover, err := formFileUpload(c, "coverImage"); err == nil {
		defer closeCover()
		in.CoverImage = cover
	}

	u, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "user registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		response.Fail(c, http.StatusBadRequest, "username or email is required")
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"user":         u,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "user logged in successfully")
}

// Refresh rotates the token pair. The freshly issued access token is what
// goes back to the client, in the cookie and in the body.
func (h *UserHandler) Refresh(c *gin.Context) {
	presented, _ := c.Cookie(helpers.RefreshTokenCookie)
	if presented == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&body)
		presented = body.RefreshToken
	}

	_, pair, err := h.Svc.Refresh(c.Request.Context(), presented)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "access token refreshed")
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Logout(c.Request.Context(), uid); err != nil {
		response.FromError(c, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{}, "user logged out")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		response.Success(c, http.StatusOK, u, "current user fetched successfully")
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	u, err := h.Svc.UpdateAccount(c.Request.Context(), uid, req.FullName, req.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.Svc.UpdateAvatar, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.Svc.UpdateCoverImage, "cover image updated successfully")
}

func (h *UserHandler) updateImage(c *gin.Context, field string, fn func(context.Context, string, *application.FileUpload) (*entity.PublicUser, error), msg string) {
	uid := c.GetString(middleware.CtxUserIDKey)
	f, closeFile, err := formFileUpload(c, field)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, field+" file is required")
		return
	}
	defer closeFile()

	u, err := fn(c.Request.Context(), uid, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, msg)
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.ChannelProfile(c.Request.Context(), c.Param("username"), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	hist, err := h.Svc.WatchHistory(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hist, "watch history fetched successfully")
}
