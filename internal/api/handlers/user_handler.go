package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/devpals/devpals-go/internal/application"
	"github.com/devpals/devpals-go/internal/domain/user"
	"github.com/devpals/devpals-go/pkg/response"
	"github.com/devpals/devpals-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// profile images larger than this are rejected before touching storage
const maxProfileImageBytes = 5 << 20

type UserHandler struct {
	svc        *application.UserService
	applicants *application.ApplicantService
}

func NewUserHandler(svc *application.UserService, applicants *application.ApplicantService) *UserHandler {
	return &UserHandler{svc: svc, applicants: applicants}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var input user.SignupDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.Register(input); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "signup successful"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UserID:   usr.ID,
		Nickname: usr.Nickname,
	})
}

func (h *UserHandler) CheckNickname(c *gin.Context) {
	nickname := c.Query("nickname")
	if nickname == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "nickname is required"})
		return
	}
	ok, err := h.svc.NicknameAvailable(nickname)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AvailabilityResponse{Available: ok})
}

func (h *UserHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "email is required"})
		return
	}
	ok, err := h.svc.EmailAvailable(email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AvailabilityResponse{Available: ok})
}

func (h *UserHandler) MyInfo(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	info, err := h.svc.MyInfo(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input user.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	usr, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "image file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxProfileImageBytes {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "image too large"})
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxProfileImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	usr, err := h.svc.UpdateProfileImage(c.Request.Context(), userID, data, contentType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// MyApplications lists the caller's applications to closed projects.
func (h *UserHandler) MyApplications(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	views, err := h.applicants.ListMine(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
