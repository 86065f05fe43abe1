package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

type createUserBody struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	user, err := h.userService.CreateUser(c.Request.Context(), nil, body.Email, body.Name)
	if err != nil {
		h.log.Error("Create failed", "error", err, "email", body.Email)
		RespondServiceError(c, "user creation failed", err)
		return
	}
	RespondCreated(c, "user created", gin.H{"user": user})
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "user id must be a valid UUID", err)
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), nil, userID)
	if err != nil {
		RespondServiceError(c, "user lookup failed", err)
		return
	}
	RespondOK(c, "user found", gin.H{"user": user})
}
