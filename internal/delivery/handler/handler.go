package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/application/interfaces"
	"branding-agent/internal/application/services"
	"branding-agent/internal/infrastructure"
)

const dateLayout = "2006-01-02"

type Handler struct {
	userService    interfaces.UserService
	contentService interfaces.ContentService
	postService    interfaces.PostService
	tokens         interfaces.TokenIssuer
	generateLimit  *infrastructure.RateLimiter
}

func NewHandler(
	userService interfaces.UserService,
	contentService interfaces.ContentService,
	postService interfaces.PostService,
	tokens interfaces.TokenIssuer,
	generateLimit *infrastructure.RateLimiter,
) *Handler {
	return &Handler{
		userService:    userService,
		contentService: contentService,
		postService:    postService,
		tokens:         tokens,
		generateLimit:  generateLimit,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)

	auth := api.Group("", AuthRequired(h.tokens))
	auth.GET("/profile", h.GetProfile)
	auth.PUT("/profile", h.UpdateProfile)
	auth.POST("/generate", h.Generate)
	auth.GET("/posts", h.ListPosts)
	auth.POST("/posts", h.SavePost)
	auth.DELETE("/posts/:id", h.DeletePost)
	auth.GET("/drafts", h.ListDrafts)
	auth.POST("/drafts", h.SaveDraft)
	auth.DELETE("/drafts/:id", h.DeleteDraft)
	auth.POST("/drafts/:id/publish", h.PublishDraft)
	auth.GET("/stats", h.GetStats)
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}

	result, err := h.userService.CreateUser(c.Request().Context(), &command.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var validationErr *common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		case errors.Is(err, services.ErrEmailTaken):
			return c.JSON(http.StatusConflict, fail("signup failed: email may already exist"))
		default:
			return c.JSON(http.StatusInternalServerError, fail("signup failed"))
		}
	}

	return c.JSON(http.StatusCreated, okMessage("account created", result.Result))
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, fail("please enter email and password"))
	}

	result, err := h.userService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, fail("invalid credentials"))
		}
		return c.JSON(http.StatusInternalServerError, fail("login failed"))
	}

	return c.JSON(http.StatusOK, ok(map[string]interface{}{
		"token": result.Token,
		"user":  result.Result,
	}))
}

func (h *Handler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, fail("user not found"))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to load profile"))
	}

	return c.JSON(http.StatusOK, ok(profile))
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}

	result, err := h.userService.UpdateProfile(c.Request().Context(), &command.UpdateProfileCommand{
		UserID:    userID,
		Name:      req.Name,
		Role:      req.Role,
		Industry:  req.Industry,
		Interests: req.Interests,
	})
	if err != nil {
		var validationErr *common.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to update profile"))
	}

	return c.JSON(http.StatusOK, okMessage("profile updated", result.Result))
}

func (h *Handler) Generate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	if !h.generateLimit.Allow(userID.String()) {
		return c.JSON(http.StatusTooManyRequests, fail("too many generation requests, slow down"))
	}

	result, err := h.contentService.Generate(c.Request().Context(), &command.GeneratePostCommand{UserID: userID})
	if err != nil {
		var validationErr *common.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("generation failed"))
	}

	return c.JSON(http.StatusOK, ok(generateResponse{
		Content:  result.Content,
		Hashtags: result.Hashtags,
		Source:   result.Source,
		Warning:  result.Warning,
	}))
}

func (h *Handler) SavePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	var req savePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}

	result, err := h.postService.SavePost(c.Request().Context(), &command.SavePostCommand{
		UserID:       userID,
		Content:      req.Content,
		Hashtags:     req.Hashtags,
		ScheduleDate: parseDate(req.ScheduleDate),
	})
	if err != nil {
		var validationErr *common.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to save post"))
	}

	return c.JSON(http.StatusCreated, okMessage("post saved", result.Result))
}

func (h *Handler) ListPosts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	posts, err := h.postService.ListPosts(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to list posts"))
	}
	return c.JSON(http.StatusOK, ok(posts))
}

func (h *Handler) DeletePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid post id"))
	}

	deleted, err := h.postService.DeletePost(c.Request().Context(), postID, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to delete post"))
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, fail("post not found"))
	}
	return c.JSON(http.StatusOK, okMessage("post deleted", nil))
}

func (h *Handler) SaveDraft(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	var req savePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid request body"))
	}

	result, err := h.postService.SaveDraft(c.Request().Context(), &command.SaveDraftCommand{
		UserID:       userID,
		Content:      req.Content,
		Hashtags:     req.Hashtags,
		ScheduleDate: parseDate(req.ScheduleDate),
	})
	if err != nil {
		var validationErr *common.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		}
		return c.JSON(http.StatusInternalServerError, fail("failed to save draft"))
	}

	return c.JSON(http.StatusCreated, okMessage("draft saved", result.Result))
}

func (h *Handler) ListDrafts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	drafts, err := h.postService.ListDrafts(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to list drafts"))
	}
	return c.JSON(http.StatusOK, ok(drafts))
}

func (h *Handler) DeleteDraft(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid draft id"))
	}

	deleted, err := h.postService.DeleteDraft(c.Request().Context(), draftID, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to delete draft"))
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, fail("draft not found"))
	}
	return c.JSON(http.StatusOK, okMessage("draft deleted", nil))
}

func (h *Handler) PublishDraft(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid draft id"))
	}

	result, err := h.postService.PublishDraft(c.Request().Context(), &command.PublishDraftCommand{
		DraftID: draftID,
		UserID:  userID,
	})
	if err != nil {
		var validationErr *common.ValidationError
		switch {
		case errors.Is(err, services.ErrDraftNotFound):
			return c.JSON(http.StatusNotFound, fail("draft not found"))
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, fail("failed to publish draft"))
		}
	}

	return c.JSON(http.StatusOK, okMessage("draft published as a post", result.Result))
}

func (h *Handler) GetStats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, fail("invalid session"))
	}

	stats, err := h.postService.GetUserStats(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to load stats"))
	}
	return c.JSON(http.StatusOK, ok(stats))
}

// parseDate treats anything unparseable as absent; the domain then defaults
// to today.
func parseDate(value string) time.Time {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
