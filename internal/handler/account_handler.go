package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

type AccountHandler struct {
	service service.AccountService
}

type loginRequest struct {
	URL           string `json:"url"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	AllowInsecure bool   `json:"allowInsecure"`
}

type accountResponse struct {
	URL                      string  `json:"url"`
	Username                 string  `json:"username"`
	Password                 string  `json:"password"`
	AllowInsecure            bool    `json:"allowInsecure"`
	ServerVersion            string  `json:"serverVersion"`
	ImproperlyConfiguredCron bool    `json:"improperlyConfiguredCron"`
	IncorrectDBCharset       bool    `json:"incorrectDbCharset"`
	UserID                   string  `json:"userId,omitempty"`
	DisplayName              string  `json:"displayName,omitempty"`
	LastModified             int64   `json:"lastModified"`
	LastSyncAt               *string `json:"lastSyncAt,omitempty"`
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/account/login", h.Login)
	g.POST("/account/logout", h.Logout)
	g.GET("/account", h.Get)
}

// Login checks the server and stores the account.
// @Summary Log in
// @Tags account
// @Accept json
// @Produce json
// @Param login body loginRequest true "Server and credentials"
// @Success 200 {object} accountResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	account, err := h.service.Login(c.Request().Context(), service.LoginRequest{
		URL:           req.URL,
		Username:      req.Username,
		Password:      req.Password,
		AllowInsecure: req.AllowInsecure,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Logout forgets the account and drops all synced data.
// @Summary Log out
// @Tags account
// @Success 204 "No Content"
// @Router /account/logout [post]
func (h *AccountHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get returns the stored account.
// @Summary Get account
// @Tags account
// @Produce json
// @Success 200 {object} accountResponse
// @Failure 401 {object} errorResponse
// @Router /account [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.Account(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

func toAccountResponse(account service.Account) accountResponse {
	return accountResponse{
		URL:                      account.URL,
		Username:                 account.Username,
		Password:                 account.PasswordMask,
		AllowInsecure:            account.AllowInsecure,
		ServerVersion:            account.ServerVersion,
		ImproperlyConfiguredCron: account.ImproperlyConfiguredCron,
		IncorrectDBCharset:       account.IncorrectDBCharset,
		UserID:                   account.UserID,
		DisplayName:              account.DisplayName,
		LastModified:             account.LastModified,
		LastSyncAt:               formatTimePtr(account.LastSyncAt),
	}
}
