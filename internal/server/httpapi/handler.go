package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/retailhub/internal/server/models"
	"github.com/dmitrijs2005/retailhub/internal/server/repositories/users"
)

// UsersHandler serves the /users collection: query-filtered listing,
// create, partial update and delete. The resource carries no
// authentication of its own; it is a data service the client fully
// trusts, and the Authorization header clients send is ignored here.
type UsersHandler struct {
	repo users.Repository
}

func NewUsersHandler(repo users.Repository) *UsersHandler {
	return &UsersHandler{repo: repo}
}

type createUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role"`
	IsApproved string `json:"isApproved"`
	CreatedAt  string `json:"createdAt"`
}

type patchUserRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	IsApproved *string `json:"isApproved"`
}

func (h *UsersHandler) List(c echo.Context) error {
	filter := users.Filter{
		Email:      c.QueryParam("email"),
		Password:   c.QueryParam("password"),
		IsApproved: c.QueryParam("isApproved"),
	}

	result, err := h.repo.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *UsersHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	u, err := h.repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UsersHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// records posted without role/approval default to a fresh retailer
	// signup awaiting approval
	if req.Role == "" {
		req.Role = "RETAILER"
	}
	if req.IsApproved == "" {
		req.IsApproved = "NO"
	}

	u := &models.User{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
		IsApproved: req.IsApproved,
		CreatedAt:  req.CreatedAt,
	}

	created, err := h.repo.Create(c.Request().Context(), u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *UsersHandler) Patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req patchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.repo.Update(c.Request().Context(), id, users.Patch{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
		IsApproved: req.IsApproved,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *UsersHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
