package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userhttpmapper "github.com/Apurer/user-order-services/internal/domains/users/adapters/http/mapper"
	userapp "github.com/Apurer/user-order-services/internal/domains/users/application"
	userports "github.com/Apurer/user-order-services/internal/domains/users/ports"
	apierrors "github.com/Apurer/user-order-services/internal/shared/errors"
)

// UserAPI serves the /api/users resource.
type UserAPI struct {
	service userports.Service
}

// NewUserAPI wires dependencies.
func NewUserAPI(service userports.Service) *UserAPI {
	return &UserAPI{service: service}
}

// Register mounts the user routes on the given group.
func (api *UserAPI) Register(group *gin.RouterGroup) {
	group.GET("", api.ListUsers)
	group.GET("/:id", api.GetUser)
	group.POST("", api.CreateUser)
	group.PUT("/:id", api.UpdateUser)
	group.DELETE("/:id", api.DeleteUser)
}

// Get /api/users
func (api *UserAPI) ListUsers(c *gin.Context) {
	users, err := api.service.ListUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUsers(users))
}

// Get /api/users/:id
func (api *UserAPI) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	found, err := api.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	user, ok := found.Get()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(user))
}

// Post /api/users
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.service.CreateUser(c.Request.Context(), userhttpmapper.ToDomainUser(payload))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userhttpmapper.FromDomainUser(saved))
}

// Put /api/users/:id
func (api *UserAPI) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload userhttpmapper.User
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	updated, err := api.service.UpdateUser(c.Request.Context(), id, userhttpmapper.ToDomainUser(payload))
	if err != nil {
		respondUserError(c, err)
		return
	}
	user, ok := updated.Get()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, userhttpmapper.FromDomainUser(user))
}

// Delete /api/users/:id
func (api *UserAPI) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	removed, err := api.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	if !removed {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(name+" must be an integer"))
		return 0, false
	}
	return id, true
}

func respondUserError(c *gin.Context, err error) {
	if errors.Is(err, userapp.ErrInvalidInput) {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	apierrors.RespondError(c, err)
}
