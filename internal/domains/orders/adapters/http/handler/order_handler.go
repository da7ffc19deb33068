package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/user-order-services/internal/domains/orders/adapters/http/mapper"
	orderapp "github.com/Apurer/user-order-services/internal/domains/orders/application"
	orderports "github.com/Apurer/user-order-services/internal/domains/orders/ports"
	apierrors "github.com/Apurer/user-order-services/internal/shared/errors"
)

// OrderAPI serves the /api/orders resource. Creation goes through the
// orchestrator so it can run as a durable workflow.
type OrderAPI struct {
	service      orderports.Service
	orchestrator orderports.CreationOrchestrator
}

func NewOrderAPI(service orderports.Service, orchestrator orderports.CreationOrchestrator) *OrderAPI {
	return &OrderAPI{service: service, orchestrator: orchestrator}
}

// Register mounts the order routes on the given group.
func (api *OrderAPI) Register(group *gin.RouterGroup) {
	group.GET("", api.ListOrders)
	group.GET("/with-users", api.ListOrdersWithUsers)
	group.GET("/user/:userId", api.ListOrdersByUser)
	group.GET("/:id", api.GetOrder)
	group.GET("/:id/with-user", api.GetOrderWithUser)
	group.POST("", api.CreateOrder)
	group.PUT("/:id", api.UpdateOrder)
	group.DELETE("/:id", api.DeleteOrder)
}

// Get /api/orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Get /api/orders/with-users
func (api *OrderAPI) ListOrdersWithUsers(c *gin.Context) {
	pairs, err := api.service.ListOrdersWithUsers(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrdersWithUsers(pairs))
}

// Get /api/orders/user/:userId
func (api *OrderAPI) ListOrdersByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	orders, err := api.service.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Get /api/orders/:id
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	found, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	order, ok := found.Get()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /api/orders/:id/with-user
func (api *OrderAPI) GetOrderWithUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	found, err := api.service.GetOrderWithUser(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	pair, ok := found.Get()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderWithUser(pair))
}

// Post /api/orders
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	order, err := orderhttpmapper.ToDomainOrder(payload)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	saved, err := api.orchestrator.CreateOrder(c.Request.Context(), order)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(saved))
}

// Put /api/orders/:id
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	patch, err := orderhttpmapper.ToDomainOrder(payload)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}
	updated, err := api.service.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	order, ok := updated.Get()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Delete /api/orders/:id
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	removed, err := api.service.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
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

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orderapp.ErrUserNotFound):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, orderapp.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
	default:
		apierrors.RespondError(c, err)
	}
}
