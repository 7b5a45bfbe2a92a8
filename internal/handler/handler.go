package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ArtemGrablevski/ecommerce-analytics-platform/docs"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/dto"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/service"
)

type Handler struct {
	eventService     service.EventServicer
	dashboardService service.DashboardServicer
	router           *gin.Engine
	log              *zap.Logger
}

func NewHandler(eventService service.EventServicer, dashboardService service.DashboardServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService:     eventService,
		dashboardService: dashboardService,
		router:           gin.Default(),
		log:              log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	events := h.router.Group("/events")
	events.POST("/user-registered", h.userRegistered)
	events.POST("/user-login", h.userLogin)
	events.POST("/transaction", h.transaction)
	events.POST("/element-click", h.elementClick)
	events.POST("/search", h.search)
	events.POST("/page-view", h.pageView)
	events.POST("/form-submit", h.formSubmit)
	events.POST("/item-added-to-cart", h.itemAddedToCart)
	events.POST("/item-removed-from-cart", h.itemRemovedFromCart)
	events.POST("/filter-applied", h.filterApplied)

	h.router.GET("/dashboard", h.dashboard)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// publishEvent hands one typed event to the ingestion service and writes
// the fixed acknowledgment
func (h *Handler) publishEvent(c *gin.Context, event domain.Event) {
	if err := h.eventService.ProcessEvent(c.Request.Context(), event); err != nil {
		h.log.Error("Failed to process event",
			zap.Error(err),
			zap.String("event_type", string(event.Type())))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Status: "success"})
}

func (h *Handler) bindingError(c *gin.Context, err error) {
	h.log.Warn("Invalid event request", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// userRegistered handles POST /events/user-registered
// @Summary Ingest a user registration event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.UserRegisteredRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/user-registered [post]
func (h *Handler) userRegistered(c *gin.Context) {
	var req dto.UserRegisteredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.UserRegisteredEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
	})
}

// userLogin handles POST /events/user-login
// @Summary Ingest a user login event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.UserLoginRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/user-login [post]
func (h *Handler) userLogin(c *gin.Context) {
	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.UserLoginEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
	})
}

// transaction handles POST /events/transaction
// @Summary Ingest a transaction event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.TransactionRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/transaction [post]
func (h *Handler) transaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.TransactionEvent{
		BaseEvent:     domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
}

// elementClick handles POST /events/element-click
// @Summary Ingest an element click event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.ElementClickRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/element-click [post]
func (h *Handler) elementClick(c *gin.Context) {
	var req dto.ElementClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.ElementClickEvent{
		BaseEvent:   domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		ElementName: req.ElementName,
		Page:        req.Page,
	})
}

// search handles POST /events/search
// @Summary Ingest a search event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.SearchRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/search [post]
func (h *Handler) search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.SearchEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		Query:     req.Query,
	})
}

// pageView handles POST /events/page-view
// @Summary Ingest a page view event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PageViewRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/page-view [post]
func (h *Handler) pageView(c *gin.Context) {
	var req dto.PageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.PageViewEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		Page:      req.Page,
	})
}

// formSubmit handles POST /events/form-submit
// @Summary Ingest a form submit event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.FormSubmitRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/form-submit [post]
func (h *Handler) formSubmit(c *gin.Context) {
	var req dto.FormSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.FormSubmitEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		FormName:  req.FormName,
	})
}

// itemAddedToCart handles POST /events/item-added-to-cart
// @Summary Ingest an item added to cart event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.ItemAddedToCartRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/item-added-to-cart [post]
func (h *Handler) itemAddedToCart(c *gin.Context) {
	var req dto.ItemAddedToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.ItemAddedToCartEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		ItemID:    req.ItemID,
	})
}

// itemRemovedFromCart handles POST /events/item-removed-from-cart
// @Summary Ingest an item removed from cart event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.ItemRemovedFromCartRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/item-removed-from-cart [post]
func (h *Handler) itemRemovedFromCart(c *gin.Context) {
	var req dto.ItemRemovedFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.ItemRemovedFromCartEvent{
		BaseEvent: domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		ItemID:    req.ItemID,
	})
}

// filterApplied handles POST /events/filter-applied
// @Summary Ingest a filter applied event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.FilterAppliedRequest true "Event data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/filter-applied [post]
func (h *Handler) filterApplied(c *gin.Context) {
	var req dto.FilterAppliedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	h.publishEvent(c, domain.FilterAppliedEvent{
		BaseEvent:   domain.BaseEvent{UserID: req.UserID, Timestamp: req.Timestamp},
		FilterName:  req.FilterName,
		FilterValue: req.FilterValue,
		Page:        req.Page,
	})
}

// dashboard handles GET /dashboard
// @Summary Get all dashboard metrics
// @Description Retrieve every precomputed analytics metric, keyed by metric type
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	metricData, err := h.dashboardService.GetAllMetrics(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get dashboard metrics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Dashboard metrics retrieved", zap.Int("metric_count", len(metricData)))

	c.JSON(http.StatusOK, dto.DashboardResponse{Metrics: metricData})
}
