package handlers

import (
	"dan_assistant/internal/i18n"
	"dan_assistant/internal/invoice"
	"dan_assistant/internal/models"
	"dan_assistant/internal/repository"
	"dan_assistant/internal/services"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authService  services.AuthService
	agentService services.AgentService
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

func NewAdminHandler(
	authService services.AuthService,
	agentService services.AgentService,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		agentService: agentService,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Lang     string `json:"lang"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}

	if !h.authService.Login(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(req.Lang, "loginError")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequireAuth guards the admin routes behind the session flag.
func (h *AdminHandler) RequireAuth(c *gin.Context) {
	if !h.authService.LoggedIn() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": i18n.T(c.Query("lang"), "authRequired")})
		return
	}
	c.Next()
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderRepo.List())
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
	Lang   string             `json:"lang"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidStatus")})
		return
	}

	// An unknown id is a silent no-op, so this succeeds either way.
	if err := h.orderRepo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.logger.Error("failed to update order status", "order_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminHandler) GetInvoice(c *gin.Context) {
	lang := c.DefaultQuery("lang", "ar")

	order, err := h.orderRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, "invalidRequest")})
			return
		}
		h.logger.Error("failed to load order for invoice", "order_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "invoiceError")})
		return
	}

	data, err := invoice.Render(*order, lang)
	if err != nil {
		h.logger.Error("invoice rendering failed", "order_id", order.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, "invoiceError")})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Dan_Invoice_%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *AdminHandler) GetAgentConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.agentService.Config())
}

type UpdateConfigRequest struct {
	Config    models.AgentConfig `json:"config"`
	Confirmed bool               `json:"confirmed"`
	Lang      string             `json:"lang"`
}

func (h *AdminHandler) UpdateAgentConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}

	if err := h.agentService.UpdateConfig(c.Request.Context(), req.Config, req.Confirmed); err != nil {
		if errors.Is(err, services.ErrNotConfirmed) {
			c.JSON(http.StatusForbidden, gin.H{"error": i18n.T(req.Lang, "permissionRequired")})
			return
		}
		h.logger.Error("failed to update agent config", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": i18n.T(req.Lang, "configSaved")})
}

func (h *AdminHandler) GetPriceList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"text": h.agentService.PriceList()})
}

type UpdatePriceListRequest struct {
	Text      string `json:"text"`
	Confirmed bool   `json:"confirmed"`
	Lang      string `json:"lang"`
}

func (h *AdminHandler) UpdatePriceList(c *gin.Context) {
	var req UpdatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}

	if err := h.agentService.UpdatePriceList(c.Request.Context(), req.Text, req.Confirmed); err != nil {
		if errors.Is(err, services.ErrNotConfirmed) {
			c.JSON(http.StatusForbidden, gin.H{"error": i18n.T(req.Lang, "permissionRequired")})
			return
		}
		h.logger.Error("failed to update price list", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": i18n.T(req.Lang, "priceListSaved")})
}

type UpdateAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Lang     string `json:"lang"`
}

func (h *AdminHandler) UpdateAccount(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}

	if err := h.authService.UpdateCredentials(c.Request.Context(), req.Username, req.Password); err != nil {
		h.logger.Error("failed to update credentials", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": i18n.T(req.Lang, "saved")})
}
