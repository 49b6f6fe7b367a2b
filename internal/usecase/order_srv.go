package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/data/repository"
	"textile-store/internal/dto/request"
	"textile-store/internal/dto/response"
	"textile-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// Authenticated endpoints
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)

	// Admin endpoints
	GetAllOrders(ctx context.Context) ([]response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, req *request.UpdateOrderStatusRequest) error
	DeleteOrder(ctx context.Context, orderID int64) error
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, config *utils.Config, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "order")),
	}
}

// PlaceOrder persists the order header and its one line atomically, then
// builds the WhatsApp handoff link. Any storage failure surfaces as one
// generic error; the cause stays in the logs.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order := &entity.Order{
		UserID:    userID,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	line := &entity.OrderLine{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		NoOfEnds:    req.NoOfEnds,
		CreelType:   req.CreelType,
		CreelPitch:  req.CreelPitch,
		BobinLength: req.BobinLength,
	}

	if err := s.repo.Order.CreateWithLine(ctx, order, line); err != nil {
		s.log.Error("Failed to place order",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("failed to place order")
	}

	s.log.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.Int64("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	// Built after commit; a bad link never undoes the order.
	return &response.PlaceOrderResponse{
		OrderID:     order.ID,
		WhatsAppURL: s.buildWhatsAppURL(order.ID, req),
	}, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	summaries, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to fetch orders")
	}

	orders := make([]response.OrderResponse, len(summaries))
	for i, summary := range summaries {
		orders[i] = response.OrderSummaryToResponse(summary)
	}

	return orders, nil
}

// ==================== ADMIN METHODS ====================

func (s *orderService) GetAllOrders(ctx context.Context) ([]response.OrderResponse, error) {
	summaries, err := s.repo.Order.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch orders")
	}

	orders := make([]response.OrderResponse, len(summaries))
	for i, summary := range summaries {
		orders[i] = response.OrderSummaryToResponse(summary)
	}

	s.log.Info("Orders listed", zap.Int("count", len(orders)))
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, req *request.UpdateOrderStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.OrderStatus(req.Status)
	if !entity.ValidOrderStatus(status) {
		return fmt.Errorf("validation failed: unknown order status %s", req.Status)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return fmt.Errorf("failed to find order")
	}
	if order == nil {
		return fmt.Errorf("order %d not found", orderID)
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderID, status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("failed to update order status")
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", req.Status),
	)

	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.Int64("order_id", orderID))
		return fmt.Errorf("failed to find order")
	}
	if order == nil {
		return fmt.Errorf("order %d not found", orderID)
	}

	if err := s.repo.Order.Delete(ctx, orderID); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.Int64("order_id", orderID))
		return fmt.Errorf("failed to delete order")
	}

	return nil
}

func (s *orderService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	totalProducts, err := s.repo.Product.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	ordersByStatus, err := s.repo.Order.CountByStatus(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("failed to build dashboard")
	}

	return &response.DashboardResponse{
		TotalUsers:     totalUsers,
		TotalProducts:  totalProducts,
		OrdersByStatus: ordersByStatus,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) buildWhatsAppURL(orderID int64, req *request.PlaceOrderRequest) string {
	message := fmt.Sprintf(
		"New Order Placed!\nOrder ID: %d\nProduct ID: %d\nQuantity: %d\nSpecifications:\n- No. of Ends: %d\n- Creel Type: %s\n- Creel Pitch: %s\n- Bobin Length: %s",
		orderID,
		req.ProductID,
		req.Quantity,
		req.NoOfEnds,
		req.CreelType,
		req.CreelPitch,
		req.BobinLength,
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s",
		s.config.WhatsApp.OwnerNumber, url.QueryEscape(message))
}
