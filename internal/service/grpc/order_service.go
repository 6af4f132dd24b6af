package grpcsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

// OrderService реализует gRPC API поверх доменного репозитория заказов
// и внешнего каталога товаров.
type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer

	repo     domain.OrderRepository
	catalog  domain.ProductCatalog
	timeline domain.TimelineRepository
	outbox   domain.OutboxRepository
	metrics  *metrics.OrderMetrics
	logger   *log.Entry
}

const (
	defaultListPage  = 1
	defaultListLimit = 10

	timelineEventOrderCreated       = "created"
	timelineEventOrderStatusChanged = "status_changed"
)

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(
	repo domain.OrderRepository,
	catalog domain.ProductCatalog,
	timeline domain.TimelineRepository,
	outbox domain.OutboxRepository,
	m *metrics.OrderMetrics,
	logger *log.Entry,
) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &OrderService{
		repo:     repo,
		catalog:  catalog,
		timeline: timeline,
		outbox:   outbox,
		metrics:  m,
		logger:   logger,
	}
}

// CreateOrder валидирует позиции через каталог, считает суммы и сохраняет
// заказ вместе с позициями. До успешной валидации записей в хранилище нет.
func (s *OrderService) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, status.Error(codes.InvalidArgument, "order must contain at least one item")
	}

	requested := make([]domain.RequestedItem, 0, len(req.Items))
	for idx, item := range req.Items {
		if item == nil {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d] is nil", idx)
		}
		if item.Quantity <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d].quantity must be > 0", idx)
		}
		requested = append(requested, domain.RequestedItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	products, err := s.validateProducts(ctx, domain.DedupeProductIDs(requested))
	if err != nil {
		return nil, err
	}

	draft, err := domain.AggregateOrder(requested, products)
	if err != nil {
		s.logger.WithError(err).Warn("order aggregation rejected")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:          uuid.NewString(),
		TotalAmount: draft.TotalAmount,
		TotalItems:  draft.TotalItems,
		Status:      domain.OrderStatusPending,
		Items:       draft.Items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return nil, status.Error(codes.Internal, joinErrors(errs))
	}

	if err := s.repo.CreateWithItems(order); err != nil {
		s.logger.WithError(err).Error("failed to persist order")
		if errors.Is(err, domain.ErrOrderConstraint) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "failed to persist order")
	}
	s.metrics.RecordOrderCreated()

	s.appendTimeline(order.ID, timelineEventOrderCreated, "", order.CreatedAt)
	s.enqueueOutbox(kafka.EventTypeOrderCreated, order)

	return &ordersv1.CreateOrderResponse{
		Order: toProtoOrder(order, productNames(products)),
	}, nil
}

// GetOrder возвращает заказ вместе с таймлайном. Имена товаров подтягиваются
// из каталога на чтение; отказ каталога прерывает операцию с кодом апстрима.
func (s *OrderService) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.loadOrder(req.OrderId, "GetOrder")
	if err != nil {
		return nil, err
	}

	names, err := s.lookupNames(ctx, order)
	if err != nil {
		return nil, err
	}

	return &ordersv1.GetOrderResponse{
		Order:    toProtoOrder(order, names),
		Timeline: s.buildTimeline(order.ID),
	}, nil
}

// ListOrders возвращает страницу заказов с метаданными пагинации.
func (s *OrderService) ListOrders(_ context.Context, req *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	if req == nil {
		req = &ordersv1.ListOrdersRequest{}
	}

	page := int(req.Page)
	if page < 1 {
		page = defaultListPage
	}
	limit := int(req.Limit)
	if limit < 1 {
		limit = defaultListLimit
	}

	var statusFilter *domain.OrderStatus
	if req.Status != ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		parsed, err := fromProtoStatus(req.Status)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		statusFilter = &parsed
	}

	orders, total, err := s.repo.ListPage(statusFilter, page, limit)
	if err != nil {
		s.logger.WithError(err).Error("failed to list orders")
		return nil, status.Error(codes.Internal, "failed to list orders")
	}

	data := make([]*ordersv1.Order, 0, len(orders))
	for _, order := range orders {
		data = append(data, toProtoOrder(order, nil))
	}

	lastPage := int32((total + int64(limit) - 1) / int64(limit))

	return &ordersv1.ListOrdersResponse{
		Data: data,
		Meta: &ordersv1.PageMeta{
			Total:    total,
			Page:     int32(page),
			LastPage: lastPage,
		},
	}, nil
}

// ChangeOrderStatus переводит заказ в новый статус. Повторный перевод в тот
// же статус — no-op без записей.
func (s *OrderService) ChangeOrderStatus(_ context.Context, req *ordersv1.ChangeOrderStatusRequest) (*ordersv1.ChangeOrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	newStatus, err := fromProtoStatus(req.Status)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order, err := s.loadOrder(req.OrderId, "ChangeOrderStatus")
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		return &ordersv1.ChangeOrderStatusResponse{Order: toProtoOrder(order, nil)}, nil
	}

	oldStatus := order.Status
	updated, err := s.repo.UpdateStatus(order.ID, newStatus)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("failed to change order status")
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, status.Errorf(codes.NotFound, "Order with id: %s not found", order.ID)
		}
		return nil, status.Error(codes.Internal, "failed to change order status")
	}
	s.metrics.RecordStatusChange(string(newStatus))

	s.appendTimeline(updated.ID, timelineEventOrderStatusChanged,
		fmt.Sprintf("%s -> %s", oldStatus, newStatus), updated.UpdatedAt)
	s.enqueueOutbox(kafka.EventTypeOrderStatusChanged, updated)

	return &ordersv1.ChangeOrderStatusResponse{Order: toProtoOrder(updated, nil)}, nil
}

func (s *OrderService) validateProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	started := time.Now()
	products, err := s.catalog.ValidateProducts(ctx, ids)
	s.metrics.RecordCatalogCall(time.Since(started))
	if err != nil {
		s.metrics.RecordValidationFailure()
		if catalogErr, ok := domain.AsCatalogError(err); ok {
			return nil, status.Error(codes.Code(catalogErr.Code), catalogErr.Message)
		}
		s.logger.WithError(err).Error("product catalog call failed")
		return nil, status.Error(codes.Internal, "product validation failed")
	}
	return products, nil
}

// lookupNames запрашивает каталог только ради имён товаров; цены в ответе
// каталога игнорируются — позиции несут сохранённые снимки. Ошибка каталога
// не глотается: чтение завершается так же, как завершился бы вызов каталога.
func (s *OrderService) lookupNames(ctx context.Context, order domain.Order) (map[int64]string, error) {
	ids := order.ProductIDs()
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := s.validateProducts(ctx, ids)
	if err != nil {
		s.logger.WithField("order_id", order.ID).Warn("catalog validation failed on read")
		return nil, err
	}
	return productNames(products), nil
}

func (s *OrderService) loadOrder(orderID, operation string) (domain.Order, error) {
	order, err := s.repo.Get(orderID)
	if err == nil {
		return order, nil
	}

	s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  orderID,
	}).Warn("failed to load order")

	if errors.Is(err, domain.ErrOrderNotFound) {
		return domain.Order{}, status.Errorf(codes.NotFound, "Order with id: %s not found", orderID)
	}
	return domain.Order{}, status.Error(codes.Internal, "failed to load order")
}

func (s *OrderService) appendTimeline(orderID, eventType, reason string, occurred time.Time) {
	if s.timeline == nil {
		return
	}
	if err := s.timeline.Append(domain.TimelineEvent{
		OrderID:  orderID,
		Type:     eventType,
		Reason:   reason,
		Occurred: occurred,
	}); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to append timeline event")
		return
	}
	s.metrics.RecordTimelineEvent()
}

func (s *OrderService) buildTimeline(orderID string) []*ordersv1.TimelineEvent {
	if s.timeline == nil {
		return nil
	}
	events, err := s.timeline.List(orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to load timeline")
		return nil
	}
	result := make([]*ordersv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &ordersv1.TimelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			UnixTime: event.Occurred.Unix(),
		})
	}
	return result
}

// enqueueOutbox ставит событие в transactional outbox. Ошибка постановки не
// роняет основную операцию: заказ уже сохранён, событие будет потеряно и это
// фиксируется в логе.
func (s *OrderService) enqueueOutbox(eventType kafka.EventType, order domain.Order) {
	if s.outbox == nil {
		return
	}

	event := kafka.NewOrderEvent(eventType, order.ID, string(order.Status),
		order.TotalAmount.StringFixed(2), order.TotalItems)
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to marshal outbox payload")
		return
	}

	if _, err := s.outbox.Enqueue(domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to enqueue outbox event")
		return
	}
	s.metrics.RecordOutboxEvent()
}

func toProtoOrder(order domain.Order, names map[int64]string) *ordersv1.Order {
	items := make([]*ordersv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		price, _ := item.UnitPrice.Float64()
		items = append(items, &ordersv1.OrderItem{
			ProductId: item.ProductID,
			Price:     price,
			Quantity:  item.Quantity,
			Name:      names[item.ProductID],
		})
	}

	total, _ := order.TotalAmount.Float64()
	return &ordersv1.Order{
		Id:          order.ID,
		TotalAmount: total,
		TotalItems:  order.TotalItems,
		Status:      toProtoStatus(order.Status),
		Paid:        order.Paid,
		Items:       items,
		CreatedUnix: order.CreatedAt.Unix(),
		UpdatedUnix: order.UpdatedAt.Unix(),
	}
}

func toProtoStatus(status domain.OrderStatus) ordersv1.OrderStatus {
	switch status {
	case domain.OrderStatusPending:
		return ordersv1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusPaid:
		return ordersv1.OrderStatus_ORDER_STATUS_PAID
	case domain.OrderStatusDelivered:
		return ordersv1.OrderStatus_ORDER_STATUS_DELIVERED
	case domain.OrderStatusCancelled:
		return ordersv1.OrderStatus_ORDER_STATUS_CANCELLED
	default:
		return ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func fromProtoStatus(protoStatus ordersv1.OrderStatus) (domain.OrderStatus, error) {
	switch protoStatus {
	case ordersv1.OrderStatus_ORDER_STATUS_PENDING:
		return domain.OrderStatusPending, nil
	case ordersv1.OrderStatus_ORDER_STATUS_PAID:
		return domain.OrderStatusPaid, nil
	case ordersv1.OrderStatus_ORDER_STATUS_DELIVERED:
		return domain.OrderStatusDelivered, nil
	case ordersv1.OrderStatus_ORDER_STATUS_CANCELLED:
		return domain.OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrStatusInvalid, protoStatus)
	}
}

func productNames(products []domain.Product) map[int64]string {
	names := make(map[int64]string, len(products))
	for _, product := range products {
		names[product.ID] = product.Name
	}
	return names
}

func joinErrors(errs []error) string {
	msg := ""
	for i, err := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}
