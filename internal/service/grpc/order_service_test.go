package grpcsvc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const bufSize = 1024 * 1024

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func defaultCatalog() *catalog.MockCatalog {
	return catalog.NewMockCatalog(
		domain.Product{ID: 1, Name: "keyboard", Price: decimal.RequireFromString("10.00"), Available: true},
		domain.Product{ID: 2, Name: "mouse", Price: decimal.RequireFromString("5.00"), Available: true},
	)
}

func newTestServer(t *testing.T, productCatalog domain.ProductCatalog) *grpc.ClientConn {
	t.Helper()

	listener := bufconn.Listen(bufSize)
	logger := loggerForTests()
	service := grpcsvc.NewOrderService(
		memory.NewOrderRepository(),
		productCatalog,
		memory.NewTimelineRepository(),
		memory.NewOutboxRepository(),
		nil,
		logger,
	)

	server := grpc.NewServer()
	ordersv1.RegisterOrderServiceServer(server, service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return conn
}

func createRequest() *ordersv1.CreateOrderRequest {
	return &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.RequestedItem{
			{ProductId: 1, Quantity: 2},
			{ProductId: 2, Quantity: 1},
		},
	}
}

func TestOrderService_CreateAndGet(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.CreateOrder(ctx, createRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Order)
	require.NotEmpty(t, resp.Order.Id)
	require.Equal(t, 25.0, resp.Order.TotalAmount)
	require.Equal(t, int32(3), resp.Order.TotalItems)
	require.Equal(t, ordersv1.OrderStatus_ORDER_STATUS_PENDING, resp.Order.Status)
	require.False(t, resp.Order.Paid)
	require.Len(t, resp.Order.Items, 2)
	require.Equal(t, "keyboard", resp.Order.Items[0].Name)
	require.Equal(t, 10.0, resp.Order.Items[0].Price)

	getResp, err := client.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: resp.Order.Id})
	require.NoError(t, err)
	require.Equal(t, resp.Order.Id, getResp.Order.Id)
	require.Equal(t, resp.Order.TotalAmount, getResp.Order.TotalAmount)
	require.Equal(t, "mouse", getResp.Order.Items[1].Name)
	require.NotEmpty(t, getResp.Timeline)
	require.Equal(t, "created", getResp.Timeline[0].Type)
}

func TestOrderService_CreateOrder_DuplicateIDsCollapse(t *testing.T) {
	mock := defaultCatalog()
	conn := newTestServer(t, mock)

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.RequestedItem{
			{ProductId: 1, Quantity: 1},
			{ProductId: 1, Quantity: 2},
		},
	})
	require.NoError(t, err)
	// Каталог должен получить ровно один идентификатор.
	require.Equal(t, []int64{1}, mock.LastIDs)
	require.Equal(t, int32(3), resp.Order.TotalItems)
	require.Equal(t, 30.0, resp.Order.TotalAmount)

	// Дубликаты товара схлопываются в одну позицию с суммарным количеством.
	require.Len(t, resp.Order.Items, 1)
	require.Equal(t, int64(1), resp.Order.Items[0].ProductId)
	require.Equal(t, int32(3), resp.Order.Items[0].Quantity)
}

func TestOrderService_CreateOrder_CatalogErrorPropagatesCode(t *testing.T) {
	mock := defaultCatalog()
	mock.Err = &domain.CatalogError{Code: uint32(codes.NotFound), Message: "some products were not found"}
	conn := newTestServer(t, mock)

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.CreateOrder(ctx, createRequest())
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "some products were not found")

	// Отказ каталога не оставляет следов в хранилище.
	list, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{})
	require.NoError(t, err)
	require.Empty(t, list.Data)
	require.Equal(t, int64(0), list.Meta.Total)
}

func TestOrderService_CreateOrder_MissingCatalogCoverage(t *testing.T) {
	mock := catalog.NewMockCatalog(
		domain.Product{ID: 1, Name: "keyboard", Price: decimal.RequireFromString("10.00"), Available: true},
	)
	conn := newTestServer(t, mock)

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.CreateOrder(ctx, createRequest())
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateOrder(ctx, &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.RequestedItem{{ProductId: 1, Quantity: 0}},
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderService_ListOrders_Pagination(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		_, err := client.CreateOrder(ctx, createRequest())
		require.NoError(t, err)
	}

	page1, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Data, 2)
	require.Equal(t, int64(3), page1.Meta.Total)
	require.Equal(t, int32(1), page1.Meta.Page)
	require.Equal(t, int32(2), page1.Meta.LastPage)

	page2, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2.Data, 1)

	// Фильтр по статусу без совпадений.
	filtered, err := client.ListOrders(ctx, &ordersv1.ListOrdersRequest{
		Status: ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(t, err)
	require.Empty(t, filtered.Data)
	require.Equal(t, int64(0), filtered.Meta.Total)
}

func TestOrderService_ChangeOrderStatus(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateOrder(ctx, createRequest())
	require.NoError(t, err)

	changed, err := client.ChangeOrderStatus(ctx, &ordersv1.ChangeOrderStatusRequest{
		OrderId: created.Order.Id,
		Status:  ordersv1.OrderStatus_ORDER_STATUS_PAID,
	})
	require.NoError(t, err)
	require.Equal(t, ordersv1.OrderStatus_ORDER_STATUS_PAID, changed.Order.Status)
	require.True(t, changed.Order.Paid)

	// Повтор того же статуса — no-op.
	same, err := client.ChangeOrderStatus(ctx, &ordersv1.ChangeOrderStatusRequest{
		OrderId: created.Order.Id,
		Status:  ordersv1.OrderStatus_ORDER_STATUS_PAID,
	})
	require.NoError(t, err)
	require.Equal(t, ordersv1.OrderStatus_ORDER_STATUS_PAID, same.Order.Status)

	getResp, err := client.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: created.Order.Id})
	require.NoError(t, err)
	// created + один переход; no-op событий не добавляет.
	require.Len(t, getResp.Timeline, 2)
	require.Equal(t, "status_changed", getResp.Timeline[1].Type)
	require.Equal(t, "PENDING -> PAID", getResp.Timeline[1].Reason)
}

func TestOrderService_ChangeOrderStatus_Validation(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.ChangeOrderStatus(ctx, &ordersv1.ChangeOrderStatusRequest{
		OrderId: "missing",
		Status:  ordersv1.OrderStatus_ORDER_STATUS_PAID,
	})
	require.Equal(t, codes.NotFound, status.Code(err))
	require.Equal(t, "Order with id: missing not found", status.Convert(err).Message())

	_, err = client.ChangeOrderStatus(ctx, &ordersv1.ChangeOrderStatusRequest{
		OrderId: "missing",
		Status:  ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ChangeOrderStatus(ctx, &ordersv1.ChangeOrderStatusRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	conn := newTestServer(t, defaultCatalog())

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: "missing"})
	require.Equal(t, codes.NotFound, status.Code(err))
	require.Equal(t, "Order with id: missing not found", status.Convert(err).Message())
}

func TestOrderService_GetOrder_CatalogDownAbortsRead(t *testing.T) {
	mock := defaultCatalog()
	conn := newTestServer(t, mock)

	client := ordersv1.NewOrderServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateOrder(ctx, createRequest())
	require.NoError(t, err)

	mock.Err = &domain.CatalogError{Code: uint32(codes.Unavailable), Message: "catalog down"}

	// Отказ каталога прерывает чтение с кодом апстрима.
	_, err = client.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: created.Order.Id})
	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "catalog down")

	// После восстановления каталога заказ читается с нетронутыми снимками цен.
	mock.Err = nil
	getResp, err := client.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: created.Order.Id})
	require.NoError(t, err)
	require.Equal(t, "keyboard", getResp.Order.Items[0].Name)
	require.Equal(t, 10.0, getResp.Order.Items[0].Price)
}
