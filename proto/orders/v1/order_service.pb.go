// Ручные биндинги для proto/orders/v1/order_service.proto.
//
// Сообщения реализуют legacy proto.Message (Reset/String/ProtoMessage)
// и размечены protobuf-тегами, поэтому кодек gRPC сериализует их через
// protoadapt без сгенерированных дескрипторов. При изменении контракта
// файл правится синхронно с order_service.proto.
package ordersv1

import (
	"reflect"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

// OrderStatus — статусы жизненного цикла заказа.
type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED OrderStatus = 0
	OrderStatus_ORDER_STATUS_PENDING     OrderStatus = 1
	OrderStatus_ORDER_STATUS_PAID        OrderStatus = 2
	OrderStatus_ORDER_STATUS_DELIVERED   OrderStatus = 3
	OrderStatus_ORDER_STATUS_CANCELLED   OrderStatus = 4
)

var OrderStatus_name = map[int32]string{
	0: "ORDER_STATUS_UNSPECIFIED",
	1: "ORDER_STATUS_PENDING",
	2: "ORDER_STATUS_PAID",
	3: "ORDER_STATUS_DELIVERED",
	4: "ORDER_STATUS_CANCELLED",
}

var OrderStatus_value = map[string]int32{
	"ORDER_STATUS_UNSPECIFIED": 0,
	"ORDER_STATUS_PENDING":     1,
	"ORDER_STATUS_PAID":        2,
	"ORDER_STATUS_DELIVERED":   3,
	"ORDER_STATUS_CANCELLED":   4,
}

func (s OrderStatus) Enum() *OrderStatus {
	p := new(OrderStatus)
	*p = s
	return p
}

func (s OrderStatus) String() string {
	if name, ok := OrderStatus_name[int32(s)]; ok {
		return name
	}
	return "ORDER_STATUS_UNKNOWN(" + itoa(int32(s)) + ")"
}

func itoa(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// messageString форматирует сообщение через prototext для логов и %v.
func messageString(m protoadapt.MessageV1) string {
	if m == nil || reflect.ValueOf(m).IsNil() {
		return ""
	}
	return prototext.MarshalOptions{Multiline: false}.Format(protoadapt.MessageV2Of(m))
}

// Product — товар каталога в ответе валидации.
type Product struct {
	Id        int64   `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name      string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Price     float64 `protobuf:"fixed64,3,opt,name=price,proto3" json:"price,omitempty"`
	Available bool    `protobuf:"varint,4,opt,name=available,proto3" json:"available,omitempty"`
}

func (x *Product) Reset()         { *x = Product{} }
func (x *Product) String() string { return messageString(x) }
func (*Product) ProtoMessage()    {}

func (x *Product) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Product) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Product) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Product) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

// OrderItem — позиция заказа; Name заполняется только в ответах.
type OrderItem struct {
	ProductId int64   `protobuf:"varint,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Price     float64 `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	Quantity  int32   `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Name      string  `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *OrderItem) Reset()         { *x = OrderItem{} }
func (x *OrderItem) String() string { return messageString(x) }
func (*OrderItem) ProtoMessage()    {}

func (x *OrderItem) GetProductId() int64 {
	if x != nil {
		return x.ProductId
	}
	return 0
}

func (x *OrderItem) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *OrderItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Order struct {
	Id          string       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TotalAmount float64      `protobuf:"fixed64,2,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	TotalItems  int32        `protobuf:"varint,3,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	Status      OrderStatus  `protobuf:"varint,4,opt,name=status,proto3,enum=orders.v1.OrderStatus" json:"status,omitempty"`
	Paid        bool         `protobuf:"varint,5,opt,name=paid,proto3" json:"paid,omitempty"`
	Items       []*OrderItem `protobuf:"bytes,6,rep,name=items,proto3" json:"items,omitempty"`
	CreatedUnix int64        `protobuf:"varint,7,opt,name=created_unix,json=createdUnix,proto3" json:"created_unix,omitempty"`
	UpdatedUnix int64        `protobuf:"varint,8,opt,name=updated_unix,json=updatedUnix,proto3" json:"updated_unix,omitempty"`
}

func (x *Order) Reset()         { *x = Order{} }
func (x *Order) String() string { return messageString(x) }
func (*Order) ProtoMessage()    {}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *Order) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetPaid() bool {
	if x != nil {
		return x.Paid
	}
	return false
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Order) GetCreatedUnix() int64 {
	if x != nil {
		return x.CreatedUnix
	}
	return 0
}

func (x *Order) GetUpdatedUnix() int64 {
	if x != nil {
		return x.UpdatedUnix
	}
	return 0
}

type RequestedItem struct {
	ProductId int64 `protobuf:"varint,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity  int32 `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (x *RequestedItem) Reset()         { *x = RequestedItem{} }
func (x *RequestedItem) String() string { return messageString(x) }
func (*RequestedItem) ProtoMessage()    {}

func (x *RequestedItem) GetProductId() int64 {
	if x != nil {
		return x.ProductId
	}
	return 0
}

func (x *RequestedItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type CreateOrderRequest struct {
	Items []*RequestedItem `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (x *CreateOrderRequest) Reset()         { *x = CreateOrderRequest{} }
func (x *CreateOrderRequest) String() string { return messageString(x) }
func (*CreateOrderRequest) ProtoMessage()    {}

func (x *CreateOrderRequest) GetItems() []*RequestedItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateOrderResponse struct {
	Order *Order `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
}

func (x *CreateOrderResponse) Reset()         { *x = CreateOrderResponse{} }
func (x *CreateOrderResponse) String() string { return messageString(x) }
func (*CreateOrderResponse) ProtoMessage()    {}

func (x *CreateOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type GetOrderRequest struct {
	OrderId string `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (x *GetOrderRequest) Reset()         { *x = GetOrderRequest{} }
func (x *GetOrderRequest) String() string { return messageString(x) }
func (*GetOrderRequest) ProtoMessage()    {}

func (x *GetOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type TimelineEvent struct {
	Type     string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Reason   string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	UnixTime int64  `protobuf:"varint,3,opt,name=unix_time,json=unixTime,proto3" json:"unix_time,omitempty"`
}

func (x *TimelineEvent) Reset()         { *x = TimelineEvent{} }
func (x *TimelineEvent) String() string { return messageString(x) }
func (*TimelineEvent) ProtoMessage()    {}

func (x *TimelineEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *TimelineEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TimelineEvent) GetUnixTime() int64 {
	if x != nil {
		return x.UnixTime
	}
	return 0
}

type GetOrderResponse struct {
	Order    *Order           `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	Timeline []*TimelineEvent `protobuf:"bytes,2,rep,name=timeline,proto3" json:"timeline,omitempty"`
}

func (x *GetOrderResponse) Reset()         { *x = GetOrderResponse{} }
func (x *GetOrderResponse) String() string { return messageString(x) }
func (*GetOrderResponse) ProtoMessage()    {}

func (x *GetOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *GetOrderResponse) GetTimeline() []*TimelineEvent {
	if x != nil {
		return x.Timeline
	}
	return nil
}

type ListOrdersRequest struct {
	Page  int32 `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	Limit int32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	// ORDER_STATUS_UNSPECIFIED означает отсутствие фильтра.
	Status OrderStatus `protobuf:"varint,3,opt,name=status,proto3,enum=orders.v1.OrderStatus" json:"status,omitempty"`
}

func (x *ListOrdersRequest) Reset()         { *x = ListOrdersRequest{} }
func (x *ListOrdersRequest) String() string { return messageString(x) }
func (*ListOrdersRequest) ProtoMessage()    {}

func (x *ListOrdersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListOrdersRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListOrdersRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

type PageMeta struct {
	Total    int64 `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Page     int32 `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	LastPage int32 `protobuf:"varint,3,opt,name=last_page,json=lastPage,proto3" json:"last_page,omitempty"`
}

func (x *PageMeta) Reset()         { *x = PageMeta{} }
func (x *PageMeta) String() string { return messageString(x) }
func (*PageMeta) ProtoMessage()    {}

func (x *PageMeta) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *PageMeta) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *PageMeta) GetLastPage() int32 {
	if x != nil {
		return x.LastPage
	}
	return 0
}

type ListOrdersResponse struct {
	Data []*Order  `protobuf:"bytes,1,rep,name=data,proto3" json:"data,omitempty"`
	Meta *PageMeta `protobuf:"bytes,2,opt,name=meta,proto3" json:"meta,omitempty"`
}

func (x *ListOrdersResponse) Reset()         { *x = ListOrdersResponse{} }
func (x *ListOrdersResponse) String() string { return messageString(x) }
func (*ListOrdersResponse) ProtoMessage()    {}

func (x *ListOrdersResponse) GetData() []*Order {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ListOrdersResponse) GetMeta() *PageMeta {
	if x != nil {
		return x.Meta
	}
	return nil
}

type ChangeOrderStatusRequest struct {
	OrderId string      `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status  OrderStatus `protobuf:"varint,2,opt,name=status,proto3,enum=orders.v1.OrderStatus" json:"status,omitempty"`
}

func (x *ChangeOrderStatusRequest) Reset()         { *x = ChangeOrderStatusRequest{} }
func (x *ChangeOrderStatusRequest) String() string { return messageString(x) }
func (*ChangeOrderStatusRequest) ProtoMessage()    {}

func (x *ChangeOrderStatusRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *ChangeOrderStatusRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

type ChangeOrderStatusResponse struct {
	Order *Order `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
}

func (x *ChangeOrderStatusResponse) Reset()         { *x = ChangeOrderStatusResponse{} }
func (x *ChangeOrderStatusResponse) String() string { return messageString(x) }
func (*ChangeOrderStatusResponse) ProtoMessage()    {}

func (x *ChangeOrderStatusResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ValidateProductsRequest struct {
	ProductIds []int64 `protobuf:"varint,1,rep,packed,name=product_ids,json=productIds,proto3" json:"product_ids,omitempty"`
}

func (x *ValidateProductsRequest) Reset()         { *x = ValidateProductsRequest{} }
func (x *ValidateProductsRequest) String() string { return messageString(x) }
func (*ValidateProductsRequest) ProtoMessage()    {}

func (x *ValidateProductsRequest) GetProductIds() []int64 {
	if x != nil {
		return x.ProductIds
	}
	return nil
}

type ValidateProductsResponse struct {
	Products []*Product `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
}

func (x *ValidateProductsResponse) Reset()         { *x = ValidateProductsResponse{} }
func (x *ValidateProductsResponse) String() string { return messageString(x) }
func (*ValidateProductsResponse) ProtoMessage()    {}

func (x *ValidateProductsResponse) GetProducts() []*Product {
	if x != nil {
		return x.Products
	}
	return nil
}
