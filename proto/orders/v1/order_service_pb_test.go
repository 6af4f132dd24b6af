package ordersv1

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

func TestOrderStatusNames(t *testing.T) {
	for value, name := range OrderStatus_name {
		if OrderStatus_value[name] != value {
			t.Fatalf("name/value maps disagree for %s", name)
		}
		if OrderStatus(value).String() != name {
			t.Fatalf("String() mismatch for %s", name)
		}
	}

	if s := OrderStatus(999).String(); s == "" {
		t.Fatal("unknown enum string must not be empty")
	}

	p := OrderStatus_ORDER_STATUS_PAID.Enum()
	if p == nil || *p != OrderStatus_ORDER_STATUS_PAID {
		t.Fatalf("Enum() mismatch: got %v", p)
	}
}

func TestMessageWireRoundTrip(t *testing.T) {
	in := &Order{
		Id:          "f2b9a4aa-1f35-41d3-8f3d-0f2d6f3b2c10",
		TotalAmount: 25,
		TotalItems:  3,
		Status:      OrderStatus_ORDER_STATUS_PENDING,
		Items: []*OrderItem{
			{ProductId: 1, Price: 10, Quantity: 2, Name: "laptop"},
			{ProductId: 2, Price: 5, Quantity: 1, Name: "mouse"},
		},
		CreatedUnix: 1700000000,
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(in))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	out := &Order{}
	if err := proto.Unmarshal(data, protoadapt.MessageV2Of(out)); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if out.GetId() != in.GetId() {
		t.Fatalf("id mismatch: got %s want %s", out.GetId(), in.GetId())
	}
	if out.GetTotalAmount() != 25 || out.GetTotalItems() != 3 {
		t.Fatalf("totals mismatch: %v", out)
	}
	if out.GetStatus() != OrderStatus_ORDER_STATUS_PENDING {
		t.Fatalf("status mismatch: %v", out.GetStatus())
	}
	if len(out.GetItems()) != 2 || out.GetItems()[0].GetName() != "laptop" {
		t.Fatalf("items mismatch: %v", out.GetItems())
	}
}

func TestNilReceiverGetters(t *testing.T) {
	var order *Order
	if order.GetId() != "" || order.GetItems() != nil || order.GetStatus() != OrderStatus_ORDER_STATUS_UNSPECIFIED {
		t.Fatal("nil receiver getters must return zero values")
	}
	if order.String() != "" {
		t.Fatalf("nil receiver String must be empty, got %q", order.String())
	}

	var resp *ListOrdersResponse
	if resp.GetMeta().GetTotal() != 0 {
		t.Fatal("chained nil getters must return zero values")
	}
}
