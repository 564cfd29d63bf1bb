package importer

import (
	"testing"

	"delivery-tracker/internal/orders/model"
)

func grid() [][]string {
	return [][]string{
		{"رقم الشحن", "التلفون", "السعر", "العنوان"},
		{"S-1", "03-123 456", "25", "بيروت"},
		{"", "", "99", "صور"}, // no id, no phone: dropped
		{"S-3", "", "1,250.50", "طرابلس"},
	}
}

func mapping() Mapping {
	return Mapping{"orderId": 0, "phoneNumber": 1, "price": 2, "country": 3}
}

func TestBuildOrders_Basic(t *testing.T) {
	t.Parallel()

	orders := BuildOrders(grid(), 0, mapping(), nil, false)
	if len(orders) != 2 {
		t.Fatalf("want 2 orders, got %d", len(orders))
	}

	o := orders[0]
	if o.OrderID != "S-1" {
		t.Fatalf("orderId want=S-1 got=%q", o.OrderID)
	}
	if o.PhoneNumber != "03123456" {
		t.Fatalf("phone must be digits only, got %q", o.PhoneNumber)
	}
	if o.Price != 25 {
		t.Fatalf("price want=25 got=%v", o.Price)
	}
	if o.Country != "بيروت" {
		t.Fatalf("country want=بيروت got=%q", o.Country)
	}
	if o.Status != model.StatusPending {
		t.Fatalf("new orders must be pending, got %q", o.Status)
	}
	if o.Sequence != "1" || orders[1].Sequence != "2" {
		t.Fatalf("sequences want 1,2 got %q,%q", o.Sequence, orders[1].Sequence)
	}
	if orders[1].Price != 1250.50 {
		t.Fatalf("price want=1250.50 got=%v", orders[1].Price)
	}
	if o.CreatedAt.IsZero() || o.StatusUpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set")
	}
}

func TestBuildOrders_SequenceContinues(t *testing.T) {
	t.Parallel()

	existing := []model.Order{
		{ID: "a", Sequence: "3"},
		{ID: "b", Sequence: "7"},
		{ID: "c", Sequence: "not-a-number"},
	}
	orders := BuildOrders(grid(), 0, mapping(), existing, true)
	if orders[0].Sequence != "8" || orders[1].Sequence != "9" {
		t.Fatalf("append sequences want 8,9 got %q,%q", orders[0].Sequence, orders[1].Sequence)
	}

	// replace mode restarts at 1 even with existing orders
	orders = BuildOrders(grid(), 0, mapping(), existing, false)
	if orders[0].Sequence != "1" {
		t.Fatalf("replace sequence want=1 got=%q", orders[0].Sequence)
	}
}

func TestBuildOrders_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := BuildOrders(grid(), 0, mapping(), nil, false)
	b := BuildOrders(grid(), 0, mapping(), nil, false)
	seen := map[string]bool{}
	for _, o := range append(a, b...) {
		if seen[o.ID] {
			t.Fatalf("duplicate id across batches: %s", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestBuildOrders_UnmappedFieldsDefault(t *testing.T) {
	t.Parallel()

	// only orderId and phoneNumber mapped
	m := Mapping{"orderId": 0, "phoneNumber": 1}
	orders := BuildOrders(grid(), 0, m, nil, false)
	if orders[0].Price != 0 {
		t.Fatalf("unmapped price must default to 0, got %v", orders[0].Price)
	}
	if orders[0].Country != "" || orders[0].Note != "" {
		t.Fatalf("unmapped text fields must be empty")
	}
}

func TestNextSequence(t *testing.T) {
	t.Parallel()

	if got := NextSequence(nil); got != 1 {
		t.Fatalf("empty collection want=1 got=%d", got)
	}
	orders := []model.Order{{Sequence: "2"}, {Sequence: " 7 "}, {Sequence: "x"}}
	if got := NextSequence(orders); got != 8 {
		t.Fatalf("want=8 got=%d", got)
	}
}
