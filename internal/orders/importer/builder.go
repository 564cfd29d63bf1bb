package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"delivery-tracker/internal/orders/model"
)

// NextSequence returns the sequence number the next created order should
// take: one past the highest numeric sequence already in the collection.
func NextSequence(existing []model.Order) int {
	maxSeq := 0
	for _, o := range existing {
		if n, err := strconv.Atoi(strings.TrimSpace(o.Sequence)); err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq + 1
}

// BuildOrders walks the data rows below the header and turns them into
// pending orders. A row without both a shipment number and a phone number is
// not a record and is dropped. Sequences continue from the existing
// collection when appending, otherwise restart at 1.
func BuildOrders(rows [][]string, headerIdx int, mapping Mapping, existing []model.Order, appendMode bool) []model.Order {
	next := 1
	if appendMode && len(existing) > 0 {
		next = NextSequence(existing)
	}

	// batch token keeps ids unique across rapid repeated imports
	batch := strings.SplitN(uuid.NewString(), "-", 2)[0]
	now := time.Now().UTC()

	var orders []model.Order
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		orderID := strings.TrimSpace(mappedCell(row, mapping, "orderId"))
		phone := strings.TrimSpace(mappedCell(row, mapping, "phoneNumber"))
		if orderID == "" && phone == "" {
			continue
		}

		price := 0.0
		if _, ok := mapping["price"]; ok {
			price = ParsePrice(mappedCell(row, mapping, "price"))
		}

		orders = append(orders, model.Order{
			ID:              fmt.Sprintf("ord-%s-%d-%d", batch, now.UnixMilli(), i),
			OrderID:         orderID,
			PhoneNumber:     digitsOnly(phone),
			Country:         strings.TrimSpace(mappedCell(row, mapping, "country")),
			DeliveryCompany: strings.TrimSpace(mappedCell(row, mapping, "deliveryCompany")),
			Price:           price,
			Note:            strings.TrimSpace(mappedCell(row, mapping, "note")),
			Sequence:        strconv.Itoa(next),
			PackageName:     strings.TrimSpace(mappedCell(row, mapping, "packageName")),
			Status:          model.StatusPending,
			StatusUpdatedAt: now,
			CreatedAt:       now,
		})
		next++
	}
	return orders
}

func mappedCell(row []string, mapping Mapping, column string) string {
	col, ok := mapping[column]
	if !ok || col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
