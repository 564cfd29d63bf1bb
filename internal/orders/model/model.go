package model

import "time"

// Status is the delivery workflow state of an order.
type Status string

const (
	StatusPending                  Status = "pending"
	StatusDelivered                Status = "delivered"
	StatusCancelled                Status = "cancelled"
	StatusPostponed                Status = "postponed"
	StatusNotPaid                  Status = "not_paid"
	StatusCancelledDeliveryPayment Status = "cancelled_delivery_payment"
)

// AllStatuses in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusDelivered,
	StatusCancelled,
	StatusPostponed,
	StatusNotPaid,
	StatusCancelledDeliveryPayment,
}

// StatusLabels maps each status to the label used in customer-facing messages.
var StatusLabels = map[Status]string{
	StatusPending:                  "قيد الانتظار",
	StatusDelivered:                "تم التوصيل",
	StatusCancelled:                "ملغاة",
	StatusPostponed:                "مؤجلة",
	StatusNotPaid:                  "لم يدفع",
	StatusCancelledDeliveryPayment: "ملغاة دفع التوصيل",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Order is one delivery shipment.
type Order struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	PhoneNumber     string    `json:"phoneNumber"`
	Country         string    `json:"country"`
	DetailedAddress string    `json:"detailedAddress,omitempty"`
	DeliveryCompany string    `json:"deliveryCompany,omitempty"`
	Price           float64   `json:"price"`
	Note            string    `json:"note"`
	Sequence        string    `json:"sequence"`
	PackageName     string    `json:"packageName"`
	Status          Status    `json:"status"`
	StatusReason    string    `json:"statusReason,omitempty"`
	PaidAmount      float64   `json:"paidAmount,omitempty"`
	OrderImage      string    `json:"orderImage,omitempty"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
	CreatedAt       time.Time `json:"createdAt"`

	IsContacted         bool `json:"isContacted,omitempty"`
	IsManager1Contacted bool `json:"isManager1Contacted,omitempty"`
	IsManager2Contacted bool `json:"isManager2Contacted,omitempty"`
}

// Stats is derived from the live order collection, never persisted on its own.
type Stats struct {
	TotalOrders                    int     `json:"totalOrders"`
	PendingOrders                  int     `json:"pendingOrders"`
	DeliveredOrders                int     `json:"deliveredOrders"`
	CancelledOrders                int     `json:"cancelledOrders"`
	PostponedOrders                int     `json:"postponedOrders"`
	NotPaidOrders                  int     `json:"notPaidOrders"`
	CancelledDeliveryPaymentOrders int     `json:"cancelledDeliveryPaymentOrders"`
	TotalRevenue                   float64 `json:"totalRevenue"`
	DeliveredRevenue               float64 `json:"deliveredRevenue"`
	TotalCashInHand                float64 `json:"totalCashInHand"`
	NetRevenue                     float64 `json:"netRevenue"`
}

// ArchiveRound is an immutable snapshot of a finished delivery round.
type ArchiveRound struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Stats  Stats   `json:"stats"`
	Orders []Order `json:"orders"`
}

// Settings are the operator-tunable values used when building messages.
type Settings struct {
	DeliveryDate          string `json:"deliveryDate"`
	ManagerPhone          string `json:"managerPhone"`
	SecondaryManagerPhone string `json:"secondaryManagerPhone"`
}

func DefaultSettings() Settings {
	return Settings{DeliveryDate: "غداً"}
}
