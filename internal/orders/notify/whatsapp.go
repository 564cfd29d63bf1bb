// Package notify builds the WhatsApp texts and wa.me links the operator
// sends to customers and managers. Message wording is Arabic; greetings and
// signatures rotate so repeated notices do not read like a bot.
package notify

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"delivery-tracker/internal/orders/model"
)

var greetings = []string{
	"السلام عليكم ورحمة الله وبركاته",
	"مرحباً بك عميلنا العزيز",
	"تحية طيبة وبعد، أهلاً بك",
	"السلام عليكم، نأمل أن تكون بخير",
	"أهلاً ومرحباً بك يا غالي",
	"يسعدنا التواصل معك، طاب يومك",
	"تحية من فريق التوصيل، أهلاً بك",
	"السلام عليكم، طاب صباحك بكل خير",
	"مرحباً بك، نتشرف بخدمتك دائماً",
	"السلام عليكم، كيف حالك اليوم؟",
	"أهلاً بك، يسعدنا إبلاغك بتحديثات طلبك",
}

var signatures = []string{
	"شكراً لاختيارك لنا.",
	"نسعد دائماً بخدمتكم.",
	"مع تحيات فريق التوصيل.",
	"طاب يومك بكل خير.",
	"شكراً جزيلاً لثقتك بنا.",
	"نحن هنا لخدمتكم دائماً.",
	"مع أطيب التحيات من فريقنا.",
	"شكراً لتفهمكم وتعاونكم.",
}

// local numbers are written with a leading 0; WhatsApp wants the country code
const countryPrefix = "961"

// FormatPhone strips a phone down to digits (plus an optional leading +) and
// replaces a leading 0 with the country prefix.
func FormatPhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, phone)
	if strings.HasPrefix(cleaned, "0") {
		cleaned = countryPrefix + cleaned[1:]
	}
	return cleaned
}

func pick(arr []string) string {
	return arr[rand.Intn(len(arr))]
}

func link(phone, message string) string {
	return "https://wa.me/" + FormatPhone(phone) + "?text=" + url.QueryEscape(message)
}

// CustomerMessage is the delivery notice asking the customer to confirm
// their location for the scheduled delivery date.
func CustomerMessage(o model.Order, deliveryDate string) string {
	noteLine := ""
	if o.Note != "" {
		noteLine = "\nملاحظة: " + o.Note
	}
	return fmt.Sprintf(`%s

نود إبلاغك بأن طلبك مبرمج للتوصيل (%s) إن شاء الله.

📋 تفاصيل طلبك:
- التسلسل: %s (م)
- رقم الشحن: %s
- المنطقة: %s
- السعر: %g $ %s

📍 يرجى تزويدنا بموقعك (Location) أو العنوان بدقة لتأكيد الحجز لليوم المذكور.

%s`, pick(greetings), deliveryDate, o.Sequence, o.OrderID, o.Country, o.Price, noteLine, pick(signatures))
}

func CustomerLink(o model.Order, deliveryDate string) string {
	return link(o.PhoneNumber, CustomerMessage(o, deliveryDate))
}

func DirectChatLink(phone string) string {
	return "https://wa.me/" + FormatPhone(phone)
}

// ManagerReport summarizes an order's current state for a manager.
func ManagerReport(o model.Order) string {
	reason := o.StatusReason
	if reason == "" {
		reason = "لا يوجد"
	}
	company := o.DeliveryCompany
	if company == "" {
		company = "غير محدد"
	}
	return fmt.Sprintf(`📢 تقرير تحديث طلب:
📦 رقم الشحن: %s
📊 الحالة الحالية: %s
💬 الملاحظة: %s
💰 المبلغ المستلم: %g $
📍 المنطقة: %s
📱 هاتف الزبون: %s
🚚 شركة التوصيل: %s`, o.OrderID, model.StatusLabels[o.Status], reason, o.PaidAmount, o.Country, o.PhoneNumber, company)
}

func ManagerReportLink(o model.Order, managerPhone string) string {
	return link(managerPhone, ManagerReport(o))
}

// PermissionRequest asks a manager whether a customer may open the parcel
// before paying.
func PermissionRequest(o model.Order) string {
	return fmt.Sprintf(`✋ طلب إذن بفتح طرد:
📦 رقم الشحن: %s
📍 المنطقة: %s
📱 هاتف الزبون: %s
💰 المبلغ المطلوب: %g $

الزبون يطلب فتح الطرد قبل الدفع، بانتظار قراركم..`, o.OrderID, o.Country, o.PhoneNumber, o.Price)
}

func PermissionRequestLink(o model.Order, managerPhone string) string {
	return link(managerPhone, PermissionRequest(o))
}
