package model

// AliasSet binds a logical column to the header spellings seen in the wild.
// Sheets come from several courier companies, so both Arabic and English
// variants are listed.
type AliasSet struct {
	Column  string
	Aliases []string
}

// ColumnAliases is the fixed alias table the header locator scores against.
// Order defines the mapping iteration order, nothing more.
var ColumnAliases = []AliasSet{
	{Column: "orderId", Aliases: []string{"Number Ship", "رقم الشحن", "رقم الطلب", "order id", "shipment no", "رقم الطرد"}},
	{Column: "phoneNumber", Aliases: []string{"التلفون", "تلفون", "رقم الهاتف", "phone", "mobile", "رقم الموبايل", "تلفون الزبون"}},
	{Column: "country", Aliases: []string{"العنوان", "عنوان", "الدولة", "المنطقة", "address", "location", "السكن"}},
	{Column: "price", Aliases: []string{"$", "السعر", "price", "amount", "صافي", "القيمة", "المبلغ"}},
	{Column: "sequence", Aliases: []string{"Order", "التسلسل", "sequence", "serial", "م", "ترتيب"}},
	{Column: "packageName", Aliases: []string{"إسم الزبون", "اسم الزبون", "اسم العميل", "الطرد", "الزبون", "customer name"}},
	{Column: "note", Aliases: []string{"ملاحظة", "ملاحظات", "note", "البيان", "تفاصيل"}},
	{Column: "deliveryCompany", Aliases: []string{"شركة الديليفري", "المندوب", "الشركة", "delivery company", "courier", "driver", "شركة التوصيل"}},
}
