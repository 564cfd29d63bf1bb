package importer

import "testing"

func TestMatchAlias(t *testing.T) {
	t.Parallel()

	aliases := []string{"رقم الشحن", "order id", "shipment no"}

	cases := []struct {
		cell string
		want Match
	}{
		{"رقم الشحن", MatchExact},
		{"  Order ID  ", MatchExact},
		{"ORDER ID", MatchExact},
		{"رقم الشحن (مطلوب)", MatchPartial},
		{"shipment", MatchPartial}, // cell contained by an alias
		{"السعر", MatchNone},
		{"", MatchNone},
		{"   ", MatchNone},
	}
	for _, c := range cases {
		if got := MatchAlias(c.cell, aliases); got != c.want {
			t.Fatalf("MatchAlias(%q) want=%v got=%v", c.cell, c.want, got)
		}
	}
}
