package revaluation

import "testing"

func TestToSnake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"price", "price"},
		{"Price", "price"},
		{"DisplayPrice", "display_price"},
		{"asCurrency", "as_currency"},
		{"unit_price", "unit_price"},
		{"ProductID", "product_id"},
		{"HTTPServer", "http_server"},
		{"price2Cents", "price2_cents"},
		{"Unit_Price", "unit_price"},
		{"ÁreaTotal", "área_total"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSnake(tt.name); got != tt.want {
				t.Errorf("ToSnake() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToStudly(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"price", "Price"},
		{"unit_price", "UnitPrice"},
		{"order_item-data", "OrderItemData"},
		{"asCurrency", "AsCurrency"},
		{"revaluated", "Revaluated"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToStudly(tt.name); got != tt.want {
				t.Errorf("ToStudly() = %v, want %v", got, tt.want)
			}
		})
	}
}
