package models

import "testing"

func TestDeliveryMethod_LabelAndFee(t *testing.T) {
	tests := []struct {
		method    DeliveryMethod
		wantLabel string
		wantFee   int64
	}{
		{DeliveryCourier, "Курьер", 500},
		{DeliveryPost, "Почта России", 200},
		{DeliveryMethod("drone"), "drone", 0},
		{DeliveryMethod(""), "", 0},
	}
	for _, tt := range tests {
		if got := tt.method.Label(); got != tt.wantLabel {
			t.Errorf("%q: expected label %q, got %q", tt.method, tt.wantLabel, got)
		}
		if got := tt.method.Fee(); got != tt.wantFee {
			t.Errorf("%q: expected fee %d, got %d", tt.method, tt.wantFee, got)
		}
	}
}

func TestParseDeliveryMethod(t *testing.T) {
	if m, err := ParseDeliveryMethod("Post"); err != nil || m != DeliveryPost {
		t.Errorf("expected post, got %q err=%v", m, err)
	}
	if _, err := ParseDeliveryMethod("drone"); err == nil {
		t.Errorf("expected an error for an unknown method")
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		if _, err := ParseOrderStatus(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParseOrderStatus("returned"); err == nil {
		t.Errorf("expected an error for an unknown status")
	}
}
