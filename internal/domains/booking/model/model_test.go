package model_test

import (
	"testing"

	"homestay/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		cust    string
		status  string
		deposit string
		want    string
	}{
		{
			name:   "pending omits deposit",
			cust:   "An",
			status: model.StatusPending,
			want:   "An - Đang đợi đặt cọc",
		},
		{
			name:    "pending omits deposit even when given",
			cust:    "An",
			status:  model.StatusPending,
			deposit: "300",
			want:    "An - Đang đợi đặt cọc",
		},
		{
			name:    "confirmed with deposit",
			cust:    "Linh",
			status:  model.StatusConfirmed,
			deposit: "500",
			want:    "Linh - Đã đặt cọc - 500",
		},
		{
			name:   "confirmed without deposit",
			cust:   "Linh",
			status: model.StatusConfirmed,
			want:   "Linh - Đã đặt cọc",
		},
		{
			name:    "confirmed with blank deposit",
			cust:    "Linh",
			status:  model.StatusConfirmed,
			deposit: "   ",
			want:    "Linh - Đã đặt cọc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Compose(tt.cust, tt.status, tt.deposit))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Details
	}{
		{
			name: "empty cell",
			raw:  "   ",
			want: model.Details{Kind: model.KindAvailable},
		},
		{
			name: "confirmed with deposit",
			raw:  "Linh - Đã đặt cọc - 500",
			want: model.Details{Kind: model.KindConfirmed, CustomerName: "Linh", Deposit: "500"},
		},
		{
			name: "confirmed alternate wording",
			raw:  "Minh - đã nhận cọc 1.5",
			want: model.Details{Kind: model.KindConfirmed, CustomerName: "Minh", Deposit: "1.5"},
		},
		{
			name: "pending",
			raw:  "An - Đang đợi đặt cọc",
			want: model.Details{Kind: model.KindPending, CustomerName: "An"},
		},
		{
			name: "pending alternate wording",
			raw:  "Hoa - chờ xác nhận",
			want: model.Details{Kind: model.KindPending, CustomerName: "Hoa"},
		},
		{
			name: "freeform note is a generic booking",
			raw:  "khách quen 2 người",
			want: model.Details{Kind: model.KindBooked, CustomerName: "khách quen 2 người"},
		},
		{
			name: "deposit number ignored for pending",
			raw:  "An - Đang đợi đặt cọc - 300",
			want: model.Details{Kind: model.KindPending, CustomerName: "An"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Parse(tt.raw))
		})
	}
}
