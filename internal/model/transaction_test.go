package model

import (
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		ID:          "txn1",
		Type:        TypeExpense,
		Amount:      42.50,
		Description: "Mercado",
		Category:    "Alimentação",
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		mutate  func(*Transaction)
		name    string
		wantErr bool
	}{
		{
			name:    "valid expense",
			mutate:  func(*Transaction) {},
			wantErr: false,
		},
		{
			name:    "valid income",
			mutate:  func(tx *Transaction) { tx.Type = TypeIncome },
			wantErr: false,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = 0 },
			wantErr: true,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -10 },
			wantErr: true,
		},
		{
			name:    "blank description",
			mutate:  func(tx *Transaction) { tx.Description = "   " },
			wantErr: true,
		},
		{
			name:    "blank category",
			mutate:  func(tx *Transaction) { tx.Category = "" },
			wantErr: true,
		},
		{
			name:    "zero date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := txn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_InMonth(t *testing.T) {
	ref := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"same month", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"previous month", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), false},
		{"same month previous year", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Date: tt.date}
			if got := txn.InMonth(ref); got != tt.want {
				t.Errorf("InMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}
