package service

import (
	"context"
	"testing"

	"skyhi-pos/internal/model"
)

func TestProfitReport(t *testing.T) {
	paid := []model.Order{
		{
			ID: 1, PaymentStatus: model.PaymentPaid,
			Items: []model.OrderItem{
				{MenuItemID: 1, Name: "Grilled Salmon", UnitPriceCents: 1850, Quantity: 2},
				{MenuItemID: 2, Name: "Lemonade", UnitPriceCents: 300, Quantity: 1},
			},
		},
		{
			ID: 2, PaymentStatus: model.PaymentPaid,
			Items: []model.OrderItem{
				{MenuItemID: 1, Name: "Grilled Salmon", UnitPriceCents: 1850, Quantity: 1},
				{MenuItemID: 9, Name: "Retired Special", UnitPriceCents: 1200, Quantity: 1},
			},
		},
	}
	orders := &mockOrderRepo{
		ListByPaymentStatusFunc: func(ctx context.Context, ps model.PaymentStatus) ([]model.Order, error) {
			if ps != model.PaymentPaid {
				t.Errorf("queried %s orders, want paid", ps)
			}
			return paid, nil
		},
	}
	menu := &mockMenuRepo{
		ListFunc: func(ctx context.Context) ([]model.MenuItem, error) {
			return []model.MenuItem{
				{ID: 1, Name: "Grilled Salmon", PriceCents: 1850, CostCents: 700},
				{ID: 2, Name: "Lemonade", PriceCents: 300, CostCents: 80},
			}, nil
		},
	}

	report, err := NewReportService(orders, menu).Profit(context.Background())
	if err != nil {
		t.Fatalf("Profit: %v", err)
	}

	if report.PaidOrders != 2 {
		t.Errorf("PaidOrders = %d, want 2", report.PaidOrders)
	}
	// 3x salmon + 1x lemonade + 1x retired special.
	wantRevenue := int64(3*1850 + 300 + 1200)
	wantCost := int64(3*700 + 80)
	if report.TotalRevenueCents != wantRevenue {
		t.Errorf("TotalRevenueCents = %d, want %d", report.TotalRevenueCents, wantRevenue)
	}
	if report.TotalCostCents != wantCost {
		t.Errorf("TotalCostCents = %d, want %d", report.TotalCostCents, wantCost)
	}
	if report.TotalProfitCents != wantRevenue-wantCost {
		t.Errorf("TotalProfitCents = %d", report.TotalProfitCents)
	}

	if len(report.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(report.Lines))
	}
	if report.Lines[0].MenuItemID != 1 {
		t.Errorf("top line = item %d, want the salmon", report.Lines[0].MenuItemID)
	}
	top := report.Lines[0]
	if top.Quantity != 3 || top.RevenueCents != 3*1850 || top.ProfitCents != 3*(1850-700) {
		t.Errorf("salmon line = %+v", top)
	}

	for _, line := range report.Lines {
		if line.MenuItemID == 9 {
			if line.CostCents != 0 || line.ProfitCents != 1200 {
				t.Errorf("retired item should carry zero cost basis, got %+v", line)
			}
		}
	}
}

func TestProfitReportEmpty(t *testing.T) {
	report, err := NewReportService(&mockOrderRepo{}, &mockMenuRepo{}).Profit(context.Background())
	if err != nil {
		t.Fatalf("Profit: %v", err)
	}
	if report.PaidOrders != 0 || len(report.Lines) != 0 || report.TotalProfitCents != 0 {
		t.Errorf("empty report = %+v", report)
	}
}
