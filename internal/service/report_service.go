package service

import (
	"context"
	"sort"

	"skyhi-pos/internal/model"
)

// ProfitLine aggregates one menu item across all paid orders. Cost uses the
// item's current cost basis; unlike prices, cost is not snapshotted on
// orders.
type ProfitLine struct {
	MenuItemID   uint   `json:"menu_item_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	RevenueCents int64  `json:"revenue_cents"`
	CostCents    int64  `json:"cost_cents"`
	ProfitCents  int64  `json:"profit_cents"`
}

type ProfitReport struct {
	Lines             []ProfitLine `json:"lines"`
	PaidOrders        int          `json:"paid_orders"`
	TotalRevenueCents int64        `json:"total_revenue_cents"`
	TotalCostCents    int64        `json:"total_cost_cents"`
	TotalProfitCents  int64        `json:"total_profit_cents"`
}

// ReportService produces the staff profit/margin view.
type ReportService struct {
	orders OrderRepo
	menu   MenuRepo
}

func NewReportService(orders OrderRepo, menu MenuRepo) *ReportService {
	return &ReportService{orders: orders, menu: menu}
}

// Profit aggregates revenue and margin per menu item over paid orders.
// Revenue is line revenue (pre-tax); deleted menu items still report revenue
// with a zero cost basis.
func (s *ReportService) Profit(ctx context.Context) (*ProfitReport, error) {
	orders, err := s.orders.ListByPaymentStatus(ctx, model.PaymentPaid)
	if err != nil {
		return nil, err
	}
	menu, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	costByID := make(map[uint]int64, len(menu))
	for _, m := range menu {
		costByID[m.ID] = m.CostCents
	}

	byItem := make(map[uint]*ProfitLine)
	report := &ProfitReport{PaidOrders: len(orders)}
	for _, o := range orders {
		for _, it := range o.Items {
			line, ok := byItem[it.MenuItemID]
			if !ok {
				line = &ProfitLine{MenuItemID: it.MenuItemID, Name: it.Name}
				byItem[it.MenuItemID] = line
			}
			revenue := it.UnitPriceCents * int64(it.Quantity)
			cost := costByID[it.MenuItemID] * int64(it.Quantity)
			line.Quantity += it.Quantity
			line.RevenueCents += revenue
			line.CostCents += cost
			line.ProfitCents = line.RevenueCents - line.CostCents
			report.TotalRevenueCents += revenue
			report.TotalCostCents += cost
		}
	}
	report.TotalProfitCents = report.TotalRevenueCents - report.TotalCostCents

	report.Lines = make([]ProfitLine, 0, len(byItem))
	for _, line := range byItem {
		report.Lines = append(report.Lines, *line)
	}
	sort.Slice(report.Lines, func(i, j int) bool {
		return report.Lines[i].ProfitCents > report.Lines[j].ProfitCents
	})
	return report, nil
}
