// Package finance derives the displayed money figures for a booking from
// its checkout record and optional lead history. Every screen that shows
// subtotal / discount / extra services / grand total goes through here so
// they all agree.
package finance

import "provider-panel-server/models"

type Summary struct {
	BaseAmount        float64               `json:"baseAmount"`
	DiscountAmount    float64               `json:"discountAmount"`
	ExtraServiceTotal float64               `json:"extraServiceTotal"`
	ExtraServiceLines []models.ExtraService `json:"extraServiceLines"`
	GrandTotal        float64               `json:"grandTotal"`
}

// ComputeSummary reconciles a checkout with its lead record. Lead
// overrides beat the checkout's own figures, and extra services count
// toward the total only once the lead is admin approved; unapproved lines
// stay pending and are excluded. A nil lead means no history yet, the
// common case for new bookings. Pure: no I/O, no mutation of its inputs.
func ComputeSummary(checkout models.Checkout, lead *models.Lead) Summary {
	summary := Summary{
		BaseAmount:        checkout.TotalAmount,
		DiscountAmount:    checkout.ServiceDiscount,
		ExtraServiceLines: []models.ExtraService{},
	}

	if lead != nil {
		if lead.NewAmount != nil {
			summary.BaseAmount = *lead.NewAmount
		}
		if lead.NewDiscountAmount != nil {
			summary.DiscountAmount = *lead.NewDiscountAmount
		}
		if lead.IsAdminApproved && len(lead.ExtraServices) > 0 {
			lines := make([]models.ExtraService, len(lead.ExtraServices))
			copy(lines, lead.ExtraServices)
			summary.ExtraServiceLines = lines
		}
	}

	for _, line := range summary.ExtraServiceLines {
		summary.ExtraServiceTotal += line.Total
	}
	summary.GrandTotal = summary.BaseAmount + summary.ExtraServiceTotal

	return summary
}
