package mapping

import (
	"github.com/vendorpay/vpa_backend/internal/core/domain"
	"github.com/vendorpay/vpa_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID: d.PaymentID,
		ProjectID: d.ProjectID,
		VendorID:  d.VendorID,
		Vendor:    d.Vendor,
		Company:   d.Company,
		Summary:   d.Summary,
		Items:     d.Items,
		ItemsTot:  d.ItemsTot,
		GST:       d.GST,
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		ProjectID: m.ProjectID,
		VendorID:  m.VendorID,
		Vendor:    m.Vendor,
		Company:   m.Company,
		Summary:   m.Summary,
		Items:     m.Items,
		ItemsTot:  m.ItemsTot,
		GST:       m.GST,
		Total:     m.Total,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
