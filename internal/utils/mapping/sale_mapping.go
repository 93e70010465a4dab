package mapping

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:       d.SaleID,
		PharmacyID:   d.PharmacyID,
		PharmacyName: d.PharmacyName,
		Amount:       d.Amount,
		RecordType:   string(d.RecordType),
		SaleDate:     domain.DateOnly(d.Date),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:       m.SaleID,
		PharmacyID:   m.PharmacyID,
		PharmacyName: m.PharmacyName,
		Amount:       m.Amount,
		RecordType:   domain.RecordType(m.RecordType),
		Date:         domain.DateOnly(m.SaleDate),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
