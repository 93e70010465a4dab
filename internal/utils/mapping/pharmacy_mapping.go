package mapping

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/models"
)

func ToModelPharmacy(d domain.Pharmacy) models.Pharmacy {
	return models.Pharmacy{
		PharmacyID:  d.PharmacyID,
		Name:        d.Name,
		City:        d.City,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPharmacy(m models.Pharmacy) domain.Pharmacy {
	return domain.Pharmacy{
		PharmacyID:  m.PharmacyID,
		Name:        m.Name,
		City:        m.City,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPharmacySlice(ms []models.Pharmacy) []domain.Pharmacy {
	ds := make([]domain.Pharmacy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPharmacy(m)
	}
	return ds
}
