package models

// Pharmacy is a row of the pharmacies table.
type Pharmacy struct {
	PharmacyID string `db:"pharmacy_id"`
	Name       string `db:"name"`
	City       string `db:"city"`
	AuditFields
}
