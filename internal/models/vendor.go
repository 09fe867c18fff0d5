package models

// Vendor is the database representation of a vendor record.
type Vendor struct {
	VendorID  string `db:"vendor_id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Address   string `db:"address"`
	PAN       string `db:"pan"`
	GSTIN     string `db:"gstin"` // empty string when not provided
	CreatedAt string `db:"created_at"`
}
