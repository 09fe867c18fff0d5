package domain

// Vendor represents a supplier identity record. Identity fields are immutable
// once created; vendors are referenced (never embedded) by projects, and
// snapshotted into payments at payment-creation time.
type Vendor struct {
	VendorID  string `json:"vendorID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	PAN       string `json:"pan"`
	GSTIN     string `json:"gstin,omitempty"` // optional
	CreatedAt string `json:"createdAt"`       // IST civil time, ISO-8601
}
