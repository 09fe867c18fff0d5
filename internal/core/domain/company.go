package domain

// Company is an entry in the company master: static, read-only data about a
// paying company, supplied as external configuration and keyed by name.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
