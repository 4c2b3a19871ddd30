package model

// CompanyRecord is a transient copy of a company entry owned by the
// directory service. It lives for the duration of one workflow run.
type CompanyRecord struct {
	ID      string
	Name    string
	Address string
	Phone   string
	Email   string
}
