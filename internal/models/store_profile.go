package models

// StoreProfile stores the brand details shown on receipts and the storefront.
// There should be only one row (singleton pattern).
type StoreProfile struct {
	BaseModel
	Name      string `json:"name"`
	Slogan    string `json:"slogan"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

const (
	DefaultStoreName   = "AYAM GEPREK SAMBAL IJO"
	DefaultStoreSlogan = "Pedasnya Bikin Nagih!"
)

// DisplayName returns the store name, falling back to the brand default.
func (p *StoreProfile) DisplayName() string {
	if p == nil || p.Name == "" {
		return DefaultStoreName
	}
	return p.Name
}

// DisplaySlogan returns the slogan, falling back to the brand default.
func (p *StoreProfile) DisplaySlogan() string {
	if p == nil || p.Slogan == "" {
		return DefaultStoreSlogan
	}
	return p.Slogan
}
