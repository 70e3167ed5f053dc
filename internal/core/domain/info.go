package domain

// Option is a bookable extra offered by the inn (breakfast, late
// check-out, ...). Guests toggle options per booking; prices are in BRL.
type Option struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// SiteConfig is the singleton record describing the inn. It is seeded
// lazily with defaults on first read and overwritten wholesale by admins.
type SiteConfig struct {
	Description string   `json:"description"`
	Options     []Option `json:"options"`
}

// DefaultSiteConfig returns the configuration used to seed an empty store.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Description: "Bem-vindo à nossa pousada à beira-mar. Quartos aconchegantes, café da manhã caseiro e o melhor pôr do sol da região.",
		Options: []Option{
			{ID: "breakfast", Label: "Café da manhã", Price: 35},
			{ID: "late_checkout", Label: "Late check-out (até 16h)", Price: 50},
			{ID: "parking", Label: "Vaga de estacionamento", Price: 20},
		},
	}
}
