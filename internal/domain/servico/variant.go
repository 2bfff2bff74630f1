package servico

// Variant describes one service table: the generic "servicos" table or a
// module table whose type is fixed by construction.
type Variant struct {
	Table       string
	FixedType   Type
	MaxDuration int

	// UniquePerClientDay forbids a second active service for the same client
	// on the same day.
	UniquePerClientDay bool
}

const MinDuration = 1

var (
	Base = Variant{
		Table:              "servicos",
		MaxDuration:        12,
		UniquePerClientDay: true,
	}

	Garden = Variant{
		Table:       "servicos_jardim",
		FixedType:   TypeGarden,
		MaxDuration: 24,
	}

	Pool = Variant{
		Table:       "servicos_piscina",
		FixedType:   TypePool,
		MaxDuration: 24,
	}
)

func (v Variant) IsModule() bool {
	return v.FixedType != ""
}
