// Package modules lists the optional service modules. The set is fixed at
// build time; configuration only switches entries on or off.
package modules

import (
	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
)

type Module struct {
	Name    string
	Prefix  string
	Variant servico.Variant
	enabled func(*config.Config) bool
}

func (m Module) Enabled(cfg *config.Config) bool {
	return m.enabled(cfg)
}

var registry = []Module{
	{
		Name:    "verde",
		Prefix:  "/servicos-jardim",
		Variant: servico.Garden,
		enabled: func(cfg *config.Config) bool { return cfg.ModuloVerde },
	},
	{
		Name:    "aqua",
		Prefix:  "/servicos-piscina",
		Variant: servico.Pool,
		enabled: func(cfg *config.Config) bool { return cfg.ModuloAqua },
	},
}

func All() []Module {
	out := make([]Module, len(registry))
	copy(out, registry)
	return out
}

func Enabled(cfg *config.Config) []Module {
	var out []Module
	for _, m := range registry {
		if m.Enabled(cfg) {
			out = append(out, m)
		}
	}
	return out
}

// Status reports every module by name; the base module is always on.
func Status(cfg *config.Config) map[string]bool {
	status := map[string]bool{"base": true}
	for _, m := range registry {
		status[m.Name] = m.Enabled(cfg)
	}
	return status
}
