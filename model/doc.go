// Package model provides the static catalog mapping model identifiers to
// their owning provider, per-million-token pricing, and capability flags.
//
// A [Registry] is read-only after construction and safe for concurrent
// use. Use [DefaultRegistry] for the built-in catalog, or [New] with a
// custom descriptor set:
//
//	registry := model.DefaultRegistry(model.WithFXMultiplier(0.92))
//	desc, err := registry.Resolve("deepseek-chat")
//
// Pricing applies a fixed currency-conversion multiplier after
// multiplying token counts by the per-million price:
//
//	cost, err := registry.PriceFor("deepseek-chat", 1000, 500)
package model
