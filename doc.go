// Package xrpltools turns XRPL domain-model definitions into a uniform
// catalogue of invokable tools, each with a machine-checkable parameter
// schema, strict validation, and domain-specific value normalization.
//
// # Overview
//
// Callers (LLM agents, CLIs, protocol servers) supply field maps in their own
// convention; the engine rewrites them into the representation the domain
// models expect and either constructs the model or explains exactly what to
// fix.
//
// Pipeline: model struct → Extract (reflection) → Synthesize (name,
// description, JSON Schema, closure) → Registry → Invoke (normalize,
// validate, construct) → canonical field map or typed diagnostic.
//
// # Key concepts
//
//   - Single source of truth: one set of struct tags on the model drives the
//     extracted schema, the JSON Schema document, and validation.
//   - Normalization never fails: keys are re-cased (destination_tag →
//     DestinationTag), amounts stay exact decimal strings, long currency
//     codes become fixed-width hex; anything uninterpretable passes through
//     for the validator to reject.
//   - Self-correction: every diagnostic carries the complete field schema of
//     the tool, so a caller can retry without external documentation.
//
// # Example
//
//	reg, err := xrpltools.Build(catalog.Modules())
//	if err != nil { ... }
//	out, err := reg.Invoke(ctx, "transaction_payment", map[string]any{
//	    "account":     "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
//	    "destination": "rPT1Sjq2YGrBMTttX4GZHjKu9dyfzbpAYe",
//	    "amount":      "1000000",
//	})
package xrpltools
