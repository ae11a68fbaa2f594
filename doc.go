// Package tabsynth turns a short natural-language request, and optionally a
// sample of real tabular data, into a synthetic dataset with a requested
// number of rows.
//
// The pipeline learns a per-column statistical profile from an uploaded
// sample (type classification, distinct values, numeric min/max/mean) and
// generates new rows that are structurally and statistically consistent with
// that profile without copying original records. When no sample is supplied,
// a fixed set of built-in template generators produces domain-shaped data
// (customers, equipment tracking, sales, time series, custom schemas).
//
// # Architecture
//
// Every request runs the same decision pipeline:
//
//	free text ──▶ intent.Interpret ──▶ engine.Generate
//	                                      │
//	uploaded file ─▶ fileio.ReadCSV ─▶ profile.Build ─▶ synth.Synthesize
//	                                      │
//	              no profile ───────▶ generator registry (built-in templates)
//
// The pipeline is stateless per invocation: profiles are built once per
// request, consumed once, and discarded. The only random state is a
// request-scoped synth.Context, so concurrent requests never share mutable
// state.
//
// # Key Packages
//
//	pkg/sample     - in-memory tabular sample (ordered columns, dynamic cells)
//	pkg/profile    - column profiler and pattern profile builder
//	pkg/intent     - free-text request interpreter
//	pkg/synth      - pattern-conditioned synthesizer and value fillers
//	pkg/generator  - built-in template generators and their registry
//	pkg/engine     - generation orchestrator
//	internal/fileio - CSV decode/encode boundary
//	internal/server - HTTP upload/generate/download/preview service
package tabsynth
