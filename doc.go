// Package polymat is a small playground for generic 2-D numeric matrices:
// one contract, two storage strategies, and an addition that works across them.
//
// What is inside?
//
//	• Contract: shape queries, bounds-checked At/Set, NewSameKind, Populate, Add
//	• Dynamic matrices: shape chosen at construction, deep copy & move semantics
//	• Fixed matrices: shape bound for life, storage allocated once
//	• Value sources: fixed sequences, readers, interactive prompts
//	• Rendering: bar-delimited rows with fixed precision
//
// Why?
//
//   - Errors instead of nil results: every failure is a sentinel matched with errors.Is
//   - No aliasing: two live matrices never share storage
//   - Pure Go generics over every built-in integer and float type
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/      - Element, Matrix[T], Dynamic[T], Fixed[T], Add, Populate
//	source/      - value sources for Populate
//	render/      - presentation of a matrix as text
//	cmd/polymat/ - demo command: populate A and B, print A + B
//
// Quick example:
//
//	a, _ := matrix.NewDynamicFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFixedFromRows([][]int{{10, 20}, {30, 40}})
//	sum, _ := a.Add(b) // [[11 22] [33 44]]
//
//	go get github.com/katalvlaran/polymat
package polymat
