// Package matrix offers small generic 2-D numeric matrices behind one contract.
//
// The matrix package provides:
//
//   - Matrix[T], the shared contract: shape queries, bounds-checked At/Set,
//     NewSameKind, Populate from an injected Source and element-wise Add.
//   - Dynamic[T], whose shape is chosen at construction and which supports
//     deep copy (Copy, CopyFrom) and ownership transfer (Move, MoveFrom).
//   - Fixed[T], whose shape is part of its identity and whose storage is
//     allocated once and never resized.
//
// Both variants keep a single contiguous row-major buffer (offset = i*cols + j).
// Errors are sentinels matched with errors.Is; nothing panics on user input.
//
// Addition is written once over the contract. Under the default shape policy
// any two variants with equal shapes can be added and the result takes the
// receiver's variant; WithStrictPolicy additionally requires identical variants.
//
// See the examples in this package for usage patterns.
package matrix
