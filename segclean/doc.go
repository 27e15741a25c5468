// SPDX-License-Identifier: MIT

// Package segclean removes small, spatially isolated label islands from a
// per-vertex labeling of a triangle mesh (for example tooth/gum labels of an
// intraoral scan).
//
// What:
//
//   - Extract partitions the vertices into maximal connected components in
//     which adjacent vertices share one label (a BFS flood fill constrained by
//     label equality). Every vertex lands in exactly one component.
//   - Caps derives, per label, cap = min(threshold, largest component size).
//   - A component is small iff its size is strictly below its label's cap,
//     so the largest component of every label always survives.
//   - Clean relabels each vertex of every small component to the label of
//     the nearest (Euclidean) vertex in the component's surrounding set: the
//     vertices adjacent to the component that carry another label.
//   - Run chains Extract and Clean and returns a Report.
//
// Guarantees:
//
//   - Labels are stored in a caller-owned side array indexed by vertex id;
//     the visited set used by Extract is owned by the call.
//   - Clean reads labels from a snapshot taken before the first write, so
//     relabeling one component never changes the surrounding set or the
//     nearest-neighbor label seen by another component in the same pass.
//   - A small component whose surrounding set is empty (it has no neighbor
//     with a different label) is counted but left untouched.
//   - The surrounding set is deduplicated in first-seen order; among equally
//     near candidates the first one wins.
//
// Errors:
//
//   - ErrGraphNil:         nil mesh.
//   - ErrLabelCount:       label slice length differs from the vertex count.
//   - ErrNoComponents:     the mesh has no vertices, so nothing can be cleaned.
//   - ErrInvalidComponent: a component references a vertex out of range.
//   - ErrOptionViolation:  invalid Option.
//
// Complexity:
//
//   - Extract: O(V + E) time, O(V) memory.
//   - Clean:   O(E + Σ |small component| · |surrounding set|).
package segclean
