// SPDX-License-Identifier: MIT

// Package meshio reads and writes the files consumed by the segkit tools:
// triangle meshes in Wavefront OBJ, per-vertex label files, and gumlines.
//
// Formats:
//
//   - OBJ mesh: "v x y z" vertex lines and "f a b c" face lines. Face corners
//     may carry texture and normal references (a/b, a/b/c, a//c); only the
//     vertex index is used. Negative indices count back from the last vertex.
//     Other statements are ignored.
//   - Labels: a JSON object whose "labels" member is an array with one
//     non-negative integer per vertex. Other members are kept and written back
//     unchanged. Files without a .json extension hold one label per line.
//   - Gumline: an OBJ-like text file; every line starting with "v " defines
//     the next curve point. Points are taken in file order.
//
// Errors:
//
//   - ErrOpen:       the file cannot be opened or created.
//   - ErrFileFormat: malformed content, reported with path and line number.
package meshio
