// Package planar is the core geometry kernel for planar regions bounded
// by circular loops of line segments and circular arcs.
//
// A BoundaryLoop is a persistent, mutable ring of Elements (segments and
// arcs) stored under stable node ids rather than array indices, so
// a cursor survives insertion and removal elsewhere on the same loop. A
// BVH accelerates element-vs-element intersection queries between two
// loops. Union and Intersection classify how two loops' regions combine
// and, where the boundaries actually cross, extract the resulting
// loop(s) by walking the combined boundary. Body composes a positive
// outer loop with zero or more negative holes into a filled region, and
// BodySet folds many bodies together into as few bodies as possible.
//
// The package does not rasterize, render, or otherwise produce pixels;
// it only maintains and combines exact planar boundaries. Distances and
// angles are compared against DistanceEpsilon and NumericZero rather
// than exact equality throughout, since curve parameters and
// intersection points are floating point.
package planar
