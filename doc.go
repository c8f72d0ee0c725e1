// Package trigon is an in-memory triangle solver: hand it whatever sides
// and angles you know, and read back every other quantity on demand.
//
// 🚀 What is trigon?
//
//	A small, zero-I/O library that brings together:
//		• Solver: three sides, two sides + included angle, one side + angles
//		• Refusal of ambiguous (side-side-angle) and underdetermined input
//		• Lazy property cache: perimeter, area, heights, medians, inradius,
//		  circumradius, angles, sines, cosines, tangents
//		• Read-only accessors that never store, Cache* accessors that do
//
// ✨ Why choose trigon?
//
//   - Honest failures – sentinel errors and comma-ok reads, never panics
//   - Pay for what you read – nothing is derived until asked for
//   - Deterministic – closed-form formulas only, no iteration
//   - Shareable – read-only accessors are safe from many goroutines
//
// Under the hood:
//
//	triangle/ — Solve, Triangle, validators, options, classification
//	examples/ — runnable land-survey and roof-truss scenarios
//
// Quick ASCII example:
//
//	        C
//	       /\
//	    b /  \ a
//	     /    \
//	    A──────B
//	       c
//
//	sides [a, b, c] with angles [A, B, C], each angle opposite its side.
//
//	go get github.com/katalvlaran/trigon/triangle
package trigon
