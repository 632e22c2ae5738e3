// Package motion implements cursor motions over a buffer: a bounded
// char-class scanner, word and WORD motions built on it, paragraph
// boundary seeking, and simple line motions.
//
// Boundary-limited motions never fail with an error. They return the
// position where movement stopped together with a signed overshoot:
// zero when the requested count was fully satisfied, otherwise the
// number of unmet steps in the direction of travel.
package motion
