// Package span implements the range-type algebra that turns two raw
// buffer positions into the concrete text span an operator acts on.
//
// A span carries a type (exclusive, inclusive, line, block) selecting
// how it expands, contracts, and describes itself. Operators resolve a
// motion's span with Resolve and edit the resulting half-open range.
package span
