// Package buffer provides the text buffer and position model consumed
// by motions, the range algebra, and the dispatcher.
//
// Positions are character offsets into a linear rune sequence. The
// buffer maintains a line start index for offset/line/column
// derivation. Cursors are live Locators: the algebra dereferences them
// once and only ever returns plain offsets.
package buffer
