// Package sgf parses and serializes game records in the Smart Game
// Format, file format version FF[4].
//
// # Parsing
//
// [Parse] turns SGF text into a [Collection] of game trees. Parsing is
// strict: the first error aborts the whole parse, and every error is an
// [Error] carrying a machine-readable [Code] and the byte offset of the
// fault. Property values are typed against the FF[4] property table (see
// [LookupProperty]); identifiers the table does not know are preserved
// verbatim as [Unknown] values and round-trip untouched.
//
// The game is taken from the root GM property. Go (GM[1], the default)
// gets full coordinate handling: letter-pair points bounded by the board
// size from SZ, pass moves, and compressed point lists. Every other game
// keeps its Point, Move and Stone values as [Opaque] strings.
//
// # Serializing
//
// [Serialize] renders a collection back to SGF text with minimal
// escaping. Serializing a parsed collection and parsing the result
// yields an equal collection.
//
// # Building
//
// Parsed trees are treated as immutable. To construct a record
// programmatically, use [NewBuilder]; [Builder.Finish] validates the
// whole collection with the same checks the parser runs.
//
// # Linting
//
// [Lint] reports advisory FF[4] usage problems, such as two moves in
// one node, that strict parsing deliberately accepts.
package sgf
