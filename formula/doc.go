// Package formula implements the small expression language SwissKnife,
// IntSwissKnife, Converter, and IntConverter nodes evaluate: arithmetic,
// comparison, bitwise, logical, and ternary operators over named variables,
// plus the handful of single/two-argument math functions GenApi formulas
// commonly reference (ABS, SGN, MIN, MAX, SQRT, TRUNC).
//
// The grammar is small and fixed, so the package hand-rolls a
// recursive-descent parser over a text/scanner tokenizer rather than
// carrying a parser dependency.
package formula
