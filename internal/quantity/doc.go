// Package quantity parses and formats the numeric amounts found in recipe
// text.
//
// Parse accepts integers, decimals, simple fractions, mixed numbers, and the
// unicode vulgar-fraction glyphs cooks actually type. Format renders a value
// back using the nearest culinary fraction glyph when one is within tolerance,
// falling back to a trimmed two-decimal number otherwise.
//
// Neither function returns an error: a token that does not parse simply reports
// false, and callers decide how to fold the text back into a description.
package quantity
