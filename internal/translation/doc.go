// Package translation provides the French to English phrase table used to
// translate documentation. A table is an ordered list of phrase pairs applied
// one after another with case-insensitive literal matching, so the order of
// the pairs is part of the result.
package translation
