// Package phonetic segments IPA transcriptions into phonetic symbols and
// translates them to ARPAbet.
//
// Symbols are compared as whole NFC-normalized strings, so a symbol carrying
// a tie bar or another combining mark is never split into its codepoints.
package phonetic

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Symbol is one phonetic unit in one notation, e.g. "aʊ" or "AW".
type Symbol string

// Table maps a source symbol to exactly one target symbol.
type Table map[string]string

// Reverse maps a target symbol to its acceptable source spellings,
// canonical spelling first.
type Reverse map[string][]string

// Inventory returns the set of target symbols of r.
func (r Reverse) Inventory() Inventory {
	inv := make(Inventory, len(r))
	for code := range r {
		inv[nfc(code)] = struct{}{}
	}
	return inv
}

// RuleSet rewrites a symbol into zero or more symbols of the same notation.
type RuleSet struct {
	Name  string
	Rules map[string][]string
}

// Inventory is a set of phone symbols.
type Inventory map[string]struct{}

// NewInventory builds an inventory from phones.
func NewInventory(phones ...string) Inventory {
	inv := make(Inventory, len(phones))
	for _, p := range phones {
		inv[nfc(p)] = struct{}{}
	}
	return inv
}

// Contains reports whether phone is in the inventory.
func (inv Inventory) Contains(phone string) bool {
	_, ok := inv[nfc(phone)]
	return ok
}

// Sorted returns the phones in byte order.
func (inv Inventory) Sorted() []string {
	out := make([]string, 0, len(inv))
	for p := range inv {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func nfc(s string) string {
	return norm.NFC.String(s)
}

// Strings converts a token sequence to plain strings.
func Strings(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}
