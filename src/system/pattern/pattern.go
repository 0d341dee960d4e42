// Package pattern holds the aⁿbⁿ string utilities. They exist to expose
// the provably recursive part of the grammar machinery for validation and
// are never invoked by the derivation driver itself.
package pattern

import (
	"strings"

	"github.com/voodooEntity/minigram/src/system/grammar"
)

// AN_BN is the only pattern name currently supported
const AN_BN = "an_bn"

// GenerateAnBn produces n tokens "a" followed by n tokens "b", space
// separated. n=0 yields the empty string.
func GenerateAnBn(n int) string {
	if n == 0 {
		return ""
	}
	tokens := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, "a")
	}
	for i := 0; i < n; i++ {
		tokens = append(tokens, "b")
	}
	return strings.Join(tokens, " ")
}

// IsAnBnPattern tells if s is exactly (n copies of "a")(n copies of "b")
// for some shared n. The empty string is the ε case and accepted.
func IsAnBnPattern(s string) bool {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return true
	}

	n := len(tokens) / 2
	if len(tokens) != 2*n {
		return false
	}
	for i := 0; i < n; i++ {
		if tokens[i] != "a" {
			return false
		}
	}
	for i := n; i < 2*n; i++ {
		if tokens[i] != "b" {
			return false
		}
	}
	return true
}

// Generate renders the named pattern at size n, unsupported names fail
// with ErrInvalidOperation
func Generate(name string, n int) (string, error) {
	switch name {
	case AN_BN:
		return GenerateAnBn(n), nil
	}
	return "", grammar.ErrInvalidOperation
}

// CanGenerate tells if the grammar can produce the named pattern at size n
func CanGenerate(name string, n int) bool {
	_, err := Generate(name, n)
	return err == nil
}
