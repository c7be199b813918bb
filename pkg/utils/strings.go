package utils

import "strings"

// DigitsOnly remove tudo que não for dígito. Usado para normalizar CPF/CNPJ
// que chegam com ou sem pontuação.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
