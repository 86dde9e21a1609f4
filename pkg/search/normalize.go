// Package search normaliza texto para búsquedas sin distinguir mayúsculas ni
// acentos (ej. "Cañón" y "canon" comparan igual).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve el texto en minúsculas y sin marcas diacríticas.
// La cadena de transformadores se construye por llamada: no es segura para uso concurrente.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
