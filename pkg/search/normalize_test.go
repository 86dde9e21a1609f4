package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cerveceria-api/pkg/search"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cañón", "canon"},
		{"LÚPULO Cascade", "lupulo cascade"},
		{"Cervecería Ándina", "cerveceria andina"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.Normalize(tc.in), "entrada %q", tc.in)
	}
}

func TestNormalizeMakesAccentedTermsComparable(t *testing.T) {
	// El caso de uso real: el término del usuario y el campo almacenado deben
	// comparar igual sin importar acentos ni mayúsculas.
	assert.Equal(t, search.Normalize("MALTA PILSEN"), search.Normalize("malta pilsen"))
	assert.Equal(t, search.Normalize("Bogotá"), search.Normalize("BOGOTA"))
}
