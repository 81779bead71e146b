package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCountries_TrimsSpacesAroundCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"se", "no"}, parseCountries(" se , no"))
	assert.Nil(t, parseCountries(""))
}
