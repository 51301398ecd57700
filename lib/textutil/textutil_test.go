package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseSpace(t *testing.T) {
	require.Equal(t, "a b c", CollapseSpace("  a \t b \n\n c "))
	require.Equal(t, "", CollapseSpace(" \n\t "))
}

func TestContainsAnyFold(t *testing.T) {
	keywords := []string{"relay", "x", "athlon"}
	require.True(t, ContainsAnyFold("Men's 4x400 Relay", keywords))
	require.True(t, ContainsAnyFold("Decathlon", keywords))
	require.False(t, ContainsAnyFold("800 Meters", keywords))
}

func TestTitleCase(t *testing.T) {
	require.True(t, IsUpper("JANE DOE"))
	require.False(t, IsUpper("Jane Doe"))
	require.False(t, IsUpper("8000"))
	require.Equal(t, "Jane Doe", TitleCase("JANE DOE"))
}
