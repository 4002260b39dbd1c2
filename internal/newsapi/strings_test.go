package newsapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanString(t *testing.T) {
	require.Equal(t, "Tom & Jerry", cleanString("Tom &amp; Jerry"))
	require.Equal(t, "bold move", cleanString("<b>bold</b>\n\t move"))
	require.Equal(t, "", cleanString("   "))
}

func TestEmptyToNil(t *testing.T) {
	require.Nil(t, emptyToNil(""))
	require.Equal(t, "x", *emptyToNil("x"))
}
