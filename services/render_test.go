package services

import (
	"strings"
	"testing"

	"orgchart/org"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree(t *testing.T) {
	ceo := org.NewEmployee("Ada", "CEO", 3)
	vp := org.NewEmployee("Craig", "VP Software", 2)
	dev := org.NewEmployee("Dana", "", 1)
	twin := org.NewEmployee("Dana", "", 1)

	ceo.AddSubordinate(vp)
	vp.AddSubordinate(dev)
	vp.AddSubordinate(twin)

	out, err := RenderTree(ceo)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Ada (CEO)", lines[0])
	assert.Contains(t, lines[1], "Craig (VP Software)")
	assert.True(t, strings.HasSuffix(lines[2], "Dana"))
	assert.True(t, strings.HasSuffix(lines[3], "Dana #2"))
}
