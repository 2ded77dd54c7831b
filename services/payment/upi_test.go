package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLink(t *testing.T) {
	g := NewUPIGenerator("merchant@upi", "BREW CAFE", zap.NewNop())

	link := g.Link(300)
	assert.Contains(t, link, "upi://pay?")
	assert.Contains(t, link, "pa=merchant%40upi")
	assert.Contains(t, link, "am=300")
	assert.Contains(t, link, "cu=INR")
}

func TestRender(t *testing.T) {
	g := NewUPIGenerator("merchant@upi", "BREW CAFE", zap.NewNop())

	t.Run("positive total renders a QR", func(t *testing.T) {
		artifact, err := g.Render(300)
		require.NoError(t, err)
		assert.Equal(t, 300, artifact.Total)
		assert.Equal(t, g.Link(300), artifact.UPILink)
		assert.NotEmpty(t, artifact.PNG)
	})

	t.Run("zero or negative total is rejected", func(t *testing.T) {
		_, err := g.Render(0)
		assert.Error(t, err)
		_, err = g.Render(-5)
		assert.Error(t, err)
	})
}
