// ABOUTME: Tests for the announcement drafting collaborator
// ABOUTME: Covers the disabled path and prompt construction

package announce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabled_ReturnsNotice(t *testing.T) {
	var a Announcer = Disabled{}

	got := a.Generate(context.Background(), "recordar pago de cuotas")
	assert.Equal(t, unconfiguredNotice, got)
}

func TestPrompt(t *testing.T) {
	assert.Equal(t,
		"Crea un anuncio para la comunidad sobre: recordar pago de cuotas",
		Prompt("recordar pago de cuotas"))
}
