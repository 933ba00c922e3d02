package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("collapses DCPET aliases", func(t *testing.T) {
		assert.Equal(t, "DCPET", Normalize("dcet"))
		assert.Equal(t, "DCPET", Normalize(" DCPET "))
		assert.Equal(t, "DCPET", Normalize("DCPET"))
	})

	t.Run("collapses DOMT aliases", func(t *testing.T) {
		for _, raw := range []string{"DOM-LOMT", "domt", "DOMT-LOMT", "domtlomt"} {
			assert.Equal(t, "DOMT", Normalize(raw), raw)
		}
	})

	t.Run("passes unknown codes through uppercased", func(t *testing.T) {
		assert.Equal(t, "DIT", Normalize("dit"))
		assert.Equal(t, "BSCS", Normalize("  bscs"))
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
	})
}

func TestSplitField(t *testing.T) {
	t.Run("splits on slash and comma", func(t *testing.T) {
		assert.Equal(t, []string{"DIT", "DCPET", "DEET"}, SplitField("DIT/dcet, DEET"))
	})

	t.Run("drops empty tokens", func(t *testing.T) {
		assert.Equal(t, []string{"DIT"}, SplitField("DIT//, "))
	})

	t.Run("empty field yields no tokens", func(t *testing.T) {
		assert.Empty(t, SplitField(""))
	})
}
