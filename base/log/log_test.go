package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	req := require.New(t)
	base := Log().WithField("listingId", "5")
	a := base.WithField("kind", "a")
	b := base.WithField("kind", "b")

	req.Equal([]interface{}{"listingId", "5"}, base.fields)
	req.Equal([]interface{}{"listingId", "5", "kind", "a"}, a.fields)
	req.Equal([]interface{}{"listingId", "5", "kind", "b"}, b.fields)
}

func TestSetup(t *testing.T) {
	req := require.New(t)
	req.NoError(Setup(true))
	Log().WithFields(Fields{"debug": true}).Debug("debug logger")
	req.NoError(Setup(false))
}
