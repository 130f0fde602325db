package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"kind:invalid_identifier", "path:/listings"}, parseTag([]string{"kind", "invalid_identifier", "path", "/listings"}))
	req.Panics(func() { parseTag([]string{"dangling"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	req := require.New(t)
	m := New("listing", WithoutPodName())

	req.NotPanics(func() {
		m.BumpSum("resolution.err", 1, "kind", "contract_read_failure")
		m.BumpAvg("queue", 2)
		m.BumpHistogram("size", 3)
		m.BumpTime("get_listing_details.time").End()
	})
	_, isLog := ddClients[0].(*LogClient)
	req.True(isLog)
}

func TestBumpRecoversFromBadTags(t *testing.T) {
	m := New("listing")
	require.NotPanics(t, func() {
		m.BumpSum("resolution.err", 1, "odd")
	})
}
