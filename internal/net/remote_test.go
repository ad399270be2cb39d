package net

import (
	"image/color"
	"net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

func TestRemoteRendererPreviews(t *testing.T) {
	var sent []ServerMessage
	r := &RemoteRenderer{
		Target: TargetScreen, Width: 256, Height: 256, StickerSize: 24,
		send: func(m ServerMessage) error { sent = append(sent, m); return nil },
	}
	p, err := pad.New(r, pad.Options{})
	require.NoError(t, err)

	require.NoError(t, p.Dispatch(pad.PointerMove{At: state.Point{X: 30, Y: 40}}))
	require.Len(t, sent, 1)
	ops := sent[0].Ops
	require.Len(t, ops, 2)
	assert.Equal(t, Op{Op: "circle", X: 30, Y: 40, R: 2, Width: 1, Color: "#000000"}, ops[1])

	require.NoError(t, p.Dispatch(pad.SelectSticker{Glyph: "🙂"}))
	ops = sent[len(sent)-1].Ops
	require.Len(t, ops, 2)
	assert.Equal(t, "text", ops[1].Op)
	assert.Equal(t, float32(0.5), ops[1].Alpha)
	assert.Equal(t, float32(24), ops[1].Size)

	require.NoError(t, p.Dispatch(pad.PointerLeave{}))
	assert.Len(t, sent[len(sent)-1].Ops, 1)
}

func TestRemoteRendererScalesStickers(t *testing.T) {
	var got ServerMessage
	r := &RemoteRenderer{
		Target: TargetExport, Width: 256, Height: 256, Scale: 4, StickerSize: 24,
		send: func(m ServerMessage) error { got = m; return nil },
	}
	h := state.NewHistory()
	h.PlaceSticker("⭐", state.Point{X: 10, Y: 20})
	h.BeginStroke(state.Point{X: 1, Y: 1}, 3, color.NRGBA{B: 255, A: 255})

	require.NoError(t, browserPNG{r: r}.Export(h.Snapshot()))
	require.Len(t, got.Ops, 3)
	assert.Equal(t, Op{Op: "text", X: 40, Y: 80, Glyph: "⭐", Size: 96, Alpha: 1}, got.Ops[1])
	assert.Equal(t, [][2]float32{{4, 4}}, got.Ops[2].Points)
	assert.Equal(t, "#0000ff", got.Ops[2].Color)
	assert.Equal(t, 1024, got.Width)
}

func TestPeerFromEntry(t *testing.T) {
	_, ok := peerFromEntry(&mdns.ServiceEntry{Port: 8888})
	assert.False(t, ok, "no IPv4 address")

	p, ok := peerFromEntry(&mdns.ServiceEntry{
		Name:   "laptop._drawpad._tcp.local.",
		AddrV4: net.IPv4(192, 168, 1, 7),
		Port:   8888,
	})
	require.True(t, ok)
	assert.Equal(t, "192.168.1.7:8888", p.Addr)
	assert.Equal(t, "http://192.168.1.7:8888/", p.URL())
}
