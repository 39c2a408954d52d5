package web

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

func frame(number uint64, fill uint8) ppu.Frame {
	f := ppu.Frame{Number: number}
	f.Registers[0] = 0x91
	for i := range f.VRAM {
		f.VRAM[i] = fill
	}
	f.Hash = xxhash.Sum64(f.VRAM[:]) ^ uint64(fill)
	return f
}

func decode(t *testing.T, data []byte) []byte {
	t.Helper()
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	require.NoError(t, err)
	return out
}

func TestEncoder(t *testing.T) {
	e := newEncoder(99)
	assert.Equal(t, brotli.BestCompression, e.quality)

	// a new frame is sent in full
	messages, err := e.encode(frame(1, 0xAA))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, Frame, messages[0][0])
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(messages[0][1:]))

	payload := decode(t, messages[0][3:])
	require.Len(t, payload, 12+0x2000+0xA0)
	assert.Equal(t, uint8(0x91), payload[0])
	assert.Equal(t, uint8(0xAA), payload[12])

	// identical frames are skipped
	for i := uint64(2); i < 5; i++ {
		messages, err = e.encode(frame(i, 0xAA))
		require.NoError(t, err)
		assert.Empty(t, messages)
	}

	// the skip count precedes the next distinct frame
	messages, err = e.encode(frame(5, 0xBB))
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, []byte{FrameSkip, 3, 0, 0, 0}, messages[0])
	assert.Equal(t, Frame, messages[1][0])
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(messages[1][1:]))

	// a cached frame is sent as its index
	messages, err = e.encode(frame(6, 0xAA))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{FrameCache, 0, 0}}, messages)
}

func TestEncoder_Quality(t *testing.T) {
	assert.Equal(t, brotli.BestSpeed, newEncoder(-3).quality)
	assert.Equal(t, 5, newEncoder(5).quality)
}

func TestCache(t *testing.T) {
	c := newCache(2)
	assert.Equal(t, -1, c.index(0))

	assert.Equal(t, 0, c.add(10, []byte{1}))
	assert.Equal(t, 1, c.add(20, []byte{2}))
	assert.Equal(t, 1, c.index(20))

	// the oldest entry is evicted
	assert.Equal(t, 0, c.add(30, []byte{3}))
	assert.Equal(t, -1, c.index(10))
	assert.Equal(t, 0, c.index(30))
}

func TestHub(t *testing.T) {
	h := NewHub(4, log.NewNullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	server := httptest.NewServer(h)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte{ClientInfo, 1}, msg)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)

	frames := make(chan ppu.Frame, 1)
	frames <- frame(1, 0x11)
	close(frames)
	go h.Consume(frames)

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, Frame, msg[0])
	assert.Equal(t, uint8(0x11), decode(t, msg[3:])[12])

	assert.NoError(t, h.Close())
	assert.Equal(t, 0, h.Clients())
}

func TestHub_Disconnect(t *testing.T) {
	h := NewHub(0, log.NewNullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	server := httptest.NewServer(h)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 10*time.Millisecond)
}
