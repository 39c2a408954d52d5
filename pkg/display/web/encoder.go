package web

import (
	"bytes"
	"encoding/binary"

	"github.com/andybalholm/brotli"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

// CacheSize is the number of frames held by the frame cache.
const CacheSize = 64

// encoder turns frames into client messages.
type encoder struct {
	quality int
	cache   *cache

	sent    bool
	last    uint64
	skipped uint32
}

func newEncoder(quality int) *encoder {
	return &encoder{
		quality: utils.Clamp(brotli.BestSpeed, quality, brotli.BestCompression),
		cache:   newCache(CacheSize),
	}
}

// encode returns the messages for f. A frame identical to the previous
// one produces no message, and is accounted for by a FrameSkip message
// ahead of the next distinct frame.
func (e *encoder) encode(f ppu.Frame) ([][]byte, error) {
	if e.sent && f.Hash == e.last {
		e.skipped++
		return nil, nil
	}
	e.sent, e.last = true, f.Hash

	var messages [][]byte
	if e.skipped > 0 {
		messages = append(messages, binary.LittleEndian.AppendUint32([]byte{FrameSkip}, e.skipped))
		e.skipped = 0
	}

	// does this frame exist in the cache?
	if idx := e.cache.index(f.Hash); idx != -1 {
		return append(messages, binary.LittleEndian.AppendUint16([]byte{FrameCache}, uint16(idx))), nil
	}

	data, err := e.compress(f)
	if err != nil {
		return messages, err
	}
	idx := e.cache.add(f.Hash, data)
	msg := binary.LittleEndian.AppendUint16([]byte{Frame}, uint16(idx))
	return append(messages, append(msg, data...)), nil
}

func (e *encoder) compress(f ppu.Frame) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := brotli.NewWriterLevel(buf, e.quality)
	for _, b := range [][]byte{f.Registers[:], f.VRAM[:], f.OAM[:]} {
		if _, err := w.Write(b); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
