package web

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	// Frame carries a compressed frame: a little-endian cache index
	// followed by the brotli encoded LCD registers, VRAM and OAM.
	Frame Type = iota
	// FrameSkip carries the little-endian number of frames skipped
	// because they were identical to the previous one.
	FrameSkip
	// FrameCache carries the little-endian cache index of a frame the
	// client has already received.
	FrameCache
	// ClientInfo carries the ID assigned to the client.
	ClientInfo
)
