package lcd

const (
	// SearchDataCycles is the length of SearchData.
	SearchDataCycles = 80
	// TransferCycles is the length of Transfer.
	TransferCycles = 172
	// HorizontalBlankCycles is the length of HorizontalBlank.
	HorizontalBlankCycles = 204
	// ScanlineCycles is the length of a whole scanline.
	ScanlineCycles = SearchDataCycles + TransferCycles + HorizontalBlankCycles
	// FrameCycles is the length of a whole frame.
	FrameCycles = ScanlineCycles * Lines

	// VisibleLines is the number of lines drawn to the screen. The
	// first line of VerticalBlank is VisibleLines.
	VisibleLines = 144
	// Lines is the total number of lines, VerticalBlank included.
	Lines = 154
)

// Scanline is the mode state machine of the LCD. Each line cycles
// through SearchData, Transfer and HorizontalBlank, until the last
// visible line, after which VerticalBlank lasts for 10 lines.
// Transitions depend only on the accumulated cycles.
type Scanline struct {
	// Mode is the current mode.
	Mode Mode
	// Line is the current line, from 0 to 153.
	Line uint8

	clock uint32
}

// Reset returns the machine to the start of line 0.
func (s *Scanline) Reset() {
	s.Mode = SearchData
	s.Line = 0
	s.clock = 0
}

// Accumulate adds elapsed cycles to the clock without transitioning.
func (s *Scanline) Accumulate(cycles uint32) {
	s.clock += cycles
}

// Next performs a single transition if enough cycles have been
// accumulated for the current mode, and reports whether it did. It is
// called until it returns false, so that no transition is lost when
// many cycles are accumulated at once.
func (s *Scanline) Next() bool {
	duration := s.duration()
	if s.clock < duration {
		return false
	}
	s.clock -= duration

	switch s.Mode {
	case SearchData:
		s.Mode = Transfer
	case Transfer:
		s.Mode = HorizontalBlank
	case HorizontalBlank:
		s.Line++
		if s.Line == VisibleLines {
			s.Mode = VerticalBlank
		} else {
			s.Mode = SearchData
		}
	case VerticalBlank:
		s.Line++
		if s.Line == Lines {
			s.Line = 0
			s.Mode = SearchData
		}
	}
	return true
}

func (s *Scanline) duration() uint32 {
	switch s.Mode {
	case SearchData:
		return SearchDataCycles
	case Transfer:
		return TransferCycles
	case HorizontalBlank:
		return HorizontalBlankCycles
	}
	return ScanlineCycles
}
