package bits

import "testing"

func TestBits(t *testing.T) {
	if !Test(uint8(0b1000_0000), 7) {
		t.Errorf("expected bit 7 to be set")
	}
	if Test(uint8(0b0111_1111), 7) {
		t.Errorf("expected bit 7 to be reset")
	}
	if v := Set(uint8(0), 3); v != 0b1000 {
		t.Errorf("expected 0x08, got 0x%02X", v)
	}
	if v := Reset(uint8(0xFF), 0); v != 0xFE {
		t.Errorf("expected 0xFE, got 0x%02X", v)
	}
	if v := Val(uint16(0x8000), 15); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if v := From(true, uint8(0x40)) | From(false, uint8(0x01)); v != 0x40 {
		t.Errorf("expected 0x40, got 0x%02X", v)
	}
}
