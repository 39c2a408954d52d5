package alu

import (
	"errors"
	"testing"
)

func TestAdd_Wrapping(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if r := Add(uint8(a), uint8(b)); r.Value != uint8(a)+uint8(b) {
				t.Fatalf("add(0x%02X, 0x%02X): expected 0x%02X, got 0x%02X", a, b, uint8(a)+uint8(b), r.Value)
			}
		}
	}
}

func TestSub_Wrapping(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			r := Sub(uint8(a), uint8(b))
			if r.Value != uint8(a)-uint8(b) {
				t.Fatalf("sub(0x%02X, 0x%02X): expected 0x%02X, got 0x%02X", a, b, uint8(a)-uint8(b), r.Value)
			}
			if complement := Add(uint8(a), ^uint8(b)+1); complement.Value != r.Value {
				t.Fatalf("sub(0x%02X, 0x%02X) = 0x%02X, add of complement = 0x%02X", a, b, r.Value, complement.Value)
			}
			if r.Flags.Carry != (a < b) {
				t.Fatalf("sub(0x%02X, 0x%02X): carry %t", a, b, r.Flags.Carry)
			}
		}
	}
}

func TestAdd_Flags(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint8
		expected Result[uint8]
	}{
		{"half carry", 0x08, 0x08, Result[uint8]{0x10, Flags{HalfCarry: true}}},
		{"carry", 0x80, 0x80, Result[uint8]{0x00, Flags{Zero: true, Carry: true}}},
		{"both", 0xFF, 0x01, Result[uint8]{0x00, Flags{Zero: true, HalfCarry: true, Carry: true}}},
		{"none", 0x12, 0x21, Result[uint8]{0x33, Flags{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := Add(tt.a, tt.b); r != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, r)
			}
		})
	}
}

func TestWithCarry(t *testing.T) {
	if r := AddWithCarry(0x0F, 0x00, 1); r.Value != 0x10 || !r.Flags.HalfCarry || r.Flags.Carry {
		t.Errorf("adc: unexpected %+v", r)
	}
	if r := AddWithCarry(0xFF, 0x00, 1); r.Value != 0x00 || !r.Flags.Zero || !r.Flags.Carry {
		t.Errorf("adc: unexpected %+v", r)
	}
	if r := SubWithCarry(0x10, 0x00, 1); r.Value != 0x0F || !r.Flags.HalfCarry || r.Flags.Carry || !r.Flags.Subtract {
		t.Errorf("sbc: unexpected %+v", r)
	}
	if r := SubWithCarry(0x00, 0xFF, 1); r.Value != 0x00 || !r.Flags.Carry || !r.Flags.Zero {
		t.Errorf("sbc: unexpected %+v", r)
	}
}

func TestInvalidArgument(t *testing.T) {
	expectPanic := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			err, ok := r.(error)
			var invalid InvalidArgumentError
			if !ok || !errors.As(err, &invalid) {
				t.Errorf("expected InvalidArgumentError, got %v", r)
			}
		}()
		fn()
	}
	t.Run("carry", func(t *testing.T) { expectPanic(t, func() { AddWithCarry(1, 1, 2) }) })
	t.Run("bit", func(t *testing.T) { expectPanic(t, func() { TestBit(0, 8) }) })
	t.Run("set", func(t *testing.T) { expectPanic(t, func() { SetBit(0, 9) }) })
}

func TestIncDec(t *testing.T) {
	if r := Inc(0x0F); r.Value != 0x10 || !r.Flags.HalfCarry || r.Flags.Zero {
		t.Errorf("inc: unexpected %+v", r)
	}
	if r := Inc(0xFF); r.Value != 0x00 || !r.Flags.Zero || r.Flags.Carry {
		t.Errorf("inc: unexpected %+v", r)
	}
	if r := Dec(0x00); r.Value != 0xFF || r.Flags.Zero || !r.Flags.HalfCarry || !r.Flags.Subtract {
		t.Errorf("dec: unexpected %+v", r)
	}
	if r := Dec(0x01); r.Value != 0x00 || !r.Flags.Zero {
		t.Errorf("dec: unexpected %+v", r)
	}
}

func TestAdd16(t *testing.T) {
	if r := Add16(0x0FFF, 0x0001); r.Value != 0x1000 || !r.Flags.HalfCarry || r.Flags.Carry {
		t.Errorf("unexpected %+v", r)
	}
	if r := Add16(0xFFFF, 0x0001); r.Value != 0x0000 || !r.Flags.Carry {
		t.Errorf("unexpected %+v", r)
	}
}

func TestAddSigned(t *testing.T) {
	tests := []struct {
		a        uint16
		b        uint8
		expected Result[uint16]
	}{
		{0xFFF8, 0x02, Result[uint16]{0xFFFA, Flags{}}},
		{0x0000, 0xFF, Result[uint16]{0xFFFF, Flags{}}},
		{0x00FF, 0x01, Result[uint16]{0x0100, Flags{HalfCarry: true, Carry: true}}},
		{0x0001, 0xFF, Result[uint16]{0x0000, Flags{HalfCarry: true, Carry: true}}},
		{0x1234, 0x80, Result[uint16]{0x11B4, Flags{}}},
	}
	for _, tt := range tests {
		if r := AddSigned(tt.a, tt.b); r != tt.expected {
			t.Errorf("AddSigned(0x%04X, 0x%02X): expected %+v, got %+v", tt.a, tt.b, tt.expected, r)
		}
	}
}

func TestRotate(t *testing.T) {
	if r := RotateLeft(0x85); r.Value != 0x0B || !r.Flags.Carry {
		t.Errorf("rlc: unexpected %+v", r)
	}
	if r := RotateRight(0x01); r.Value != 0x80 || !r.Flags.Carry {
		t.Errorf("rrc: unexpected %+v", r)
	}
	if r := RotateLeftThroughCarry(0x80, 0); r.Value != 0x00 || !r.Flags.Carry || !r.Flags.Zero {
		t.Errorf("rl: unexpected %+v", r)
	}
	if r := RotateRightThroughCarry(0x00, 1); r.Value != 0x80 || r.Flags.Carry {
		t.Errorf("rr: unexpected %+v", r)
	}
	if r := ShiftRightArithmetic(0x81); r.Value != 0xC0 || !r.Flags.Carry {
		t.Errorf("sra: unexpected %+v", r)
	}
	if r := ShiftRightLogical(0x81); r.Value != 0x40 || !r.Flags.Carry {
		t.Errorf("srl: unexpected %+v", r)
	}
	if r := ShiftLeft(0xFF); r.Value != 0xFE || !r.Flags.Carry {
		t.Errorf("sla: unexpected %+v", r)
	}
	if r := Swap(0xF1); r.Value != 0x1F || r.Flags.Carry {
		t.Errorf("swap: unexpected %+v", r)
	}
}

func TestBits(t *testing.T) {
	if f := TestBit(0x80, 7); f.Zero || !f.HalfCarry {
		t.Errorf("bit: unexpected %+v", f)
	}
	if f := TestBit(0x7F, 7); !f.Zero {
		t.Errorf("bit: unexpected %+v", f)
	}
	if v := SetBit(0x00, 4); v != 0x10 {
		t.Errorf("set: expected 0x10, got 0x%02X", v)
	}
	if v := ResetBit(0xFF, 0); v != 0xFE {
		t.Errorf("res: expected 0xFE, got 0x%02X", v)
	}
}

func TestDecimalAdjust(t *testing.T) {
	// 0x15 + 0x27 = 0x3C, adjusted to 0x42
	sum := Add(0x15, 0x27)
	if r := DecimalAdjust(sum.Value, sum.Flags); r.Value != 0x42 || r.Flags.Carry {
		t.Errorf("daa after add: unexpected %+v", r)
	}
	// 0x42 - 0x15 = 0x2D, adjusted to 0x27
	diff := Sub(0x42, 0x15)
	if r := DecimalAdjust(diff.Value, diff.Flags); r.Value != 0x27 || !r.Flags.Subtract {
		t.Errorf("daa after sub: unexpected %+v", r)
	}
	// 0x99 + 0x01 = 0x9A, adjusted to 0x00 with carry
	sum = Add(0x99, 0x01)
	if r := DecimalAdjust(sum.Value, sum.Flags); r.Value != 0x00 || !r.Flags.Carry || !r.Flags.Zero {
		t.Errorf("daa overflow: unexpected %+v", r)
	}
}

func TestFlags_Byte(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := FromByte(uint8(b)).Byte(); got != uint8(b)&0xF0 {
			t.Fatalf("0x%02X: expected 0x%02X, got 0x%02X", b, uint8(b)&0xF0, got)
		}
	}
}
