package cstr

import (
	"bytes"
	"testing"
)

func TestBytes(t *testing.T) {
	got := Bytes("abc")
	if !bytes.Equal(got, []byte{'a', 'b', 'c', 0}) {
		t.Errorf("Bytes(abc) = %v, want abc with trailing NUL", got)
	}
	if got := Bytes(""); !bytes.Equal(got, []byte{0}) {
		t.Errorf("Bytes(empty) = %v, want a single NUL", got)
	}
}

func TestPtr(t *testing.T) {
	p := Ptr("x")
	if p == nil || *p != 'x' {
		t.Fatalf("Ptr(x) does not point at the first byte")
	}
}

func TestPtrOrNil(t *testing.T) {
	if p := PtrOrNil(""); p != nil {
		t.Errorf("PtrOrNil(empty) = %v, want nil", p)
	}
	if p := PtrOrNil("fmt"); p == nil || *p != 'f' {
		t.Errorf("PtrOrNil(fmt) does not point at the first byte")
	}
}

func TestSlice(t *testing.T) {
	ptrs, backing := Slice([]string{"lo", "hi"})
	if len(ptrs) != 2 || len(backing) != 2 {
		t.Fatalf("Slice lengths = (%d, %d), want (2, 2)", len(ptrs), len(backing))
	}
	if *ptrs[0] != 'l' || *ptrs[1] != 'h' {
		t.Errorf("pointers do not address the string starts")
	}
	if backing[1][2] != 0 {
		t.Errorf("backing strings are not NUL-terminated")
	}

	ptrs, backing = Slice(nil)
	if ptrs != nil || backing != nil {
		t.Errorf("Slice(nil) = (%v, %v), want (nil, nil)", ptrs, backing)
	}
}
