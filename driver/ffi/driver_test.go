package ffi

import (
	"errors"
	"image/color"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/implot"
)

func TestDriverRegistered(t *testing.T) {
	if !implot.IsDriverRegistered(implot.DriverFFI) {
		t.Fatal("importing the package did not register the ffi driver")
	}
	d, ok := any(New()).(implot.Driver)
	if !ok {
		t.Fatal("Driver does not implement implot.Driver")
	}
	if d.Name() != implot.DriverFFI {
		t.Errorf("Name() = %q, want %q", d.Name(), implot.DriverFFI)
	}
}

func TestSymbolTable(t *testing.T) {
	d := New()
	syms := d.symbols()
	if len(syms) == 0 {
		t.Fatal("empty symbol table")
	}

	seen := make(map[string]bool, len(syms))
	for _, s := range syms {
		if !strings.HasPrefix(s.name, "ImPlot_") {
			t.Errorf("symbol %q lacks the ImPlot_ prefix", s.name)
		}
		if seen[s.name] {
			t.Errorf("symbol %q listed twice", s.name)
		}
		seen[s.name] = true

		// Every entry must bind to a func pointer for RegisterFunc.
		v := reflect.ValueOf(s.fptr)
		if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Func {
			t.Errorf("symbol %q binds to %T, want pointer to func", s.name, s.fptr)
		}
	}
}

func TestInitMissingLibrary(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/nonexistent/libcimplot-test.so")

	d := New()
	err := d.Init()
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("Init() error = %v, want ErrLibraryNotFound", err)
	}
	if d.loaded {
		t.Error("driver marked loaded after failed Init")
	}
	if got := d.LibraryPath(); got != "" {
		t.Errorf("LibraryPath() = %q after failed Init, want empty", got)
	}
}

func TestInitTwice(t *testing.T) {
	d := New()
	d.loaded = true

	if err := d.Init(); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("second Init() error = %v, want ErrAlreadyLoaded", err)
	}
}

func TestCloseWithoutInit(t *testing.T) {
	d := New()
	if err := d.Close(); err != nil {
		t.Fatalf("Close() on unloaded driver = %v, want nil", err)
	}
}

func TestCandidatePaths(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	def := candidatePaths()
	if len(def) == 0 {
		t.Fatal("no default library names for this platform")
	}
	for _, name := range def {
		if !strings.Contains(name, "cimplot") {
			t.Errorf("default name %q does not reference cimplot", name)
		}
	}

	t.Setenv(LibraryPathEnv, "/opt/plot/libcimplot.so")
	got := candidatePaths()
	if len(got) != 1 || got[0] != "/opt/plot/libcimplot.so" {
		t.Errorf("candidatePaths() with override = %v, want the override alone", got)
	}
}

func TestSetLogger(t *testing.T) {
	d := New()
	if d.log() != implot.Logger() {
		t.Error("default driver logger is not the package logger")
	}

	custom := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	d.SetLogger(custom)
	if d.log() != custom {
		t.Error("SetLogger did not take effect")
	}

	d.SetLogger(nil)
	if d.log() != implot.Logger() {
		t.Error("SetLogger(nil) did not restore the package logger")
	}
}

func TestCompact(t *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5, 6, 7}

	contig, err := implot.Adapt(vals, 0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	got := compact(contig)
	if len(got) != 4 || &got[0] != &vals[0] {
		t.Error("contiguous view was copied")
	}

	strided, err := implot.Adapt(vals, 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	got = compact(strided)
	want := []float64{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("compact() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("compact()[%d] = %g, want %g", i, got[i], want[i])
		}
	}
	if &got[0] == &vals[1] {
		t.Error("strided view was not copied")
	}
}

func TestPairMatchingStrides(t *testing.T) {
	// Interleaved x,y pairs share one buffer and one stride.
	buf := []float64{0, 10, 1, 11, 2, 12}
	xs, err := implot.Adapt(buf, 0, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	ys, err := implot.Adapt(buf, 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	xp, yp, n, stride := pair(xs, ys)
	if n != 3 {
		t.Fatalf("pair() count = %d, want 3", n)
	}
	if stride != 16 {
		t.Errorf("pair() stride = %d bytes, want 16", stride)
	}
	if xp != &buf[0] || yp != &buf[1] {
		t.Error("matching strides should pass pointers through uncopied")
	}
}

func TestPairMixedStrides(t *testing.T) {
	xbuf := []float64{0, 99, 1, 99, 2, 99}
	ybuf := []float64{10, 11, 12}
	xs, err := implot.Adapt(xbuf, 0, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	ys, err := implot.AdaptValues(ybuf)
	if err != nil {
		t.Fatal(err)
	}

	xp, yp, n, stride := pair(xs, ys)
	if n != 3 {
		t.Fatalf("pair() count = %d, want 3", n)
	}
	if stride != 8 {
		t.Errorf("pair() stride = %d bytes, want 8 after compaction", stride)
	}
	if xp == &xbuf[0] {
		t.Error("strided xs should have been compacted")
	}
	if yp == nil || *yp != 10 {
		t.Error("ys values lost in compaction")
	}
	if *xp != 0 {
		t.Errorf("compacted xs starts at %g, want 0", *xp)
	}
}

func TestPairEmpty(t *testing.T) {
	xs, err := implot.AdaptValues([]float64{})
	if err != nil {
		t.Fatal(err)
	}
	ys, err := implot.AdaptValues([]float64{1})
	if err != nil {
		t.Fatal(err)
	}

	xp, yp, n, _ := pair(xs, ys)
	if n != 0 || xp != nil || yp != nil {
		t.Errorf("pair() with empty view = (%v, %v, %d), want nils and zero", xp, yp, n)
	}
}

func TestPackABGR(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want uint32
	}{
		{color.RGBA{R: 255, A: 255}, 0xFF0000FF},
		{color.RGBA{G: 255, A: 255}, 0xFF00FF00},
		{color.RGBA{B: 255, A: 255}, 0xFFFF0000},
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0xFFFFFFFF},
		{color.RGBA{}, 0},
		{color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, 0x78563412},
	}
	for _, tt := range tests {
		if got := packABGR(tt.c); got != tt.want {
			t.Errorf("packABGR(%v) = %#08x, want %#08x", tt.c, got, tt.want)
		}
	}
}
