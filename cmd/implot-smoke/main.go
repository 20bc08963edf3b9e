// Command implot-smoke checks that the native plotting library can be
// loaded on this machine: it resolves the library, binds every entry
// point and unloads again, without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/implot"
	"github.com/gogpu/implot/driver/ffi"
)

func main() {
	var (
		libPath = flag.String("lib", "", "native library path (overrides "+ffi.LibraryPathEnv+")")
		verbose = flag.Bool("v", false, "log driver activity")
	)
	flag.Parse()

	if *verbose {
		implot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *libPath != "" {
		os.Setenv(ffi.LibraryPathEnv, *libPath)
	}

	fmt.Printf("registered drivers: %v\n", implot.Drivers())

	d := ffi.New()
	if err := d.Init(); err != nil {
		log.Fatalf("load failed: %v", err)
	}
	fmt.Printf("native library loaded: %s\n", d.LibraryPath())

	if err := d.Close(); err != nil {
		log.Fatalf("unload failed: %v", err)
	}
	fmt.Println("smoke test passed")
}
