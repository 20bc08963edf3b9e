package implot

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default driver resolution (ffi when imported)
//	ctx, err := implot.CreateContext(host)
//
//	// Custom driver (dependency injection)
//	ctx, err := implot.CreateContext(host, implot.WithDriver(myDriver))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	driver     Driver
	driverName string
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		driver: nil, // resolved through the registry if nil
	}
}

// WithDriver sets the driver instance the context will own, bypassing
// the registry. Use this for dependency injection of test or custom
// drivers.
//
// Example:
//
//	ctx, err := implot.CreateContext(host, implot.WithDriver(recorder))
func WithDriver(d Driver) ContextOption {
	return func(o *contextOptions) {
		o.driver = d
	}
}

// WithDriverName selects a registered driver by name instead of the
// default priority order.
//
// Example:
//
//	ctx, err := implot.CreateContext(host, implot.WithDriverName(implot.DriverFFI))
func WithDriverName(name string) ContextOption {
	return func(o *contextOptions) {
		o.driverName = name
	}
}
