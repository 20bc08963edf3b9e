package implot

import "fmt"

// axisConfig accumulates the setup calls for one axis slot. The zero
// value means the slot is untouched; aux axes (X2, X3, Y2, Y3) are
// only enabled on the native side when their slot was configured.
type axisConfig struct {
	configured bool

	label string
	flags AxisFlags

	scale    AxisScale
	hasScale bool

	limits     Range
	limitsCond Cond

	link *AxisLink

	tickPositions []float64
	tickLabels    []string
	keepDefault   bool
}

// AxisLabel sets the label of an axis slot.
func (p *Plot) AxisLabel(axis Axis, label string) *Plot {
	if cfg := p.axis(axis); cfg != nil {
		cfg.label = label
	}
	return p
}

// AxisFlags sets the flags of an axis slot.
func (p *Plot) AxisFlags(axis Axis, flags AxisFlags) *Plot {
	if flags&^axisFlagsMask != 0 {
		p.fail(fmt.Errorf("implot: axis flags 0x%x: %w", uint32(flags&^axisFlagsMask), ErrUnrecognizedValue))
		return p
	}
	if cfg := p.axis(axis); cfg != nil {
		cfg.flags = flags
	}
	return p
}

// AxisScale sets the transform of an axis slot (linear, time, log10,
// symlog).
func (p *Plot) AxisScale(axis Axis, scale AxisScale) *Plot {
	if scale < ScaleLinear || scale >= axisScaleCount {
		p.fail(fmt.Errorf("implot: axis scale %d: %w", int32(scale), ErrUnrecognizedValue))
		return p
	}
	if cfg := p.axis(axis); cfg != nil {
		cfg.scale = scale
		cfg.hasScale = true
	}
	return p
}

// AxisLimits sets the initial limits of an axis slot. With CondOnce the
// limits apply the first time the plot is seen; with CondAlways they
// are re-applied every frame, pinning the axis.
func (p *Plot) AxisLimits(axis Axis, limits Range, cond Cond) *Plot {
	if cond != CondAlways && cond != CondOnce {
		p.fail(fmt.Errorf("implot: limits condition %d: %w", int32(cond), ErrUnrecognizedValue))
		return p
	}
	if cfg := p.axis(axis); cfg != nil {
		cfg.limits = limits
		cfg.limitsCond = cond
	}
	return p
}

// LinkAxis shares an axis slot's limits through link. All plots linked
// to the same AxisLink pan and zoom together. The link must outlive
// every plot using it and must only be touched from the GUI thread.
//
// Linking replaces any limits set with AxisLimits for the slot.
func (p *Plot) LinkAxis(axis Axis, link *AxisLink) *Plot {
	if cfg := p.axis(axis); cfg != nil {
		cfg.link = link
	}
	return p
}

// AxisTicks replaces the automatic ticks of an axis slot. labels must
// be empty or match positions in length; keepDefault retains the
// automatic ticks alongside the custom ones.
func (p *Plot) AxisTicks(axis Axis, positions []float64, labels []string, keepDefault bool) *Plot {
	if len(labels) != 0 && len(labels) != len(positions) {
		p.fail(fmt.Errorf("implot: %d tick labels for %d positions: %w",
			len(labels), len(positions), ErrOutOfBounds))
		return p
	}
	if cfg := p.axis(axis); cfg != nil {
		cfg.tickPositions = positions
		cfg.tickLabels = labels
		cfg.keepDefault = keepDefault
	}
	return p
}

// axis resolves an axis slot, recording a builder error for values
// outside the closed set.
func (p *Plot) axis(axis Axis) *axisConfig {
	if !axis.valid() {
		p.fail(fmt.Errorf("implot: axis %d: %w", int32(axis), ErrUnrecognizedValue))
		return nil
	}
	cfg := &p.axes[axis]
	cfg.configured = true
	return cfg
}

// setupAxes issues the native setup calls for every configured slot.
// The primary axes are always set up so their labels and flags apply;
// aux axes only when touched. Must run between the begin call and the
// first series call.
func (p *Plot) setupAxes(d Driver) {
	for i := range p.axes {
		axis := Axis(i)
		cfg := &p.axes[i]
		if !cfg.configured && axis != AxisX1 && axis != AxisY1 {
			continue
		}
		d.SetupAxis(axis, cfg.label, cfg.flags)
		if cfg.hasScale {
			d.SetupAxisScale(axis, cfg.scale)
		}
		if cfg.link != nil {
			d.SetupAxisLinks(axis, &cfg.link.Min, &cfg.link.Max)
		} else if cfg.limitsCond != CondNone {
			d.SetupAxisLimits(axis, cfg.limits.Min, cfg.limits.Max, cfg.limitsCond)
		}
		if len(cfg.tickPositions) > 0 {
			d.SetupAxisTicks(axis, cfg.tickPositions, cfg.tickLabels, cfg.keepDefault)
		}
	}
}
