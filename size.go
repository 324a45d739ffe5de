package dotfield

// SizeObserver tracks an element's content box, re-measuring on every
// window resize. A nil element measures (0, 0) and installs no listener.
type SizeObserver struct {
	el       *Element
	width    int
	height   int
	onChange func(width, height int)
	handle   CallbackHandle
	attached bool
}

// ObserveSize measures el immediately and again on every resize of win,
// calling onChange (if non-nil) with each measurement.
func ObserveSize(win *Window, el *Element, onChange func(width, height int)) *SizeObserver {
	o := &SizeObserver{el: el, onChange: onChange}
	if el == nil {
		return o
	}
	o.attached = true
	o.measure()
	o.handle = win.OnResize(o.measure)
	return o
}

func (o *SizeObserver) measure() {
	if o.el != nil {
		o.width, o.height = o.el.Size()
	} else {
		o.width, o.height = 0, 0
	}
	if o.onChange != nil {
		o.onChange(o.width, o.height)
	}
}

// Size returns the last measurement.
func (o *SizeObserver) Size() (width, height int) {
	return o.width, o.height
}

// Attached reports whether the observer holds a resize listener.
func (o *SizeObserver) Attached() bool {
	return o.attached
}

// Detach removes the resize listener. Safe to call more than once.
func (o *SizeObserver) Detach() {
	if !o.attached {
		return
	}
	o.attached = false
	o.handle.Remove()
	o.handle = CallbackHandle{}
}
