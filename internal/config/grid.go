package config

import "fmt"

// GridOptions are the spacing parameters of a subplot grid. Margins and
// spacings are figure fractions; Pad is in points and only used by the
// tight layout pass.
type GridOptions struct {
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	WSpace *float64 `json:"wspace,omitempty"`
	HSpace *float64 `json:"hspace,omitempty"`
	Pad    *float64 `json:"pad,omitempty"`
}

// Merge returns o with every unset field taken from fallback.
func (o GridOptions) Merge(fallback GridOptions) GridOptions {
	pick := func(v, fb *float64) *float64 {
		if v != nil {
			return v
		}
		return fb
	}
	return GridOptions{
		Left:   pick(o.Left, fallback.Left),
		Right:  pick(o.Right, fallback.Right),
		Bottom: pick(o.Bottom, fallback.Bottom),
		Top:    pick(o.Top, fallback.Top),
		WSpace: pick(o.WSpace, fallback.WSpace),
		HSpace: pick(o.HSpace, fallback.HSpace),
		Pad:    pick(o.Pad, fallback.Pad),
	}
}

// Validate checks margins are ordered fractions and spacings non-negative.
func (o GridOptions) Validate() error {
	for name, v := range map[string]float64{
		"left": o.GetLeft(), "right": o.GetRight(),
		"bottom": o.GetBottom(), "top": o.GetTop(),
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %f", name, v)
		}
	}
	if o.GetLeft() >= o.GetRight() {
		return fmt.Errorf("left (%f) must be less than right (%f)", o.GetLeft(), o.GetRight())
	}
	if o.GetBottom() >= o.GetTop() {
		return fmt.Errorf("bottom (%f) must be less than top (%f)", o.GetBottom(), o.GetTop())
	}
	if o.GetWSpace() < 0 || o.GetHSpace() < 0 {
		return fmt.Errorf("wspace and hspace must be non-negative, got %f, %f", o.GetWSpace(), o.GetHSpace())
	}
	if o.GetPad() < 0 {
		return fmt.Errorf("pad must be non-negative, got %f", o.GetPad())
	}
	return nil
}

func (o GridOptions) GetLeft() float64   { return orDefault(o.Left, 0.125) }
func (o GridOptions) GetRight() float64  { return orDefault(o.Right, 0.9) }
func (o GridOptions) GetBottom() float64 { return orDefault(o.Bottom, 0.11) }
func (o GridOptions) GetTop() float64    { return orDefault(o.Top, 0.88) }
func (o GridOptions) GetWSpace() float64 { return orDefault(o.WSpace, 0.2) }
func (o GridOptions) GetHSpace() float64 { return orDefault(o.HSpace, 0.2) }
func (o GridOptions) GetPad() float64    { return orDefault(o.Pad, 10) }

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
