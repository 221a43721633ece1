package pipeline

import (
	"fmt"
	"image/color"

	"github.com/iconpress/iconpress/internal/compose"
	"github.com/iconpress/iconpress/internal/raster"
)

// MaskingMode selects how the background is removed. The modes are
// mutually exclusive.
type MaskingMode string

const (
	// MaskNone keeps the source untouched.
	MaskNone MaskingMode = "none"

	// MaskAutoCrop crops to the visible content without removing pixels.
	MaskAutoCrop MaskingMode = "autocrop"

	// MaskColorKey removes every pixel near one of the key colors,
	// anywhere in the image.
	MaskColorKey MaskingMode = "colorkey"

	// MaskBorderFlood removes only the background component reachable
	// from the image border.
	MaskBorderFlood MaskingMode = "borderflood"
)

// SeedMode mirrors raster.SeedMode for spec serialization.
type SeedMode string

const (
	SeedCorners  SeedMode = "corners"
	SeedAllEdges SeedMode = "edges"
)

// edgeProtectPx is the transparent buffer added around the image before
// border flooding so full-bleed artwork is not eaten by the flood.
const edgeProtectPx = 5

// defaultCropPadding re-pads auto-cropped content so strokes and glows
// applied later have room to grow.
const defaultCropPadding = 5

// MaskingSpec is the tagged masking variant: exactly the fields relevant to
// Mode are consulted.
type MaskingSpec struct {
	Mode MaskingMode `json:"mode"`

	// Padding re-pads the cropped content (MaskAutoCrop, and after-crop in
	// the other modes). nil means the default of 5 px; an explicit 0
	// requests a tight crop with no padding.
	Padding *int `json:"padding,omitempty"`

	// Keys are the chroma keys to remove (MaskColorKey).
	Keys []raster.ColorKey `json:"keys,omitempty"`

	// Tolerance is the flood adjacency threshold in channel units
	// (MaskBorderFlood).
	Tolerance int `json:"tolerance,omitempty"`

	// SeedMode picks corner or full-edge seeds (MaskBorderFlood).
	SeedMode SeedMode `json:"seed_mode,omitempty"`

	// AutoCropAfter tightens the canvas around the surviving content
	// (MaskColorKey, MaskBorderFlood).
	AutoCropAfter bool `json:"auto_crop_after,omitempty"`

	// EdgeProtectPad grows the canvas by a transparent border before
	// masking so full-bleed artwork is not consumed.
	EdgeProtectPad bool `json:"edge_protect_pad,omitempty"`

	// Metric selects the color-distance rule; zero value is the
	// per-channel default.
	Metric raster.DistanceMetric `json:"metric,omitempty"`
}

// Validate reports the first malformed field of the spec.
func (s MaskingSpec) Validate() error {
	switch s.Mode {
	case MaskNone, MaskAutoCrop, MaskColorKey, MaskBorderFlood, "":
	default:
		return fmt.Errorf("masking: unknown mode %q", s.Mode)
	}
	if s.Padding != nil && *s.Padding < 0 {
		return fmt.Errorf("masking: padding %d is negative", *s.Padding)
	}
	if s.Tolerance < 0 || s.Tolerance > 255 {
		return fmt.Errorf("masking: tolerance %d outside 0-255", s.Tolerance)
	}
	for i, k := range s.Keys {
		if k.Tolerance < 0 || k.Tolerance > 255 {
			return fmt.Errorf("masking: key %d tolerance %d outside 0-255", i, k.Tolerance)
		}
	}
	switch s.SeedMode {
	case SeedCorners, SeedAllEdges, "":
	default:
		return fmt.Errorf("masking: unknown seed mode %q", s.SeedMode)
	}
	if s.Metric != raster.MetricChannel && s.Metric != raster.MetricLab {
		return fmt.Errorf("masking: unknown distance metric %d", s.Metric)
	}
	return nil
}

// FitMode mirrors compose.FitMode for spec serialization.
type FitMode string

const (
	FitContain FitMode = "contain"
	FitCover   FitMode = "cover"
)

// CompositionSpec places the isolated content on the square working canvas.
type CompositionSpec struct {
	Fit FitMode `json:"fit"`

	// Scale multiplies the base fit scale; 0.9 is the "Safe Margin"
	// preset. Valid range 0.5-1.5; zero means 1.0.
	Scale float64 `json:"scale,omitempty"`

	// TargetSize is the square canvas edge in pixels.
	TargetSize int `json:"target_size"`
}

// SafeMarginScale is the preset that shrinks content to 90%, leaving a
// margin that keeps rounded-corner platforms from clipping the artwork.
const SafeMarginScale = 0.9

func (s CompositionSpec) Validate() error {
	switch s.Fit {
	case FitContain, FitCover, "":
	default:
		return fmt.Errorf("composition: unknown fit mode %q", s.Fit)
	}
	if s.TargetSize <= 0 {
		return fmt.Errorf("composition: target size %d must be positive", s.TargetSize)
	}
	if s.Scale != 0 && (s.Scale < 0.5 || s.Scale > 1.5) {
		return fmt.Errorf("composition: scale %.2f outside 0.5-1.5", s.Scale)
	}
	return nil
}

func (s CompositionSpec) scale() float64 {
	if s.Scale == 0 {
		return 1.0
	}
	return s.Scale
}

func (s CompositionSpec) fitMode() compose.FitMode {
	if s.Fit == FitCover {
		return compose.FitCover
	}
	return compose.FitContain
}

// MorphologySpec grows or shrinks the composited shape. Negative weight
// chokes (erodes), positive expands (dilates); zero leaves the shape alone.
type MorphologySpec struct {
	ShapeWeight int `json:"shape_weight"` // -10 to 10 pixels
}

func (s MorphologySpec) Validate() error {
	if s.ShapeWeight < -10 || s.ShapeWeight > 10 {
		return fmt.Errorf("morphology: shape weight %d outside -10..10", s.ShapeWeight)
	}
	return nil
}

// StrokeAlignment mirrors compose.Alignment for spec serialization.
type StrokeAlignment string

const (
	StrokeOutside StrokeAlignment = "outside"
	StrokeCenter  StrokeAlignment = "center"
	StrokeInside  StrokeAlignment = "inside"
)

// StrokeSpec draws a colored outline along the alpha boundary.
type StrokeSpec struct {
	Color     color.NRGBA     `json:"color"`
	Width     int             `json:"width"` // 1-50 pixels
	Alignment StrokeAlignment `json:"alignment"`
}

func (s StrokeSpec) Validate() error {
	if s.Width < 1 || s.Width > 50 {
		return fmt.Errorf("stroke: width %d outside 1-50", s.Width)
	}
	switch s.Alignment {
	case StrokeOutside, StrokeCenter, StrokeInside, "":
	default:
		return fmt.Errorf("stroke: unknown alignment %q", s.Alignment)
	}
	return nil
}

func (s StrokeSpec) alignment() compose.Alignment {
	switch s.Alignment {
	case StrokeInside:
		return compose.AlignInside
	case StrokeCenter:
		return compose.AlignCenter
	default:
		return compose.AlignOutside
	}
}

// LiquidPolishSpec controls the supersampled edge smoothing pass.
type LiquidPolishSpec struct {
	Intensity float64 `json:"intensity"` // 0-1; 0 disables the pass
}

func (s LiquidPolishSpec) Validate() error {
	if s.Intensity < 0 || s.Intensity > 1 {
		return fmt.Errorf("polish: intensity %.2f outside 0-1", s.Intensity)
	}
	return nil
}

// EdgeRefineSpec controls debris cleanup and corner treatment.
type EdgeRefineSpec struct {
	// DebrisThreshold is the alpha cutoff below which faint pixels count
	// as background. Range 0-50.
	DebrisThreshold int `json:"debris_threshold"`

	// SmoothBlurRadius blurs the alpha channel before re-thresholding.
	SmoothBlurRadius float64 `json:"smooth_blur_radius"`

	// CornerSharpness ranges 0-100 with 50 neutral: lower rounds corners,
	// higher sharpens them.
	CornerSharpness int `json:"corner_sharpness"`

	// ResolutionSnap (0-100) adds a final unsharp pass for pixel-grid
	// crispness; 0 disables it.
	ResolutionSnap int `json:"resolution_snap"`
}

func (s EdgeRefineSpec) Validate() error {
	if s.DebrisThreshold < 0 || s.DebrisThreshold > 50 {
		return fmt.Errorf("refine: debris threshold %d outside 0-50", s.DebrisThreshold)
	}
	if s.SmoothBlurRadius < 0 {
		return fmt.Errorf("refine: blur radius %.2f is negative", s.SmoothBlurRadius)
	}
	if s.CornerSharpness < 0 || s.CornerSharpness > 100 {
		return fmt.Errorf("refine: corner sharpness %d outside 0-100", s.CornerSharpness)
	}
	if s.ResolutionSnap < 0 || s.ResolutionSnap > 100 {
		return fmt.Errorf("refine: resolution snap %d outside 0-100", s.ResolutionSnap)
	}
	return nil
}

// PrepSpec enables the pre-masking enhancement filters. All default off.
type PrepSpec struct {
	Despeckle    bool    `json:"despeckle,omitempty"`
	AutoContrast bool    `json:"auto_contrast,omitempty"` // 2% cutoff
	Normalize    bool    `json:"normalize,omitempty"`     // full-range stretch, 0% cutoff
	Sharpen      bool    `json:"sharpen,omitempty"`
	Smooth       bool    `json:"smooth,omitempty"`
	Grayscale    bool    `json:"grayscale,omitempty"`
	Saturation   float64 `json:"saturation,omitempty"` // extra saturation fraction, 0 = off
}

func (s PrepSpec) Validate() error {
	if s.Saturation < 0 || s.Saturation > 2 {
		return fmt.Errorf("prep: saturation %.2f outside 0-2", s.Saturation)
	}
	return nil
}

// Spec is the complete, immutable description of one pipeline run.
type Spec struct {
	Prep        PrepSpec         `json:"prep"`
	Masking     MaskingSpec      `json:"masking"`
	Composition CompositionSpec  `json:"composition"`
	Morphology  MorphologySpec   `json:"morphology"`
	Stroke      *StrokeSpec      `json:"stroke,omitempty"` // nil disables the stroke
	Polish      LiquidPolishSpec `json:"polish"`
	Refine      EdgeRefineSpec   `json:"refine"`
}

// Validate checks every sub-spec and returns the first problem found.
func (s Spec) Validate() error {
	if err := s.Prep.Validate(); err != nil {
		return err
	}
	if err := s.Masking.Validate(); err != nil {
		return err
	}
	if err := s.Composition.Validate(); err != nil {
		return err
	}
	if err := s.Morphology.Validate(); err != nil {
		return err
	}
	if s.Stroke != nil {
		if err := s.Stroke.Validate(); err != nil {
			return err
		}
	}
	if err := s.Polish.Validate(); err != nil {
		return err
	}
	return s.Refine.Validate()
}

// DefaultSpec returns the settings a fresh document starts with: no
// masking, contain fit on a 1024 px canvas, edges cleaned with a light
// blur, everything else neutral.
func DefaultSpec() Spec {
	return Spec{
		Masking: MaskingSpec{Mode: MaskNone},
		Composition: CompositionSpec{
			Fit:        FitContain,
			Scale:      1.0,
			TargetSize: 1024,
		},
		Refine: EdgeRefineSpec{
			DebrisThreshold:  10,
			SmoothBlurRadius: 0.3,
			CornerSharpness:  50,
		},
	}
}
