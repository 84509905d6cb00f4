package tween

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named timing configuration loaded from YAML:
//
//	presets:
//	  pulse:
//	    duration: 0.5
//	    loops: 4
//	    loop_type: yoyo
//	    delay: 0.25
//	    delay_mode: affect-on-duration
//	    speed: 1.5
//	    time: unscaled
//
// Zero numeric fields keep the defaults of NewCore.
type Preset struct {
	Name      string    `yaml:"-"`
	Duration  float64   `yaml:"duration"`
	Delay     float64   `yaml:"delay"`
	DelayMode DelayMode `yaml:"delay_mode"`
	Loops     int       `yaml:"loops"`
	LoopType  LoopType  `yaml:"loop_type"`
	Speed     float64   `yaml:"speed"`
	TimeKind  TimeKind  `yaml:"time"`
}

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets decodes and validates a preset file. Presets are returned
// sorted by name.
func LoadPresets(r io.Reader) ([]Preset, error) {
	var file presetFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("tween: decoding presets: %w", err)
	}

	presets := make([]Preset, 0, len(file.Presets))
	for name, p := range file.Presets {
		p.Name = name
		core := p.Core()
		if err := core.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

// Core returns an idle core configured by the preset.
func (p Preset) Core() Core {
	core := NewCore()
	for _, opt := range p.Options() {
		opt(&core, nil)
	}
	return core
}

// Options returns the preset as tween options.
func (p Preset) Options() []Option {
	opts := []Option{
		WithDelay(p.Delay, p.DelayMode),
		WithTimeKind(p.TimeKind),
	}
	if p.Duration != 0 {
		opts = append(opts, WithDuration(p.Duration))
	}
	if p.Loops != 0 {
		opts = append(opts, WithLoops(p.Loops, p.LoopType))
	} else if p.LoopType != LoopRestart {
		opts = append(opts, WithLoops(1, p.LoopType))
	}
	if p.Speed != 0 {
		opts = append(opts, WithSpeed(p.Speed))
	}
	return opts
}

func (m *DelayMode) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, m, []DelayMode{DelayModeNone, DelayModeAffectOnDuration})
}

func (l *LoopType) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, l, []LoopType{LoopRestart, LoopYoyo})
}

func (k *TimeKind) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, k, []TimeKind{TimeScaled, TimeUnscaled})
}

func unmarshalEnum[E fmt.Stringer](value *yaml.Node, dst *E, values []E) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for _, v := range values {
		if v.String() == s {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("%w: line %d: unknown value %q", ErrInvalidConfig, value.Line, s)
}
