package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalid marks a config file that parsed but holds unusable values.
var ErrInvalid = errors.New("invalid config")

// Config 对应 config.json 的内容
type Config struct {
	HitMS            int     `json:"hit_ms"`            // how long a hit frame stays up
	LoopMS           int     `json:"loop_ms"`           // animation tick interval
	Scale            float64 `json:"scale"`             // initial texture scale
	TransparentColor string  `json:"transparent_color"` // chroma key, name or #rrggbb
	TextureDir       string  `json:"texture_dir"`       // relative to the executable's directory
	IdleImage        string  `json:"idle_image"`
	LeftImage        string  `json:"left_image"`
	RightImage       string  `json:"right_image"`
	BothImage        string  `json:"both_image"`
	ShowMonitor      bool    `json:"show_monitor"` // append CPU/MEM to the counter bar
}

// NewDefault 生成一份默认配置
// 找不到配置文件、或者读取/校验失败时，用这个"保底"
func NewDefault() *Config {
	return &Config{
		HitMS:            120,
		LoopMS:           20,
		Scale:            0.4,
		TransparentColor: "magenta",
		TextureDir:       "Textures",
		IdleImage:        "smack_none.png",
		LeftImage:        "smack_left.png",
		RightImage:       "smack_right.png",
		BothImage:        "smack_both.png",
		ShowMonitor:      false,
	}
}

// Load reads filename. The returned config is never nil: on any failure it
// is NewDefault() and err says why. Keys absent from the file keep their
// defaults.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return NewDefault(), fmt.Errorf("read config %s: %w", filename, err)
	}

	cfg := NewDefault()
	if err := sonic.Unmarshal(data, cfg); err != nil {
		// a half-decoded struct is worse than none
		return NewDefault(), fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return NewDefault(), fmt.Errorf("config %s: %w", filename, err)
	}

	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(cfg *Config, filename string) error {
	data, err := sonic.ConfigStd.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", filename, err)
	}
	return nil
}

// Validate rejects values the program cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.HitMS <= 0:
		return fmt.Errorf("%w: hit_ms must be positive, got %d", ErrInvalid, c.HitMS)
	case c.LoopMS <= 0:
		return fmt.Errorf("%w: loop_ms must be positive, got %d", ErrInvalid, c.LoopMS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalid, c.Scale)
	case c.TextureDir == "":
		return fmt.Errorf("%w: texture_dir is empty", ErrInvalid)
	case c.IdleImage == "" || c.LeftImage == "" || c.RightImage == "" || c.BothImage == "":
		return fmt.Errorf("%w: image names must not be empty", ErrInvalid)
	}
	if _, err := ParseColor(c.TransparentColor); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) HitDuration() time.Duration {
	return time.Duration(c.HitMS) * time.Millisecond
}

func (c *Config) LoopInterval() time.Duration {
	return time.Duration(c.LoopMS) * time.Millisecond
}

// TPS converts loop_ms into an Ebitengine tick rate, at least 1.
func (c *Config) TPS() int {
	if c.LoopMS <= 0 {
		return 1
	}
	tps := 1000 / c.LoopMS
	if tps < 1 {
		tps = 1
	}
	return tps
}

// KeyColor resolves TransparentColor, falling back to magenta.
func (c *Config) KeyColor() color.RGBA {
	k, err := ParseColor(c.TransparentColor)
	if err != nil {
		return colornames.Magenta
	}
	return k
}

// ParseColor accepts an SVG colour name ("magenta") or #rrggbb / #rgb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	// colorful.Hex 的宽度是上限而不是精确值，先卡死长度
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
