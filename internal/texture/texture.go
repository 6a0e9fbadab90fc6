// Package texture loads the buddy's four poses from disk and scales them
// for display.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"bongobuddy/internal/entity"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger is resolved per call so it follows the global logger set up in main.
func logger() zerolog.Logger {
	return log.With().Str("module", "texture").Logger()
}

// ErrMissingName is returned when a pose has no file name configured.
var ErrMissingName = errors.New("texture name is empty")

// hitSequence is sampled uniformly on every hit. Left and right appear
// twice, so they come up 40% of the time each and both 20%.
var hitSequence = [...]entity.Pose{
	entity.PoseLeft,
	entity.PoseRight,
	entity.PoseLeft,
	entity.PoseRight,
	entity.PoseBoth,
}

// Names are the file names of each pose inside the texture directory.
type Names struct {
	Idle  string
	Left  string
	Right string
	Both  string
}

func (n Names) of(p entity.Pose) string {
	switch p {
	case entity.PoseLeft:
		return n.Left
	case entity.PoseRight:
		return n.Right
	case entity.PoseBoth:
		return n.Both
	}
	return n.Idle
}

// Set is one fully loaded generation of textures at a single scale. A Set
// is never modified after Load; rescaling builds a new one.
type Set struct {
	Scale  float64
	frames [entity.PoseCount]*image.RGBA
}

// Load decodes every pose from dir, makes pixels equal to key transparent
// and resamples to scale. Any failure aborts the whole set.
func Load(dir string, names Names, scale float64, key color.RGBA) (*Set, error) {
	s := &Set{Scale: scale}
	for p := entity.PoseIdle; p < entity.PoseCount; p++ {
		name := names.of(p)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", p, ErrMissingName)
		}
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		s.frames[p] = Resize(ChromaKey(img, key), scale)
	}

	w, h := s.Size()
	l := logger()
	l.Debug().Str("dir", dir).Float64("scale", scale).Int("w", w).Int("h", h).Msg("textures loaded")
	return s, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return img, nil
}

// Image returns the bitmap for p.
func (s *Set) Image(p entity.Pose) *image.RGBA {
	if p < 0 || p >= entity.PoseCount {
		p = entity.PoseIdle
	}
	return s.frames[p]
}

// Size is the idle frame's size; the window is laid out around it.
func (s *Set) Size() (int, int) {
	b := s.frames[entity.PoseIdle].Bounds()
	return b.Dx(), b.Dy()
}

// PickHit chooses a hit pose. intn must behave like rand.IntN.
func PickHit(intn func(int) int) entity.Pose {
	return hitSequence[intn(len(hitSequence))]
}
