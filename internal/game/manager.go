package game

import (
	"fmt"
	"image/color"
	"time"

	"bongobuddy/internal/entity"
	"bongobuddy/internal/input"
	"bongobuddy/internal/texture"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"
)

func logger() zerolog.Logger {
	return log.With().Str("module", "game").Logger()
}

// basicfont.Face7x13 cells are 7x13; text is drawn from the baseline.
const (
	glyphW   = 7
	baseline = 12

	monitorReserve = "  CPU 100.0% MEM 100.0%"
)

// LoadFunc loads a full texture set at scale.
type LoadFunc func(scale float64) (*texture.Set, error)

// Labeler supplies an optional suffix for the counter bar.
type Labeler interface {
	Label() string
}

// Options wire a Manager to the rest of the program.
type Options struct {
	Load     LoadFunc
	Exchange *input.Exchange
	Hit      time.Duration
	Pick     func() entity.Pose
	Monitor  Labeler // nil hides the readout

	// Now defaults to time.Now.
	Now func() time.Time
}

// Manager is the ebiten.Game: display surface plus animation driver.
type Manager struct {
	buddy    *entity.Buddy
	anim     *Animator
	exchange *input.Exchange
	load     LoadFunc
	monitor  Labeler
	now      func() time.Time

	set    *texture.Set
	frames [entity.PoseCount]*ebiten.Image
	layout layout
	drag   dragger
}

// NewManager takes ownership of an already loaded set, so a missing
// texture is reported before any window exists.
func NewManager(set *texture.Set, opts Options) *Manager {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	g := &Manager{
		buddy:    entity.NewBuddy(set.Scale),
		anim:     NewAnimator(opts.Hit, opts.Pick),
		exchange: opts.Exchange,
		load:     opts.Load,
		monitor:  opts.Monitor,
		now:      now,
	}
	g.apply(set)
	return g
}

// Size is the window size for the current scale.
func (g *Manager) Size() (int, int) {
	return g.layout.size()
}

// apply makes set the visible generation and releases the previous one.
func (g *Manager) apply(set *texture.Set) {
	for p := entity.PoseIdle; p < entity.PoseCount; p++ {
		if old := g.frames[p]; old != nil {
			old.Deallocate()
		}
		g.frames[p] = ebiten.NewImageFromImage(set.Image(p))
	}
	g.set = set
	g.buddy.Scale = set.Scale
	g.buddy.Width, g.buddy.Height = set.Size()
	g.relayout()
}

func (g *Manager) relayout() {
	prevW, prevH := g.layout.size()
	labelW := len(g.counterText()) * glyphW
	if g.monitor != nil {
		labelW += len(monitorReserve) * glyphW
	}
	g.layout = newLayout(g.buddy.Width, g.buddy.Height, labelW)
	if w, h := g.layout.size(); w != prevW || h != prevH {
		ebiten.SetWindowSize(w, h)
	}
}

func (g *Manager) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 1. 点 X 退出，否则开始拖拽
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.layout.inExit(mx, my) {
			return ebiten.Termination
		}
		g.drag.begin(mx, my)
	}
	wx, wy := ebiten.WindowPosition()
	if nx, ny, move := g.drag.follow(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), mx, my, wx, wy); move {
		ebiten.SetWindowPosition(nx, ny)
	}

	// 2. 滚轮缩放，只在角色图片上生效
	if _, dy := ebiten.Wheel(); dy != 0 && g.layout.inImage(mx, my) {
		g.rescale(notches(dy))
	}

	// 3. 动画：取输入计数，命中则换帧
	if advance(g.buddy, g.anim, g.exchange, g.now()) {
		g.relayout()
	}
	return nil
}

// rescale keeps the images and scale already on screen when a reload
// fails.
func (g *Manager) rescale(n int) {
	if _, err := stepScale(g.buddy, n, g.load, g.apply); err != nil {
		l := logger()
		l.Error().Err(err).Float64("scale", g.buddy.Scale).Msg("failed to reload scaled textures")
	}
}

func (g *Manager) counterText() string {
	return hitsLabel(g.buddy.Hits)
}

func hitsLabel(hits uint64) string {
	return fmt.Sprintf("Smacks: %d", hits)
}

func (g *Manager) Draw(screen *ebiten.Image) {
	img := g.layout.image()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(img.Min.X), float64(img.Min.Y))
	screen.DrawImage(g.frames[g.buddy.Pose], op)

	bar := g.layout.bar()
	vector.DrawFilledRect(screen, float32(bar.Min.X), float32(bar.Min.Y), float32(bar.Dx()), float32(bar.Dy()), color.White, false)

	label := g.counterText()
	if g.monitor != nil {
		if s := g.monitor.Label(); s != "" {
			label += "  " + s
		}
	}
	text.Draw(screen, label, basicfont.Face7x13, bar.Min.X+2, bar.Min.Y+baseline, color.Black)

	exit := g.layout.exit()
	text.Draw(screen, "X", basicfont.Face7x13, exit.Min.X+(exit.Dx()-glyphW)/2, exit.Min.Y+baseline, color.Black)
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.size()
}
