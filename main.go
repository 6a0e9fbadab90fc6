package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"bongobuddy/config"
	"bongobuddy/internal/entity"
	"bongobuddy/internal/game"
	"bongobuddy/internal/input"
	"bongobuddy/internal/monitor"
	"bongobuddy/internal/texture"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath  = flag.String("config", "", "config file (default <base>/config.json)")
		baseDir     = flag.String("base", "", "directory holding the config and textures (default: executable's directory)")
		writeConfig = flag.Bool("write-config", false, "write the effective config and exit")
		debug       = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	initLogger(*debug)

	base := *baseDir
	if base == "" {
		base = executableDir()
	}
	cfgFile := *configPath
	if cfgFile == "" {
		cfgFile = filepath.Join(base, "config.json")
	}

	// 1. 读配置：失败只告警，用默认值兜底
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in defaults")
	} else {
		log.Debug().Str("path", cfgFile).Msg("config loaded")
	}
	if *writeConfig {
		if err := config.Save(cfg, cfgFile); err != nil {
			log.Fatal().Err(err).Msg("failed to write config")
		}
		log.Info().Str("path", cfgFile).Msg("config written")
		return
	}

	// 2. 加载贴图：失败直接退出，此时窗口还没创建
	texDir := filepath.Join(base, cfg.TextureDir)
	names := texture.Names{Idle: cfg.IdleImage, Left: cfg.LeftImage, Right: cfg.RightImage, Both: cfg.BothImage}
	key := cfg.KeyColor()
	load := func(scale float64) (*texture.Set, error) {
		return texture.Load(texDir, names, scale, key)
	}
	set, err := load(entity.ClampScale(cfg.Scale))
	if err != nil {
		log.Fatal().Err(err).Str("dir", texDir).Msg("failed to load textures")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. 启动全局键鼠钩子
	exchange := &input.Exchange{}
	observer := input.NewObserver(input.NewHookSource(), exchange)
	if err := observer.Start(ctx, input.DefaultStartTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to install global input hook")
	}
	defer observer.Stop()

	opts := game.Options{
		Load:     load,
		Exchange: exchange,
		Hit:      cfg.HitDuration(),
		Pick:     func() entity.Pose { return texture.PickHit(rand.IntN) },
	}
	if cfg.ShowMonitor {
		mon := monitor.New()
		mon.Start(ctx, monitor.DefaultInterval)
		opts.Monitor = mon
	}

	// 4. 窗口设置
	ebiten.SetWindowDecorated(false)  // 无边框
	ebiten.SetScreenTransparent(true) // 透明背景
	ebiten.SetWindowFloating(true)    // 始终置顶
	// 失焦时也要继续动画
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowTitle("bongobuddy")
	ebiten.SetTPS(cfg.TPS())

	// 5. 放到屏幕底部居中，然后启动
	mgr := game.NewManager(set, opts)
	w, h := mgr.Size()
	sw, sh := ebiten.Monitor().Size()
	ebiten.SetWindowPosition((sw-w)/2, sh-h-5)

	log.Info().
		Str("config", cfgFile).
		Float64("scale", set.Scale).
		Dur("loop", cfg.LoopInterval()).
		Int("tps", cfg.TPS()).
		Msg("bongobuddy started")

	if err := ebiten.RunGame(mgr); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop failed")
		observer.Stop()
		os.Exit(1)
	}
	log.Info().Uint64("hits", exchange.Hits()).Msg("bye")
}

func initLogger(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// executableDir is where the binary lives; textures ship next to it.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve executable, using working directory")
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
