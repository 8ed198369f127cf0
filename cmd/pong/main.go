package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/config"
	"github.com/plus3/pong/debugui"
	debugui_ebiten "github.com/plus3/pong/debugui/ebiten"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/pong/render"
)

func main() {
	configPath := flag.String("config", "pong.yaml", "Path to the YAML config file.")
	maxScore := flag.String("max-score", "", "Points needed to win. Prompts on stdin when unset.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Random seed. 0 picks one at startup.")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		bootstrapFatal("load env", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootstrapFatal("load config", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-score":
			cfg.MaxScore = config.ParseMaxScore(*maxScore)
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		}
	})

	log, err := logger.NewLoggerWithComponent(cfg.Log, "pong")
	if err != nil {
		bootstrapFatal("create logger", err)
	}
	defer log.Sync()

	if cfg.MaxScore == 0 {
		cfg.MaxScore = config.PromptMaxScore(os.Stdin, os.Stdout)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	log.Info("starting",
		logger.F("max_score", cfg.MaxScore),
		logger.F("seed", cfg.Seed),
		logger.F("debug", cfg.Debug),
	)

	geo := cfg.Geometry
	ebiten.SetWindowSize(int(geo.Width*cfg.Scale), int(geo.Height*cfg.Scale))
	ebiten.SetWindowTitle(cfg.Title)

	resources := engine.NewResources()
	hud := engine.Insert(resources, render.HUD{})

	pointer := &cursorPointer{geometry: geo}
	world := pong.NewWorld(pong.Options{
		Geometry:  geo,
		Tuning:    cfg.Tuning,
		MaxScore:  cfg.MaxScore,
		Resources: resources,
		Env: pong.Env{
			Random:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
			Pointer:     pointer,
			PlayerScore: &hud.PlayerScore,
			AIScore:     &hud.AIScore,
			Notifier: pong.Notifiers{hud, pong.NotifierFunc(func(text string) {
				fmt.Println(text)
			})},
			Logger: log,
		},
	})

	engine.Insert(resources, render.Screen{})
	renderer := engine.NewScheduler(resources)
	render.RegisterSystems(renderer)

	game := &Game{
		Resources: resources,
		World:     world,
		Renderer:  renderer,
		HUD:       hud,
		Geometry:  geo,
		Log:       log,
	}

	if cfg.Debug {
		game.Imgui = debugui_ebiten.New(cfg.Title, int(geo.Width*cfg.Scale), int(geo.Height*cfg.Scale))
		items := debugui.Install(world)
		items.Add(debugui.NewSchedulerWindow("Update Systems", world, 120).Render)
		items.Add(debugui.NewMatchWindow(resources, game.Restart).Render)
		pointer.capture = engine.Get[debugui.ImguiInputState](resources)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game exited", logger.F("error", err))
	}
	log.Info("bye")
}

func bootstrapFatal(msg string, err error) {
	l, lerr := logger.NewLogger(logger.DevelopmentConfig())
	if lerr != nil {
		panic(err)
	}
	l.Fatal(msg, logger.F("error", err))
}
