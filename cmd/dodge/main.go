package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/dodge/audio"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/game"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/render"
	"github.com/lixenwraith/dodge/terminal"
)

var (
	configFlag  = flag.String("config", "", "YAML file overriding the built-in tunables")
	debugFlag   = flag.Bool("debug", false, "Write a JSON debug log to "+logDir+"/"+logFileName)
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem, trace")
	seedFlag    = flag.String("seed", "", "Session seed; empty picks a random one")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	// Panic recovery: the screen is already finalized by run's deferred cleanup
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDODGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	if stop := startProfile(*profileFlag); stop != nil {
		defer stop()
	}

	cfg := parameter.DefaultConfig()
	if *configFlag != "" {
		loaded, err := parameter.LoadConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *seedFlag != "" {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == "" {
		cfg.Seed = uuid.NewString()
	}

	world := engine.NewWorld()
	world.Resources.Config = cfg
	world.Resources.Log = logger
	world.Resources.Rand = rand.New(rand.NewSource(cfg.SeedValue(time.Now().UnixNano())))

	// Initialize audio; the game runs silently when no device is available
	sound := audio.NewSoundManager(audio.LoadAudioConfig(), logger.Named("audio"))
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without audio", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	view := terminal.NewViewport(cfg.World.Width, cfg.World.Height)
	view.Resize(screen.Size())

	hub := input.NewHub()
	session := game.NewSession(world, hub, game.WithSound(sound))
	session.Start()
	defer session.Close()
	if *muteFlag {
		session.ToggleMute()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)
	g.Go(func() error { return pumpEvents(ctx, screen, events) })

	loopErr := loop(ctx, loopDeps{
		screen:   screen,
		view:     view,
		session:  session,
		tracker:  terminal.NewMouseTracker(hub, view),
		renderer: render.NewTerminalRenderer(screen, view),
		events:   events,
	})

	// PollEvent returns nil once the screen is finalized, which ends the pump
	cancel()
	fini()
	if err := g.Wait(); err != nil && loopErr == nil {
		loopErr = err
	}
	return loopErr
}

func startProfile(mode string) func() {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q, profiling disabled\n", mode)
		return nil
	}
	return profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop
}

var errPollerCrashed = errors.New("event poller crashed")

// pumpEvents forwards screen events until the screen closes or ctx ends
func pumpEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", errPollerCrashed, r, debug.Stack())
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

type loopDeps struct {
	screen   tcell.Screen
	view     *terminal.Viewport
	session  *game.Session
	tracker  *terminal.MouseTracker
	renderer *render.TerminalRenderer
	events   <-chan tcell.Event
}

// loop multiplexes input and frames on the main goroutine; the simulation never runs concurrently
func loop(ctx context.Context, d loopDeps) error {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	log := d.session.World.Resources.Log
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-d.events:
			if mouse, ok := ev.(*tcell.EventMouse); ok {
				d.tracker.Handle(mouse)
				continue
			}

			intent := terminal.Translate(ev, d.view)
			switch intent {
			case input.IntentNone:
				continue
			case input.IntentResize:
				d.tracker.Reset()
				d.screen.Sync()
			case input.IntentRestart:
				d.tracker.Reset()
			}
			log.Debug("intent", zap.Stringer("intent", intent))
			if !d.session.HandleIntent(intent) {
				return nil
			}

		case <-frameTicker.C:
			d.session.Tick()
			d.renderer.RenderFrame(d.session.World, render.FrameInfo{Muted: d.session.IsMuted()})
			d.session.FrameRendered()
		}
	}
}
