package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fieldrunner/assets"
	"github.com/milk9111/fieldrunner/common"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/ecs/entity"
	"github.com/milk9111/fieldrunner/ecs/system"
	"github.com/milk9111/fieldrunner/field"
	"github.com/milk9111/fieldrunner/prefabs"
)

const tps = common.TPS

type scene int

const (
	sceneMenu scene = iota
	scenePlaying
	scenePaused
	sceneGameOver
	sceneWon
	sceneScrolls
)

func (s scene) String() string {
	switch s {
	case sceneMenu:
		return "menu"
	case scenePlaying:
		return "playing"
	case scenePaused:
		return "paused"
	case sceneGameOver:
		return "game_over"
	case sceneWon:
		return "won"
	case sceneScrolls:
		return "scrolls"
	}
	return fmt.Sprintf("scene(%d)", int(s))
}

type options struct {
	debug  bool
	seed   uint64
	field  string
	watch  bool
	volume int
}

type Game struct {
	frames int
	debug  bool
	quit   bool

	width  float64
	height float64

	specs    *entity.Specs
	lib      *assets.Library
	sound    *soundboard
	watcher  *prefabs.Watcher
	override string

	world    *ecs.World
	pipeline *system.Pipeline

	scene       scene
	scrollsBack scene
	ui          *ebitenui.UI
	volume      int

	bgOffset float64
}

func NewGame(opts options) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return nil, err
	}
	applyFieldOverride(specs.Field, opts.field)

	policy, err := field.NewPolicy(specs.Field)
	if err != nil {
		return nil, err
	}

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("game: seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	world, err := entity.BuildWorld(specs, rng)
	if err != nil {
		return nil, err
	}

	volume := opts.volume
	if volume < 0 {
		volume = int(specs.Run.MasterVolume * 100)
	}
	volume = int(common.Clamp(float64(volume), 0, 100))

	lib := assets.NewLibrary()
	g := &Game{
		debug:    opts.debug,
		width:    specs.Run.Width,
		height:   specs.Run.Height,
		specs:    specs,
		lib:      lib,
		sound:    newSoundboard(lib, float64(volume)/100),
		override: opts.field,
		world:    world,
		pipeline: system.NewPipeline(policy, rng),
		volume:   volume,
	}

	g.pipeline.SetDebug(opts.debug)

	if opts.watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.setScene(sceneMenu)
	return g, nil
}

func applyFieldOverride(spec *prefabs.FieldSpec, override string) {
	switch override {
	case "":
	case prefabs.FieldPolicyRandom:
		spec.Policy = prefabs.FieldPolicyRandom
	default:
		spec.Policy = prefabs.FieldPolicyScript
		spec.Script = override
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	g.reloadPrefabs()
	g.syncArena()

	switch g.scene {
	case scenePlaying:
		g.updatePlaying()
	case sceneMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startRun()
		}
	case scenePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.setScene(scenePlaying)
		}
	case sceneGameOver, sceneWon:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.startRun()
		}
	case sceneScrolls:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.setScene(g.scrollsBack)
		}
	}

	if g.ui != nil && g.scene != scenePlaying {
		g.ui.Update()
	}
	return nil
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setScene(scenePaused)
		return
	}

	if e, ok := ecs.First(g.world, component.InputComponent.Kind()); ok {
		if in, ok := ecs.Get(g.world, e, component.InputComponent.Kind()); ok {
			readInput(in)
		}
	}

	g.pipeline.Update(g.world)
	g.sound.handle(g.world.Events().Events())

	run := g.runState()
	if run == nil {
		return
	}
	g.bgOffset += run.ScrollSpeed / tps
	if run.Over {
		if run.Won {
			g.setScene(sceneWon)
		} else {
			g.setScene(sceneGameOver)
		}
	}
}

func (g *Game) startRun() {
	g.pipeline.ResetRun(g.world)
	g.bgOffset = 0
	g.setScene(scenePlaying)
}

func (g *Game) setScene(s scene) {
	if g.scene != s {
		log.Printf("game: scene %s -> %s", g.scene, s)
	}
	prev := g.scene
	g.scene = s

	switch s {
	case sceneMenu:
		g.sound.stopMusic()
		g.ui = NewMainMenuUI(g)
	case scenePlaying:
		g.ui = nil
		g.sound.startMusic()
	case scenePaused:
		g.sound.pauseMusic()
		g.ui = NewPauseUI(g)
	case sceneGameOver, sceneWon:
		g.sound.stopMusic()
		g.ui = NewResultUI(g, s == sceneWon)
	case sceneScrolls:
		if prev != sceneScrolls {
			g.scrollsBack = prev
		}
		g.ui = NewScrollsUI(g)
	}
}

func (g *Game) setVolume(v int) {
	g.volume = int(common.Clamp(float64(v), 0, 100))
	g.sound.setMaster(float64(g.volume) / 100)
	g.sound.play(assets.SoundClick)
}

func (g *Game) runState() *component.RunState {
	e, ok := ecs.First(g.world, component.RunStateComponent.Kind())
	if !ok {
		return nil
	}
	run, _ := ecs.Get(g.world, e, component.RunStateComponent.Kind())
	return run
}

func (g *Game) syncArena() {
	e, ok := ecs.First(g.world, component.ArenaBoundsComponent.Kind())
	if !ok {
		return
	}
	if a, ok := ecs.Get(g.world, e, component.ArenaBoundsComponent.Kind()); ok {
		a.Width, a.Height = g.width, g.height
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.scene == scenePlaying || g.scene == scenePaused {
		g.drawHUD(screen)
	}
	if g.debug {
		g.drawDebug(screen)
	}
	if g.ui != nil && g.scene != scenePlaying {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
