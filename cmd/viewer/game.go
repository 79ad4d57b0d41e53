package main

import (
	"fmt"
	"log"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/debug/ebitendraw"
	"github.com/akmonengine/hitbox/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 960
	screenHeight = 540

	playerSpeed = 180.0
	tick        = 1.0 / 60
)

type Game struct {
	scenePath string
	showTree  bool
	zoom      float64

	world    *scene.World
	recorder *debug.Recorder
	watcher  *scene.Watcher

	enters, exits int
	paused        bool
}

func NewGame(scenePath string, showTree bool, zoom float64) (*Game, error) {
	g := &Game{
		scenePath: scenePath,
		showTree:  showTree,
		zoom:      zoom,
		recorder:  &debug.Recorder{},
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) load() error {
	spec := scene.Default()
	if g.scenePath != "" {
		var err error
		if spec, err = scene.Load(g.scenePath); err != nil {
			return err
		}
	}

	world, err := scene.NewWorld(spec, g.recorder, log.Default())
	if err != nil {
		return err
	}
	world.System.Events().Subscribe(hitbox.COLLISION_ENTER, func(hitbox.Event) { g.enters++ })
	world.System.Events().Subscribe(hitbox.COLLISION_EXIT, func(hitbox.Event) { g.exits++ })

	g.world = world
	g.enters, g.exits = 0, 0
	return nil
}

// Watch reloads the scene file whenever it is saved.
func (g *Game) Watch() error {
	if g.scenePath == "" {
		return fmt.Errorf("the embedded scene cannot be watched")
	}
	w, err := scene.NewWatcher(g.scenePath)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.load(); err != nil {
			log.Printf("viewer: reload %s: %v", name, err)
			return
		}
		log.Printf("viewer: reloaded %s", name)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("viewer: watch: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.load(); err != nil {
			log.Printf("viewer: reload: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTree = !g.showTree
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if player, ok := g.world.Find("player"); ok {
		g.world.SetVelocity(player, inputVelocity())
	}

	if g.paused && !inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return nil
	}
	g.recorder.Reset()
	g.world.Step(tick)
	return nil
}

func inputVelocity() mgl64.Vec2 {
	var v mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v[0] -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v[0] += playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v[1] -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v[1] += playerSpeed
	}
	return v
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	drawer := ebitendraw.New(screen)
	drawer.Zoom = g.zoom
	g.world.DrawColliders(drawer)

	for _, rect := range g.recorder.Rects {
		if !g.showTree && rect.Color == debug.NodeColor {
			continue
		}
		drawer.DrawRect(rect.Bounds, rect.Color)
	}

	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	position := "-"
	if player, ok := g.world.Find("player"); ok {
		if p, ok := g.world.Arena.Position(player); ok {
			position = fmt.Sprintf("%.0f,%.0f", p.X(), p.Y())
		}
	}
	return fmt.Sprintf("%s  tick %d  entities %d  contacts %d  enter %d  exit %d  player %s\narrows move  t tree  p pause  n step  r reload",
		g.world.Name, g.world.Ticks(), g.world.Arena.Len(), g.world.System.Contacts().Len(), g.enters, g.exits, position)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
