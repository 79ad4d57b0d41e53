package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/debug/termdraw"
	"github.com/akmonengine/hitbox/layer"
	"github.com/akmonengine/hitbox/scene"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	frameInterval = 16 * time.Millisecond
	playerSpeed   = 180.0
	bulletSpeed   = 420.0
	bulletLife    = 3.0
	toneFrequency = 880
)

type sandbox struct {
	screen   tcell.Screen
	drawer   *termdraw.Drawer
	recorder *debug.Recorder
	world    *scene.World
	spec     *scene.Spec

	facing    float64
	velocity  mgl64.Vec2
	audioInit bool
	enters    int
	showTree  bool
}

func newSandbox(spec *scene.Spec, cellWidth, cellHeight float64, mute bool) (*sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &sandbox{
		screen:   screen,
		drawer:   termdraw.New(screen, cellWidth, cellHeight),
		recorder: &debug.Recorder{},
		spec:     spec,
		facing:   1,
		showTree: true,
	}
	if err := s.reset(); err != nil {
		screen.Fini()
		return nil, err
	}

	if !mute {
		if err := s.initAudio(); err != nil {
			// the sandbox runs fine without sound
			log.Printf("termsandbox: audio initialization failed: %v", err)
		}
	}
	return s, nil
}

func (s *sandbox) reset() error {
	// keep log output off the terminal screen
	world, err := scene.NewWorld(s.spec, s.recorder, log.New(os.Stderr, "", 0))
	if err != nil {
		return err
	}
	world.System.Events().Subscribe(hitbox.COLLISION_ENTER, func(hitbox.Event) {
		s.enters++
		s.playEnterTone()
	})
	s.world = world
	s.enters = 0
	return nil
}

func (s *sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

func (s *sandbox) playEnterTone() {
	if !s.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(30 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

func (s *sandbox) fire() {
	player, ok := s.world.Find("player")
	if !ok {
		return
	}
	collider := s.world.Arena.Collider(player)
	if collider == nil {
		return
	}

	bounds := collider.AABB()
	center := bounds.Center()
	x := bounds.Max.X() + 2
	if s.facing < 0 {
		x = bounds.Min.X() - 10
	}
	_, err := s.world.Spawn(scene.EntitySpec{
		Layer:        layer.Projectile,
		Transform:    scene.TransformSpec{X: x, Y: center.Y() - 4},
		Collider:     scene.ColliderSpec{Width: 8, Height: 8},
		Velocity:     scene.VelocitySpec{X: s.facing * bulletSpeed},
		Lifetime:     bulletLife,
		DespawnOnHit: true,
	})
	if err != nil {
		log.Printf("termsandbox: fire: %v", err)
	}
}

// handleInput returns false when the sandbox should quit.
func (s *sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			s.velocity = mgl64.Vec2{-playerSpeed, 0}
			s.facing = -1
		case tcell.KeyRight:
			s.velocity = mgl64.Vec2{playerSpeed, 0}
			s.facing = 1
		case tcell.KeyUp:
			s.velocity = mgl64.Vec2{0, -playerSpeed}
		case tcell.KeyDown:
			s.velocity = mgl64.Vec2{0, playerSpeed}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.fire()
			case 's':
				s.velocity = mgl64.Vec2{}
			case 't':
				s.showTree = !s.showTree
			case 'r':
				if err := s.reset(); err != nil {
					log.Printf("termsandbox: reset: %v", err)
				}
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *sandbox) step(dt float64) {
	if player, ok := s.world.Find("player"); ok {
		s.world.SetVelocity(player, s.velocity)
	}
	s.recorder.Reset()
	s.world.Step(dt)
}

func (s *sandbox) draw() {
	s.screen.Clear()

	s.world.DrawColliders(s.drawer)
	for _, rect := range s.recorder.Rects {
		if !s.showTree && rect.Color == debug.NodeColor {
			continue
		}
		s.drawer.DrawRect(rect.Bounds, rect.Color)
	}

	status := fmt.Sprintf(" %s  tick %d  entities %d  contacts %d  enter %d  | arrows move  space fire  s stop  t tree  r reset  q quit",
		s.world.Name, s.world.Ticks(), s.world.Arena.Len(), s.world.System.Contacts().Len(), s.enters)
	_, height := s.screen.Size()
	for i, r := range status {
		s.screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	s.screen.Show()
}

func (s *sandbox) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			s.step(now.Sub(last).Seconds())
			last = now
			s.draw()
		}
	}
}

func (s *sandbox) cleanup() {
	if s.audioInit {
		speaker.Close()
	}
	s.screen.Fini()
}

func main() {
	scenePath := flag.String("scene", "", "scene file (yaml); the embedded sandbox when empty")
	cellWidth := flag.Float64("cw", 10, "world units per terminal column")
	cellHeight := flag.Float64("ch", 20, "world units per terminal row")
	mute := flag.Bool("mute", false, "disable the enter tone")
	flag.Parse()

	spec := scene.Default()
	if *scenePath != "" {
		var err error
		if spec, err = scene.Load(*scenePath); err != nil {
			fmt.Fprintf(os.Stderr, "termsandbox: %v\n", err)
			os.Exit(1)
		}
	}

	sb, err := newSandbox(spec, *cellWidth, *cellHeight, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsandbox: failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sb.cleanup()

	sb.run()
}
