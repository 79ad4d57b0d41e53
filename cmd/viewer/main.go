package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "", "scene file (yaml); the embedded sandbox when empty")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	showTree := flag.Bool("tree", true, "draw the quadtree nodes")
	zoom := flag.Float64("zoom", 1, "world to screen scale")
	flag.Parse()

	game, err := NewGame(*scenePath, *showTree, *zoom)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("viewer: watch disabled: %v", err)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("hitbox viewer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
