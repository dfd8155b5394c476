package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for fields and spawns (0 picks one)")
	fieldPolicy := flag.String("field", "", `field policy override: "random" or a script name in prefabs/scripts`)
	watch := flag.Bool("watch", false, "reload prefabs from prefabs/ when they change on disk")
	volume := flag.Int("volume", -1, "master volume 0-100 (default from run.yaml)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(options{
		debug:  *debug,
		seed:   *seed,
		field:  *fieldPolicy,
		watch:  *watch,
		volume: *volume,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(game.width), int(game.height))
	ebiten.SetWindowTitle("fieldrunner")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
