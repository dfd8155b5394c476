package main

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fieldrunner/ecs"
	"github.com/milk9111/fieldrunner/ecs/component"
	"github.com/milk9111/fieldrunner/ecs/entity"
	"github.com/milk9111/fieldrunner/field"
	"github.com/milk9111/fieldrunner/prefabs"
)

// reloadPrefabs applies prefab edits picked up by the watcher. A file that
// fails to load is logged and the running values stay in place.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("reload: watcher: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Poll() {
		if filepath.Ext(name) == ".tengo" {
			g.reloadField()
			continue
		}

		switch name {
		case prefabs.PlayerFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			g.specs.Player = spec
			entity.ApplyPlayerSpec(g.world, spec)
		case prefabs.FieldFile:
			g.reloadField()
		case prefabs.SpawnerFile:
			spec, err := prefabs.LoadSpawnerSpec()
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			g.specs.Spawner = spec
			entity.ApplySpawnerSpec(g.world, spec)
		case prefabs.RunFile:
			spec, err := prefabs.LoadRunSpec()
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			g.specs.Run = spec
			g.width, g.height = spec.Width, spec.Height
			ebiten.SetWindowSize(int(spec.Width), int(spec.Height))
			entity.ApplyRunSpec(g.world, spec)
		case prefabs.ScrollsFile:
			spec, err := prefabs.LoadScrollsSpec()
			if err != nil {
				log.Printf("reload: %v", err)
				continue
			}
			if run := g.runState(); run != nil && len(spec.Scrolls) != len(run.Collected) {
				log.Printf("reload: %s: scroll count changed (%d -> %d), restart to apply", name, len(run.Collected), len(spec.Scrolls))
				continue
			}
			g.specs.Scrolls = spec
		default:
			continue
		}
		log.Printf("reload: applied %s", name)
	}
}

func (g *Game) reloadField() {
	spec, err := prefabs.LoadFieldSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	applyFieldOverride(spec, g.override)

	policy, err := field.NewPolicy(spec)
	if err != nil {
		log.Printf("reload: field policy: %v", err)
		return
	}
	g.specs.Field = spec
	g.pipeline.Field.SetPolicy(policy)

	if e, ok := ecs.First(g.world, component.FieldComponent.Kind()); ok {
		if f, ok := ecs.Get(g.world, e, component.FieldComponent.Kind()); ok {
			f.Interval = spec.Interval
			f.LaserChance = spec.LaserChance
		}
	}
	log.Printf("reload: field policy %s", spec.Policy)
}
