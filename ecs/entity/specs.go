package entity

import (
	"github.com/milk9111/fieldrunner/prefabs"
)

// Specs bundles every prefab a run is built from.
type Specs struct {
	Player  *prefabs.PlayerSpec
	Field   *prefabs.FieldSpec
	Spawner *prefabs.SpawnerSpec
	Run     *prefabs.RunSpec
	Scrolls *prefabs.ScrollsSpec
}

func LoadSpecs() (*Specs, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	field, err := prefabs.LoadFieldSpec()
	if err != nil {
		return nil, err
	}
	spawner, err := prefabs.LoadSpawnerSpec()
	if err != nil {
		return nil, err
	}
	run, err := prefabs.LoadRunSpec()
	if err != nil {
		return nil, err
	}
	scrolls, err := prefabs.LoadScrollsSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Player: player, Field: field, Spawner: spawner, Run: run, Scrolls: scrolls}, nil
}
