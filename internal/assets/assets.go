package assets

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models map[string]rl.Model
}

// Color name mapping for config files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel loads and caches a model file. A missing file or a model without
// meshes is reported as an error instead of handing back an empty model.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, err)
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("load model %s: no meshes", path)
	}
	manager.models[path] = model
	return model, nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[string]rl.Model)
}
