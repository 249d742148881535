package atom

import (
	"strconv"

	"toy-atom/internal/core"
)

// Parameters describes the world configuration and live state.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	sel := w.electrons[w.selected]
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("seed", "Seed", int(w.cfg.Seed)),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("attraction", "Electron attraction", p.Electron.Attraction),
				floatParam("damping", "Electron damping", p.Electron.Damping),
				floatParam("photon_attraction", "Photon attraction", p.Photon.Attraction),
				floatParam("photon_damping", "Photon damping", p.Photon.Damping),
				floatParam("collision", "Collision threshold", p.CollisionThreshold),
				intParam("max_photon_age", "Max photon age", p.MaxPhotonAge),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("frame", "Frame", int(w.frame)),
				intParam("electrons", "Electrons", len(w.electrons)),
				intParam("photons", "Photons", len(w.photons)),
				intParam("selected", "Selected electron", w.selected),
				intParam("shell", "Selected shell", int(sel.Shell)),
				floatParam("energy", "Selected energy (eV)", Energy(sel.Shell)),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float32) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(float64(v), 'g', -1, 32)}
}
