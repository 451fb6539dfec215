package evalbuilder

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

const Default = "default"

type preset struct {
	weights eval.Weights
	params  eval.Params
}

var presets = map[string]preset{
	Default:    {eval.DefaultWeights, eval.DefaultParams},
	"material": {eval.MaterialWeights, eval.DefaultParams},
	"chain":    {eval.ChainWeights, eval.ChainParams},
}

// Names lists the known evaluator presets.
func Names() []string {
	var names = lo.Keys(presets)
	sort.Strings(names)
	return names
}

// Get returns a fresh evaluator for the preset; the empty key means Default.
func Get(key string) (*eval.EvaluationService, error) {
	if key == "" {
		key = Default
	}
	var p, ok = presets[key]
	if !ok {
		return nil, fmt.Errorf("bad eval %v, want one of %v", key, Names())
	}
	return &eval.EvaluationService{
		Weights: p.weights,
		Params:  p.params,
	}, nil
}
