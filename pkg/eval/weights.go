package eval

import (
	"errors"
	"fmt"
)

// Weights scale the light-minus-dark features into the final score.
type Weights struct {
	Material  int `mapstructure:"material" json:"material"`
	Formation int `mapstructure:"formation" json:"formation"`
	Baseline  int `mapstructure:"baseline" json:"baseline"`
	Tempo     int `mapstructure:"tempo" json:"tempo"`
	Center    int `mapstructure:"center" json:"center"`
	Chain     int `mapstructure:"chain" json:"chain"`
}

// Params are the feature constants that are not plain weights.
type Params struct {
	KingWeight        int `mapstructure:"king_weight" json:"kingWeight"`
	EndgameKingWeight int `mapstructure:"endgame_king_weight" json:"endgameKingWeight"`
	EndgamePieces     int `mapstructure:"endgame_pieces" json:"endgamePieces"`
	BaselineMinPieces int `mapstructure:"baseline_min_pieces" json:"baselineMinPieces"`
	ChainOfTwo        int `mapstructure:"chain_of_two" json:"chainOfTwo"`
	ChainOfThree      int `mapstructure:"chain_of_three" json:"chainOfThree"`
	ChainLimit        int `mapstructure:"chain_limit" json:"chainLimit"`
}

var DefaultWeights = Weights{
	Material:  30,
	Formation: 4,
	Baseline:  2,
	Tempo:     1,
	Center:    1,
}

var MaterialWeights = Weights{
	Material: 30,
}

// ChainWeights value men 12 and kings 36 and reward men backed by a run of
// own men.
var ChainWeights = Weights{
	Material: 12,
	Baseline: 1,
	Chain:    2,
}

var DefaultParams = Params{
	KingWeight:        3,
	EndgameKingWeight: 5,
	EndgamePieces:     15,
	BaselineMinPieces: 25,
	ChainOfTwo:        1,
	ChainOfThree:      3,
	ChainLimit:        4,
}

var ChainParams = Params{
	KingWeight:        3,
	EndgameKingWeight: 3,
	EndgamePieces:     15,
	BaselineMinPieces: 25,
	ChainOfTwo:        1,
	ChainOfThree:      3,
	ChainLimit:        4,
}

var (
	WeightKeys = []string{"material", "formation", "baseline", "tempo", "center", "chain"}
	ParamKeys  = []string{"king_weight", "endgame_king_weight", "endgame_pieces",
		"baseline_min_pieces", "chain_of_two", "chain_of_three", "chain_limit"}
)

// Set changes the weight named by its config key.
func (w *Weights) Set(key string, value int) error {
	switch key {
	case "material":
		w.Material = value
	case "formation":
		w.Formation = value
	case "baseline":
		w.Baseline = value
	case "tempo":
		w.Tempo = value
	case "center":
		w.Center = value
	case "chain":
		w.Chain = value
	default:
		return fmt.Errorf("unknown weight %v", key)
	}
	return nil
}

// Set changes the param named by its config key.
func (p *Params) Set(key string, value int) error {
	switch key {
	case "king_weight":
		p.KingWeight = value
	case "endgame_king_weight":
		p.EndgameKingWeight = value
	case "endgame_pieces":
		p.EndgamePieces = value
	case "baseline_min_pieces":
		p.BaselineMinPieces = value
	case "chain_of_two":
		p.ChainOfTwo = value
	case "chain_of_three":
		p.ChainOfThree = value
	case "chain_limit":
		p.ChainLimit = value
	default:
		return fmt.Errorf("unknown param %v", key)
	}
	return nil
}

func (p Params) Validate() error {
	if p.KingWeight <= 0 || p.EndgameKingWeight <= 0 {
		return errors.New("king weights must be positive")
	}
	if p.EndgamePieces < 0 || p.BaselineMinPieces < 0 {
		return errors.New("piece thresholds must not be negative")
	}
	if p.ChainLimit < 1 {
		return errors.New("chain limit must be at least 1")
	}
	return nil
}
