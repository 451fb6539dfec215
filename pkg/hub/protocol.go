package hub

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

type Engine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) common.SearchInfo
	RequestStop()
}

type Evaluator interface {
	Evaluate(b common.Board) int
	Features(b common.Board) eval.Features
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	evaluator    Evaluator
	logger       zerolog.Logger
	out          io.Writer
	depth        int
	position     *common.Position
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, evaluator Evaluator,
	depth int, logger zerolog.Logger) *Protocol {
	var p = &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		evaluator: evaluator,
		logger:    logger,
		depth:     depth,
		position:  common.NewInitialPosition(),
	}
	p.options = []Option{
		&IntOption{Name: "depth", Min: 0, Max: maxDepth, Value: &p.depth},
	}
	return p
}

const maxDepth = engine.MaxDepth

// Run serves hub commands from in until quit or end of input. Responses
// are written to out; a search still running at exit is stopped first.
func (p *Protocol) Run(in io.Reader, out io.Writer) {
	p.out = out
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(in, commands)
	}()

	var searchResult common.SearchInfo
	for {
		select {
		case si, ok := <-p.engineOutput:
			if ok {
				p.printInfo(si)
				searchResult = si
			} else {
				p.searchDone(searchResult)
				searchResult = common.SearchInfo{}
			}
		case commandLine, ok := <-commands:
			if !ok {
				if p.thinking {
					p.engine.RequestStop()
					for si := range p.engineOutput {
						p.printInfo(si)
						searchResult = si
					}
					p.searchDone(searchResult)
				}
				return
			}
			var err = p.handle(commandLine)
			if err != nil {
				p.logger.Error().Err(err).Str("command", commandLine).Msg("hub command failed")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (p *Protocol) searchDone(si common.SearchInfo) {
	if si.Move.IsEmpty() {
		fmt.Fprintln(p.out, "done")
	} else {
		fmt.Fprintf(p.out, "done move=%v\n", si.Move)
	}
	p.thinking = false
	p.cancel()
	p.cancel = nil
	p.engineOutput = nil
}

func (p *Protocol) printInfo(si common.SearchInfo) {
	fmt.Fprintln(p.out, searchInfoToHub(si))
}

func (p *Protocol) handle(commandLine string) error {
	var commandName, args, err = parseCommand(commandLine)
	if err != nil {
		return err
	}

	if p.thinking {
		switch commandName {
		case "stop":
			p.engine.RequestStop()
			return nil
		case "ping":
			return p.pingCommand(args)
		}
		return errors.New("search still run")
	}

	var h func(args map[string]string) error

	switch commandName {
	case "hub":
		h = p.hubCommand
	case "init":
		h = p.initCommand
	case "set-param":
		h = p.setParamCommand
	case "new-game":
		h = p.newGameCommand
	case "pos":
		h = p.posCommand
	case "level":
		h = p.levelCommand
	case "go":
		h = p.goCommand
	case "eval":
		h = p.evalCommand
	case "ping":
		h = p.pingCommand
	case "stop":
		// nothing to stop
		return nil
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(args)
}

func (p *Protocol) hubCommand(args map[string]string) error {
	fmt.Fprintf(p.out, "id name=%v version=%v author=%v\n",
		formatValue(p.name), formatValue(p.version), formatValue(p.author))
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.HubString())
	}
	fmt.Fprintln(p.out, "wait")
	return nil
}

func (p *Protocol) initCommand(args map[string]string) error {
	fmt.Fprintln(p.out, "ready")
	return nil
}

func (p *Protocol) setParamCommand(args map[string]string) error {
	var name, value = args["name"], args["value"]
	for _, option := range p.options {
		if strings.EqualFold(option.HubName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled param %v", name)
}

func (p *Protocol) newGameCommand(args map[string]string) error {
	p.position = common.NewInitialPosition()
	return nil
}

func (p *Protocol) posCommand(args map[string]string) error {
	var pos *common.Position
	var err error
	if s, ok := args["pos"]; ok {
		pos, err = common.NewPositionFromHub(s)
	} else if s, ok := args["fen"]; ok {
		pos, err = common.NewPositionFromFEN(s)
	} else {
		pos = common.NewInitialPosition()
	}
	if err != nil {
		return err
	}
	for _, smove := range strings.Fields(args["moves"]) {
		var move, err = pos.ParseMove(smove)
		if err != nil {
			return fmt.Errorf("pos moves: %w", err)
		}
		pos.MakeMove(move)
	}
	p.position = pos
	return nil
}

func (p *Protocol) levelCommand(args map[string]string) error {
	var s, ok = args["depth"]
	if !ok {
		return errors.New("level: only depth is supported")
	}
	var depth, err = strconv.Atoi(s)
	if err != nil {
		return err
	}
	if err := engine.ValidateDepth(depth); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	p.depth = depth
	return nil
}

func (p *Protocol) goCommand(args map[string]string) error {
	if _, ok := args["think"]; !ok {
		return errors.New("go: only think is supported")
	}
	var ctx, cancel = context.WithCancel(context.Background())
	var position = p.position
	var depth = p.depth
	var engineOutput = make(chan common.SearchInfo, 3)
	p.cancel = cancel
	p.thinking = true
	p.engineOutput = engineOutput
	go func() {
		var searchResult = p.engine.Search(ctx, engine.SearchParams{
			Position: position,
			Depth:    depth,
			Progress: func(si common.SearchInfo) {
				select {
				case engineOutput <- si:
				default:
				}
			},
		})
		engineOutput <- searchResult
		close(engineOutput)
	}()
	return nil
}

func (p *Protocol) evalCommand(args map[string]string) error {
	var f = p.evaluator.Features(p.position)
	fmt.Fprintf(p.out, "eval score=%v material=%v formation=%v baseline=%v tempo=%v center=%v chain=%v\n",
		p.evaluator.Evaluate(p.position), f.Material, f.Formation, f.Baseline, f.Tempo, f.Center, f.Chain)
	return nil
}

func (p *Protocol) pingCommand(args map[string]string) error {
	fmt.Fprintln(p.out, "pong")
	return nil
}

func searchInfoToHub(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth=%v score=%v", si.Depth, si.Score)
	if !si.Move.IsEmpty() {
		fmt.Fprintf(sb, " move=%v", si.Move)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes=%v time=%.3f nps=%v", si.Nodes, si.Time.Seconds(), nps)
	if si.Stopped {
		sb.WriteString(" stopped")
	}
	return sb.String()
}
