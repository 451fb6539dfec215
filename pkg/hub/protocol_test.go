package hub

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

type fakeEngine struct {
	depth    int
	position *common.Position
	stops    int
}

func (e *fakeEngine) Search(ctx context.Context, searchParams engine.SearchParams) common.SearchInfo {
	e.depth = searchParams.Depth
	e.position = searchParams.Position.(*common.Position).Clone()
	var moves = searchParams.Position.LegalMoves()
	if len(moves) == 0 {
		return common.SearchInfo{Score: -1}
	}
	var si = common.SearchInfo{Depth: 1, Score: 7, Move: moves[0]}
	searchParams.Progress(si)
	si.Depth = searchParams.Depth
	return si
}

func (e *fakeEngine) RequestStop() {
	e.stops++
}

func newTestProtocol(eng Engine, logger zerolog.Logger) *Protocol {
	return New("Test", "Tester", "1.0", eng,
		eval.NewEvaluationService(eval.DefaultWeights), engine.DefaultDepth, logger)
}

func runScript(p *Protocol, script string) []string {
	var out bytes.Buffer
	p.Run(strings.NewReader(script), &out)
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestHandshakeAndSearch(t *testing.T) {
	var eng = &fakeEngine{}
	var lines = runScript(newTestProtocol(eng, zerolog.Nop()), strings.Join([]string{
		"hub",
		"init",
		"ping",
		"pos fen=W:W28:B23",
		"level depth=3",
		"go think",
	}, "\n"))
	var want = []string{
		"id name=Test version=1.0 author=Tester",
		"param name=depth value=8 type=int min=0 max=64",
		"wait",
		"ready",
		"pong",
		"info depth=1 score=7 move=28x19 nodes=0 time=0.000 nps=0",
		"info depth=3 score=7 move=28x19 nodes=0 time=0.000 nps=0",
		"done move=28x19",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%v\nwant\n%v", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
	if eng.depth != 3 || eng.position.FEN() != "W:W28:B23" {
		t.Error(eng.depth, eng.position)
	}
}

func TestPosWithMoves(t *testing.T) {
	var eng = &fakeEngine{}
	runScript(newTestProtocol(eng, zerolog.Nop()), "pos moves=\"32-28 19-23\"\ngo think\n")
	var p = eng.position
	if p == nil || !p.WhiteToMove() || p.PieceAt(32) != common.Empty || p.PieceAt(19) != common.Empty ||
		p.PieceAt(28) != common.WhiteMan || p.PieceAt(23) != common.BlackMan {
		t.Error(p)
	}

	var initial = common.NewInitialPosition().HubString()
	runScript(newTestProtocol(eng, zerolog.Nop()), "pos pos="+initial+" moves=32-28\ngo think\n")
	if eng.position.WhiteToMove() || eng.position.PieceAt(28) != common.WhiteMan {
		t.Error(eng.position)
	}
}

func TestNoMoveSendsBareDone(t *testing.T) {
	var lines = runScript(newTestProtocol(&fakeEngine{}, zerolog.Nop()),
		"pos fen=B:W23:B46,47,48,49,50\ngo think\n")
	if lines[len(lines)-1] != "done" {
		t.Error(lines)
	}
}

func TestSetParam(t *testing.T) {
	var eng = &fakeEngine{}
	var logs bytes.Buffer
	runScript(newTestProtocol(eng, zerolog.New(&logs)),
		"set-param name=depth value=5\nset-param name=depth value=99\ngo think\n")
	if eng.depth != 5 {
		t.Error(eng.depth)
	}
	if !strings.Contains(logs.String(), "out of range") {
		t.Error(logs.String())
	}
}

func TestErrorsAreLogged(t *testing.T) {
	var logs bytes.Buffer
	var lines = runScript(newTestProtocol(&fakeEngine{}, zerolog.New(&logs)),
		"bogus\npos fen=X:Y\npos moves=11-16\nping\n")
	if len(lines) != 1 || lines[0] != "pong" {
		t.Error(lines)
	}
	var log = logs.String()
	for _, s := range []string{"command not found", "\"command\":\"pos fen=X:Y\"", "pos moves"} {
		if !strings.Contains(log, s) {
			t.Error("missing", s, "in", log)
		}
	}
}

func TestEvalCommand(t *testing.T) {
	var lines = runScript(newTestProtocol(&fakeEngine{}, zerolog.Nop()), "pos fen=W:W28,50:B23\neval\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "eval score=30 material=1 ") ||
		!strings.HasSuffix(lines[0], " chain=1") {
		t.Error(lines)
	}
}

func TestParseCommand(t *testing.T) {
	var name, args, err = parseCommand(`pos  fen=W:W28:B23 moves="32-28 19-23" think`)
	if err != nil || name != "pos" {
		t.Fatal(name, err)
	}
	if args["fen"] != "W:W28:B23" || args["moves"] != "32-28 19-23" {
		t.Error(args)
	}
	if v, ok := args["think"]; !ok || v != "" {
		t.Error(args)
	}
	if _, _, err = parseCommand(`pos moves="32-28`); err == nil {
		t.Error("unterminated quote accepted")
	}
	if formatValue("Counter Draughts") != `"Counter Draughts"` || formatValue("x") != "x" {
		t.Error("formatValue")
	}
}

func TestRealEngineOverPipes(t *testing.T) {
	var eng = engine.NewEngine(eval.NewEvaluationService(eval.DefaultWeights), zerolog.Nop())
	var p = newTestProtocol(eng, zerolog.Nop())
	var inR, inW = io.Pipe()
	var outR, outW = io.Pipe()
	var finished = make(chan struct{})
	go func() {
		p.Run(inR, outW)
		outW.Close()
		close(finished)
	}()
	var send = func(s string) {
		if _, err := io.WriteString(inW, s+"\n"); err != nil {
			t.Fatal(err)
		}
	}

	send("level depth=3")
	send("go think")
	var scanner = bufio.NewScanner(outR)
	var infos int
	var done string
	for scanner.Scan() {
		var line = scanner.Text()
		if strings.HasPrefix(line, "info ") {
			infos++
		}
		if strings.HasPrefix(line, "done") {
			done = line
			break
		}
	}
	if infos == 0 {
		t.Error("no info lines")
	}
	var move, err = common.NewInitialPosition().ParseMove(strings.TrimPrefix(done, "done move="))
	if err != nil || move.IsEmpty() {
		t.Error(done, err)
	}

	send("ping")
	if !scanner.Scan() || scanner.Text() != "pong" {
		t.Error(scanner.Text())
	}
	send("quit")
	<-finished
}
