package server

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
)

const (
	stateRunning = "running"
	stateDone    = "done"
)

type searchInfoView struct {
	common.SearchInfo
	Move   string `json:"move,omitempty"`
	Forced bool   `json:"forced"`
}

// newSearchInfoView marks scores that prove a win or a loss as forced.
func newSearchInfoView(si common.SearchInfo) searchInfoView {
	var v = searchInfoView{
		SearchInfo: si,
		Forced:     si.Depth > 0 && engine.IsWinScore(si.Score),
	}
	if !si.Move.IsEmpty() {
		v.Move = si.Move.String()
	}
	return v
}

// job is one search request. Progress is appended in order; changed is
// closed and replaced on every update so any number of streams can follow.
type job struct {
	id     uuid.UUID
	fen    string
	depth  int
	cancel context.CancelFunc

	mu      sync.Mutex
	infos   []searchInfoView
	result  *searchInfoView
	changed chan struct{}
	done    chan struct{}
}

func newJob(fen string, depth int, cancel context.CancelFunc) *job {
	return &job{
		id:      uuid.New(),
		fen:     fen,
		depth:   depth,
		cancel:  cancel,
		changed: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (j *job) publish(si common.SearchInfo) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.infos = append(j.infos, newSearchInfoView(si))
	close(j.changed)
	j.changed = make(chan struct{})
}

func (j *job) finish(si common.SearchInfo) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var v = newSearchInfoView(si)
	j.infos = append(j.infos, v)
	j.result = &v
	close(j.changed)
	j.changed = make(chan struct{})
	close(j.done)
	j.cancel()
}

// since returns the updates after the first n, whether the job is over and
// a channel closed on the next update.
func (j *job) since(n int) ([]searchInfoView, bool, <-chan struct{}) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var updates = append([]searchInfoView(nil), j.infos[n:]...)
	return updates, j.result != nil, j.changed
}

type jobView struct {
	ID     uuid.UUID       `json:"id"`
	FEN    string          `json:"fen"`
	Depth  int             `json:"depth"`
	State  string          `json:"state"`
	Info   *searchInfoView `json:"info,omitempty"`
	Result *searchInfoView `json:"result,omitempty"`
}

func (j *job) view() jobView {
	j.mu.Lock()
	defer j.mu.Unlock()
	var v = jobView{
		ID:     j.id,
		FEN:    j.fen,
		Depth:  j.depth,
		State:  stateRunning,
		Result: j.result,
	}
	if j.result != nil {
		v.State = stateDone
	}
	if len(j.infos) != 0 {
		var last = j.infos[len(j.infos)-1]
		v.Info = &last
	}
	return v
}
