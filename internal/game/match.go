package game

import "fmt"

const winsToMatch = 3

// RoundState is the top-level phase of the state machine.
type RoundState int

const (
	RoundActive RoundState = iota // simulation runs, input accepted
	RoundEnded                    // frozen; a Result is on screen
)

func (s RoundState) String() string {
	switch s {
	case RoundActive:
		return "active"
	case RoundEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ResultKind distinguishes a plain round win from the round that ends a match.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultRoundWin
	ResultMatchWin
)

func (k ResultKind) String() string {
	switch k {
	case ResultRoundWin:
		return "round_win"
	case ResultMatchWin:
		return "match_win"
	case ResultNone:
		return "none"
	default:
		return "unknown"
	}
}

// Result describes how the last round finished.
type Result struct {
	Kind   ResultKind
	Winner PlayerID
	Title  string
	Sub    string
}

// Match holds the cross-round score. Wins are only cleared by Reset.
type Match struct {
	Wins      [2]int
	Threshold int
	State     RoundState
	Result    Result
}

// NewMatch returns a match at 0-0 with the round already active.
func NewMatch() Match {
	return Match{Threshold: winsToMatch, State: RoundActive}
}

// Over reports whether either side has reached the threshold.
func (m *Match) Over() bool {
	return m.Wins[0] >= m.Threshold || m.Wins[1] >= m.Threshold
}

// Knockout records that loser's tank hit zero health, credits the other side
// and ends the round. Calls while the round is already over are ignored.
func (m *Match) Knockout(loser PlayerID) Result {
	if m.State != RoundActive {
		return m.Result
	}
	winner := loser.Other()
	m.Wins[winner.index()]++
	m.State = RoundEnded

	kind := ResultRoundWin
	title := fmt.Sprintf("Player %d wins the round!", winner)
	if m.Wins[winner.index()] >= m.Threshold {
		kind = ResultMatchWin
		title = fmt.Sprintf("Player %d wins the match!", winner)
	}
	m.Result = Result{
		Kind:   kind,
		Winner: winner,
		Title:  title,
		Sub:    m.ScoreLine(),
	}
	return m.Result
}

// ScoreLine formats the running score for the result panel.
func (m *Match) ScoreLine() string {
	return fmt.Sprintf("Score — P1: %d | P2: %d", m.Wins[0], m.Wins[1])
}

// startRound returns the machine to Active without touching the score.
func (m *Match) startRound() {
	m.State = RoundActive
	m.Result = Result{}
}

// Reset zeroes the score and starts a fresh round.
func (m *Match) Reset() {
	m.Wins = [2]int{}
	m.startRound()
}
