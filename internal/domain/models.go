package domain

// RoundsPerGame is the number of rounds in every playable game.
const RoundsPerGame = 50

// StateRecord is one row of the reference table.
type StateRecord struct {
	State string `json:"state"`
	Abbr  string `json:"abbr"`
}

// RoundEntry is a reference record decorated with per-session answer state.
type RoundEntry struct {
	State     string `json:"state"`
	Abbr      string `json:"abbr"`
	Order     int    `json:"order"`
	Guess     string `json:"guess"`
	Completed bool   `json:"completed"`
}

// Correct reports whether the stored guess matches the abbreviation.
func (r RoundEntry) Correct() bool {
	return r.Guess == r.Abbr
}

// PlayStyle selects how answers are entered.
type PlayStyle int

const (
	PlayStyleUnchosen PlayStyle = iota
	// PlayStyleEasy shows three multiple-choice options.
	PlayStyleEasy
	// PlayStyleNormal takes free text.
	PlayStyleNormal
)

func (p PlayStyle) String() string {
	switch p {
	case PlayStyleEasy:
		return "easy"
	case PlayStyleNormal:
		return "normal"
	default:
		return "unchosen"
	}
}

// ParsePlayStyle maps a name produced by String back to a PlayStyle.
func ParsePlayStyle(raw string) (PlayStyle, error) {
	switch raw {
	case "easy":
		return PlayStyleEasy, nil
	case "normal":
		return PlayStyleNormal, nil
	case "unchosen", "":
		return PlayStyleUnchosen, nil
	}
	return PlayStyleUnchosen, ErrInvalidAction
}

// GameMode controls round ordering.
type GameMode int

const (
	GameModeUnchosen GameMode = iota
	// GameModeEasy keeps table order.
	GameModeEasy
	// GameModeHard shuffles the rounds.
	GameModeHard
	// GameModeGodly has no defined content yet.
	GameModeGodly
)

func (m GameMode) String() string {
	switch m {
	case GameModeEasy:
		return "easy"
	case GameModeHard:
		return "hard"
	case GameModeGodly:
		return "godly"
	default:
		return "unchosen"
	}
}

// ParseGameMode maps a name produced by String back to a GameMode.
func ParseGameMode(raw string) (GameMode, error) {
	switch raw {
	case "easy":
		return GameModeEasy, nil
	case "hard":
		return GameModeHard, nil
	case "godly":
		return GameModeGodly, nil
	case "unchosen", "":
		return GameModeUnchosen, nil
	}
	return GameModeUnchosen, ErrInvalidAction
}

// Phase is the screen the session is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseSetup
	PhasePlaying
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// GameSession holds everything one play-through needs. It is a plain value so
// it can be copied, compared in tests and stored as JSON.
type GameSession struct {
	ID           string       `json:"id"`
	Phase        Phase        `json:"phase"`
	PlayStyle    PlayStyle    `json:"playStyle"`
	GameMode     GameMode     `json:"gameMode"`
	Rounds       []RoundEntry `json:"rounds"`
	CurrentIndex int          `json:"currentIndex"`
	Score        int          `json:"score"`
	Input        string       `json:"input"`
	Options      []string     `json:"options"`
}

// CurrentRound returns the round under the cursor, if any.
func (s GameSession) CurrentRound() (RoundEntry, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Rounds) {
		return RoundEntry{}, false
	}
	return s.Rounds[s.CurrentIndex], true
}

// ActionKind enumerates the transitions a player can trigger.
type ActionKind string

const (
	ActionPlay            ActionKind = "play"
	ActionChoosePlayStyle ActionKind = "choose_play_style"
	ActionChooseGameMode  ActionKind = "choose_game_mode"
	ActionStart           ActionKind = "start"
	ActionInput           ActionKind = "input"
	ActionSelectOption    ActionKind = "select_option"
	ActionSubmit          ActionKind = "submit"
	ActionBackToStart     ActionKind = "back_to_start"
)

// Action is a single player input. Value carries the choice name, the typed
// text or the selected option depending on Kind.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Value string     `json:"value,omitempty"`
}

// ResultTier buckets a final score for the results message.
type ResultTier int

const (
	TierTryAgain ResultTier = iota
	TierGood
	TierGreat
	TierPerfect
)

func (t ResultTier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierGreat:
		return "great"
	case TierGood:
		return "good"
	default:
		return "try_again"
	}
}

// Message is the text shown on the results screen.
func (t ResultTier) Message() string {
	switch t {
	case TierPerfect:
		return "Excellent!"
	case TierGreat:
		return "So close, great job!"
	case TierGood:
		return "You did good!"
	default:
		return "oof :( try again"
	}
}
