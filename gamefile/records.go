package gamefile

import "time"

// HeaderMatch carries match metadata. It is always the first record in a
// gamefile stream; its Version field is latched by the Decoder and
// propagated to every subsequent record's parser.
type HeaderMatch struct {
	Player1, Player2 string // legacy ANSI names (SPlayer1/SPlayer2)
	MatchLength      int32
	Variation        int32
	Crawford         bool
	Jacoby           bool
	Beaver           bool
	AutoDouble       bool
	Elo1, Elo2       float64
	Exp1, Exp2       int32
	Date             time.Time
	Event            string // legacy ANSI (SEvent)
	GameID           int32
	CompLevel1       int32
	CompLevel2       int32
	CountForElo      bool
	AddToProfile1    bool
	AddToProfile2    bool
	Location         string // legacy ANSI (SLocation)
	GameMode         int32
	Imported         bool
	Round            string // legacy ANSI (SRound)
	Invert           int32

	// Version is the schema version governing this and every subsequent
	// record in the same gamefile stream.
	Version int32

	// Magic must equal 0x494C4D44 ("DMLI" little-endian) for a
	// well-formed HeaderMatch.
	Magic int32

	MoneyInitGames int32
	MoneyInitScore [2]int32
	Entered        bool
	Counted        bool
	UnratedImport  bool
	CommentHeader  int32
	CommentFooter  int32
	IsMoneyMatch   bool
	WinMoney       float64
	LoseMoney      float64
	Currency       int32
	FeeMoney       float64
	TableStake     int32
	SiteID         int32

	// v8
	CubeLimit     int32
	AutoDoubleMax int32

	// v24
	Transcribed  bool
	EventU       string // unicode Event
	Player1U     string // unicode Player1
	Player2U     string // unicode Player2
	LocationU    string
	RoundU       string

	// v25
	TimeSetting *TimeSetting

	// v26
	TotTimeDelayMove     int32
	TotTimeDelayCube     int32
	TotTimeDelayMoveDone int32
	TotTimeDelayCubeDone int32

	// v30
	Transcriber string
}

func (*HeaderMatch) Kind() Kind { return KindHeaderMatch }

// TimeSetting models a player clock configuration, embedded in
// HeaderMatch from match version 25 onward.
type TimeSetting struct {
	ClockType    int32
	PerGame      bool
	Time1        int32
	Time2        int32
	Penalty      int32
	TimeLeft1    int32
	TimeLeft2    int32
	PenaltyMoney int32
}

// HeaderGame is the per-game header record.
type HeaderGame struct {
	Score1, Score2    int32
	CrawfordApply     bool
	PosInit           [26]int8
	GameNumber        int32
	InProgress        bool
	CommentHeaderGame int32
	CommentFooterGame int32

	// NumberOfAutoDoubles is only meaningful when Version >= 26; on
	// earlier versions it takes its zero value.
	NumberOfAutoDoubles int32
}

func (*HeaderGame) Kind() Kind { return KindHeaderGame }

// EngineStructDoubleAction is the embedded double/take analysis payload
// carried by a Cube record.
type EngineStructDoubleAction struct {
	Pos           [26]int8
	Level         int32
	Score         [2]int32
	Cube          int32
	CubePos       int32
	Jacoby        int32
	Crawford      int32
	Met           int32
	FlagDouble    int32
	IsBeaver      int32
	Eval          [7]float32
	EquB          float32
	EquDouble     float32
	EquDrop       float32
	LevelRequest  int32
	DoubleChoice3 int32
	EvalDouble    [7]float32
}

// Cube is a doubling-cube decision record.
type Cube struct {
	ActiveP    int32
	Double     int32
	Take       int32
	BeaverR    int32
	RaccoonR   int32
	CubeB      int32
	Position   [26]int8
	Doubled    EngineStructDoubleAction
	ErrCube    float64
	DiceRolled string
	ErrTake    float64

	RolloutIndexD int32
	CompChoiceD   int32
	AnalyzeC      int32
	ErrBeaver     float64
	ErrRaccoon    float64
	AnalyzeCR     int32
	IsValid       int32
	TutorCube     int32
	TutorTake     int32
	ErrTutorCube  float64
	ErrTutorTake  float64
	FlaggedDouble bool
	CommentCube   int32

	// v24
	EditedCube bool

	// v26
	TimeDelayCube     bool
	TimeDelayCubeDone bool

	// v27
	NumberOfAutoDoubleCube int32

	// v28
	TimeBot int32
	TimeTop int32
}

func (*Cube) Kind() Kind { return KindCube }

// EvalLevel is a per-candidate-move analysis level.
type EvalLevel struct {
	Level    int16
	IsDouble bool
}

// EngineStructBestMoveRecord is the embedded checker-play analysis
// payload carried by a Move record.
type EngineStructBestMoveRecord struct {
	Pos       [26]int8
	Dice      [2]int32
	Level     int32
	Score     [2]int32
	Cube      int32
	CubePos   int32
	Crawford  int32
	Jacoby    int32
	NMoves    int32
	PosPlayed [32][26]int8
	Moves     [32][8]int8
	EvalLevel [32]EvalLevel
	Eval      [32][7]float32
	Unused    int8
	Met       int8
	Choice0   int8
	Choice3   int8
}

// Move is a checker-play decision record.
type Move struct {
	PositionI     [26]int8
	PositionEnd   [26]int8
	ActiveP       int32
	Moves         [8]int32
	Dice          [2]int32
	CubeA         int32
	ErrorM        float64 // legacy field, value not interpreted by any consumer
	NMoveEval     int32
	DataMoves     EngineStructBestMoveRecord
	Played        bool
	ErrMove       float64
	ErrLuck       float64
	CompChoice    int32
	InitEq        float64
	RolloutIndexM [32]int32
	AnalyzeM      int32
	AnalyzeL      int32
	InvalidM      int32
	PositionTutor [26]int8
	Tutor         int8
	ErrTutorMove  float64
	Flagged       bool
	CommentMove   int32

	// v24
	EditedMove bool

	// v26
	TimeDelayMove     uint32
	TimeDelayMoveDone uint32

	// v27
	NumberOfAutoDoubleMove int32
}

func (*Move) Kind() Kind { return KindMove }

// FooterGame is the per-game footer record.
type FooterGame struct {
	Score1g        int32
	Score2g        int32
	CrawfordApplyg bool
	Winner         int32
	PointsWon      int32
	Termination    int32
	ErrResign      float64
	ErrTakeResign  float64
	Eval           [7]float64
	EvalLevel      int32
}

func (*FooterGame) Kind() Kind { return KindFooterGame }

// FooterMatch is the match footer record.
type FooterMatch struct {
	Score1m int32
	Score2m int32
	WinnerM int32
	Elo1m   float64
	Elo2m   float64
	Exp1m   int32
	Exp2m   int32
	DateM   time.Time
}

func (*FooterMatch) Kind() Kind { return KindFooterMatch }

// Missing is a placeholder for absent data.
type Missing struct {
	MissingErrLuck float64
	MissingWinner  int32
	MissingPoints  int32
}

func (*Missing) Kind() Kind { return KindMissing }

// Unimplemented is returned for any tag not otherwise enumerated, or for
// decoded kinds this package does not interpret further. Its payload is
// intentionally undecoded.
type Unimplemented struct {
	Tag byte
}

func (*Unimplemented) Kind() Kind { return KindUnimplemented }
