package gamefile

import (
	"github.com/mpetch/xgreplay/xgprim"
)

// parseFrame dispatches a 2560-byte frame buffer to the kind-specific
// parser. Every parser reads from the start of the frame (the 9-byte
// prefix is explicit filler within each layout, matching the source's
// own record formats, which begin their unpack at frame offset 0).
// Whatever a parser does not consume is implicit filler: the frame is
// always exactly FrameSize bytes regardless of how much a given version
// interprets.
func parseFrame(kind Kind, frame []byte, version int32) Record {
	switch kind {
	case KindHeaderMatch:
		return parseHeaderMatch(frame)
	case KindHeaderGame:
		return parseHeaderGame(frame, version)
	case KindCube:
		return parseCube(frame, version)
	case KindMove:
		return parseMove(frame, version)
	case KindFooterGame:
		return parseFooterGame(frame)
	case KindFooterMatch:
		return parseFooterMatch(frame)
	case KindMissing:
		return parseMissing(frame)
	default:
		return &Unimplemented{Tag: frame[8]}
	}
}

func parseHeaderMatch(frame []byte) *HeaderMatch {
	r := xgprim.NewReader(frame)
	r.Skip(9)

	hm := &HeaderMatch{}
	hm.Player1 = xgprim.PascalShortString(r.Slice(41))
	hm.Player2 = xgprim.PascalShortString(r.Slice(41))
	r.Skip(1)
	hm.MatchLength = r.Int32()
	hm.Variation = r.Int32()
	hm.Crawford = r.Bool()
	hm.Jacoby = r.Bool()
	hm.Beaver = r.Bool()
	hm.AutoDouble = r.Bool()
	hm.Elo1 = r.Float64()
	hm.Elo2 = r.Float64()
	hm.Exp1 = r.Int32()
	hm.Exp2 = r.Int32()
	hm.Date = xgprim.DelphiDateTime(r.Float64())
	hm.Event = xgprim.PascalShortString(r.Slice(129))
	r.Skip(3)
	hm.GameID = r.Int32()
	hm.CompLevel1 = r.Int32()
	hm.CompLevel2 = r.Int32()
	hm.CountForElo = r.Bool()
	hm.AddToProfile1 = r.Bool()
	hm.AddToProfile2 = r.Bool()
	hm.Location = xgprim.PascalShortString(r.Slice(129))
	hm.GameMode = r.Int32()
	hm.Imported = r.Bool()
	hm.Round = xgprim.PascalShortString(r.Slice(129))
	r.Skip(2)
	hm.Invert = r.Int32()
	hm.Version = r.Int32()
	hm.Magic = r.Int32()
	hm.MoneyInitGames = r.Int32()
	hm.MoneyInitScore = [2]int32{r.Int32(), r.Int32()}
	hm.Entered = r.Bool()
	hm.Counted = r.Bool()
	hm.UnratedImport = r.Bool()
	r.Skip(1)
	hm.CommentHeader = r.Int32()
	hm.CommentFooter = r.Int32()
	hm.IsMoneyMatch = r.Bool()
	r.Skip(3)
	hm.WinMoney = float64(r.Float32())
	hm.LoseMoney = float64(r.Float32())
	hm.Currency = r.Int32()
	hm.FeeMoney = float64(r.Float32())
	hm.TableStake = r.Int32()
	hm.SiteID = r.Int32()

	version := hm.Version

	if version >= 8 {
		hm.CubeLimit = r.Int32()
		hm.AutoDoubleMax = r.Int32()
	}
	if version >= 24 {
		hm.Transcribed = r.Bool()
		r.Skip(1)
		hm.EventU = xgprim.UTF16NullTerminated(r.Uint16Array(129))
		hm.Player1U = xgprim.UTF16NullTerminated(r.Uint16Array(129))
		hm.Player2U = xgprim.UTF16NullTerminated(r.Uint16Array(129))
		hm.LocationU = xgprim.UTF16NullTerminated(r.Uint16Array(129))
		hm.RoundU = xgprim.UTF16NullTerminated(r.Uint16Array(129))
	}
	if version >= 25 {
		hm.TimeSetting = parseTimeSetting(r)
	}
	if version >= 26 {
		hm.TotTimeDelayMove = r.Int32()
		hm.TotTimeDelayCube = r.Int32()
		hm.TotTimeDelayMoveDone = r.Int32()
		hm.TotTimeDelayCubeDone = r.Int32()
	}
	if version >= 30 {
		hm.Transcriber = xgprim.UTF16NullTerminated(r.Uint16Array(129))
	}

	return hm
}

func parseTimeSetting(r *xgprim.Reader) *TimeSetting {
	ts := &TimeSetting{}
	ts.ClockType = r.Int32()
	ts.PerGame = r.Bool()
	r.Skip(3)
	ts.Time1 = r.Int32()
	ts.Time2 = r.Int32()
	ts.Penalty = r.Int32()
	ts.TimeLeft1 = r.Int32()
	ts.TimeLeft2 = r.Int32()
	ts.PenaltyMoney = r.Int32()
	return ts
}

func parseHeaderGame(frame []byte, version int32) *HeaderGame {
	r := xgprim.NewReader(frame)
	r.Skip(12)

	hg := &HeaderGame{}
	hg.Score1 = r.Int32()
	hg.Score2 = r.Int32()
	hg.CrawfordApply = r.Bool()
	copy(hg.PosInit[:], r.SByteArray(26))
	r.Skip(1)
	hg.GameNumber = r.Int32()
	hg.InProgress = r.Bool()
	r.Skip(3)
	hg.CommentHeaderGame = r.Int32()
	hg.CommentFooterGame = r.Int32()
	autoDoubles := r.Int32()
	if version >= 26 {
		hg.NumberOfAutoDoubles = autoDoubles
	}
	return hg
}

func parseDoubleAction(r *xgprim.Reader) EngineStructDoubleAction {
	var d EngineStructDoubleAction
	copy(d.Pos[:], r.SByteArray(26))
	r.Skip(2)
	d.Level = r.Int32()
	d.Score = [2]int32{r.Int32(), r.Int32()}
	d.Cube = r.Int32()
	d.CubePos = r.Int32()
	d.Jacoby = r.Int32()
	d.Crawford = int32(r.Int16())
	d.Met = int32(r.Int16())
	d.FlagDouble = int32(r.Int16())
	d.IsBeaver = int32(r.Int16())
	copy(d.Eval[:], r.Float32Array(7))
	d.EquB = r.Float32()
	d.EquDouble = r.Float32()
	d.EquDrop = r.Float32()
	d.LevelRequest = int32(r.Int16())
	d.DoubleChoice3 = int32(r.Int16())
	copy(d.EvalDouble[:], r.Float32Array(7))
	return d
}

func parseCube(frame []byte, version int32) *Cube {
	r := xgprim.NewReader(frame)
	r.Skip(12)

	c := &Cube{}
	c.ActiveP = r.Int32()
	c.Double = r.Int32()
	c.Take = r.Int32()
	c.BeaverR = r.Int32()
	c.RaccoonR = r.Int32()
	c.CubeB = r.Int32()
	copy(c.Position[:], r.SByteArray(26))
	r.Skip(2)

	c.Doubled = parseDoubleAction(r)

	r.Skip(4)
	c.ErrCube = r.Float64()
	c.DiceRolled = xgprim.PascalShortString(r.Slice(3))
	r.Skip(5)
	c.ErrTake = r.Float64()
	c.RolloutIndexD = r.Int32()
	c.CompChoiceD = r.Int32()
	c.AnalyzeC = r.Int32()
	r.Skip(4)
	c.ErrBeaver = r.Float64()
	c.ErrRaccoon = r.Float64()
	c.AnalyzeCR = r.Int32()
	c.IsValid = r.Int32()
	c.TutorCube = int32(r.SByte())
	c.TutorTake = int32(r.SByte())
	r.Skip(6)
	c.ErrTutorCube = r.Float64()
	c.ErrTutorTake = r.Float64()
	c.FlaggedDouble = r.Bool()
	r.Skip(3)
	c.CommentCube = r.Int32()

	if version >= 24 {
		c.EditedCube = r.Bool()
	}
	if version >= 26 {
		c.TimeDelayCube = r.Bool()
		c.TimeDelayCubeDone = r.Bool()
	}
	if version >= 27 {
		r.Skip(1)
		c.NumberOfAutoDoubleCube = r.Int32()
	}
	if version >= 28 {
		c.TimeBot = r.Int32()
		c.TimeTop = r.Int32()
	}
	return c
}

func parseEvalLevel(r *xgprim.Reader) EvalLevel {
	var e EvalLevel
	e.Level = r.Int16()
	e.IsDouble = r.Bool()
	r.Skip(1) // unused signed byte
	return e
}

func parseBestMove(r *xgprim.Reader) EngineStructBestMoveRecord {
	var m EngineStructBestMoveRecord
	copy(m.Pos[:], r.SByteArray(26))
	r.Skip(2)
	m.Dice = [2]int32{r.Int32(), r.Int32()}
	m.Level = r.Int32()
	m.Score = [2]int32{r.Int32(), r.Int32()}
	m.Cube = r.Int32()
	m.CubePos = r.Int32()
	m.Crawford = r.Int32()
	m.Jacoby = r.Int32()
	m.NMoves = r.Int32()

	for i := 0; i < 32; i++ {
		copy(m.PosPlayed[i][:], r.SByteArray(26))
	}
	for i := 0; i < 32; i++ {
		copy(m.Moves[i][:], r.SByteArray(8))
	}
	for i := 0; i < 32; i++ {
		m.EvalLevel[i] = parseEvalLevel(r)
	}
	for i := 0; i < 32; i++ {
		copy(m.Eval[i][:], r.Float32Array(7))
	}

	m.Unused = r.SByte()
	m.Met = r.SByte()
	m.Choice0 = r.SByte()
	m.Choice3 = r.SByte()
	return m
}

func parseMove(frame []byte, version int32) *Move {
	r := xgprim.NewReader(frame)
	r.Skip(9)

	mv := &Move{}
	copy(mv.PositionI[:], r.SByteArray(26))
	copy(mv.PositionEnd[:], r.SByteArray(26))
	r.Skip(3)
	mv.ActiveP = r.Int32()
	for i := range mv.Moves {
		mv.Moves[i] = r.Int32()
	}
	mv.Dice = [2]int32{r.Int32(), r.Int32()}
	mv.CubeA = r.Int32()
	mv.ErrorM = r.Float64()
	mv.NMoveEval = r.Int32()

	mv.DataMoves = parseBestMove(r)

	mv.Played = r.Bool()
	r.Skip(3)
	mv.ErrMove = r.Float64()
	mv.ErrLuck = r.Float64()
	mv.CompChoice = r.Int32()
	r.Skip(4)
	mv.InitEq = r.Float64()
	for i := range mv.RolloutIndexM {
		mv.RolloutIndexM[i] = r.Int32()
	}
	mv.AnalyzeM = r.Int32()
	mv.AnalyzeL = r.Int32()
	mv.InvalidM = r.Int32()
	copy(mv.PositionTutor[:], r.SByteArray(26))
	mv.Tutor = r.SByte()
	r.Skip(1)
	mv.ErrTutorMove = r.Float64()
	mv.Flagged = r.Bool()
	r.Skip(3)
	mv.CommentMove = r.Int32()

	if version >= 24 {
		mv.EditedMove = r.Bool()
	}
	if version >= 26 {
		r.Skip(3)
		mv.TimeDelayMove = r.Uint32()
		mv.TimeDelayMoveDone = r.Uint32()
	}
	if version >= 27 {
		mv.NumberOfAutoDoubleMove = r.Int32()
	}
	return mv
}

func parseFooterGame(frame []byte) *FooterGame {
	r := xgprim.NewReader(frame)
	r.Skip(12)

	fg := &FooterGame{}
	fg.Score1g = r.Int32()
	fg.Score2g = r.Int32()
	fg.CrawfordApplyg = r.Bool()
	r.Skip(3)
	fg.Winner = r.Int32()
	fg.PointsWon = r.Int32()
	fg.Termination = r.Int32()
	r.Skip(4)
	fg.ErrResign = r.Float64()
	fg.ErrTakeResign = r.Float64()
	copy(fg.Eval[:], r.Float64Array(7))
	fg.EvalLevel = r.Int32()
	return fg
}

func parseFooterMatch(frame []byte) *FooterMatch {
	r := xgprim.NewReader(frame)
	r.Skip(12)

	fm := &FooterMatch{}
	fm.Score1m = r.Int32()
	fm.Score2m = r.Int32()
	fm.WinnerM = r.Int32()
	fm.Elo1m = r.Float64()
	fm.Elo2m = r.Float64()
	fm.Exp1m = r.Int32()
	fm.Exp2m = r.Int32()
	fm.DateM = xgprim.DelphiDateTime(r.Float64())
	return fm
}

func parseMissing(frame []byte) *Missing {
	r := xgprim.NewReader(frame)
	r.Skip(16)

	m := &Missing{}
	m.MissingErrLuck = r.Float64()
	m.MissingWinner = r.Int32()
	m.MissingPoints = r.Int32()
	return m
}
