package rollout

import "github.com/mpetch/xgreplay/xgprim"

// parseRolloutContext decodes one 2184-byte frame. Trailing bytes left
// unread by this layout are implicit filler, consistent with the fixed
// frame size read by Decoder.Next.
func parseRolloutContext(frame []byte) *RolloutContext {
	r := xgprim.NewReader(frame)

	rc := &RolloutContext{}
	rc.Truncated = r.Bool()
	rc.ErrorLimited = r.Bool()
	r.Skip(2)
	rc.Truncate = r.Int32()
	rc.MinRoll = r.Int32()
	r.Skip(4)
	rc.ErrorLimit = r.Float64()
	rc.MaxRoll = r.Int32()
	rc.Level1 = r.Int32()
	rc.Level2 = r.Int32()
	rc.LevelCut = r.Int32()
	rc.Variance = r.Bool()
	rc.Cubeless = r.Bool()
	rc.Time = r.Bool()
	r.Skip(1)
	rc.Level1C = r.Int32()
	rc.Level2C = r.Int32()
	rc.TimeLimit = r.Int32()
	rc.TruncateBO = r.Int32()
	rc.RandomSeed = r.Int32()
	rc.RandomSeedI = r.Int32()
	rc.RollBoth = r.Bool()
	r.Skip(3)
	rc.SearchInterval = r.Float32()
	rc.Met = r.Int32()
	rc.FirstRoll = r.Bool()
	rc.DoDouble = r.Bool()
	rc.Extent = r.Bool()
	r.Skip(1)
	rc.Rolled = r.Int32()
	rc.DoubleFirst = r.Bool()
	r.Skip(7)

	copy(rc.Sum1[:], r.Float64Array(37))
	copy(rc.SumSquare1[:], r.Float64Array(37))
	copy(rc.Sum2[:], r.Float64Array(37))
	copy(rc.SumSquare2[:], r.Float64Array(37))
	copy(rc.Stdev1[:], r.Float64Array(37))
	copy(rc.Stdev2[:], r.Float64Array(37))
	copy(rc.RolledD[:], r.Int32Array(37))

	rc.Error1 = r.Float32()
	rc.Error2 = r.Float32()
	copy(rc.Result1[:], r.Float32Array(7))
	copy(rc.Result2[:], r.Float32Array(7))
	rc.Mwc1 = r.Float32()
	rc.Mwc2 = r.Float32()

	rc.PrevLevel = r.Int32()
	copy(rc.PrevEval[:], r.Float32Array(7))
	rc.PrevND = r.Int32()
	rc.PrevD = r.Int32()
	rc.Duration = r.Int32()

	rc.LevelTrunc = r.Int32()
	rc.Rolled2 = r.Int32()
	rc.MultipleMin = r.Int32()
	rc.MultipleStopAll = r.Bool()
	rc.MultipleStopOne = r.Bool()
	r.Skip(2)
	rc.MultipleStopAllValue = r.Float32()
	rc.MultipleStopOneValue = r.Float32()
	rc.AsTake = r.Bool()
	r.Skip(3)

	rc.Rotation = r.Int32()
	rc.UserInterrupted = r.Bool()
	r.Skip(1)
	rc.VerMajor = r.Uint16()
	rc.VerMinor = r.Uint16()

	return rc
}
