/*

Package rollout decodes the "temp.xgr" archive member: a stream of fixed
2184-byte frames, each one RolloutContext record describing the
parameters and accumulated statistics of one rollout analysis run.
Unlike the gamefile stream, rollout frames carry no tag byte and no
version gating; every record has the same shape.

Information source: xgdatatools (Michael Petch), xgstruct.py,
RolloutContextEntry/RolloutFileRecord.

*/
package rollout

import (
	"errors"
	"fmt"
	"io"
)

// FrameSize is the fixed size, in bytes, of every rollout record frame.
const FrameSize = 2184

// ErrTruncated indicates a frame started but did not contain a full
// 2184-byte record.
var ErrTruncated = errors.New("rollout: truncated record")

// RolloutContext describes one rollout analysis: its configuration and
// the accumulated equity statistics across every position it evaluated.
type RolloutContext struct {
	Truncated    bool
	ErrorLimited bool
	Truncate     int32
	MinRoll      int32
	ErrorLimit   float64
	MaxRoll      int32
	Level1       int32
	Level2       int32
	LevelCut     int32
	Variance     bool
	Cubeless     bool
	Time         bool
	Level1C      int32
	Level2C      int32
	TimeLimit    int32
	TruncateBO   int32
	RandomSeed   int32
	RandomSeedI  int32
	RollBoth     bool

	SearchInterval float32
	Met            int32
	FirstRoll      bool
	DoDouble       bool
	Extent         bool
	Rolled         int32
	DoubleFirst    bool

	Sum1        [37]float64
	SumSquare1  [37]float64
	Sum2        [37]float64
	SumSquare2  [37]float64
	Stdev1      [37]float64
	Stdev2      [37]float64
	RolledD     [37]int32
	Error1      float32
	Error2      float32
	Result1     [7]float32
	Result2     [7]float32
	Mwc1        float32
	Mwc2        float32

	PrevLevel int32
	PrevEval  [7]float32
	PrevND    int32
	PrevD     int32
	Duration  int32

	LevelTrunc      int32
	Rolled2         int32
	MultipleMin     int32
	MultipleStopAll bool
	MultipleStopOne bool

	MultipleStopAllValue float32
	MultipleStopOneValue float32
	AsTake               bool

	Rotation          int32
	UserInterrupted   bool

	VerMajor uint16
	VerMinor uint16
}

// Decoder reads successive RolloutContext frames from a rollout member
// stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading frames from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next decodes and returns the next RolloutContext in the stream. It
// returns io.EOF when the stream ends cleanly on a frame boundary.
func (d *Decoder) Next() (*RolloutContext, error) {
	frame := make([]byte, FrameSize)
	n, err := io.ReadFull(d.r, frame)
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return parseRolloutContext(frame), nil
}
