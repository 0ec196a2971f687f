package sfx

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

// maxClipSamples bounds rendering so a streamer that never ends cannot hang
// startup. Two seconds is far longer than any effect.
const maxClipSamples = int(SampleRate) * 2

// RenderPCM drains s into signed 16-bit little-endian stereo, the layout
// ebiten's audio players expect.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("sfx: nil streamer")
	}
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*int(SampleRate)/4)
	total := 0
	for total < maxClipSamples {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: render: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
