package sfx

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// maxRenderSamples 防止无限流（如 beep.Loop(-1, ...)）导致渲染不结束
const maxRenderSamples = 48000 * 10

// RenderPCM 把有限长度的流渲染为 16 位小端立体声 PCM
// 这是 Ebitengine audio.NewPlayerFromBytes 接受的格式
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*len(buf))
	total := 0

	for total < maxRenderSamples {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		total += n
		if !ok {
			break
		}
	}
	return out
}

// toInt16 把 [-1, 1] 的浮点采样裁剪并量化为 int16
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
