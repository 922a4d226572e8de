package engine

import (
	"time"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
	"github.com/stevenjmoe/learning-wgpu/internal/util"
)

// statsWindow is how many presented frames are aggregated per log line.
const statsWindow = 120

// frameStats aggregates frame times and periodically logs the median,
// which is steadier than a mean under occasional scheduler hiccups.
type frameStats struct {
	log     *logger.Logger
	samples []float64
}

func newFrameStats(log *logger.Logger) *frameStats {
	return &frameStats{
		log:     log,
		samples: make([]float64, 0, statsWindow),
	}
}

// record adds one frame duration and emits a debug line once the window
// is full.
func (fs *frameStats) record(d time.Duration) {
	fs.samples = append(fs.samples, d.Seconds())
	if len(fs.samples) < statsWindow {
		return
	}
	median := util.CalculateMedian(fs.samples)
	if median > 0 {
		fs.log.Debugf("frame time median %.2fms (%.0f fps) over %d frames",
			median*1000, 1/median, len(fs.samples))
	}
	fs.samples = fs.samples[:0]
}
