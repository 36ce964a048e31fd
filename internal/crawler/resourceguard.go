package crawler

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// resourceGuard is consulted before each frontier pop, samples host
// memory and CPU pressure at most once per sampleEvery, and slows the
// (still strictly sequential) crawl loop down
// when the host is under load. It never stops the crawl — spec.md §5
// guarantees termination only on an empty frontier — it only paces it.
type resourceGuard struct {
	memThresholdPercent float64
	cpuThresholdPercent float64
	backoff             time.Duration
	lastSample          time.Time
	sampleEvery         time.Duration
}

func newResourceGuard() *resourceGuard {
	return &resourceGuard{
		memThresholdPercent: 90,
		cpuThresholdPercent: 90,
		backoff:             200 * time.Millisecond,
		sampleEvery:         time.Second,
	}
}

// throttle samples resource usage at most once per sampleEvery and
// sleeps for backoff if either memory or CPU usage is above threshold.
func (g *resourceGuard) throttle() {
	if g == nil {
		return
	}
	if time.Since(g.lastSample) < g.sampleEvery {
		return
	}
	g.lastSample = time.Now()

	if vm, err := mem.VirtualMemory(); err == nil {
		if vm.UsedPercent >= g.memThresholdPercent {
			log.Warn().Float64("used_percent", vm.UsedPercent).Msg("crawler: host memory pressure, pacing frontier pops")
			time.Sleep(g.backoff)
		}
	}

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		if pcts[0] >= g.cpuThresholdPercent {
			log.Warn().Float64("used_percent", pcts[0]).Msg("crawler: host CPU pressure, pacing frontier pops")
			time.Sleep(g.backoff)
		}
	}
}
