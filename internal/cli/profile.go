package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"pxsteg/internal/logging"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	cpuProfiler *cpuProfile
	memProfiler *memProfile
)

type cpuProfile struct {
	output *os.File
}

type memProfile struct {
	dumpPath string
	stop     chan struct{}
	done     chan struct{}

	mu        sync.Mutex
	heapDumps [][]byte
}

func StartCPUProfiler(profilePath string) error {
	output, err := os.Create(profilePath)
	if err != nil {
		return err
	}
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(output); err != nil {
		_ = output.Close()
		return fmt.Errorf("error starting CPU profiler: %w", err)
	}
	cpuProfiler = &cpuProfile{output: output}
	return nil
}

func StopCPUProfiler() {
	if cpuProfiler == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := cpuProfiler.output.Close(); err != nil {
		logging.BuildLogger().WithError(err).Error("Error closing CPU profile")
	}
	cpuProfiler = nil
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	memProfiler = &memProfile{dumpPath: profileDumpPath, stop: make(chan struct{}), done: make(chan struct{})}
	go func(p *memProfile) {
		defer close(p.done)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.dump()
			}
		}
	}(memProfiler)
}

func (p *memProfile) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Error("Error writing heap profile")
		return
	}
	p.mu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.mu.Unlock()
}

// StopMemoryProfiler takes a last heap dump and writes every dump taken to the profile directory
func StopMemoryProfiler() {
	p := memProfiler
	if p == nil {
		return
	}
	memProfiler = nil
	close(p.stop)
	<-p.done
	p.dump()

	logger := logging.BuildLogger()
	if err := os.MkdirAll(p.dumpPath, 0o755); err != nil {
		logger.WithError(err).Error("Error creating memory profile directory")
		return
	}
	for dIdx, dump := range p.heapDumps {
		if err := os.WriteFile(filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644); err != nil {
			logger.WithError(err).Error("Error writing memory profile to disk")
		}
	}
}
