package recorder

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls terminal progress rendering for interactive
// recordings.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressManager owns the mpb container for one CLI invocation.
type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// ProgressBar wraps a single bar so disabled progress stays a no-op.
type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

// NewProgressManager creates a progress manager; when disabled all
// operations are no-ops.
func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

// CreateBar creates a bar with total ticks and a description.
func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

// TickDuring increments the bar once per second for the given duration.
// Capture itself blocks the calling goroutine, so the CLI runs this in
// a companion goroutine while the device is being read.
func (pb *ProgressBar) TickDuring(duration time.Duration, done <-chan struct{}) {
	seconds := int(duration.Seconds())
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for i := 0; i < seconds; i++ {
		select {
		case <-ticker.C:
			pb.Increment()
		case <-done:
			pb.Complete()
			return
		}
	}
	pb.Complete()
}
