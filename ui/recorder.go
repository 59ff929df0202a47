package ui

import (
	"time"

	"github.com/jrsteele09/go-wallet-web/notify"
)

var _ Page = (*Recorder)(nil)

// Recorder captures the effects a controller had on a page so a renderer can replay them
type Recorder struct {
	*notify.Surface

	navigation     *Navigation
	loading        bool
	loadingHistory []bool
	mounts         map[string]any
}

func NewRecorder() *Recorder {
	return &Recorder{
		Surface: notify.NewSurface(),
		mounts:  make(map[string]any),
	}
}

// Navigate records the target. The most recent call wins, as with assigning window.location.
func (r *Recorder) Navigate(path string, after time.Duration) {
	r.navigation = &Navigation{Path: path, After: after}
}

func (r *Recorder) SetLoading(loading bool) {
	r.loading = loading
	r.loadingHistory = append(r.loadingHistory, loading)
}

func (r *Recorder) Mount(name string, data any) {
	r.mounts[name] = data
}

// Navigation returns the recorded navigation, if any
func (r *Recorder) Navigation() (Navigation, bool) {
	if r.navigation == nil {
		return Navigation{}, false
	}
	return *r.navigation, true
}

func (r *Recorder) Loading() bool {
	return r.loading
}

func (r *Recorder) LoadingHistory() []bool {
	out := make([]bool, len(r.loadingHistory))
	copy(out, r.loadingHistory)
	return out
}

func (r *Recorder) Mounted(name string) (any, bool) {
	data, ok := r.mounts[name]
	return data, ok
}
