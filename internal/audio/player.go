// Package audio loads and plays short wav clips on the default output device.
package audio

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

//go:embed assets/*.wav
var assets embed.FS

var (
	// ErrPlayback wraps every failure to load or play a clip
	ErrPlayback    = errors.New("playback failed")
	ErrUnknownClip = errors.New("unknown clip")
	ErrBusy        = errors.New("another clip is still playing")
)

// Speaker hooks, swapped out by tests
var (
	speakerInit  = speaker.Init
	speakerPlay  = speaker.Play
	speakerClear = speaker.Clear
)

const resampleQuality = 4

// Player plays one clip at a time. Clips are looked up by id in the embedded
// assets unless an override path is registered for that id.
type Player struct {
	playing   sync.Mutex
	overrides map[string]string

	initOnce sync.Once
	initErr  error
	rate     beep.SampleRate
}

// NewPlayer returns a Player. overrides maps clip ids to wav files on disk.
func NewPlayer(overrides map[string]string) *Player {
	return &Player{overrides: overrides}
}

// Load decodes a clip into memory
func (p *Player) Load(clip string) (*beep.Buffer, error) {
	r, err := p.open(clip)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrPlayback, clip, err)
	}
	defer r.Close()

	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrPlayback, clip, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrPlayback, clip, err)
	}
	return buf, nil
}

func (p *Player) open(clip string) (io.ReadCloser, error) {
	if path, ok := p.overrides[clip]; ok && path != "" {
		return os.Open(path)
	}
	f, err := assets.Open("assets/" + clip + ".wav")
	if err != nil {
		return nil, ErrUnknownClip
	}
	return f, nil
}

// Play loads the clip and blocks until it has finished playing or ctx is
// done. A call made while another clip is playing fails with ErrBusy.
func (p *Player) Play(ctx context.Context, clip string) error {
	if !p.playing.TryLock() {
		return fmt.Errorf("%w: %s: %w", ErrPlayback, clip, ErrBusy)
	}
	defer p.playing.Unlock()

	buf, err := p.Load(clip)
	if err != nil {
		return err
	}

	format := buf.Format()
	p.initOnce.Do(func() {
		p.rate = format.SampleRate
		p.initErr = speakerInit(p.rate, p.rate.N(time.Second/10))
	})
	if p.initErr != nil {
		return fmt.Errorf("%w: open output device: %w", ErrPlayback, p.initErr)
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if format.SampleRate != p.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, p.rate, s)
	}

	done := make(chan struct{})
	speakerPlay(beep.Seq(s, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		log.Printf("audio: played %s (%v)", clip, format.SampleRate.D(buf.Len()).Round(time.Millisecond))
		return nil
	case <-ctx.Done():
		speakerClear()
		return ctx.Err()
	}
}
