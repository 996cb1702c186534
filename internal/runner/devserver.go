package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sync"
)

// ErrSpawn marks a spawn-level failure of the dev server (missing binary or
// a process that could not be started at all).
var ErrSpawn = errors.New("dev server spawn failed")

// ReadyEvent carries the URLs extracted from the dev server's output once the
// server reports it is listening. NetworkURL is empty when the server only
// binds locally.
type ReadyEvent struct {
	LocalURL   string
	NetworkURL string
}

// URL extraction patterns for the common dev-server banners. Vite prints
// "Local:   http://localhost:5173/" and optionally a Network line; Next.js
// variants print "url: http://localhost:3000" or a plain localhost URL.
var (
	localPattern    = regexp.MustCompile(`(?i)(?:local|url):?\s+(https?://\S+)`)
	networkPattern  = regexp.MustCompile(`(?i)network:?\s+(https?://\S+)`)
	localhostFallbk = regexp.MustCompile(`(https?://(?:localhost|127\.0\.0\.1)\S*)`)
)

// DevServer launches the long-lived dev server process and watches its output
// for the ready marker. The process is left running after the marker appears;
// there is deliberately no timeout if the marker never shows up, matching the
// historical behavior of the wizard.
type DevServer struct {
	// Mirror receives a copy of everything the child writes. Defaults to
	// os.Stdout so the user sees the server's own banner.
	Mirror io.Writer
}

// Launch starts argv in dir with piped output and returns a channel that
// delivers exactly one ReadyEvent when the listening marker appears, then
// closes. Spawn-level failures are wrapped with ErrSpawn. Cancelling ctx
// kills the child and closes the channel without an event.
func (d *DevServer) Launch(ctx context.Context, dir string, argv []string) (<-chan ReadyEvent, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrSpawn)
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%w: locating %s: %v", ErrSpawn, argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: piping stdout: %v", ErrSpawn, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: piping stderr: %v", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	mirror := d.Mirror
	if mirror == nil {
		mirror = os.Stdout
	}

	ready := make(chan ReadyEvent, 1)
	var once sync.Once
	var wg sync.WaitGroup

	watch := func(r io.Reader) {
		defer wg.Done()
		WatchOutput(r, mirror, func(ev ReadyEvent) {
			once.Do(func() { ready <- ev })
		})
	}

	wg.Add(2)
	go watch(stdout)
	go watch(stderr)

	go func() {
		wg.Wait()
		close(ready)
		// Reap the child if it ever exits; the wizard does not wait for it.
		_ = cmd.Wait()
	}()

	return ready, nil
}

// WatchOutput consumes r chunk by chunk, mirroring everything to w and
// invoking onReady the first time a chunk contains the listening marker.
// Exported so the marker matching can be exercised without a real process.
func WatchOutput(r io.Reader, w io.Writer, onReady func(ReadyEvent)) {
	buf := make([]byte, 4096)
	fired := false
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			_, _ = w.Write(chunk)
			if !fired {
				if ev, ok := MatchReady(string(chunk)); ok {
					fired = true
					onReady(ev)
				}
			}
		}
		if err != nil {
			return
		}
	}
}

// MatchReady reports whether chunk contains the "server is listening" marker
// and extracts the local and optional network URLs from it.
func MatchReady(chunk string) (ReadyEvent, bool) {
	var ev ReadyEvent

	if m := localPattern.FindStringSubmatch(chunk); m != nil {
		ev.LocalURL = m[1]
	} else if m := localhostFallbk.FindStringSubmatch(chunk); m != nil {
		ev.LocalURL = m[1]
	} else {
		return ReadyEvent{}, false
	}

	if m := networkPattern.FindStringSubmatch(chunk); m != nil {
		ev.NetworkURL = m[1]
	}
	return ev, true
}
