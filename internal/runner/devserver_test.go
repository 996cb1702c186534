package runner

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func TestMatchReady_ViteBanner(t *testing.T) {
	chunk := "  VITE v5.0.0  ready in 300 ms\n\n" +
		"  ➜  Local:   http://localhost:5173/\n" +
		"  ➜  Network: http://192.168.1.10:5173/\n"

	ev, ok := MatchReady(chunk)
	if !ok {
		t.Fatal("MatchReady returned false for a Vite banner")
	}
	if ev.LocalURL != "http://localhost:5173/" {
		t.Errorf("LocalURL = %q, want %q", ev.LocalURL, "http://localhost:5173/")
	}
	if ev.NetworkURL != "http://192.168.1.10:5173/" {
		t.Errorf("NetworkURL = %q, want %q", ev.NetworkURL, "http://192.168.1.10:5173/")
	}
}

func TestMatchReady_ViteWithoutNetwork(t *testing.T) {
	chunk := "  ➜  Local:   http://localhost:5173/\n" +
		"  ➜  Network: use --host to expose\n"

	ev, ok := MatchReady(chunk)
	if !ok {
		t.Fatal("MatchReady returned false")
	}
	if ev.NetworkURL != "" {
		t.Errorf("NetworkURL = %q, want empty", ev.NetworkURL)
	}
}

func TestMatchReady_NextBanner(t *testing.T) {
	chunk := "ready - started server on 0.0.0.0:3000, url: http://localhost:3000\n"

	ev, ok := MatchReady(chunk)
	if !ok {
		t.Fatal("MatchReady returned false for a Next.js banner")
	}
	if ev.LocalURL != "http://localhost:3000" {
		t.Errorf("LocalURL = %q, want %q", ev.LocalURL, "http://localhost:3000")
	}
}

func TestMatchReady_PlainLocalhostFallback(t *testing.T) {
	ev, ok := MatchReady("Server listening at http://127.0.0.1:4200\n")
	if !ok {
		t.Fatal("MatchReady returned false for a plain localhost URL")
	}
	if ev.LocalURL != "http://127.0.0.1:4200" {
		t.Errorf("LocalURL = %q, want %q", ev.LocalURL, "http://127.0.0.1:4200")
	}
}

func TestMatchReady_NoMarker(t *testing.T) {
	cases := []string{
		"Compiling...\n",
		"warning: something unrelated\n",
		"",
	}
	for _, chunk := range cases {
		if _, ok := MatchReady(chunk); ok {
			t.Errorf("MatchReady(%q) = true, want false", chunk)
		}
	}
}

func TestWatchOutput_MirrorsAndFiresOnce(t *testing.T) {
	input := "Compiling...\n" +
		"  ➜  Local:   http://localhost:5173/\n" +
		"  ➜  Local:   http://localhost:9999/\n"

	var mirror bytes.Buffer
	var events []ReadyEvent
	WatchOutput(strings.NewReader(input), &mirror, func(ev ReadyEvent) {
		events = append(events, ev)
	})

	if mirror.String() != input {
		t.Errorf("mirror = %q, want full input", mirror.String())
	}
	if len(events) != 1 {
		t.Fatalf("got %d ready events, want 1", len(events))
	}
	if events[0].LocalURL != "http://localhost:5173/" {
		t.Errorf("LocalURL = %q, want first match", events[0].LocalURL)
	}
}

func TestWatchOutput_NeverReady(t *testing.T) {
	done := make(chan struct{})
	pr, pw := io.Pipe()

	go func() {
		WatchOutput(pr, io.Discard, func(ReadyEvent) {
			t.Error("unexpected ready event")
		})
		close(done)
	}()

	pw.Write([]byte("still compiling\n"))
	pw.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchOutput did not return after stream close")
	}
}
