//go:build unix

package sysio

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSignalInstallAndDeliver(t *testing.T) {
	signum := int(unix.SIGUSR1)

	delivered := make(chan int, 1)
	prev, err := SetSignalHandler(signum, HandlerFunc(func(s int) {
		delivered <- s
	}))
	if err != nil {
		t.Fatalf("SetSignalHandler failed: %v", err)
	}
	defer SetSignalHandler(signum, prev)

	if err := unix.Kill(unix.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatalf("kill failed: %v", err)
	}

	select {
	case s := <-delivered:
		if s != signum {
			t.Errorf("handler saw signal %d, want %d", s, signum)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("signal not delivered to installed handler")
	}
}

// Reading the disposition must not disturb it, and installation is
// last-writer-wins for the whole process.
func TestSignalGetWithoutSideEffect(t *testing.T) {
	signum := int(unix.SIGUSR2)

	before, err := GetSignalHandler(signum)
	if err != nil {
		t.Fatalf("GetSignalHandler failed: %v", err)
	}
	if before.Callback() != nil {
		t.Fatal("expected default disposition before install")
	}

	first := HandlerFunc(func(int) {})
	if _, err := SetSignalHandler(signum, first); err != nil {
		t.Fatal(err)
	}

	got, err := GetSignalHandler(signum)
	if err != nil {
		t.Fatal(err)
	}
	if got.Callback() == nil {
		t.Error("installed callback not visible through Get")
	}

	// Get again: still installed, unchanged by the read.
	again, err := GetSignalHandler(signum)
	if err != nil {
		t.Fatal(err)
	}
	if again.Callback() == nil {
		t.Error("disposition disturbed by read")
	}

	// Last writer wins; the previous disposition is handed back.
	prev, err := SetSignalHandler(signum, IgnoreHandler())
	if err != nil {
		t.Fatal(err)
	}
	if prev.Callback() == nil {
		t.Error("previous handler lost on reinstall")
	}

	// Restore the default and verify the registry reflects it.
	if _, err := SetSignalHandler(signum, DefaultHandler()); err != nil {
		t.Fatal(err)
	}
	final, err := GetSignalHandler(signum)
	if err != nil {
		t.Fatal(err)
	}
	if final.Callback() != nil {
		t.Error("default restore not reflected")
	}
}
