package sysio

import "testing"

func TestSignalHandlerValueSemantics(t *testing.T) {
	called := false
	h := HandlerFunc(func(signum int) { called = true })

	// Copies carry the same disposition.
	copied := h
	if copied.Callback() == nil {
		t.Fatal("copy lost the callback")
	}
	copied.Callback()(1)
	if !called {
		t.Error("copied handler did not invoke the captured callback")
	}

	if DefaultHandler().Callback() != nil {
		t.Error("default disposition must have no callback")
	}
	if IgnoreHandler().Callback() != nil {
		t.Error("ignore disposition must have no callback")
	}
}

func TestSignalInvalidNumber(t *testing.T) {
	for _, signum := range []int{-1, 0, 64, 1000} {
		if _, err := GetSignalHandler(signum); !IsIOError(err) {
			t.Errorf("GetSignalHandler(%d): expected io error, got %v", signum, err)
		}
		if _, err := SetSignalHandler(signum, IgnoreHandler()); !IsIOError(err) {
			t.Errorf("SetSignalHandler(%d): expected io error, got %v", signum, err)
		}
	}
}
