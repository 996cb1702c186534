package runner

import (
	"context"
	"testing"
)

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary-bws")
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}
