package prism

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"lost", errors.New("Surface Lost"), ErrSurfaceLost},
		{"outdated", errors.New("surface is Outdated, reconfigure"), ErrSurfaceOutdated},
		{"timeout", errors.New("acquire timeout"), ErrAcquireTimeout},
		{"timed out", errors.New("operation timed out"), ErrAcquireTimeout},
		{"oom", errors.New("Out Of Memory"), ErrOutOfMemory},
		{"oom one word", errors.New("OutOfMemory"), ErrOutOfMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifySurfaceError(tt.in); !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("classifySurfaceError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifySurfaceErrorKeepsDriverText(t *testing.T) {
	got := classifySurfaceError(errors.New("surface lost: device removed"))
	if !errors.Is(got, ErrSurfaceLost) {
		t.Fatalf("classified as %v, want ErrSurfaceLost", got)
	}
	if !strings.Contains(got.Error(), "device removed") {
		t.Errorf("classified error %q dropped the driver message", got)
	}
}

func TestClassifySurfaceErrorPassthrough(t *testing.T) {
	unknown := errors.New("validation error")
	if got := classifySurfaceError(unknown); got != unknown {
		t.Errorf("classifySurfaceError passed through %v, want original error", got)
	}
}

func TestRecoverableSurfaceError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrSurfaceLost, true},
		{ErrSurfaceOutdated, true},
		{ErrAcquireTimeout, true},
		{fmt.Errorf("frame: %w", ErrSurfaceLost), true},
		{ErrOutOfMemory, false},
		{ErrNoAdapter, false},
		{ErrIncompatibleLayout, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := RecoverableSurfaceError(tt.err); got != tt.want {
			t.Errorf("RecoverableSurfaceError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
