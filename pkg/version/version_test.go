package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.Contains(info, "bellacasa-datagen") {
		t.Errorf("Info() missing tool name: %s", info)
	}
	if !strings.Contains(info, Version) {
		t.Errorf("Info() missing version: %s", info)
	}
}

func TestShort(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %s, want %s", Short(), Version)
	}
}
