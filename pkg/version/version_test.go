package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc", BuildTime: "now", GoVersion: "go1.24", Platform: "linux/amd64"}
	assert.Equal(t, "srcmerge version 1.2.3 (commit: abc) built at now with go1.24 on linux/amd64", info.String())
}
