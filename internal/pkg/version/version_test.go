package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	tests := []struct {
		name  string
		in    Info
		build *debug.BuildInfo
		want  Info
	}{
		{
			name: "주입된 값이 우선",
			in:   Info{Version: "v1.0.0", Commit: "abc", BuildDate: "2025-01-01"},
			build: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "zzz"},
			}},
			want: Info{Version: "v1.0.0", Commit: "abc", BuildDate: "2025-01-01"},
		},
		{
			name: "VCS 메타데이터로 보강",
			in:   Info{},
			build: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "deadbeef"},
					{Key: "vcs.time", Value: "2025-02-02T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "v0.3.0", Commit: "deadbeef", BuildDate: "2025-02-02T00:00:00Z", Dirty: true},
		},
		{
			name:  "정보가 없으면 unknown",
			in:    Info{},
			build: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:  Info{Version: unknown, Commit: unknown, BuildDate: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBuildInfo = func() (*debug.BuildInfo, bool) { return tt.build, true }

			got := resolve(tt.in)
			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	i := Info{Version: "v1.2.0", Commit: "0123456789", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", Dirty: true}
	assert.Equal(t, "v1.2.0+dirty (commit: 0123456, go1.24.0 linux/amd64)", i.String())

	assert.Equal(t, "v1 (commit: abc)", Info{Version: "v1", Commit: "abc"}.String())
}

func TestInfo_Fields(t *testing.T) {
	t.Parallel()

	f := Info{Version: "v1", Commit: "c"}.Fields()
	assert.Equal(t, "v1", f["version"])
	assert.Equal(t, "c", f["commit"])
}

func TestGet(t *testing.T) {
	t.Parallel()

	bi := Get()
	assert.NotEmpty(t, bi.Version)
	assert.Equal(t, runtime.GOOS, bi.OS)
	assert.Equal(t, bi, Get())
}
