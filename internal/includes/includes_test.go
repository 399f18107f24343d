package includes

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	path   string
	args   []string
	stderr string
	err    error
}

func (r *fakeRunner) Run(path string, args ...string) ([]byte, []byte, error) {
	r.path = path
	r.args = args
	if r.err != nil {
		return nil, nil, r.err
	}
	return nil, []byte(r.stderr), nil
}

func TestDiscoverUnixDefaultCompiler(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	dirs, err := Discover(Options{Platform: PlatformUnix, Runner: runner})
	require.NoError(t, err)
	assert.NotEmpty(t, dirs)
	assert.Equal(t, DefaultUnixCompiler, runner.path)
	assert.Equal(t, []string{"-v", "-E", "-x", "c++", "-"}, runner.args)
}

func TestDiscoverOtherPlatformBareCommand(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	_, err := Discover(Options{Platform: PlatformOther, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, "c++", runner.path)
}

func TestDiscoverExplicitCompiler(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	_, err := Discover(Options{Compiler: "/opt/llvm/bin/clang++", Platform: PlatformUnix, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, "/opt/llvm/bin/clang++", runner.path)
}

func TestDiscoverLangC(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	_, err := Discover(Options{Platform: PlatformUnix, Lang: LangC, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, []string{"-v", "-E", "-x", "c", "-"}, runner.args)
}

func TestDiscoverWindowsNoCompilerReadsEnvironment(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	dirs, err := Discover(Options{
		Platform:  PlatformWindows,
		Runner:    runner,
		LookupEnv: envWith(`C:\vc\include`, true),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:/vc/include"}, dirs)
	assert.Empty(t, runner.path, "no subprocess should be launched")
}

func TestDiscoverWindowsMSVCCompilerReadsEnvironment(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	dirs, err := Discover(Options{
		Compiler:  `C:\VS\VC\Tools\MSVC\bin\cl.exe`,
		Platform:  PlatformWindows,
		Runner:    runner,
		LookupEnv: envWith(`C:\vc\include`, true),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:/vc/include"}, dirs)
	assert.Empty(t, runner.path, "no subprocess should be launched")
}

func TestDiscoverWindowsGccLikeCompilerRuns(t *testing.T) {
	runner := &fakeRunner{stderr: sampleClangOutput}
	_, err := Discover(Options{
		Compiler:  `C:\msys64\ucrt64\bin\g++.exe`,
		Platform:  PlatformWindows,
		Runner:    runner,
		LookupEnv: envWith("", false),
	})
	require.NoError(t, err)
	assert.Equal(t, `C:\msys64\ucrt64\bin\g++.exe`, runner.path)
}

func TestDiscoverUnixIgnoresMSVCCheck(t *testing.T) {
	// the filename pattern only applies on windows
	runner := &fakeRunner{stderr: sampleClangOutput}
	_, err := Discover(Options{Compiler: "cl", Platform: PlatformUnix, Runner: runner})
	require.NoError(t, err)
	assert.Equal(t, "cl", runner.path)
}

func TestDiscoverLaunchFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("no such file or directory")}
	_, err := Discover(Options{Platform: PlatformUnix, Runner: runner})
	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, DefaultUnixCompiler, launchErr.Compiler)
	assert.ErrorContains(t, err, "no such file or directory")
}

// Some compilers exit non-zero when fed an empty translation unit; the
// banner on stderr is parsed regardless of exit status.
func TestDiscoverNonZeroExitStillParsed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "fakecompiler")
	content := "#!/bin/sh\n" +
		"echo '#include <...> search starts here:' >&2\n" +
		"echo ' /fake/include' >&2\n" +
		"echo 'End of search list.' >&2\n" +
		"exit 3\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	dirs, err := Discover(Options{Compiler: script, Platform: PlatformUnix})
	require.NoError(t, err)
	assert.Equal(t, []string{"/fake/include"}, dirs)
}

func TestDiscoverLaunchFailureRealProcess(t *testing.T) {
	_, err := Discover(Options{
		Compiler: "/nonexistent/definitely-not-a-compiler",
		Platform: PlatformUnix,
	})
	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
}

func TestIsMSVCLike(t *testing.T) {
	cases := []struct {
		compiler string
		want     bool
	}{
		{"cl", true},
		{"cl.exe", true},
		{"clang-cl", true},
		{"clang-cl.exe", true},
		{`C:\VS\VC\bin\cl.exe`, true},
		{"C:/VS/VC/bin/cl.exe", true},
		{"gcc", false},
		{"clang++", false},
		{"CL.EXE", false}, // matching is case-sensitive
		{"cl.exe.bak", false},
		{"/usr/bin/c++", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isMSVCLike(tc.compiler), "compiler %q", tc.compiler)
	}
}
