package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/errtools/errnogen/internal/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "ENOENT 2 No such file or directory\nEPERM 1 Operation not permitted\n"

const tableBody = `/*0000*/ e{},
/*0001*/ e{"EPERM", "Operation not permitted"},
/*0002*/ e{"ENOENT", "No such file or directory"},
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "errnos.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootEmitsDoubledTable(t *testing.T) {
	out, err := runCLI(t, "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, tableBody+tableBody, out)
}

func TestUnknownModeFallsThroughToTable(t *testing.T) {
	out, err := runCLI(t, "tables", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, tableBody+tableBody, out)
}

func TestDeclsCmd(t *testing.T) {
	out, err := runCLI(t, "decls", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "static const ioerr Eperm;\nstatic const ioerr Enoent;\n", out)
}

func TestDefsCmd(t *testing.T) {
	out, err := runCLI(t, "defs", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "constexpr ioerr ioerr::Eperm(1);\nconstexpr ioerr ioerr::Enoent(2);\n", out)
}

func TestTypeFlagOverride(t *testing.T) {
	out, err := runCLI(t, "decls", "--type", "errc", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "static const errc Eperm;\nstatic const errc Enoent;\n", out)
}

func TestConfigFileOverridesIdentifiers(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".errnogen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("type: errc\nentry: E\n"), 0600))

	out, err := runCLI(t, "--config", cfgPath, "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, `/*0001*/ E{"EPERM", "Operation not permitted"},`)
	assert.Contains(t, out, "/*0000*/ E{},")
}

func TestFlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".errnogen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("type: errc\n"), 0600))

	out, err := runCLI(t, "decls", "--config", cfgPath, "--type", "fault", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "static const fault Eperm;\nstatic const fault Enoent;\n", out)
}

func TestMalformedInputFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errnos.txt")
	require.NoError(t, os.WriteFile(path, []byte("EPERM\n"), 0600))

	out, err := runCLI(t, "--input", path)
	require.ErrorIs(t, err, errno.ErrMalformedLine)
	assert.Empty(t, out)
}

func TestToolEnvVar(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}

	script := filepath.Join(t.TempDir(), "fake-errno")
	body := "#!/bin/sh\nprintf 'EPERM 1 Operation not permitted\\n'\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0700)) //nolint:gosec // Test script must be executable
	t.Setenv("ERRNOGEN_TOOL", script)

	out, err := runCLI(t, "decls")
	require.NoError(t, err)
	assert.Equal(t, "static const ioerr Eperm;\n", out)
}

func TestCheckUpToDate(t *testing.T) {
	genPath := filepath.Join(t.TempDir(), "errnos.inc")
	require.NoError(t, os.WriteFile(genPath, []byte(tableBody+tableBody), 0600))

	out, err := runCLI(t, "check", genPath, "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestCheckDetectsDrift(t *testing.T) {
	genPath := filepath.Join(t.TempDir(), "errnos.inc")
	require.NoError(t, os.WriteFile(genPath, []byte(tableBody), 0600))

	_, err := runCLI(t, "check", genPath, "--input", writeFixture(t))
	require.ErrorIs(t, err, ErrDrift)
}

func TestCheckResolvesAgainstBuildWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "errnos.inc"), []byte(tableBody+tableBody), 0600))
	t.Setenv("BUILD_WORKING_DIRECTORY", dir)

	out, err := runCLI(t, "check", "errnos.inc", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestListCmd(t *testing.T) {
	out, err := runCLI(t, "list", "--input", writeFixture(t))
	require.NoError(t, err)
	assert.Contains(t, out, "EPERM")
	assert.Contains(t, out, "Operation not permitted")
	assert.Contains(t, out, "ENOENT")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "errnogen")
}
