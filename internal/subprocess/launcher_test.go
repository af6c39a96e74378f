package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/promptwire/script-sdk-go/internal/config"
	"github.com/promptwire/script-sdk-go/internal/errors"
)

// writeScript writes an executable shell script into a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

func TestLaunch_SpawnsProcessAndSplitsPipes(t *testing.T) {
	path := writeScript(t, `echo '{"type":"hide"}'`)

	sess, err := Launch(context.Background(), path, &config.Options{Logger: slog.Default()})
	require.NoError(t, err)
	require.Positive(t, sess.Pid())

	stdin, stdout, err := sess.Split()
	require.NoError(t, err)
	require.NotNil(t, stdin)
	require.NotNil(t, stdout)

	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"hide"}`, line)

	require.NoError(t, sess.Wait())
}

func TestLaunch_MissingPathIsTerminal(t *testing.T) {
	_, err := Launch(context.Background(), "/nonexistent/script.sh", &config.Options{})
	require.Error(t, err)

	var launchErr *errors.LaunchError
	require.True(t, stderrors.As(err, &launchErr))
	require.Equal(t, "/nonexistent/script.sh", launchErr.Path)
}

func TestLaunch_InterpreterFromSettingsFile(t *testing.T) {
	dir := t.TempDir()

	// Not executable and no shebang: only runnable through the interpreter.
	script := filepath.Join(dir, "plain.sh")
	require.NoError(t, os.WriteFile(script, []byte(`echo '{"type":"hide"}'`), 0o644))

	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("interpreter: /bin/sh\n"), 0o600))

	sess, err := Launch(context.Background(), script, &config.Options{SettingsPath: settings})
	require.NoError(t, err)

	_, stdout, err := sess.Split()
	require.NoError(t, err)

	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"hide"}`, line)

	require.NoError(t, sess.Wait())
}

func TestLaunch_BadSettingsFileIsTerminal(t *testing.T) {
	path := writeScript(t, "exit 0")

	_, err := Launch(context.Background(), path, &config.Options{
		SettingsPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)

	var launchErr *errors.LaunchError
	require.True(t, stderrors.As(err, &launchErr))
}

func TestLaunch_EnvReachesScript(t *testing.T) {
	path := writeScript(t, `echo "$GREETING" 1>&2; exit 7`)

	var (
		mu    sync.Mutex
		lines []string
	)

	sess, err := Launch(context.Background(), path, &config.Options{
		Env: map[string]string{"GREETING": "hello from options"},
		Stderr: func(line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	err = sess.Wait()
	require.Error(t, err)

	var procErr *errors.ProcessError
	require.True(t, stderrors.As(err, &procErr))
	require.Equal(t, 7, procErr.ExitCode)
	require.Contains(t, procErr.Stderr, "hello from options")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"hello from options"}, lines)
}

func TestSession_SplitIsOneTime(t *testing.T) {
	path := writeScript(t, "exit 0")

	sess, err := Launch(context.Background(), path, &config.Options{})
	require.NoError(t, err)

	_, _, err = sess.Split()
	require.NoError(t, err)

	_, _, err = sess.Split()
	require.ErrorIs(t, err, errors.ErrAlreadySplit)

	require.NoError(t, sess.Wait())
}

func TestSession_WaitIsIdempotent(t *testing.T) {
	path := writeScript(t, "echo boom 1>&2; exit 3")

	sess, err := Launch(context.Background(), path, &config.Options{})
	require.NoError(t, err)

	first := sess.Wait()
	require.Error(t, first)

	var procErr *errors.ProcessError
	require.True(t, stderrors.As(first, &procErr))
	require.Equal(t, 3, procErr.ExitCode)
	require.Contains(t, procErr.Stderr, "boom")

	// Subsequent calls return the memoized result.
	require.Equal(t, first, sess.Wait())
}

func TestSession_AliveWhileRunning(t *testing.T) {
	path := writeScript(t, "sleep 60")

	sess, err := Launch(context.Background(), path, &config.Options{})
	require.NoError(t, err)

	require.True(t, sess.Alive())

	require.NoError(t, sess.Kill())
	_ = sess.Wait()

	require.Eventually(t, func() bool { return !sess.Alive() },
		2*time.Second, 10*time.Millisecond)
}
