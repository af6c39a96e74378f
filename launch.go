package scriptsdk

import (
	"context"

	"github.com/promptwire/script-sdk-go/internal/session"
	"github.com/promptwire/script-sdk-go/internal/subprocess"
)

// SessionController is the UI's sole handle on a running script session.
//
// Poll drains queued events without blocking and Submit enqueues an answer
// without blocking; both are safe to call from the render loop on every
// tick. Cancel ends the session at any time and is safe to call twice.
type SessionController = session.Controller

// Launch spawns the script at the given, already-resolved path and starts
// its session workers. Exactly one session should be active per UI context
// at a time; tear the previous one down with Cancel before launching again.
//
// A spawn failure returns a terminal *LaunchError; no session is created
// and no retry is attempted.
func Launch(ctx context.Context, scriptPath string, opts ...Option) (*SessionController, error) {
	options := applyOptions(opts)

	sess, err := subprocess.Launch(ctx, scriptPath, options)
	if err != nil {
		return nil, err
	}

	ctrl, err := session.New(options.Logger, sess, options.BufferSize())
	if err != nil {
		// The session never got workers; don't leak the process.
		_ = sess.Kill()
		_ = sess.Wait()

		return nil, err
	}

	return ctrl, nil
}
