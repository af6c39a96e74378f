// Package scriptsdk drives interactive script sessions for a host UI.
//
// The host launches a user-authored script as a child process and converses
// with it over a line-delimited JSON protocol on the script's stdin/stdout.
// The script asks for prompts (a value from a list of choices, or an HTML
// panel acknowledgment); the host answers with submits. All of the pipe I/O
// happens on two dedicated workers, so the UI's render loop never blocks: it
// only drains events with Poll and enqueues answers with Submit.
//
// # Basic Usage
//
//	ctx := context.Background()
//	ctrl, err := scriptsdk.Launch(ctx, "/path/to/script",
//	    scriptsdk.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Cancel()
//
//	for {
//	    for _, event := range ctrl.Poll() { // every UI tick
//	        switch e := event.(type) {
//	        case *scriptsdk.ShowArg:
//	            // render the prompt; later: ctrl.Submit(e.ID, &value)
//	        case *scriptsdk.ShowDiv:
//	            // render the HTML panel; later: ctrl.Submit(e.ID, nil)
//	        case *scriptsdk.OpenBrowser:
//	            // open e.URL externally
//	        case *scriptsdk.HideWindow:
//	            // hide the window; the session stays alive
//	        case *scriptsdk.ScriptExit:
//	            return
//	        }
//	    }
//	    // ... render ...
//	}
//
// # Ordering and Cancellation
//
// Events arrive in exactly the order the script emitted them, and submits
// reach the script in exactly the order Submit was called. Nothing beyond
// that FIFO guarantee is enforced: answering an old prompt id, or one that
// never existed, is between the UI and the script.
//
// Cancel ends a session at any time: it sends the script a best-effort exit
// message, kills the script's whole process group regardless, and drops both
// queues. Calling it twice is safe.
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	ctrl, err := scriptsdk.Launch(ctx, path)
//	if err != nil {
//	    if launchErr, ok := errors.AsType[*scriptsdk.LaunchError](err); ok {
//	        log.Fatalf("script failed to start: %v", launchErr)
//	    }
//	    log.Fatal(err)
//	}
//
// A malformed line from the script is logged and skipped, never fatal; the
// script closing its output simply ends the session with a ScriptExit event.
package scriptsdk
