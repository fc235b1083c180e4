// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package firereq provides a cancellable, policy-driven single-request
execution engine: given a declarative descriptor of an HTTP call, it
performs the call over an abstracted connection, classifies the
outcome, decodes or rejects the response, and exposes the result as a
future value that can be cancelled before completion.

Create a Client and submit a descriptor to begin:

	d, err := request.NewDescriptor("GET", "https://example.com/object", nil)
	...
	d.Params.Set("alt", "media")
	d.Timeout = 30 * time.Second
	d.Decode = func(r request.Response) (interface{}, error) {
		return string(r.Body()), nil
	}
	client := &firereq.Client{Version: "1.2.3"}
	h := client.Submit(d, firereq.Credentials{AuthToken: token})

Submit returns immediately; observe the eventual outcome through the
Handle, from as many subscribers as needed:

	outcome := <-h.Subscribe()
	...
	v, err := h.Wait(ctx)

Cancel a submission at any time before it resolves; the active
connection is aborted, no further retry is scheduled, and the Handle
rejects with a CodeCancelled error:

	h.Cancel()

For control over how attempts are sent, supply a custom
ConnectionFactory; the default sends through http.DefaultClient:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	client := &firereq.Client{
		Factory: firereq.NewHTTPConnectionFactory(doer),
	}

For control over retry decisions and backoff timing, create a custom
retry policy using components from package retry:

	waiter := retry.NewExpWaiter(250*time.Millisecond, 5*time.Second, time.Now())
	decider := retry.TransientErr.And(retry.Before(time.Minute))
	client := &firereq.Client{
		RetryPolicy: retry.NewPolicy(decider, waiter),
	}

To hook into the fine-grained details of a submission's lifecycle, for
example to emit metrics (package metrics) or structured logs (package
logging), install handlers:

	handlers := &firereq.HandlerGroup{}
	handlers.PushBack(firereq.BeforeAttempt, firereq.HandlerFunc(
		func(_ firereq.Event, e *request.Execution) {
			fmt.Printf("attempt %d to %s\n", e.Attempt, e.URL)
		}),
	)
	client := &firereq.Client{Handlers: handlers}

Errors produced by the engine are classified *Error values carrying a
Code (transport failure, unacceptable status, timeout, cancellation,
or retry budget exhaustion). Errors returned by a descriptor's Decode
function are never wrapped: they reach the Handle verbatim.
*/
package firereq
