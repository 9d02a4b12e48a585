package engine

import (
	"bufio"
	"context"
	"fmt"
	"net/http"

	"github.com/netresearch/dockwatch/core"
)

// Client streams container events from the engine and issues restart
// requests. Implemented by socketClient; see spec section 4.1.
type Client interface {
	// Stream connects to the event endpoint and pushes decoded events
	// to the returned channel until ctx is cancelled or the connection
	// is lost, at which point a single error is sent on the error
	// channel and both channels are closed.
	Stream(ctx context.Context) (<-chan core.RawEvent, <-chan error)

	// Restart issues a restart request for containerID over a new,
	// short-lived connection.
	Restart(ctx context.Context, containerID string) error
}

// socketClient talks to the engine over its ipc:// or tcp:// socket
// using hand-rolled HTTP/1.1 requests, exactly as original_source's
// DockerMon.watch/RestartService.do_restart.
type socketClient struct {
	socketURL string
	log       core.Logger
}

// NewClient returns a Client dialing socketURL ("ipc://<path>" or
// "tcp://<host>:<port>").
func NewClient(socketURL string, log core.Logger) Client {
	if log == nil {
		log = &core.SimpleLogger{}
	}
	return &socketClient{socketURL: socketURL, log: log}
}

func (c *socketClient) Stream(ctx context.Context) (<-chan core.RawEvent, <-chan error) {
	events := make(chan core.RawEvent)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)

		conn, host, err := dial(c.socketURL)
		if err != nil {
			errs <- err
			return
		}
		defer conn.Close()

		go func() {
			<-ctx.Done()
			conn.Close()
		}()

		req := fmt.Sprintf("GET /events HTTP/1.1\nHost: %s\n\n", host)
		if _, err := conn.Write([]byte(req)); err != nil {
			errs <- core.WrapProtocolError("write events request", err.Error())
			return
		}

		r := bufio.NewReader(conn)
		status, reason, err := readHTTPHeader(r)
		if err != nil {
			errs <- core.WrapProtocolError("read events response header", err.Error())
			return
		}
		if status != http.StatusOK {
			errs <- core.WrapProtocolError("GET /events", fmt.Sprintf("%d %s", status, reason))
			return
		}

		frames := newFrameReader(r)
		for {
			payload, err := frames.next()
			if err != nil {
				select {
				case <-ctx.Done():
					errs <- ctx.Err()
				default:
					errs <- core.WrapStreamClosedError(c.socketURL)
				}
				return
			}

			raw, err := core.DecodeRawEvent(payload)
			if err != nil {
				c.log.Warningf("dropping malformed event: %v", err)
				continue
			}

			select {
			case events <- raw:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return events, errs
}

func (c *socketClient) Restart(ctx context.Context, containerID string) error {
	conn, host, err := dial(c.socketURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	req := fmt.Sprintf("POST /containers/%s/restart?t=5 HTTP/1.1\nHost: %s\n\n", containerID, host)
	if _, err := conn.Write([]byte(req)); err != nil {
		return core.WrapProtocolError("write restart request", err.Error())
	}

	r := bufio.NewReader(conn)
	status, reason, err := readHTTPHeader(r)
	if err != nil {
		return core.WrapProtocolError("read restart response header", err.Error())
	}
	if status != http.StatusNoContent {
		return core.WrapProtocolError("POST /containers/"+containerID+"/restart", fmt.Sprintf("%d %s", status, reason))
	}
	return nil
}
