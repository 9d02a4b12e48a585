package engine

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/docker/docker/client"

	"github.com/netresearch/dockwatch/core"
)

// dial opens a connection to socketURL, which is either "ipc://<path>"
// or "tcp://<host>:<port>" per spec section 4.1. hostHeader is the
// value to send as the request's Host header.
func dial(socketURL string) (conn net.Conn, hostHeader string, err error) {
	// client.ParseHostURL speaks Docker's own "unix://" scheme; ipc://
	// is this project's spelling of the same thing.
	normalized := socketURL
	if strings.HasPrefix(normalized, "ipc://") {
		normalized = "unix://" + strings.TrimPrefix(normalized, "ipc://")
	}

	parsed, err := client.ParseHostURL(normalized)
	if err != nil {
		return nil, "", core.WrapConfigError("socket URL "+socketURL, err)
	}

	switch parsed.Scheme {
	case "unix":
		// ParseHostURL keeps a unix socket's path in Host, not Path.
		conn, err = net.Dial("unix", parsed.Host)
		if err != nil {
			return nil, "", core.WrapProtocolError("dial "+socketURL, err.Error())
		}
		return conn, "localhost", nil
	case "tcp":
		conn, err = net.Dial("tcp", parsed.Host)
		if err != nil {
			return nil, "", core.WrapProtocolError("dial "+socketURL, err.Error())
		}
		hostname, herr := os.Hostname()
		if herr != nil {
			hostname = parsed.Host
		}
		return conn, hostname, nil
	default:
		return nil, "", core.WrapConfigError("socket URL "+socketURL, fmt.Errorf("unsupported scheme %q", parsed.Scheme))
	}
}

// readHTTPHeader reads up to and including the blank line terminating
// an HTTP/1.1 response header, returning the status line's code and
// reason phrase; r is left positioned at the start of the body.
func readHTTPHeader(r *bufio.Reader) (status int, reason string, err error) {
	statusLine, err := r.ReadString('\n')
	if err != nil {
		return 0, "", err
	}
	statusLine = trimCRLF(statusLine)

	fields := strings.SplitN(statusLine, " ", 3)
	if len(fields) < 2 {
		return 0, "", core.WrapProtocolError("read status line", statusLine)
	}
	if _, err := fmt.Sscanf(fields[1], "%d", &status); err != nil {
		return 0, "", core.WrapProtocolError("parse status code", fields[1])
	}
	if len(fields) == 3 {
		reason = fields[2]
	}

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return 0, "", err
		}
		if trimCRLF(line) == "" {
			break
		}
	}

	return status, reason, nil
}
