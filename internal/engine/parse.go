package engine

import (
	"strings"

	"github.com/hibeam-dev/chaski_client/internal/event"
)

// connectState accumulates the pieces of the Connected summary as they show
// up in the process output, and dedupes transition events that the process
// logs more than once (route additions in particular).
type connectState struct {
	info event.ConnectedInfo

	waitSeen      bool
	connectSeen   bool
	getConfigSeen bool
	assignIPSeen  bool
	addRoutesSeen bool
}

func newConnectState(host, port, proto string) *connectState {
	return &connectState{
		info: event.ConnectedInfo{
			ServerHost:  host,
			ServerPort:  port,
			ServerProto: proto,
		},
	}
}

// parseLine maps one output line to a lifecycle event, or nil when the line
// is log-only. Marker matching follows the classic OpenVPN client log.
func (s *connectState) parseLine(line string) *event.Event {
	switch {
	case strings.Contains(line, "Initialization Sequence Completed"):
		return event.NewConnected(s.info)

	// A CRV1 challenge arrives inside an AUTH_FAILED control message, so it
	// has to be recognized before the plain auth failure.
	case strings.Contains(line, "CRV1:") || strings.Contains(line, "CHALLENGE:"):
		return event.NewDynamicChallenge(strings.TrimSpace(line))

	case strings.Contains(line, "AUTH_FAILED"):
		return event.NewAuthFailed(strings.TrimSpace(line))

	case strings.Contains(line, "VERIFY ERROR") || strings.Contains(line, "certificate verify failed"):
		return event.NewCertVerifyFail(strings.TrimSpace(line))

	case strings.Contains(line, "server-pushed-halt") || strings.Contains(line, "Halt command"):
		s.resetTransitions()
		return event.NewClientHalt(strings.TrimSpace(line))

	// A server-pushed restart starts a fresh attempt, so the transition
	// events have to fire again for it.
	case strings.Contains(line, "server-pushed-restart") || strings.Contains(line, "Restart command"):
		s.resetTransitions()
		return event.NewClientRestart(strings.TrimSpace(line))

	case strings.Contains(line, "Cannot allocate TUN/TAP") || strings.Contains(line, "Cannot open TUN"):
		return event.NewTunIfaceCreate(strings.TrimSpace(line))

	case strings.Contains(line, "ifconfig failed") || strings.Contains(line, "ip addr add failed"):
		return event.NewTunSetupFailed(strings.TrimSpace(line))

	case strings.Contains(line, "Proxy requires basic authentication") ||
		strings.Contains(line, "Proxy requires authentication"):
		return event.NewProxyNeedCreds(strings.TrimSpace(line))

	case strings.Contains(line, "HTTP proxy") &&
		(strings.Contains(line, "failed") || strings.Contains(line, "error")):
		return event.NewProxyError(strings.TrimSpace(line))

	case strings.Contains(line, "Connecting to HTTP proxy"):
		return event.NewWaitProxy()

	case strings.Contains(line, "Inactivity timeout (--inactive)"):
		return event.NewInactiveTimeout()

	case strings.Contains(line, "TLS key negotiation failed to occur") ||
		strings.Contains(line, "Connection timed out"):
		return event.NewConnectionTimeout()

	case strings.Contains(line, "process restarting"):
		s.resetTransitions()
		return event.NewReconnecting()

	case strings.Contains(line, "link local"):
		if !s.waitSeen {
			s.waitSeen = true
			return event.NewWait()
		}
		return nil

	case strings.Contains(line, "link remote:"):
		if ip := bracketAddr(line); ip != "" {
			s.info.ServerIP = ip
		}
		if !s.connectSeen {
			s.connectSeen = true
			return event.NewConnecting()
		}
		return nil

	case strings.Contains(line, "PUSH: Received control message"):
		if !s.getConfigSeen {
			s.getConfigSeen = true
			return event.NewGetConfig()
		}
		return nil

	case strings.Contains(line, "TUN/TAP device") && strings.Contains(line, "opened"):
		s.info.TunName = tunDeviceName(line)
		return nil

	case strings.Contains(line, "net_addr_v4_add:"):
		s.info.VPNIP4 = netAddrArg(line, "net_addr_v4_add:")
		if !s.assignIPSeen {
			s.assignIPSeen = true
			return event.NewAssignIP()
		}
		return nil

	case strings.Contains(line, "net_addr_v6_add:"):
		s.info.VPNIP6 = netAddrArg(line, "net_addr_v6_add:")
		return nil

	case strings.Contains(line, "net_route_v4_add:") || strings.Contains(line, "route add"):
		if !s.addRoutesSeen {
			s.addRoutesSeen = true
			return event.NewAddRoutes()
		}
		return nil
	}

	return nil
}

// resetTransitions rearms the per-attempt transition events after the
// process announces a restart.
func (s *connectState) resetTransitions() {
	s.waitSeen = false
	s.connectSeen = false
	s.getConfigSeen = false
	s.assignIPSeen = false
	s.addRoutesSeen = false
}

// bracketAddr extracts the address from lines like
// "UDPv4 link remote: [AF_INET]1.2.3.4:1194".
func bracketAddr(line string) string {
	idx := strings.LastIndex(line, "]")
	if idx < 0 || idx+1 >= len(line) {
		return ""
	}
	addr := line[idx+1:]
	if colon := strings.LastIndex(addr, ":"); colon >= 0 {
		addr = addr[:colon]
	}
	return strings.TrimSpace(addr)
}

// tunDeviceName extracts the device from "TUN/TAP device tun0 opened".
func tunDeviceName(line string) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "device" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

// netAddrArg extracts the address from "net_addr_v4_add: 10.8.0.2/24 dev tun0".
func netAddrArg(line, marker string) string {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(line[idx+len(marker):])
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	addr := fields[0]
	if slash := strings.Index(addr, "/"); slash >= 0 {
		addr = addr[:slash]
	}
	return addr
}
