package event

import "fmt"

// ConnectedInfo carries the structured summary of an established tunnel.
// VPNIP6 is empty when no IPv6 address was assigned.
type ConnectedInfo struct {
	User        string
	ServerHost  string
	ServerPort  string
	ServerProto string
	ServerIP    string
	VPNIP4      string
	VPNIP6      string
	ClientIP    string
	TunName     string
}

// Summary renders the stable single-line connection summary, e.g.
// "godot@foo.bar.gov:443 (1.2.3.4) via 5.5.5.5/TCPv4 on tun0/5.5.1.1/".
// Existing tooling parses this layout; do not change it.
func (c *ConnectedInfo) Summary() string {
	return fmt.Sprintf("%s@%s:%s (%s) via %s/%s on %s/%s/%s",
		c.User, c.ServerHost, c.ServerPort, c.ServerIP,
		c.ClientIP, c.ServerProto, c.TunName, c.VPNIP4, c.VPNIP6)
}

// Event is one immutable record of a lifecycle transition or failure.
// Events are shared by pointer between the engine, sinks and listeners;
// nothing mutates them after construction.
type Event struct {
	kind   Kind
	reason string
	info   *ConnectedInfo
}

func (e *Event) Kind() Kind {
	return e.kind
}

func (e *Event) Name() string {
	return e.kind.String()
}

func (e *Event) IsError() bool {
	return e.kind.IsError()
}

// Render returns the human-readable payload of the event. Kinds without a
// payload render as the empty string, never as a failure.
func (e *Event) Render() string {
	if e.info != nil {
		return e.info.Summary()
	}
	return e.reason
}

// Connected returns the structured payload when, and only when, the event
// kind is KindConnected.
func (e *Event) Connected() (*ConnectedInfo, bool) {
	if e.kind != KindConnected {
		return nil, false
	}
	return e.info, true
}

func newEvent(k Kind) *Event {
	return &Event{kind: k}
}

func newReasonEvent(k Kind, reason string) *Event {
	return &Event{kind: k, reason: reason}
}

// Payload-free transitions.

func NewDisconnected() *Event { return newEvent(KindDisconnected) }
func NewReconnecting() *Event { return newEvent(KindReconnecting) }
func NewResolve() *Event      { return newEvent(KindResolve) }
func NewWait() *Event         { return newEvent(KindWait) }
func NewWaitProxy() *Event    { return newEvent(KindWaitProxy) }
func NewConnecting() *Event   { return newEvent(KindConnecting) }
func NewGetConfig() *Event    { return newEvent(KindGetConfig) }
func NewAssignIP() *Event     { return newEvent(KindAssignIP) }
func NewAddRoutes() *Event    { return newEvent(KindAddRoutes) }
func NewPause() *Event        { return newEvent(KindPause) }
func NewResume() *Event       { return newEvent(KindResume) }

// Payload-free timeouts; these sit on the error side of the boundary.

func NewConnectionTimeout() *Event { return newEvent(KindConnectionTimeout) }
func NewInactiveTimeout() *Event   { return newEvent(KindInactiveTimeout) }

// NewConnected copies the info so the event stays immutable even if the
// caller keeps mutating its own struct.
func NewConnected(info ConnectedInfo) *Event {
	return &Event{kind: KindConnected, info: &info}
}

// Failure events carrying a human-readable reason.

func NewAuthFailed(reason string) *Event       { return newReasonEvent(KindAuthFailed, reason) }
func NewCertVerifyFail(reason string) *Event   { return newReasonEvent(KindCertVerifyFail, reason) }
func NewClientHalt(reason string) *Event       { return newReasonEvent(KindClientHalt, reason) }
func NewClientRestart(reason string) *Event    { return newReasonEvent(KindClientRestart, reason) }
func NewDynamicChallenge(reason string) *Event { return newReasonEvent(KindDynamicChallenge, reason) }
func NewProxyNeedCreds(reason string) *Event   { return newReasonEvent(KindProxyNeedCreds, reason) }
func NewProxyError(reason string) *Event       { return newReasonEvent(KindProxyError, reason) }
func NewTunSetupFailed(reason string) *Event   { return newReasonEvent(KindTunSetupFailed, reason) }
func NewTunIfaceCreate(reason string) *Event   { return newReasonEvent(KindTunIfaceCreate, reason) }
func NewEpkiError(reason string) *Event        { return newReasonEvent(KindEpkiError, reason) }
func NewEpkiInvalidAlias(reason string) *Event { return newReasonEvent(KindEpkiInvalidAlias, reason) }
