package event

// Kind identifies one connection lifecycle transition or failure condition.
// The order is append-only: normal transitions first, error kinds after
// ErrorStart. New kinds go at the end of their section.
type Kind int

const (
	KindDisconnected Kind = iota
	KindConnected
	KindReconnecting
	KindResolve
	KindWait
	KindWaitProxy
	KindConnecting
	KindGetConfig
	KindAssignIP
	KindAddRoutes
	KindPause
	KindResume

	KindAuthFailed
	KindCertVerifyFail
	KindClientHalt
	KindClientRestart
	KindConnectionTimeout
	KindInactiveTimeout
	KindDynamicChallenge
	KindProxyNeedCreds
	KindProxyError
	KindTunSetupFailed
	KindTunIfaceCreate
	KindEpkiError
	KindEpkiInvalidAlias

	numKinds
)

// ErrorStart is the boundary: every kind at or after it is an error.
const ErrorStart = KindAuthFailed

// UnknownName is returned for kind values outside the registry. Kind values
// can cross callback boundaries from external engines, so lookup must not
// fail on garbage input.
const UnknownName = "UNKNOWN_EVENT_TYPE"

var kindNames = [numKinds]string{
	KindDisconnected:      "DISCONNECTED",
	KindConnected:         "CONNECTED",
	KindReconnecting:      "RECONNECTING",
	KindResolve:           "RESOLVE",
	KindWait:              "WAIT",
	KindWaitProxy:         "WAIT_PROXY",
	KindConnecting:        "CONNECTING",
	KindGetConfig:         "GET_CONFIG",
	KindAssignIP:          "ASSIGN_IP",
	KindAddRoutes:         "ADD_ROUTES",
	KindPause:             "PAUSE",
	KindResume:            "RESUME",
	KindAuthFailed:        "AUTH_FAILED",
	KindCertVerifyFail:    "CERT_VERIFY_FAIL",
	KindClientHalt:        "CLIENT_HALT",
	KindClientRestart:     "CLIENT_RESTART",
	KindConnectionTimeout: "CONNECTION_TIMEOUT",
	KindInactiveTimeout:   "INACTIVE_TIMEOUT",
	KindDynamicChallenge:  "DYNAMIC_CHALLENGE",
	KindProxyNeedCreds:    "PROXY_NEED_CREDS",
	KindProxyError:        "PROXY_ERROR",
	KindTunSetupFailed:    "TUN_SETUP_FAILED",
	KindTunIfaceCreate:    "TUN_IFACE_CREATE",
	KindEpkiError:         "EPKI_ERROR",
	KindEpkiInvalidAlias:  "EPKI_INVALID_ALIAS",
}

// String returns the canonical name for the kind, or UnknownName when the
// value is outside the registry.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return UnknownName
	}
	return kindNames[k]
}

// IsError reports whether the kind classifies as an error condition.
func (k Kind) IsError() bool {
	return k >= ErrorStart
}

// Kinds returns all registered kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
