package event

import "testing"

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDisconnected, "DISCONNECTED"},
		{KindConnected, "CONNECTED"},
		{KindReconnecting, "RECONNECTING"},
		{KindResolve, "RESOLVE"},
		{KindWait, "WAIT"},
		{KindWaitProxy, "WAIT_PROXY"},
		{KindConnecting, "CONNECTING"},
		{KindGetConfig, "GET_CONFIG"},
		{KindAssignIP, "ASSIGN_IP"},
		{KindAddRoutes, "ADD_ROUTES"},
		{KindPause, "PAUSE"},
		{KindResume, "RESUME"},
		{KindAuthFailed, "AUTH_FAILED"},
		{KindCertVerifyFail, "CERT_VERIFY_FAIL"},
		{KindClientHalt, "CLIENT_HALT"},
		{KindClientRestart, "CLIENT_RESTART"},
		{KindConnectionTimeout, "CONNECTION_TIMEOUT"},
		{KindInactiveTimeout, "INACTIVE_TIMEOUT"},
		{KindDynamicChallenge, "DYNAMIC_CHALLENGE"},
		{KindProxyNeedCreds, "PROXY_NEED_CREDS"},
		{KindProxyError, "PROXY_ERROR"},
		{KindTunSetupFailed, "TUN_SETUP_FAILED"},
		{KindTunIfaceCreate, "TUN_IFACE_CREATE"},
		{KindEpkiError, "EPKI_ERROR"},
		{KindEpkiInvalidAlias, "EPKI_INVALID_ALIAS"},
	}

	if len(tests) != int(numKinds) {
		t.Fatalf("Test table covers %d kinds, registry has %d", len(tests), numKinds)
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindNamesUnique(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		if prev, dup := seen[name]; dup {
			t.Errorf("Kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKindOutOfRange(t *testing.T) {
	for _, k := range []Kind{Kind(-1), numKinds, Kind(1000)} {
		if got := k.String(); got != UnknownName {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, UnknownName)
		}
	}
}

func TestIsErrorBoundary(t *testing.T) {
	for _, k := range Kinds() {
		want := k >= ErrorStart
		if got := k.IsError(); got != want {
			t.Errorf("Kind %s: IsError() = %v, want %v", k, got, want)
		}
	}

	if KindResume.IsError() {
		t.Error("RESUME must sit just below the error boundary")
	}
	if !KindAuthFailed.IsError() {
		t.Error("AUTH_FAILED must be the first error kind")
	}
}
