package event

import "testing"

func TestPayloadFreeEventsRenderEmpty(t *testing.T) {
	tests := []struct {
		name string
		ev   *Event
		kind Kind
	}{
		{"Disconnected", NewDisconnected(), KindDisconnected},
		{"Reconnecting", NewReconnecting(), KindReconnecting},
		{"Resolve", NewResolve(), KindResolve},
		{"Wait", NewWait(), KindWait},
		{"WaitProxy", NewWaitProxy(), KindWaitProxy},
		{"Connecting", NewConnecting(), KindConnecting},
		{"GetConfig", NewGetConfig(), KindGetConfig},
		{"AssignIP", NewAssignIP(), KindAssignIP},
		{"AddRoutes", NewAddRoutes(), KindAddRoutes},
		{"Pause", NewPause(), KindPause},
		{"Resume", NewResume(), KindResume},
		{"ConnectionTimeout", NewConnectionTimeout(), KindConnectionTimeout},
		{"InactiveTimeout", NewInactiveTimeout(), KindInactiveTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ev.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.ev.Kind(), tt.kind)
			}
			if got := tt.ev.Render(); got != "" {
				t.Errorf("Render() = %q, want empty string", got)
			}
			if tt.ev.Name() != tt.kind.String() {
				t.Errorf("Name() = %q, want %q", tt.ev.Name(), tt.kind.String())
			}
		})
	}
}

func TestReasonEventsRenderVerbatim(t *testing.T) {
	const reason = "bad credentials"

	tests := []struct {
		name string
		ev   *Event
		kind Kind
	}{
		{"AuthFailed", NewAuthFailed(reason), KindAuthFailed},
		{"CertVerifyFail", NewCertVerifyFail(reason), KindCertVerifyFail},
		{"ClientHalt", NewClientHalt(reason), KindClientHalt},
		{"ClientRestart", NewClientRestart(reason), KindClientRestart},
		{"DynamicChallenge", NewDynamicChallenge(reason), KindDynamicChallenge},
		{"ProxyNeedCreds", NewProxyNeedCreds(reason), KindProxyNeedCreds},
		{"ProxyError", NewProxyError(reason), KindProxyError},
		{"TunSetupFailed", NewTunSetupFailed(reason), KindTunSetupFailed},
		{"TunIfaceCreate", NewTunIfaceCreate(reason), KindTunIfaceCreate},
		{"EpkiError", NewEpkiError(reason), KindEpkiError},
		{"EpkiInvalidAlias", NewEpkiInvalidAlias(reason), KindEpkiInvalidAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ev.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.ev.Kind(), tt.kind)
			}
			if got := tt.ev.Render(); got != reason {
				t.Errorf("Render() = %q, want %q", got, reason)
			}
			if !tt.ev.IsError() {
				t.Errorf("IsError() = false for %s", tt.name)
			}
		})
	}
}

func TestConnectedRender(t *testing.T) {
	ev := NewConnected(ConnectedInfo{
		User:        "alice",
		ServerHost:  "vpn.example.com",
		ServerPort:  "443",
		ServerProto: "TCPv4",
		ServerIP:    "1.2.3.4",
		VPNIP4:      "10.0.0.5",
		VPNIP6:      "",
		ClientIP:    "203.0.113.7",
		TunName:     "tun0",
	})

	want := "alice@vpn.example.com:443 (1.2.3.4) via 203.0.113.7/TCPv4 on tun0/10.0.0.5/"
	if got := ev.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if ev.IsError() {
		t.Error("CONNECTED must not classify as an error")
	}
}

func TestConnectedRenderWithIPv6(t *testing.T) {
	ev := NewConnected(ConnectedInfo{
		User:        "godot",
		ServerHost:  "foo.bar.gov",
		ServerPort:  "443",
		ServerProto: "UDPv4",
		ServerIP:    "1.2.3.4",
		VPNIP4:      "5.5.1.1",
		VPNIP6:      "fd00::1",
		ClientIP:    "9.9.9.9",
		TunName:     "tun0",
	})

	want := "godot@foo.bar.gov:443 (1.2.3.4) via 9.9.9.9/UDPv4 on tun0/5.5.1.1/fd00::1"
	if got := ev.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestConnectedDowncast(t *testing.T) {
	info := ConnectedInfo{User: "alice", TunName: "tun0"}
	connected := NewConnected(info)

	got, ok := connected.Connected()
	if !ok {
		t.Fatal("Connected() reported false for a CONNECTED event")
	}
	if got.User != "alice" || got.TunName != "tun0" {
		t.Errorf("Connected() returned wrong payload: %+v", got)
	}

	for _, ev := range []*Event{NewResolve(), NewAuthFailed("denied"), NewDisconnected()} {
		if info, ok := ev.Connected(); ok || info != nil {
			t.Errorf("Connected() must fail for %s, got (%v, %v)", ev.Name(), info, ok)
		}
	}
}

func TestConnectedImmutableAfterConstruction(t *testing.T) {
	info := ConnectedInfo{User: "alice"}
	ev := NewConnected(info)

	info.User = "mallory"

	got, _ := ev.Connected()
	if got.User != "alice" {
		t.Errorf("Event payload changed after construction: got user %q", got.User)
	}
}
