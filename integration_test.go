package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

func startTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(nil, nil)
	go hub.Run()
	srv := httptest.NewServer(SetupRoutes(hub, t.TempDir()))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func sendEnvelope(t *testing.T, conn *websocket.Conn, typ string, data interface{}) {
	t.Helper()
	if err := conn.WriteJSON(Envelope{T: typ, Data: data}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

// awaitEnvelope reads frames until a JSON envelope of the wanted type
// arrives, skipping state broadcasts and unrelated control messages.
func awaitEnvelope(t *testing.T, conn *websocket.Conn, want string) json.RawMessage {
	t.Helper()
	for i := 0; i < 500; i++ {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %q: %v", want, err)
		}
		if msgType != websocket.TextMessage {
			continue
		}
		var env InEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("bad envelope while waiting for %q: %v", want, err)
		}
		if env.T == MsgError {
			t.Fatalf("server error while waiting for %q: %s", want, env.D)
		}
		if env.T == want {
			return env.D
		}
	}
	t.Fatalf("never received %q", want)
	return nil
}

func awaitBinary(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	for i := 0; i < 500; i++ {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for binary state: %v", err)
		}
		if msgType == websocket.BinaryMessage {
			return raw
		}
	}
	t.Fatal("never received a binary state frame")
	return nil
}

func TestCreateJoinAndStateBroadcast(t *testing.T) {
	_, srv := startTestServer(t)
	conn := dialWS(t, srv)

	sendEnvelope(t, conn, MsgCreate, CreateMsg{SessionName: "Test Pit", Mode: int(ModeFFA)})
	var created map[string]string
	if err := json.Unmarshal(awaitEnvelope(t, conn, MsgCreated), &created); err != nil {
		t.Fatalf("created payload: %v", err)
	}
	sid := created["sid"]
	if sid == "" {
		t.Fatal("created must carry a session id")
	}

	sendEnvelope(t, conn, MsgJoin, JoinMsg{Name: "Ana", SessionID: sid, Class: int(ClassSoldier)})
	var welcome WelcomeMsg
	if err := json.Unmarshal(awaitEnvelope(t, conn, MsgWelcome), &welcome); err != nil {
		t.Fatalf("welcome payload: %v", err)
	}
	if welcome.ID == "" || welcome.Class != int(ClassSoldier) {
		t.Errorf("welcome wrong: %+v", welcome)
	}

	var state GameState
	if err := msgpack.Unmarshal(awaitBinary(t, conn), &state); err != nil {
		t.Fatalf("state decode: %v", err)
	}
	found := false
	for _, ps := range state.Players {
		if ps.ID == welcome.ID {
			found = true
			if ps.Name != "Ana" || !ps.Alive {
				t.Errorf("broadcast player wrong: %+v", ps)
			}
		}
	}
	if !found {
		t.Error("the joined player must appear in the broadcast")
	}
}

func TestSessionListAndCheck(t *testing.T) {
	_, srv := startTestServer(t)
	conn := dialWS(t, srv)

	sendEnvelope(t, conn, MsgCreate, CreateMsg{SessionName: "Listed", Mode: int(ModeTDM)})
	var created map[string]string
	json.Unmarshal(awaitEnvelope(t, conn, MsgCreated), &created)

	sendEnvelope(t, conn, MsgList, nil)
	var list []SessionInfo
	if err := json.Unmarshal(awaitEnvelope(t, conn, MsgSessions), &list); err != nil {
		t.Fatalf("sessions payload: %v", err)
	}
	if len(list) != 1 || list[0].ID != created["sid"] || list[0].Name != "Listed" {
		t.Errorf("session list wrong: %+v", list)
	}

	sendEnvelope(t, conn, MsgCheck, CheckMsg{SID: created["sid"]})
	var checked CheckedMsg
	json.Unmarshal(awaitEnvelope(t, conn, MsgChecked), &checked)
	if !checked.Exists || checked.Name != "Listed" {
		t.Errorf("existing session should check out: %+v", checked)
	}

	sendEnvelope(t, conn, MsgCheck, CheckMsg{SID: "nope"})
	json.Unmarshal(awaitEnvelope(t, conn, MsgChecked), &checked)
	if checked.Exists {
		t.Error("unknown sessions must not check out")
	}
}

func TestBinaryInputDecodes(t *testing.T) {
	hub := NewHub(nil, nil)
	sess := hub.sessions.CreateSession("s", ModeFFA, nil, nil)
	sess.Game.Stop()
	p := sess.Game.AddPlayer("p", ClassSoldier)

	c := &Client{hub: hub, sessionID: sess.ID, playerID: p.ID}
	c.handleBinaryInput([]byte{0x01, 0x01 | 0x04, 0x00, 0x64, 0xFF, 0x9C})

	in := p.input
	if !in.Left || in.Right || !in.Jump {
		t.Errorf("flag bits wrong: %+v", in)
	}
	if in.AimX != 100 || in.AimY != -100 {
		t.Errorf("aim must decode as signed 16-bit, got (%v, %v)", in.AimX, in.AimY)
	}
}

func TestQREndpoint(t *testing.T) {
	hub, srv := startTestServer(t)
	sess := hub.sessions.CreateSession("s", ModeFFA, nil, nil)
	defer sess.Game.Stop()
	p := sess.Game.AddPlayer("p", ClassSoldier)

	resp, err := http.Get(srv.URL + "/qr?sid=" + sess.ID + "&pid=" + p.ID)
	if err != nil {
		t.Fatalf("qr request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected a png, got %q", ct)
	}
	if body, _ := io.ReadAll(resp.Body); len(body) == 0 {
		t.Error("qr response must carry image bytes")
	}

	missing, _ := http.Get(srv.URL + "/qr")
	missing.Body.Close()
	if missing.StatusCode != http.StatusBadRequest {
		t.Errorf("missing params should be a 400, got %d", missing.StatusCode)
	}

	gone, _ := http.Get(srv.URL + "/qr?sid=nope&pid=x")
	gone.Body.Close()
	if gone.StatusCode != http.StatusNotFound {
		t.Errorf("unknown sessions should be a 404, got %d", gone.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := startTestServer(t)

	resp, err := http.Get(srv.URL + "/api/metrics")
	if err != nil {
		t.Fatalf("metrics request: %v", err)
	}
	defer resp.Body.Close()

	var m map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("metrics decode: %v", err)
	}
	for _, key := range []string{"clients", "conns", "sessions"} {
		if _, ok := m[key]; !ok {
			t.Errorf("metrics missing %q: %v", key, m)
		}
	}
}
