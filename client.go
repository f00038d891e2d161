package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 50
	maxNameLen        = 16
)

// Client represents a WebSocket connection
type Client struct {
	hub          *Hub
	conn         *websocket.Conn
	send         chan []byte
	playerID     string
	sessionID    string
	remoteAddr   string
	isController bool
	msgCount     int
	msgResetAt   time.Time
	// Auth state
	authPlayerID int64  // 0 = unauthenticated/guest
	authUsername string // "" = unauthenticated
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		// Binary input messages: 6 bytes [0x01, flags, ax_hi, ax_lo, ay_hi, ay_lo]
		if msgType == websocket.BinaryMessage && len(message) == 6 && message[0] == 0x01 {
			c.handleBinaryInput(message)
		} else {
			c.handleMessage(message)
		}
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// Check for binary marker (0xFF prefix from SendBinary)
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message
// Prefixes with 0xFF marker byte so WritePump can distinguish from text
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF // binary marker
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	switch env.T {
	case MsgList:
		c.handleList()
	case MsgCreate:
		c.handleCreate(env.D)
	case MsgJoin:
		c.handleJoin(env.D)
	case MsgInput:
		c.handleInput(env.D)
	case MsgLeave:
		c.handleLeave()
	case MsgCheck:
		c.handleCheck(env.D)
	case MsgControl:
		c.handleControl(env.D)
	case MsgReady:
		c.handleReady()
	case MsgTeamPick:
		c.handleTeamPick(env.D)
	case MsgRematch:
		c.handleRematch()
	case MsgRegister:
		c.handleRegister(env.D)
	case MsgLogin:
		c.handleLogin(env.D)
	case MsgGuest:
		c.handleGuest()
	case MsgAuth:
		c.handleAuth(env.D)
	case MsgProfile:
		c.handleProfile()
	case MsgStore:
		c.handleStore()
	case MsgBuy:
		c.handleBuy(env.D)
	}
}

func (c *Client) handleList() {
	sessions := c.hub.sessions.ListSessions()
	c.SendJSON(Envelope{T: MsgSessions, Data: sessions})
}

func (c *Client) handleCreate(data json.RawMessage) {
	var msg CreateMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sname := msg.SessionName
	if sname == "" {
		sname = "Scrapyard Brawl"
	}
	if len(sname) > 30 {
		sname = sname[:30]
	}

	mode := GameMode(msg.Mode)
	if mode < ModeFFA || mode > ModeTDM {
		mode = ModeFFA
	}
	sess := c.hub.sessions.CreateSession(sname, mode, c.hub.db, c.hub.analytics)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "too many active sessions"}})
		return
	}

	bots := msg.Bots
	if bots > 8 {
		bots = 8
	}
	for i := 0; i < bots; i++ {
		class := PlayerClass(i % len(Classes))
		if sess.Game.AddBot(BotName(i), class) == nil {
			break
		}
	}

	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtSessionCreate, c.authPlayerID, sess.ID, "")
	}
	c.SendJSON(Envelope{T: MsgCreated, Data: map[string]string{"sid": sess.ID}})
}

func (c *Client) handleJoin(data json.RawMessage) {
	var msg JoinMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	name := msg.Name
	if name == "" {
		name = "Drifter"
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	class := PlayerClass(msg.Class)
	if class < ClassScout || class > ClassSupport {
		class = ClassSoldier
	}

	sess := c.hub.sessions.GetSession(msg.SessionID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session not found"}})
		return
	}

	player := sess.Game.AddPlayer(name, class)
	if player == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session full"}})
		return
	}
	c.playerID = player.ID
	c.sessionID = sess.ID

	// Link auth to in-game player
	player.AuthPlayerID = c.authPlayerID

	sess.Game.SetClient(player.ID, c)

	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtSessionJoin, c.authPlayerID, sess.ID, "")
	}
	c.SendJSON(Envelope{T: MsgJoined, Data: map[string]string{"sid": sess.ID}})
	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{
		ID:    player.ID,
		Class: int(player.Class),
		Team:  player.Team,
		Arena: sess.Game.arena.Name,
	}})
}

// handleBinaryInput decodes a compact 6-byte binary input message
func (c *Client) handleBinaryInput(msg []byte) {
	if c.sessionID == "" || c.playerID == "" {
		return
	}
	// Decode: [0x01, flags, ax_hi, ax_lo, ay_hi, ay_lo]
	flags := msg[1]
	ax := float64(int16(uint16(msg[2])<<8 | uint16(msg[3])))
	ay := float64(int16(uint16(msg[4])<<8 | uint16(msg[5])))

	input := ClientInput{
		Left:    flags&0x01 != 0,
		Right:   flags&0x02 != 0,
		Jump:    flags&0x04 != 0,
		Fire:    flags&0x08 != 0,
		Grenade: flags&0x10 != 0,
		AimX:    ax,
		AimY:    ay,
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleInput(c.playerID, input)
}

func (c *Client) handleInput(data json.RawMessage) {
	if c.sessionID == "" || c.playerID == "" {
		return
	}
	var input ClientInput
	if err := json.Unmarshal(data, &input); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleInput(c.playerID, input)
}

func (c *Client) handleCheck(data json.RawMessage) {
	var msg CheckMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(msg.SID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{SID: msg.SID, Exists: false}})
		return
	}
	c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{
		SID:     msg.SID,
		Exists:  true,
		Name:    sess.Name,
		Players: sess.Game.PlayerCount(),
	}})
}

func (c *Client) handleLeave() {
	if c.sessionID != "" {
		if c.isController {
			sess := c.hub.sessions.GetSession(c.sessionID)
			if sess != nil {
				sess.Game.RemoveController(c.playerID)
			}
		} else {
			c.hub.sessions.RemovePlayer(c.sessionID, c.playerID)
		}
		c.sessionID = ""
		c.playerID = ""
		c.isController = false
	}
}

func (c *Client) handleControl(data json.RawMessage) {
	var msg ControlMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(msg.SID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session not found"}})
		return
	}
	if !sess.Game.HasPlayer(msg.PlayerID) {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "player not found"}})
		return
	}

	c.sessionID = msg.SID
	c.playerID = msg.PlayerID
	c.isController = true

	sess.Game.SetController(msg.PlayerID, c)
	c.SendJSON(Envelope{T: MsgControlOK, Data: map[string]string{"pid": msg.PlayerID}})
}

func (c *Client) handleReady() {
	if c.sessionID == "" || c.playerID == "" {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleReady(c.playerID)
}

func (c *Client) handleTeamPick(data json.RawMessage) {
	if c.sessionID == "" || c.playerID == "" {
		return
	}
	var msg TeamPickMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleTeamPick(c.playerID, msg.Team)
}

func (c *Client) handleRematch() {
	if c.sessionID == "" || c.playerID == "" {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleRematch(c.playerID)
}

func (c *Client) handleRegister(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg RegisterMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Register(msg.Username, msg.Password)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
		return
	}
	c.setAuthed(id, msg.Username)
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtRegister, id, "", "")
	}
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:    token,
		Username: msg.Username,
		PlayerID: id,
	}})
}

func (c *Client) handleLogin(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg LoginMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Login(msg.Username, msg.Password, c.remoteAddr)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
		return
	}
	c.setAuthed(id, msg.Username)
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtLogin, id, "", "")
	}
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:    token,
		Username: msg.Username,
		PlayerID: id,
	}})
}

func (c *Client) handleGuest() {
	if c.hub.auth == nil {
		return
	}
	id, username, token, err := c.hub.auth.Guest()
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "guest login failed"}})
		return
	}
	c.setAuthed(id, username)
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtGuest, id, "", "")
	}
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:    token,
		Username: username,
		PlayerID: id,
	}})
}

func (c *Client) handleAuth(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg AuthMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, username, err := c.hub.auth.ValidateToken(msg.Token)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "invalid token"}})
		return
	}
	c.setAuthed(id, username)
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:    msg.Token,
		Username: username,
		PlayerID: id,
	}})
}

func (c *Client) setAuthed(id int64, username string) {
	c.authPlayerID = id
	c.authUsername = username
	c.hub.SetOnline(id, c)
}

func (c *Client) handleProfile() {
	if c.hub.db == nil || c.authPlayerID == 0 {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "not authenticated"}})
		return
	}
	stats, err := c.hub.db.GetStats(c.authPlayerID)
	if err != nil || stats == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "profile not found"}})
		return
	}
	credits, _ := c.hub.db.GetCredits(c.authPlayerID)
	c.SendJSON(Envelope{T: MsgProfileData, Data: ProfileDataMsg{
		Username: c.authUsername,
		Level:    stats.Level,
		XP:       stats.XP,
		Kills:    stats.Kills,
		Deaths:   stats.Deaths,
		Wins:     stats.Wins,
		Losses:   stats.Losses,
		Playtime: stats.Playtime,
		Credits:  credits,
	}})
}

func (c *Client) handleStore() {
	if c.hub.db == nil || c.authPlayerID == 0 {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "not authenticated"}})
		return
	}
	owned, err := c.hub.db.GetUnlocks(c.authPlayerID)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "store unavailable"}})
		return
	}
	credits, _ := c.hub.db.GetCredits(c.authPlayerID)
	c.SendJSON(Envelope{T: MsgStoreData, Data: StoreDataMsg{
		Items:   StoreCatalog,
		Owned:   owned,
		Credits: credits,
	}})
}

func (c *Client) handleBuy(data json.RawMessage) {
	if c.hub.db == nil || c.authPlayerID == 0 {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "not authenticated"}})
		return
	}
	var msg BuyMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	item, ok := StoreCatalogMap[msg.ItemID]
	if !ok {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "unknown item"}})
		return
	}
	paid, err := c.hub.db.SpendCredits(c.authPlayerID, item.Price)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "purchase failed"}})
		return
	}
	if !paid {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "not enough credits"}})
		return
	}
	if err := c.hub.db.AddUnlock(c.authPlayerID, item.ID); err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "purchase failed"}})
		return
	}
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtPurchase, c.authPlayerID, "", `{"item_id":"`+item.ID+`"}`)
	}
	credits, _ := c.hub.db.GetCredits(c.authPlayerID)
	c.SendJSON(Envelope{T: MsgBought, Data: BoughtMsg{ItemID: item.ID, Credits: credits}})
}
