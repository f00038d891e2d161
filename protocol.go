package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create"  // create session
	MsgList     = "list"    // list sessions
	MsgCheck    = "check"   // check if session exists
	MsgControl  = "control" // phone controller attach
	MsgReady    = "ready"
	MsgTeamPick = "team"
	MsgRematch  = "rematch"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgGuest    = "guest"
	MsgAuth     = "auth"
	MsgProfile  = "profile"
	MsgStore    = "store"
	MsgBuy      = "buy"
)

// Server -> Client message types
const (
	MsgState       = "state"
	MsgWelcome     = "welcome"
	MsgDeath       = "death"
	MsgKill        = "kill"
	MsgSessions    = "sessions"
	MsgJoined      = "joined"
	MsgCreated     = "created"
	MsgError       = "error"
	MsgChecked     = "checked"
	MsgControlOK   = "control_ok"
	MsgCtrlOn      = "ctrl_on"
	MsgCtrlOff     = "ctrl_off"
	MsgMatch       = "match"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
	MsgUnlock      = "unlock"
	MsgStoreData   = "store_data"
	MsgBought      = "bought"
)

// Envelope wraps all outgoing control messages with a type field. The
// per-tick state broadcast bypasses this and goes out as msgpack binary.
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids
// double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the held-key state, sent by the client at 20Hz
type ClientInput struct {
	Left    bool    `json:"l"`
	Right   bool    `json:"r"`
	Jump    bool    `json:"j"`
	Fire    bool    `json:"f"`
	Grenade bool    `json:"g"`
	AimX    float64 `json:"ax"` // aim direction, not normalised
	AimY    float64 `json:"ay"`
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	Class     int    `json:"cls"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Mode        int    `json:"mode"`
	Bots        int    `json:"bots"`
}

// PlayerState is broadcast per player each tick
type PlayerState struct {
	ID       string  `json:"id" msgpack:"id"`
	Name     string  `json:"n" msgpack:"n"`
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	HP       int     `json:"hp" msgpack:"hp"`
	MaxHP    int     `json:"mhp" msgpack:"mhp"`
	Class    int     `json:"c" msgpack:"c"`
	Team     int     `json:"t" msgpack:"t"`
	Score    int     `json:"sc" msgpack:"sc"`
	Facing   int     `json:"fc" msgpack:"fc"`
	OnGround bool    `json:"og" msgpack:"og"`
	Alive    bool    `json:"a" msgpack:"a"`
	Bot      bool    `json:"b,omitempty" msgpack:"b"`
}

// BulletState is broadcast per live bullet. PX/PY is the previous position
// so clients can draw tracers.
type BulletState struct {
	ID int     `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	PX float64 `json:"px" msgpack:"px"`
	PY float64 `json:"py" msgpack:"py"`
}

// CrateState is broadcast per supply crate
type CrateState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// GrenadeState is broadcast per live grenade
type GrenadeState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// PickupState is broadcast per pickup
type PickupState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// GameState is the full state broadcast
type GameState struct {
	Players  []PlayerState  `json:"p" msgpack:"p"`
	Bullets  []BulletState  `json:"bl" msgpack:"bl"`
	Crates   []CrateState   `json:"cr" msgpack:"cr"`
	Grenades []GrenadeState `json:"gr" msgpack:"gr"`
	Pickups  []PickupState  `json:"pk" msgpack:"pk"`
	Phase    int            `json:"ph" msgpack:"ph"`
	TimeLeft float64        `json:"tl" msgpack:"tl"`
	Tick     uint64         `json:"tick" msgpack:"tick"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ID    string `json:"id"`
	Class int    `json:"cls"`
	Team  int    `json:"team"`
	Arena string `json:"arena"`
}

// DeathMsg notifies a player they died
type DeathMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
}

// KillMsg is broadcast to all players in a session
type KillMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
	VictimID   string `json:"vid"`
	VictimName string `json:"vn"`
}

// MatchMsg announces a phase change
type MatchMsg struct {
	Phase      int     `json:"ph"`
	Mode       int     `json:"mode"`
	TimeLeft   float64 `json:"tl"`
	WinnerTeam int     `json:"wt,omitempty"`
	WinnerID   string  `json:"wid,omitempty"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mode    int    `json:"mode"`
	Players int    `json:"players"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// ControlMsg is sent by a phone controller to attach to a player
type ControlMsg struct {
	SID      string `json:"sid"`
	PlayerID string `json:"pid"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Players int    `json:"players,omitempty"`
}

// TeamPickMsg requests a team switch while in the lobby
type TeamPickMsg struct {
	Team int `json:"team"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates with credentials
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg authenticates with a stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg carries persistent player stats
type ProfileDataMsg struct {
	Username string  `json:"u"`
	Level    int     `json:"lvl"`
	XP       int     `json:"xp"`
	Kills    int     `json:"k"`
	Deaths   int     `json:"d"`
	Wins     int     `json:"w"`
	Losses   int     `json:"l"`
	Playtime float64 `json:"pt"`
	Credits  int     `json:"cr"`
}

// UnlockMsg announces a newly earned achievement
type UnlockMsg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreDataMsg carries the catalog plus the player's owned items
type StoreDataMsg struct {
	Items   []StoreItem `json:"items"`
	Owned   []string    `json:"owned"`
	Credits int         `json:"credits"`
}

// BuyMsg requests an item purchase
type BuyMsg struct {
	ItemID string `json:"item"`
}

// BoughtMsg confirms a purchase and carries the new balance
type BoughtMsg struct {
	ItemID  string `json:"item"`
	Credits int    `json:"credits"`
}
