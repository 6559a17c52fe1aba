package messages

// Server to client tags.
const (
	TagState         = "state"
	TagWelcome       = "welcome"
	TagJoined        = "joined"
	TagCreated       = "created"
	TagSessions      = "sessions"
	TagChecked       = "checked"
	TagHit           = "hit"
	TagKill          = "kill"
	TagDeath         = "death"
	TagMatchPhase    = "match_phase"
	TagMatchResult   = "match_result"
	TagTeamUpdate    = "team_update"
	TagCtrlOn        = "ctrl_on"
	TagCtrlOff       = "ctrl_off"
	TagControlOK     = "control_ok"
	TagAuthOK        = "auth_ok"
	TagProfileData   = "profile_data"
	TagXPUpdate      = "xp_update"
	TagAchievement   = "achievement"
	TagFriendListRes = "friend_list_res"
	TagFriendNotify  = "friend_notify"
	TagStoreRes      = "store_res"
	TagBuyRes        = "buy_res"
	TagCreditsUpdate = "credits_update"
	TagChatMsg       = "chat_msg"
	TagError         = "error"
)

// Client to server tags.
const (
	TagJoin       = "join"
	TagCreate     = "create"
	TagList       = "list"
	TagLeave      = "leave"
	TagCheck      = "check"
	TagControl    = "control"
	TagReady      = "ready"
	TagTeamPick   = "team_pick"
	TagRematch    = "rematch"
	TagRegister   = "register"
	TagLogin      = "login"
	TagAuth       = "auth"
	TagProfile    = "profile"
	TagChat       = "chat"
	TagFriendList = "friend_list"
	TagStore      = "store"
	TagBuy        = "buy"
)
