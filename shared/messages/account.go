package messages

// Credentials is the payload of both register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthRequest struct {
	Token string `json:"token"`
}

func (AuthRequest) Tag() string { return TagAuth }

type AuthOK struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"player_id"`
}

func (AuthOK) Tag() string { return TagAuthOK }

type ProfileData struct {
	Username string  `json:"username"`
	Level    int     `json:"level"`
	XP       int     `json:"xp"`
	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Playtime float64 `json:"playtime"`
}

func (ProfileData) Tag() string { return TagProfileData }

type XPUpdate struct {
	XP     int `json:"xp"`
	Level  int `json:"level"`
	Gained int `json:"gained"`
}

func (XPUpdate) Tag() string { return TagXPUpdate }

type Achievement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (Achievement) Tag() string { return TagAchievement }

type Friend struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

type FriendList struct {
	Friends []Friend `json:"friends"`
}

func (FriendList) Tag() string { return TagFriendListRes }

// FriendNotify reports a friend coming online or going offline.
type FriendNotify struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

func (FriendNotify) Tag() string { return TagFriendNotify }

type StoreItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Owned bool   `json:"owned"`
}

type StoreList struct {
	Items []StoreItem `json:"items"`
}

func (StoreList) Tag() string { return TagStoreRes }

type BuyRequest struct {
	Item string `json:"item"`
}

func (BuyRequest) Tag() string { return TagBuy }

type BuyResult struct {
	OK   bool   `json:"ok"`
	Item string `json:"item"`
	Msg  string `json:"msg,omitempty"`
}

func (BuyResult) Tag() string { return TagBuyRes }

type CreditsUpdate struct {
	Credits int `json:"credits"`
}

func (CreditsUpdate) Tag() string { return TagCreditsUpdate }
