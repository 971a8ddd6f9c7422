package model

// AnnouncerKind enumerates the supported announcement channels.
type AnnouncerKind int

const (
	SdkmanKind AnnouncerKind = iota
	TwitterKind
	ZulipKind
)

// AllAnnouncerKinds lists every announcer kind in canonical order.
var AllAnnouncerKinds = []AnnouncerKind{SdkmanKind, TwitterKind, ZulipKind}

const (
	SdkmanName  = "sdkman"
	TwitterName = "twitter"
	ZulipName   = "zulip"
)

func (k AnnouncerKind) String() string {
	switch k {
	case SdkmanKind:
		return SdkmanName
	case TwitterKind:
		return TwitterName
	case ZulipKind:
		return ZulipName
	default:
		return "unknown"
	}
}

// Sdkman publishes a candidate release to SDKMAN!.
type Sdkman struct {
	ToolBase
	ConsumerKey   string
	ConsumerToken string
	Candidate     string
	Major         bool
}

func NewSdkman() *Sdkman {
	return &Sdkman{ToolBase: newToolBase(SdkmanName)}
}

// Twitter posts a status update.
type Twitter struct {
	ToolBase
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
	Status            string
}

func NewTwitter() *Twitter {
	return &Twitter{ToolBase: newToolBase(TwitterName)}
}

// Zulip posts a stream message.
type Zulip struct {
	ToolBase
	Account string
	APIKey  string
	APIHost string
	Channel string
	Subject string
	Message string
}

func NewZulip() *Zulip {
	return &Zulip{ToolBase: newToolBase(ZulipName)}
}

// Announce holds the optional configuration of each announcer.
type Announce struct {
	Sdkman  *Sdkman
	Twitter *Twitter
	Zulip   *Zulip
}

// Get returns the configured announcer of the given kind, or nil.
func (a Announce) Get(kind AnnouncerKind) Tool {
	switch kind {
	case SdkmanKind:
		if a.Sdkman != nil {
			return a.Sdkman
		}
	case TwitterKind:
		if a.Twitter != nil {
			return a.Twitter
		}
	case ZulipKind:
		if a.Zulip != nil {
			return a.Zulip
		}
	}
	return nil
}
