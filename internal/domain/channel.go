package domain

type ChannelState int

const (
	ChannelIdle ChannelState = iota
	ChannelConnecting
	ChannelOpen
	ChannelClosed
)

func (s ChannelState) String() string {
	switch s {
	case ChannelIdle:
		return "idle"
	case ChannelConnecting:
		return "connecting"
	case ChannelOpen:
		return "open"
	case ChannelClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type EvictionPolicy string

const (
	// EvictOldest drops the oldest entry to make room for a new one.
	EvictOldest EvictionPolicy = "oldest"
	// EvictNewest rejects the incoming entry once the log is full.
	EvictNewest EvictionPolicy = "newest"
)
