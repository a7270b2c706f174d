package channel

import (
	"context"
	"net/http"

	"github.com/bnema/chatline/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultReadLimit bounds a single inbound frame.
const DefaultReadLimit int64 = 32768

type Options struct {
	URL        string
	Capacity   int
	Eviction   domain.EvictionPolicy
	ReadLimit  int64
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Observer   Observer
}

type Dialer struct {
	opts Options
}

func NewDialer(opts Options) *Dialer {
	if opts.ReadLimit == 0 {
		opts.ReadLimit = DefaultReadLimit
	}
	if opts.Eviction == "" {
		opts.Eviction = domain.EvictOldest
	}

	return &Dialer{opts: opts}
}

// Connect starts a handle for token and returns it in the connecting state
// without waiting for the handshake. ctx bounds the handle's lifetime.
func (d *Dialer) Connect(ctx context.Context, token string) (*Handle, error) {
	endpoint, err := BuildEndpoint(d.opts.URL, token)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	handleCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:         id,
		endpoint:   endpoint,
		log:        NewMessageLog(d.opts.Capacity, d.opts.Eviction),
		logger:     d.opts.Logger.With().Str("channel", id).Logger(),
		observer:   d.opts.Observer,
		readLimit:  d.opts.ReadLimit,
		httpClient: d.opts.HTTPClient,
		ctx:        handleCtx,
		cancel:     cancel,
		done:       make(chan struct{}),
		state:      domain.ChannelConnecting,
	}

	h.logger.Debug().Str("endpoint", h.Endpoint()).Msg("channel connecting")
	go h.run()

	return h, nil
}
