package lessons

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tradelearn/lessonstream/internal/proto"
)

const (
	// DefaultDetailsTTL bounds how long a lesson's metadata is served from
	// cache. Lesson rows rarely change after upload, so this can be generous.
	DefaultDetailsTTL = 30 * time.Minute

	// DefaultListTTL bounds the staleness of the catalog listing. Fresh
	// uploads must show up within this window.
	DefaultListTTL = 5 * time.Minute

	listCacheKey = "all"
)

// Provider fronts the lessons service with metadata caches. Video streams are
// always opened against the upstream, never cached.
type Provider struct {
	gw      Gateway
	details *expirable.LRU[string, *proto.LessonDetails]
	list    *expirable.LRU[string, []*proto.LessonDetails]
}

type ProviderOption func(*providerOpts)

type providerOpts struct {
	detailsTTL time.Duration
	listTTL    time.Duration
}

func WithDetailsTTL(ttl time.Duration) ProviderOption {
	return func(o *providerOpts) {
		o.detailsTTL = ttl
	}
}

func WithListTTL(ttl time.Duration) ProviderOption {
	return func(o *providerOpts) {
		o.listTTL = ttl
	}
}

func NewProvider(gw Gateway, opts ...ProviderOption) *Provider {
	o := &providerOpts{
		detailsTTL: DefaultDetailsTTL,
		listTTL:    DefaultListTTL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Provider{
		gw:      gw,
		details: expirable.NewLRU[string, *proto.LessonDetails](0, nil, o.detailsTTL), // 0 = LRU off
		list:    expirable.NewLRU[string, []*proto.LessonDetails](1, nil, o.listTTL),
	}
}

// Details returns a lesson's metadata, from cache when fresh.
func (p *Provider) Details(ctx context.Context, id string) (*proto.LessonDetails, error) {
	if details, ok := p.details.Get(id); ok {
		return details, nil
	}

	details, err := p.gw.LessonDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	p.details.Add(id, details)
	return details, nil
}

// List returns the lesson catalog, from cache when fresh.
func (p *Provider) List(ctx context.Context) ([]*proto.LessonDetails, error) {
	if lessons, ok := p.list.Get(listCacheKey); ok {
		return lessons, nil
	}

	lessons, err := p.gw.ListLessons(ctx)
	if err != nil {
		return nil, err
	}

	p.list.Add(listCacheKey, lessons)
	return lessons, nil
}

// OpenVideoStream opens an upstream frame stream for the given byte window.
// The stream is bound to ctx; cancelling ctx tears it down.
func (p *Provider) OpenVideoStream(ctx context.Context, id string, start, end int64) (FrameStream, error) {
	return p.gw.OpenVideoStream(ctx, id, start, end)
}
