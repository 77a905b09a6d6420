package client

import (
	"context"
	"net/url"
	"time"

	"github.com/alpaso-live/alpaso-cli/domain"
)

// Streams lists all streams, optionally filtered by status. Reads are
// idempotent and safe to repeat from a retry prompt.
func (c *Client) Streams(ctx context.Context, status domain.StreamStatus) ([]domain.Stream, error) {
	path := "/api/streams"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	return c.streamList(ctx, path)
}

func (c *Client) LiveStreams(ctx context.Context) ([]domain.Stream, error) {
	return c.streamList(ctx, "/api/streams/live")
}

// MyStreams lists the authenticated seller's own streams.
func (c *Client) MyStreams(ctx context.Context) ([]domain.Stream, error) {
	return c.streamList(ctx, "/api/streams/seller/my-streams")
}

func (c *Client) Stream(ctx context.Context, id string) (domain.Stream, error) {
	body, err := c.get(ctx, "/api/streams/"+url.PathEscape(id))
	if err != nil {
		return domain.Stream{}, err
	}
	return decodeStream(body)
}

func (c *Client) CreateStream(ctx context.Context, in domain.StreamInput) (domain.Stream, error) {
	if err := in.Validate(); err != nil {
		return domain.Stream{}, err
	}
	if in.Products == nil {
		in.Products = []string{}
	}
	body, err := c.post(ctx, "/api/streams", in)
	if err != nil {
		return domain.Stream{}, err
	}
	return decodeStream(body)
}

// StartStream asks the backend to move a stream to live. Not safe to repeat
// blindly: the backend rejects invalid transitions and this client does not
// pre-validate them.
func (c *Client) StartStream(ctx context.Context, id string) (domain.Stream, error) {
	body, err := c.put(ctx, "/api/streams/"+url.PathEscape(id)+"/start", struct{}{})
	if err != nil {
		return domain.Stream{}, err
	}
	return decodeStream(body)
}

func (c *Client) EndStream(ctx context.Context, id string) (domain.Stream, error) {
	body, err := c.put(ctx, "/api/streams/"+url.PathEscape(id)+"/end", struct{}{})
	if err != nil {
		return domain.Stream{}, err
	}
	return decodeStream(body)
}

// AnalyticsSummary is best-effort: deployments without the route just fail
// and the caller degrades to per-stream metrics.
func (c *Client) AnalyticsSummary(ctx context.Context) (domain.AnalyticsSummary, error) {
	body, err := c.get(ctx, "/api/streams/analytics/summary")
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}
	var summary domain.AnalyticsSummary
	if err := unwrapObject(body, &summary, "summary"); err != nil {
		return domain.AnalyticsSummary{}, &Error{Kind: KindResource, Message: "unreadable analytics response", Err: err}
	}
	return summary, nil
}

// SellerStats aggregates the dashboard figures from the seller's streams
// plus the optional analytics summary.
func (c *Client) SellerStats(ctx context.Context) (domain.SellerStats, error) {
	streams, err := c.MyStreams(ctx)
	if err != nil {
		return domain.SellerStats{}, err
	}
	analytics, err := c.AnalyticsSummary(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("analytics summary unavailable, using stream metrics")
		analytics = domain.AnalyticsSummary{}
	}
	return domain.ComputeSellerStats(streams, analytics, time.Now()), nil
}

func (c *Client) streamList(ctx context.Context, path string) ([]domain.Stream, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	streams := []domain.Stream{}
	if err := unwrapList(body, &streams, "streams"); err != nil {
		return nil, &Error{Kind: KindResource, Message: "unreadable stream list", Err: err}
	}
	for i := range streams {
		streams[i].Normalize()
	}
	return streams, nil
}

func decodeStream(body []byte) (domain.Stream, error) {
	var stream domain.Stream
	if err := unwrapObject(body, &stream, "stream"); err != nil {
		return domain.Stream{}, &Error{Kind: KindResource, Message: "unreadable stream response", Err: err}
	}
	stream.Normalize()
	return stream, nil
}
