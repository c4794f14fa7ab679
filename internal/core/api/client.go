package api

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls a remote SegmentAPI over the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSegments(ctx context.Context, req *ListSegmentsRequest, opts ...grpc.CallOption) (*ListSegmentsResponse, error) {
	return invoke[ListSegmentsResponse](ctx, c, "ListSegments", req, opts...)
}

func (c *Client) ToggleSelection(ctx context.Context, req *ToggleSelectionRequest, opts ...grpc.CallOption) (*ToggleSelectionResponse, error) {
	return invoke[ToggleSelectionResponse](ctx, c, "ToggleSelection", req, opts...)
}

func (c *Client) ComputeProjection(ctx context.Context, req *ComputeProjectionRequest, opts ...grpc.CallOption) (*ComputeProjectionResponse, error) {
	return invoke[ComputeProjectionResponse](ctx, c, "ComputeProjection", req, opts...)
}

func (c *Client) GroupByCategory(ctx context.Context, req *GroupByCategoryRequest, opts ...grpc.CallOption) (*GroupByCategoryResponse, error) {
	return invoke[GroupByCategoryResponse](ctx, c, "GroupByCategory", req, opts...)
}

func (c *Client) CategorizeLimitation(ctx context.Context, req *CategorizeLimitationRequest, opts ...grpc.CallOption) (*CategorizeLimitationResponse, error) {
	return invoke[CategorizeLimitationResponse](ctx, c, "CategorizeLimitation", req, opts...)
}

func (c *Client) AnalyzeLimitations(ctx context.Context, req *AnalyzeLimitationsRequest, opts ...grpc.CallOption) (*AnalyzeLimitationsResponse, error) {
	return invoke[AnalyzeLimitationsResponse](ctx, c, "AnalyzeLimitations", req, opts...)
}

func (c *Client) Summarize(ctx context.Context, req *SummarizeRequest, opts ...grpc.CallOption) (*SummarizeResponse, error) {
	return invoke[SummarizeResponse](ctx, c, "Summarize", req, opts...)
}
