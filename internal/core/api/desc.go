package api

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "segmentvet.v1.SegmentAPI"

// SegmentAPIServer is the server API for the SegmentAPI service.
type SegmentAPIServer interface {
	ListSegments(context.Context, *ListSegmentsRequest) (*ListSegmentsResponse, error)
	ToggleSelection(context.Context, *ToggleSelectionRequest) (*ToggleSelectionResponse, error)
	ComputeProjection(context.Context, *ComputeProjectionRequest) (*ComputeProjectionResponse, error)
	GroupByCategory(context.Context, *GroupByCategoryRequest) (*GroupByCategoryResponse, error)
	CategorizeLimitation(context.Context, *CategorizeLimitationRequest) (*CategorizeLimitationResponse, error)
	AnalyzeLimitations(context.Context, *AnalyzeLimitationsRequest) (*AnalyzeLimitationsResponse, error)
	Summarize(context.Context, *SummarizeRequest) (*SummarizeResponse, error)
}

var _ SegmentAPIServer = (*SegmentService)(nil)

// SegmentAPIServiceDesc describes the SegmentAPI service. Messages are plain Go
// structs carried by the JSON codec, so the descriptor is declared by hand.
var SegmentAPIServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SegmentAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListSegments", Handler: unaryHandler("ListSegments", SegmentAPIServer.ListSegments)},
		{MethodName: "ToggleSelection", Handler: unaryHandler("ToggleSelection", SegmentAPIServer.ToggleSelection)},
		{MethodName: "ComputeProjection", Handler: unaryHandler("ComputeProjection", SegmentAPIServer.ComputeProjection)},
		{MethodName: "GroupByCategory", Handler: unaryHandler("GroupByCategory", SegmentAPIServer.GroupByCategory)},
		{MethodName: "CategorizeLimitation", Handler: unaryHandler("CategorizeLimitation", SegmentAPIServer.CategorizeLimitation)},
		{MethodName: "AnalyzeLimitations", Handler: unaryHandler("AnalyzeLimitations", SegmentAPIServer.AnalyzeLimitations)},
		{MethodName: "Summarize", Handler: unaryHandler("Summarize", SegmentAPIServer.Summarize)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "segmentvet/v1/segment_api.json",
}

// RegisterSegmentAPIServer registers srv on a gRPC server.
func RegisterSegmentAPIServer(s grpc.ServiceRegistrar, srv SegmentAPIServer) {
	s.RegisterService(&SegmentAPIServiceDesc, srv)
}

// FullMethod returns the gRPC method path for a SegmentAPI method name.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler adapts a typed service method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](method string, call func(SegmentAPIServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := FullMethod(method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SegmentAPIServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SegmentAPIServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
