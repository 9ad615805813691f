// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: plate/v1/plate.proto

package platev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PlateService_DetectPlate_FullMethodName = "/plate.v1.PlateService/DetectPlate"
	PlateService_GetJob_FullMethodName      = "/plate.v1.PlateService/GetJob"
	PlateService_ListJobs_FullMethodName    = "/plate.v1.PlateService/ListJobs"
	PlateService_ExportJobs_FullMethodName  = "/plate.v1.PlateService/ExportJobs"
)

// PlateServiceClient is the client API for PlateService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PlateService exposes the detection pipeline and its job history.
type PlateServiceClient interface {
	// DetectPlate runs the pipeline over one in-memory image. A response
	// with an empty plate means "no plate found", which is a successful
	// outcome.
	DetectPlate(ctx context.Context, in *DetectPlateRequest, opts ...grpc.CallOption) (*DetectPlateResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	ExportJobs(ctx context.Context, in *ExportJobsRequest, opts ...grpc.CallOption) (*ExportJobsResponse, error)
}

type plateServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlateServiceClient(cc grpc.ClientConnInterface) PlateServiceClient {
	return &plateServiceClient{cc}
}

func (c *plateServiceClient) DetectPlate(ctx context.Context, in *DetectPlateRequest, opts ...grpc.CallOption) (*DetectPlateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DetectPlateResponse)
	err := c.cc.Invoke(ctx, PlateService_DetectPlate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plateServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, PlateService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plateServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, PlateService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plateServiceClient) ExportJobs(ctx context.Context, in *ExportJobsRequest, opts ...grpc.CallOption) (*ExportJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportJobsResponse)
	err := c.cc.Invoke(ctx, PlateService_ExportJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlateServiceServer is the server API for PlateService service.
// All implementations must embed UnimplementedPlateServiceServer
// for forward compatibility.
//
// PlateService exposes the detection pipeline and its job history.
type PlateServiceServer interface {
	// DetectPlate runs the pipeline over one in-memory image. A response
	// with an empty plate means "no plate found", which is a successful
	// outcome.
	DetectPlate(context.Context, *DetectPlateRequest) (*DetectPlateResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	ExportJobs(context.Context, *ExportJobsRequest) (*ExportJobsResponse, error)
	mustEmbedUnimplementedPlateServiceServer()
}

// UnimplementedPlateServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlateServiceServer struct{}

func (UnimplementedPlateServiceServer) DetectPlate(context.Context, *DetectPlateRequest) (*DetectPlateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectPlate not implemented")
}
func (UnimplementedPlateServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedPlateServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedPlateServiceServer) ExportJobs(context.Context, *ExportJobsRequest) (*ExportJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportJobs not implemented")
}
func (UnimplementedPlateServiceServer) mustEmbedUnimplementedPlateServiceServer() {}
func (UnimplementedPlateServiceServer) testEmbeddedByValue()                      {}

// UnsafePlateServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlateServiceServer will
// result in compilation errors.
type UnsafePlateServiceServer interface {
	mustEmbedUnimplementedPlateServiceServer()
}

func RegisterPlateServiceServer(s grpc.ServiceRegistrar, srv PlateServiceServer) {
	// If the following call pancis, it indicates UnimplementedPlateServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlateService_ServiceDesc, srv)
}

func _PlateService_DetectPlate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DetectPlateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlateServiceServer).DetectPlate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlateService_DetectPlate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlateServiceServer).DetectPlate(ctx, req.(*DetectPlateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlateService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlateServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlateService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlateServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlateService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlateServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlateService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlateServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlateService_ExportJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlateServiceServer).ExportJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlateService_ExportJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlateServiceServer).ExportJobs(ctx, req.(*ExportJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlateService_ServiceDesc is the grpc.ServiceDesc for PlateService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "plate.v1.PlateService",
	HandlerType: (*PlateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DetectPlate",
			Handler:    _PlateService_DetectPlate_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _PlateService_GetJob_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _PlateService_ListJobs_Handler,
		},
		{
			MethodName: "ExportJobs",
			Handler:    _PlateService_ExportJobs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "plate/v1/plate.proto",
}
