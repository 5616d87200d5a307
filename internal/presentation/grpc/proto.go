package grpc

// proto.go defines the gRPC server interface derived from
// fundline/pricing/v1/pricing.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/fundline/api/gen/go/fundline/pricing/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fundline/pricing-service/internal/application/dto"
)

// Wire messages. The JSON codec serializes the application DTOs directly,
// so the stand-in messages are aliases of them.
type (
	PriceOfferRequest         = dto.PriceOfferRequest
	PriceOfferResponse        = dto.QuoteResponse
	GenerateScenariosRequest  = dto.GenerateScenariosRequest
	GenerateScenariosResponse = dto.ScenarioSetResponse
	GetQuoteRequest           = dto.GetQuoteRequest
	GetQuoteResponse          = dto.QuoteResponse
)

// PricingServiceServer is the server API for PricingService.
// It mirrors the proto-generated interface from fundline.pricing.v1.PricingService.
type PricingServiceServer interface {
	PriceOffer(context.Context, *PriceOfferRequest) (*PriceOfferResponse, error)
	GenerateScenarios(context.Context, *GenerateScenariosRequest) (*GenerateScenariosResponse, error)
	GetQuote(context.Context, *GetQuoteRequest) (*GetQuoteResponse, error)
	mustEmbedUnimplementedPricingServiceServer()
}

// UnimplementedPricingServiceServer provides forward-compatible default implementations.
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) PriceOffer(context.Context, *PriceOfferRequest) (*PriceOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PriceOffer not implemented")
}
func (UnimplementedPricingServiceServer) GenerateScenarios(context.Context, *GenerateScenariosRequest) (*GenerateScenariosResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateScenarios not implemented")
}
func (UnimplementedPricingServiceServer) GetQuote(context.Context, *GetQuoteRequest) (*GetQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQuote not implemented")
}
func (UnimplementedPricingServiceServer) mustEmbedUnimplementedPricingServiceServer() {}

// RegisterPricingServiceServer registers the PricingServiceServer with the gRPC server.
func RegisterPricingServiceServer(s *grpclib.Server, srv PricingServiceServer) {
	s.RegisterService(&_PricingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _PricingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "fundline.pricing.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PriceOffer", Handler: _PricingService_PriceOffer_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GenerateScenarios", Handler: _PricingService_GenerateScenarios_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetQuote", Handler: _PricingService_GetQuote_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _PricingService_PriceOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PriceOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).PriceOffer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fundline.pricing.v1.PricingService/PriceOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).PriceOffer(ctx, req.(*PriceOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PricingService_GenerateScenarios_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScenariosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GenerateScenarios(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fundline.pricing.v1.PricingService/GenerateScenarios",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GenerateScenarios(ctx, req.(*GenerateScenariosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PricingService_GetQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GetQuote(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/fundline.pricing.v1.PricingService/GetQuote",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GetQuote(ctx, req.(*GetQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}
