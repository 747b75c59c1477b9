package grpc

// proto.go defines the gRPC server interface derived from finergize/risk/v1/risk.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/Manaswita10/Finergize-sub000/api/gen/go/finergize/risk/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ScoreApplicationRequest mirrors finergize.risk.v1.ScoreApplicationRequest.
type ScoreApplicationRequest struct {
	ApplicantID    string            `json:"applicant_id"`
	LoanType       string            `json:"loan_type"`
	Fields         map[string]string `json:"fields"`
	Amount         string            `json:"amount"`
	TermMonths     int32             `json:"term_months"`
	InterestRate   float64           `json:"interest_rate"`
	MonthlyPayment string            `json:"monthly_payment"`
	ProcessingFee  string            `json:"processing_fee"`
}

// ScoreApplicationResponse mirrors finergize.risk.v1.ScoreApplicationResponse.
type ScoreApplicationResponse struct {
	Request *ScoringRequest `json:"request"`
}

// GetScoringRequestRequest mirrors finergize.risk.v1.GetScoringRequestRequest.
type GetScoringRequestRequest struct {
	RequestID string `json:"request_id"`
}

// GetScoringRequestResponse mirrors finergize.risk.v1.GetScoringRequestResponse.
type GetScoringRequestResponse struct {
	Request *ScoringRequest `json:"request"`
}

// ScoringRequest mirrors finergize.risk.v1.ScoringRequest.
type ScoringRequest struct {
	ID              string   `json:"id"`
	ApplicantID     string   `json:"applicant_id"`
	LoanType        string   `json:"loan_type"`
	RequestedAmount string   `json:"requested_amount"`
	TermMonths      int32    `json:"term_months"`
	InterestRate    float64  `json:"interest_rate"`
	Status          string   `json:"status"`
	RejectionField  string   `json:"rejection_field,omitempty"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	Approved        bool     `json:"approved"`
	Confidence      float64  `json:"confidence"`
	Feedback        []string `json:"feedback,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// RiskServiceServer is the server API for RiskService.
// It mirrors the proto-generated interface from finergize.risk.v1.RiskService.
type RiskServiceServer interface {
	ScoreApplication(context.Context, *ScoreApplicationRequest) (*ScoreApplicationResponse, error)
	GetScoringRequest(context.Context, *GetScoringRequestRequest) (*GetScoringRequestResponse, error)
	mustEmbedUnimplementedRiskServiceServer()
}

// UnimplementedRiskServiceServer provides forward-compatible default implementations.
type UnimplementedRiskServiceServer struct{}

func (UnimplementedRiskServiceServer) ScoreApplication(context.Context, *ScoreApplicationRequest) (*ScoreApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreApplication not implemented")
}
func (UnimplementedRiskServiceServer) GetScoringRequest(context.Context, *GetScoringRequestRequest) (*GetScoringRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScoringRequest not implemented")
}
func (UnimplementedRiskServiceServer) mustEmbedUnimplementedRiskServiceServer() {}

// RegisterRiskServiceServer registers the RiskServiceServer with the gRPC server.
func RegisterRiskServiceServer(s *grpclib.Server, srv RiskServiceServer) {
	s.RegisterService(&_RiskService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _RiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "finergize.risk.v1.RiskService",
	HandlerType: (*RiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreApplication", Handler: _RiskService_ScoreApplication_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetScoringRequest", Handler: _RiskService_GetScoringRequest_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _RiskService_ScoreApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskServiceServer).ScoreApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finergize.risk.v1.RiskService/ScoreApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskServiceServer).ScoreApplication(ctx, req.(*ScoreApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RiskService_GetScoringRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScoringRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskServiceServer).GetScoringRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finergize.risk.v1.RiskService/GetScoringRequest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskServiceServer).GetScoringRequest(ctx, req.(*GetScoringRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}
