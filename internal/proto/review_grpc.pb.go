// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: review.proto

package proto

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
	ReviewService_Register_FullMethodName             = "/privseal.review.ReviewService/Register"
	ReviewService_GetSalt_FullMethodName              = "/privseal.review.ReviewService/GetSalt"
	ReviewService_Login_FullMethodName                = "/privseal.review.ReviewService/Login"
	ReviewService_RefreshToken_FullMethodName         = "/privseal.review.ReviewService/RefreshToken"
	ReviewService_Ping_FullMethodName                 = "/privseal.review.ReviewService/Ping"
	ReviewService_SubmitDocument_FullMethodName       = "/privseal.review.ReviewService/SubmitDocument"
	ReviewService_GetDocumentInfo_FullMethodName      = "/privseal.review.ReviewService/GetDocumentInfo"
	ReviewService_GetTotalDocuments_FullMethodName    = "/privseal.review.ReviewService/GetTotalDocuments"
	ReviewService_ContentUploadURL_FullMethodName     = "/privseal.review.ReviewService/ContentUploadURL"
	ReviewService_ContentDownloadURL_FullMethodName   = "/privseal.review.ReviewService/ContentDownloadURL"
	ReviewService_ListMyDocuments_FullMethodName      = "/privseal.review.ReviewService/ListMyDocuments"
	ReviewService_AddClauseReview_FullMethodName      = "/privseal.review.ReviewService/AddClauseReview"
	ReviewService_GetClauseReview_FullMethodName      = "/privseal.review.ReviewService/GetClauseReview"
	ReviewService_ListMyReviews_FullMethodName        = "/privseal.review.ReviewService/ListMyReviews"
	ReviewService_CompleteAnalysis_FullMethodName     = "/privseal.review.ReviewService/CompleteAnalysis"
	ReviewService_GetAnalysisStatus_FullMethodName    = "/privseal.review.ReviewService/GetAnalysisStatus"
	ReviewService_AuthorizeReviewer_FullMethodName    = "/privseal.review.ReviewService/AuthorizeReviewer"
	ReviewService_RevokeReviewer_FullMethodName       = "/privseal.review.ReviewService/RevokeReviewer"
	ReviewService_IsAuthorizedReviewer_FullMethodName = "/privseal.review.ReviewService/IsAuthorizedReviewer"
	ReviewService_RequestDecryption_FullMethodName    = "/privseal.review.ReviewService/RequestDecryption"
	ReviewService_DecryptionCallback_FullMethodName   = "/privseal.review.ReviewService/DecryptionCallback"
	ReviewService_ClaimRefund_FullMethodName          = "/privseal.review.ReviewService/ClaimRefund"
	ReviewService_CanClaimRefund_FullMethodName       = "/privseal.review.ReviewService/CanClaimRefund"
	ReviewService_Deposit_FullMethodName              = "/privseal.review.ReviewService/Deposit"
	ReviewService_GetBalance_FullMethodName           = "/privseal.review.ReviewService/GetBalance"
	ReviewService_Withdraw_FullMethodName             = "/privseal.review.ReviewService/Withdraw"
)

// ReviewServiceClient is the client API for ReviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReviewServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	GetDocumentInfo(ctx context.Context, in *GetDocumentInfoRequest, opts ...grpc.CallOption) (*GetDocumentInfoResponse, error)
	GetTotalDocuments(ctx context.Context, in *GetTotalDocumentsRequest, opts ...grpc.CallOption) (*GetTotalDocumentsResponse, error)
	ContentUploadURL(ctx context.Context, in *ContentUploadURLRequest, opts ...grpc.CallOption) (*ContentUploadURLResponse, error)
	ContentDownloadURL(ctx context.Context, in *ContentDownloadURLRequest, opts ...grpc.CallOption) (*ContentDownloadURLResponse, error)
	ListMyDocuments(ctx context.Context, in *ListMyDocumentsRequest, opts ...grpc.CallOption) (*ListMyDocumentsResponse, error)
	AddClauseReview(ctx context.Context, in *AddClauseReviewRequest, opts ...grpc.CallOption) (*AddClauseReviewResponse, error)
	GetClauseReview(ctx context.Context, in *GetClauseReviewRequest, opts ...grpc.CallOption) (*GetClauseReviewResponse, error)
	ListMyReviews(ctx context.Context, in *ListMyReviewsRequest, opts ...grpc.CallOption) (*ListMyReviewsResponse, error)
	CompleteAnalysis(ctx context.Context, in *CompleteAnalysisRequest, opts ...grpc.CallOption) (*CompleteAnalysisResponse, error)
	GetAnalysisStatus(ctx context.Context, in *GetAnalysisStatusRequest, opts ...grpc.CallOption) (*GetAnalysisStatusResponse, error)
	AuthorizeReviewer(ctx context.Context, in *AuthorizeReviewerRequest, opts ...grpc.CallOption) (*AuthorizeReviewerResponse, error)
	RevokeReviewer(ctx context.Context, in *RevokeReviewerRequest, opts ...grpc.CallOption) (*RevokeReviewerResponse, error)
	IsAuthorizedReviewer(ctx context.Context, in *IsAuthorizedReviewerRequest, opts ...grpc.CallOption) (*IsAuthorizedReviewerResponse, error)
	RequestDecryption(ctx context.Context, in *RequestDecryptionRequest, opts ...grpc.CallOption) (*RequestDecryptionResponse, error)
	DecryptionCallback(ctx context.Context, in *DecryptionCallbackRequest, opts ...grpc.CallOption) (*DecryptionCallbackResponse, error)
	ClaimRefund(ctx context.Context, in *ClaimRefundRequest, opts ...grpc.CallOption) (*ClaimRefundResponse, error)
	CanClaimRefund(ctx context.Context, in *CanClaimRefundRequest, opts ...grpc.CallOption) (*CanClaimRefundResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
}

type reviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) ReviewServiceClient {
	return &reviewServiceClient{cc}
}

func (c *reviewServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, ReviewService_Register_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSaltResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetSalt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, ReviewService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshTokenResponse)
	err := c.cc.Invoke(ctx, ReviewService_RefreshToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, ReviewService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, ReviewService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetDocumentInfo(ctx context.Context, in *GetDocumentInfoRequest, opts ...grpc.CallOption) (*GetDocumentInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentInfoResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetDocumentInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetTotalDocuments(ctx context.Context, in *GetTotalDocumentsRequest, opts ...grpc.CallOption) (*GetTotalDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTotalDocumentsResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetTotalDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ContentUploadURL(ctx context.Context, in *ContentUploadURLRequest, opts ...grpc.CallOption) (*ContentUploadURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ContentUploadURLResponse)
	err := c.cc.Invoke(ctx, ReviewService_ContentUploadURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ContentDownloadURL(ctx context.Context, in *ContentDownloadURLRequest, opts ...grpc.CallOption) (*ContentDownloadURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ContentDownloadURLResponse)
	err := c.cc.Invoke(ctx, ReviewService_ContentDownloadURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ListMyDocuments(ctx context.Context, in *ListMyDocumentsRequest, opts ...grpc.CallOption) (*ListMyDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMyDocumentsResponse)
	err := c.cc.Invoke(ctx, ReviewService_ListMyDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) AddClauseReview(ctx context.Context, in *AddClauseReviewRequest, opts ...grpc.CallOption) (*AddClauseReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddClauseReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_AddClauseReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetClauseReview(ctx context.Context, in *GetClauseReviewRequest, opts ...grpc.CallOption) (*GetClauseReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetClauseReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetClauseReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ListMyReviews(ctx context.Context, in *ListMyReviewsRequest, opts ...grpc.CallOption) (*ListMyReviewsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMyReviewsResponse)
	err := c.cc.Invoke(ctx, ReviewService_ListMyReviews_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) CompleteAnalysis(ctx context.Context, in *CompleteAnalysisRequest, opts ...grpc.CallOption) (*CompleteAnalysisResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteAnalysisResponse)
	err := c.cc.Invoke(ctx, ReviewService_CompleteAnalysis_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetAnalysisStatus(ctx context.Context, in *GetAnalysisStatusRequest, opts ...grpc.CallOption) (*GetAnalysisStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAnalysisStatusResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetAnalysisStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) AuthorizeReviewer(ctx context.Context, in *AuthorizeReviewerRequest, opts ...grpc.CallOption) (*AuthorizeReviewerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AuthorizeReviewerResponse)
	err := c.cc.Invoke(ctx, ReviewService_AuthorizeReviewer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) RevokeReviewer(ctx context.Context, in *RevokeReviewerRequest, opts ...grpc.CallOption) (*RevokeReviewerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevokeReviewerResponse)
	err := c.cc.Invoke(ctx, ReviewService_RevokeReviewer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) IsAuthorizedReviewer(ctx context.Context, in *IsAuthorizedReviewerRequest, opts ...grpc.CallOption) (*IsAuthorizedReviewerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsAuthorizedReviewerResponse)
	err := c.cc.Invoke(ctx, ReviewService_IsAuthorizedReviewer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) RequestDecryption(ctx context.Context, in *RequestDecryptionRequest, opts ...grpc.CallOption) (*RequestDecryptionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RequestDecryptionResponse)
	err := c.cc.Invoke(ctx, ReviewService_RequestDecryption_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) DecryptionCallback(ctx context.Context, in *DecryptionCallbackRequest, opts ...grpc.CallOption) (*DecryptionCallbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DecryptionCallbackResponse)
	err := c.cc.Invoke(ctx, ReviewService_DecryptionCallback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) ClaimRefund(ctx context.Context, in *ClaimRefundRequest, opts ...grpc.CallOption) (*ClaimRefundResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClaimRefundResponse)
	err := c.cc.Invoke(ctx, ReviewService_ClaimRefund_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) CanClaimRefund(ctx context.Context, in *CanClaimRefundRequest, opts ...grpc.CallOption) (*CanClaimRefundResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CanClaimRefundResponse)
	err := c.cc.Invoke(ctx, ReviewService_CanClaimRefund_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, ReviewService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBalanceResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, ReviewService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewServiceServer is the server API for ReviewService service.
// All implementations must embed UnimplementedReviewServiceServer
// for forward compatibility.
type ReviewServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	GetDocumentInfo(context.Context, *GetDocumentInfoRequest) (*GetDocumentInfoResponse, error)
	GetTotalDocuments(context.Context, *GetTotalDocumentsRequest) (*GetTotalDocumentsResponse, error)
	ContentUploadURL(context.Context, *ContentUploadURLRequest) (*ContentUploadURLResponse, error)
	ContentDownloadURL(context.Context, *ContentDownloadURLRequest) (*ContentDownloadURLResponse, error)
	ListMyDocuments(context.Context, *ListMyDocumentsRequest) (*ListMyDocumentsResponse, error)
	AddClauseReview(context.Context, *AddClauseReviewRequest) (*AddClauseReviewResponse, error)
	GetClauseReview(context.Context, *GetClauseReviewRequest) (*GetClauseReviewResponse, error)
	ListMyReviews(context.Context, *ListMyReviewsRequest) (*ListMyReviewsResponse, error)
	CompleteAnalysis(context.Context, *CompleteAnalysisRequest) (*CompleteAnalysisResponse, error)
	GetAnalysisStatus(context.Context, *GetAnalysisStatusRequest) (*GetAnalysisStatusResponse, error)
	AuthorizeReviewer(context.Context, *AuthorizeReviewerRequest) (*AuthorizeReviewerResponse, error)
	RevokeReviewer(context.Context, *RevokeReviewerRequest) (*RevokeReviewerResponse, error)
	IsAuthorizedReviewer(context.Context, *IsAuthorizedReviewerRequest) (*IsAuthorizedReviewerResponse, error)
	RequestDecryption(context.Context, *RequestDecryptionRequest) (*RequestDecryptionResponse, error)
	DecryptionCallback(context.Context, *DecryptionCallbackRequest) (*DecryptionCallbackResponse, error)
	ClaimRefund(context.Context, *ClaimRefundRequest) (*ClaimRefundResponse, error)
	CanClaimRefund(context.Context, *CanClaimRefundRequest) (*CanClaimRefundResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	mustEmbedUnimplementedReviewServiceServer()
}

// UnimplementedReviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewServiceServer struct{}

func (UnimplementedReviewServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedReviewServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedReviewServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedReviewServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedReviewServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedReviewServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedReviewServiceServer) GetDocumentInfo(context.Context, *GetDocumentInfoRequest) (*GetDocumentInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentInfo not implemented")
}
func (UnimplementedReviewServiceServer) GetTotalDocuments(context.Context, *GetTotalDocumentsRequest) (*GetTotalDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTotalDocuments not implemented")
}
func (UnimplementedReviewServiceServer) ContentUploadURL(context.Context, *ContentUploadURLRequest) (*ContentUploadURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ContentUploadURL not implemented")
}
func (UnimplementedReviewServiceServer) ContentDownloadURL(context.Context, *ContentDownloadURLRequest) (*ContentDownloadURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ContentDownloadURL not implemented")
}
func (UnimplementedReviewServiceServer) ListMyDocuments(context.Context, *ListMyDocumentsRequest) (*ListMyDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMyDocuments not implemented")
}
func (UnimplementedReviewServiceServer) AddClauseReview(context.Context, *AddClauseReviewRequest) (*AddClauseReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddClauseReview not implemented")
}
func (UnimplementedReviewServiceServer) GetClauseReview(context.Context, *GetClauseReviewRequest) (*GetClauseReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClauseReview not implemented")
}
func (UnimplementedReviewServiceServer) ListMyReviews(context.Context, *ListMyReviewsRequest) (*ListMyReviewsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMyReviews not implemented")
}
func (UnimplementedReviewServiceServer) CompleteAnalysis(context.Context, *CompleteAnalysisRequest) (*CompleteAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteAnalysis not implemented")
}
func (UnimplementedReviewServiceServer) GetAnalysisStatus(context.Context, *GetAnalysisStatusRequest) (*GetAnalysisStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAnalysisStatus not implemented")
}
func (UnimplementedReviewServiceServer) AuthorizeReviewer(context.Context, *AuthorizeReviewerRequest) (*AuthorizeReviewerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AuthorizeReviewer not implemented")
}
func (UnimplementedReviewServiceServer) RevokeReviewer(context.Context, *RevokeReviewerRequest) (*RevokeReviewerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevokeReviewer not implemented")
}
func (UnimplementedReviewServiceServer) IsAuthorizedReviewer(context.Context, *IsAuthorizedReviewerRequest) (*IsAuthorizedReviewerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsAuthorizedReviewer not implemented")
}
func (UnimplementedReviewServiceServer) RequestDecryption(context.Context, *RequestDecryptionRequest) (*RequestDecryptionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestDecryption not implemented")
}
func (UnimplementedReviewServiceServer) DecryptionCallback(context.Context, *DecryptionCallbackRequest) (*DecryptionCallbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecryptionCallback not implemented")
}
func (UnimplementedReviewServiceServer) ClaimRefund(context.Context, *ClaimRefundRequest) (*ClaimRefundResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClaimRefund not implemented")
}
func (UnimplementedReviewServiceServer) CanClaimRefund(context.Context, *CanClaimRefundRequest) (*CanClaimRefundResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CanClaimRefund not implemented")
}
func (UnimplementedReviewServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedReviewServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedReviewServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedReviewServiceServer) mustEmbedUnimplementedReviewServiceServer() {}
func (UnimplementedReviewServiceServer) testEmbeddedByValue()                       {}

// UnsafeReviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewServiceServer will
// result in compilation errors.
type UnsafeReviewServiceServer interface {
	mustEmbedUnimplementedReviewServiceServer()
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedReviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

func _ReviewService_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetSalt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSaltRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetSalt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetSalt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetSalt(ctx, req.(*GetSaltRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_RefreshToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_RefreshToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetDocumentInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetDocumentInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetDocumentInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetDocumentInfo(ctx, req.(*GetDocumentInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetTotalDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTotalDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetTotalDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetTotalDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetTotalDocuments(ctx, req.(*GetTotalDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ContentUploadURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContentUploadURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ContentUploadURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ContentUploadURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ContentUploadURL(ctx, req.(*ContentUploadURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ContentDownloadURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContentDownloadURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ContentDownloadURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ContentDownloadURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ContentDownloadURL(ctx, req.(*ContentDownloadURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ListMyDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMyDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ListMyDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ListMyDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ListMyDocuments(ctx, req.(*ListMyDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_AddClauseReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddClauseReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).AddClauseReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_AddClauseReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).AddClauseReview(ctx, req.(*AddClauseReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetClauseReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClauseReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetClauseReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetClauseReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetClauseReview(ctx, req.(*GetClauseReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ListMyReviews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMyReviewsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ListMyReviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ListMyReviews_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ListMyReviews(ctx, req.(*ListMyReviewsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_CompleteAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).CompleteAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_CompleteAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).CompleteAnalysis(ctx, req.(*CompleteAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetAnalysisStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetAnalysisStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetAnalysisStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetAnalysisStatus(ctx, req.(*GetAnalysisStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_AuthorizeReviewer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuthorizeReviewerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).AuthorizeReviewer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_AuthorizeReviewer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).AuthorizeReviewer(ctx, req.(*AuthorizeReviewerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_RevokeReviewer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RevokeReviewerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).RevokeReviewer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_RevokeReviewer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).RevokeReviewer(ctx, req.(*RevokeReviewerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_IsAuthorizedReviewer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsAuthorizedReviewerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).IsAuthorizedReviewer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_IsAuthorizedReviewer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).IsAuthorizedReviewer(ctx, req.(*IsAuthorizedReviewerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_RequestDecryption_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestDecryptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).RequestDecryption(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_RequestDecryption_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).RequestDecryption(ctx, req.(*RequestDecryptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_DecryptionCallback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecryptionCallbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).DecryptionCallback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_DecryptionCallback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).DecryptionCallback(ctx, req.(*DecryptionCallbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_ClaimRefund_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimRefundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ClaimRefund(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ClaimRefund_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ClaimRefund(ctx, req.(*ClaimRefundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_CanClaimRefund_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CanClaimRefundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).CanClaimRefund(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_CanClaimRefund_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).CanClaimRefund(ctx, req.(*CanClaimRefundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewService_ServiceDesc is the grpc.ServiceDesc for ReviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "privseal.review.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _ReviewService_Register_Handler,
		},
		{
			MethodName: "GetSalt",
			Handler:    _ReviewService_GetSalt_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _ReviewService_Login_Handler,
		},
		{
			MethodName: "RefreshToken",
			Handler:    _ReviewService_RefreshToken_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _ReviewService_Ping_Handler,
		},
		{
			MethodName: "SubmitDocument",
			Handler:    _ReviewService_SubmitDocument_Handler,
		},
		{
			MethodName: "GetDocumentInfo",
			Handler:    _ReviewService_GetDocumentInfo_Handler,
		},
		{
			MethodName: "GetTotalDocuments",
			Handler:    _ReviewService_GetTotalDocuments_Handler,
		},
		{
			MethodName: "ContentUploadURL",
			Handler:    _ReviewService_ContentUploadURL_Handler,
		},
		{
			MethodName: "ContentDownloadURL",
			Handler:    _ReviewService_ContentDownloadURL_Handler,
		},
		{
			MethodName: "ListMyDocuments",
			Handler:    _ReviewService_ListMyDocuments_Handler,
		},
		{
			MethodName: "AddClauseReview",
			Handler:    _ReviewService_AddClauseReview_Handler,
		},
		{
			MethodName: "GetClauseReview",
			Handler:    _ReviewService_GetClauseReview_Handler,
		},
		{
			MethodName: "ListMyReviews",
			Handler:    _ReviewService_ListMyReviews_Handler,
		},
		{
			MethodName: "CompleteAnalysis",
			Handler:    _ReviewService_CompleteAnalysis_Handler,
		},
		{
			MethodName: "GetAnalysisStatus",
			Handler:    _ReviewService_GetAnalysisStatus_Handler,
		},
		{
			MethodName: "AuthorizeReviewer",
			Handler:    _ReviewService_AuthorizeReviewer_Handler,
		},
		{
			MethodName: "RevokeReviewer",
			Handler:    _ReviewService_RevokeReviewer_Handler,
		},
		{
			MethodName: "IsAuthorizedReviewer",
			Handler:    _ReviewService_IsAuthorizedReviewer_Handler,
		},
		{
			MethodName: "RequestDecryption",
			Handler:    _ReviewService_RequestDecryption_Handler,
		},
		{
			MethodName: "DecryptionCallback",
			Handler:    _ReviewService_DecryptionCallback_Handler,
		},
		{
			MethodName: "ClaimRefund",
			Handler:    _ReviewService_ClaimRefund_Handler,
		},
		{
			MethodName: "CanClaimRefund",
			Handler:    _ReviewService_CanClaimRefund_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _ReviewService_Deposit_Handler,
		},
		{
			MethodName: "GetBalance",
			Handler:    _ReviewService_GetBalance_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _ReviewService_Withdraw_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "review.proto",
}
