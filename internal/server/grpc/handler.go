package grpc

import (
	"context"
	"errors"

	"github.com/avolkovx/privseal/internal/common"
	pb "github.com/avolkovx/privseal/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError translates a sentinel error into a gRPC status carrying the
// sentinel's stable reason string, so callers can assert on cause.
func mapError(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorInvalidClauseID),
		errors.Is(err, common.ErrorNoRequestFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrorUnauthorized):
		code = codes.PermissionDenied
	case errors.Is(err, common.ErrorInvalidInput),
		errors.Is(err, common.ErrorOutOfRange),
		errors.Is(err, common.ErrorInsufficientFee):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrorNotYetReviewed),
		errors.Is(err, common.ErrorAlreadyRequested),
		errors.Is(err, common.ErrorAlreadyCompleted),
		errors.Is(err, common.ErrorAlreadyRefunded),
		errors.Is(err, common.ErrorAlreadyAuthorized),
		errors.Is(err, common.ErrorNotAReviewer),
		errors.Is(err, common.ErrorUsernameTaken),
		errors.Is(err, common.ErrorAnalysisAlreadyDone),
		errors.Is(err, common.ErrorRefundNotDue),
		errors.Is(err, common.ErrorNoFunds),
		errors.Is(err, common.ErrorTransferFailed):
		code = codes.FailedPrecondition
	case errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		code = codes.Unauthenticated
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request")

	actor, err := s.registry.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "address", actor.Address)
	return &pb.RegisterResponse{Address: actor.Address, IsOwner: actor.IsOwner}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.registry.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.registry.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, mapError(err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.registry.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SubmitDocument(ctx context.Context, req *pb.SubmitDocumentRequest) (*pb.SubmitDocumentResponse, error) {
	id, err := s.documents.Submit(ctx, actorFromContext(ctx), req.DocumentHash, req.PublicTitle, req.Fee, req.StorageKey)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.SubmitDocumentResponse{DocumentId: id}, nil
}

func (s *GRPCServer) GetDocumentInfo(ctx context.Context, req *pb.GetDocumentInfoRequest) (*pb.GetDocumentInfoResponse, error) {
	doc, err := s.documents.GetInfo(ctx, req.DocumentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetDocumentInfoResponse{
		DocumentHash:   doc.DocumentHash,
		PublicTitle:    doc.PublicTitle,
		Submitter:      doc.Submitter,
		SubmissionTime: doc.SubmissionTime.Unix(),
		IsReviewed:     doc.IsReviewed,
		ClauseCount:    doc.ClauseCount,
	}, nil
}

func (s *GRPCServer) GetTotalDocuments(ctx context.Context, req *pb.GetTotalDocumentsRequest) (*pb.GetTotalDocumentsResponse, error) {
	total, err := s.documents.GetTotalDocuments(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetTotalDocumentsResponse{Total: total}, nil
}

func (s *GRPCServer) ContentUploadURL(ctx context.Context, req *pb.ContentUploadURLRequest) (*pb.ContentUploadURLResponse, error) {
	key, url, err := s.documents.ContentUploadURL(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ContentUploadURLResponse{StorageKey: key, Url: url}, nil
}

func (s *GRPCServer) ContentDownloadURL(ctx context.Context, req *pb.ContentDownloadURLRequest) (*pb.ContentDownloadURLResponse, error) {
	url, err := s.documents.ContentDownloadURL(ctx, actorFromContext(ctx), req.DocumentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ContentDownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) ListMyDocuments(ctx context.Context, req *pb.ListMyDocumentsRequest) (*pb.ListMyDocumentsResponse, error) {
	docs, err := s.documents.ListBySubmitter(ctx, actorFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	resp := &pb.ListMyDocumentsResponse{}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, &pb.ListMyDocumentsResponse_Document{
			DocumentId:     doc.ID,
			PublicTitle:    doc.PublicTitle,
			SubmissionTime: doc.SubmissionTime.Unix(),
			IsReviewed:     doc.IsReviewed,
			ClauseCount:    doc.ClauseCount,
		})
	}
	return resp, nil
}

func (s *GRPCServer) AddClauseReview(ctx context.Context, req *pb.AddClauseReviewRequest) (*pb.AddClauseReviewResponse, error) {
	clauseID, err := s.clauses.AddClause(ctx, actorFromContext(ctx), req.DocumentId, req.ClauseType, req.Compliance, req.Sensitivity, req.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.AddClauseReviewResponse{ClauseId: clauseID}, nil
}

func (s *GRPCServer) GetClauseReview(ctx context.Context, req *pb.GetClauseReviewRequest) (*pb.GetClauseReviewResponse, error) {
	clause, err := s.clauses.GetClause(ctx, req.DocumentId, req.ClauseId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetClauseReviewResponse{
		ClauseType: clause.ClauseType,
		Reviewer:   clause.Reviewer,
		ReviewTime: clause.ReviewTime.Unix(),
		Notes:      clause.Notes,
	}, nil
}

func (s *GRPCServer) ListMyReviews(ctx context.Context, req *pb.ListMyReviewsRequest) (*pb.ListMyReviewsResponse, error) {
	clauses, err := s.clauses.ListByReviewer(ctx, actorFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	resp := &pb.ListMyReviewsResponse{}
	for _, clause := range clauses {
		resp.Clauses = append(resp.Clauses, &pb.ListMyReviewsResponse_Clause{
			DocumentId: clause.DocumentID,
			ClauseId:   clause.ClauseID,
			ClauseType: clause.ClauseType,
			ReviewTime: clause.ReviewTime.Unix(),
		})
	}
	return resp, nil
}

func (s *GRPCServer) CompleteAnalysis(ctx context.Context, req *pb.CompleteAnalysisRequest) (*pb.CompleteAnalysisResponse, error) {
	err := s.analysis.CompleteAnalysis(ctx, actorFromContext(ctx), req.DocumentId,
		req.DataSensitivity, req.Gdpr, req.Ccpa, req.RetentionRisk, req.SharingRisk)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.CompleteAnalysisResponse{}, nil
}

func (s *GRPCServer) GetAnalysisStatus(ctx context.Context, req *pb.GetAnalysisStatusRequest) (*pb.GetAnalysisStatusResponse, error) {
	analysis, err := s.analysis.GetAnalysisStatus(ctx, req.DocumentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetAnalysisStatusResponse{AnalysisComplete: analysis.AnalysisComplete}, nil
}

func (s *GRPCServer) AuthorizeReviewer(ctx context.Context, req *pb.AuthorizeReviewerRequest) (*pb.AuthorizeReviewerResponse, error) {
	if err := s.registry.AuthorizeReviewer(ctx, actorFromContext(ctx), req.Address); err != nil {
		return nil, mapError(err)
	}
	return &pb.AuthorizeReviewerResponse{}, nil
}

func (s *GRPCServer) RevokeReviewer(ctx context.Context, req *pb.RevokeReviewerRequest) (*pb.RevokeReviewerResponse, error) {
	if err := s.registry.RevokeReviewer(ctx, actorFromContext(ctx), req.Address); err != nil {
		return nil, mapError(err)
	}
	return &pb.RevokeReviewerResponse{}, nil
}

func (s *GRPCServer) IsAuthorizedReviewer(ctx context.Context, req *pb.IsAuthorizedReviewerRequest) (*pb.IsAuthorizedReviewerResponse, error) {
	ok, err := s.registry.IsAuthorizedReviewer(ctx, req.Address)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.IsAuthorizedReviewerResponse{IsAuthorized: ok}, nil
}

func (s *GRPCServer) RequestDecryption(ctx context.Context, req *pb.RequestDecryptionRequest) (*pb.RequestDecryptionResponse, error) {
	requestID, err := s.decryption.RequestDecryption(ctx, actorFromContext(ctx), req.DocumentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.RequestDecryptionResponse{RequestId: requestID}, nil
}

func (s *GRPCServer) DecryptionCallback(ctx context.Context, req *pb.DecryptionCallbackRequest) (*pb.DecryptionCallbackResponse, error) {
	if err := s.decryption.HandleCallback(ctx, req.RequestId, req.Payload, req.Proof); err != nil {
		return nil, mapError(err)
	}
	return &pb.DecryptionCallbackResponse{}, nil
}

func (s *GRPCServer) ClaimRefund(ctx context.Context, req *pb.ClaimRefundRequest) (*pb.ClaimRefundResponse, error) {
	if err := s.decryption.ClaimRefund(ctx, actorFromContext(ctx), req.DocumentId); err != nil {
		return nil, mapError(err)
	}
	return &pb.ClaimRefundResponse{}, nil
}

func (s *GRPCServer) CanClaimRefund(ctx context.Context, req *pb.CanClaimRefundRequest) (*pb.CanClaimRefundResponse, error) {
	ok, err := s.decryption.CanClaimRefund(ctx, req.DocumentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.CanClaimRefundResponse{CanClaim: ok}, nil
}

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {
	if err := s.escrow.Deposit(ctx, actorFromContext(ctx), req.Amount); err != nil {
		return nil, mapError(err)
	}
	return &pb.DepositResponse{}, nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.escrow.Balance(ctx, actorFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GetBalanceResponse{Balance: balance}, nil
}

func (s *GRPCServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	amount, err := s.escrow.Withdraw(ctx, actorFromContext(ctx), req.Recipient)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.WithdrawResponse{Amount: amount}, nil
}
