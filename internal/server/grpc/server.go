// Package grpc exposes the review service over gRPC: one server struct
// implementing the generated service interface, a unary interceptor that
// authenticates callers, and handlers that translate sentinel errors into
// status codes.
package grpc

import (
	"context"
	"net"

	"github.com/avolkovx/privseal/internal/logging"
	pb "github.com/avolkovx/privseal/internal/proto"
	"github.com/avolkovx/privseal/internal/server/models"
	"github.com/avolkovx/privseal/internal/server/services"
	"google.golang.org/grpc"
)

// The handler layer talks to the business logic through these interfaces so
// tests can swap in fakes per operation.

type Registry interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.Actor, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	AuthorizeReviewer(ctx context.Context, caller, address string) error
	RevokeReviewer(ctx context.Context, caller, address string) error
	IsAuthorizedReviewer(ctx context.Context, address string) (bool, error)
}

type Documents interface {
	Submit(ctx context.Context, submitter, documentHash, publicTitle string, fee int64, storageKey string) (int64, error)
	GetInfo(ctx context.Context, documentID int64) (*models.Document, error)
	GetTotalDocuments(ctx context.Context) (int64, error)
	ContentUploadURL(ctx context.Context) (string, string, error)
	ContentDownloadURL(ctx context.Context, caller string, documentID int64) (string, error)
	ListBySubmitter(ctx context.Context, submitter string) ([]*models.Document, error)
}

type Clauses interface {
	AddClause(ctx context.Context, reviewer string, documentID int64, clauseType string, compliance, sensitivity int64, notes string) (int64, error)
	GetClause(ctx context.Context, documentID, clauseID int64) (*models.Clause, error)
	ListByReviewer(ctx context.Context, reviewer string) ([]*models.Clause, error)
}

type Analysis interface {
	CompleteAnalysis(ctx context.Context, reviewer string, documentID, dataSensitivity, gdpr, ccpa, retentionRisk, sharingRisk int64) error
	GetAnalysisStatus(ctx context.Context, documentID int64) (*models.Analysis, error)
}

type Decryption interface {
	RequestDecryption(ctx context.Context, caller string, documentID int64) (string, error)
	HandleCallback(ctx context.Context, requestID string, payload, proof []byte) error
	ClaimRefund(ctx context.Context, caller string, documentID int64) error
	CanClaimRefund(ctx context.Context, documentID int64) (bool, error)
}

type Escrow interface {
	Deposit(ctx context.Context, actor string, amount int64) error
	Balance(ctx context.Context, actor string) (int64, error)
	Withdraw(ctx context.Context, caller, recipient string) (int64, error)
}

type GRPCServer struct {
	pb.UnimplementedReviewServiceServer
	address    string
	logger     logging.Logger
	jwtSecret  []byte
	gatewayKey []byte
	registry   Registry
	documents  Documents
	clauses    Clauses
	analysis   Analysis
	decryption Decryption
	escrow     Escrow
}

func NewGRPCServer(address string, l logging.Logger, secretKey, gatewayKey string,
	registry Registry, documents Documents, clauses Clauses,
	analysis Analysis, decryption Decryption, escrow Escrow) (*GRPCServer, error) {
	return &GRPCServer{
		address:    address,
		logger:     l.With("module", "grpc_server"),
		jwtSecret:  []byte(secretKey),
		gatewayKey: []byte(gatewayKey),
		registry:   registry,
		documents:  documents,
		clauses:    clauses,
		analysis:   analysis,
		decryption: decryption,
		escrow:     escrow,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))
	pb.RegisterReviewServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
