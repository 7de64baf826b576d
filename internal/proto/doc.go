// Package proto holds the gRPC API definition. The Go stubs are generated
// from review.proto; rerun go generate after editing it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative review.proto
