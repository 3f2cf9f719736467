// Package assistantv1 carries the gRPC contract between the backend and
// the assistant model service. The pb stubs are generated from
// assistant.proto; regenerate after editing it.
package assistantv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative assistant.proto
