// Package proto drives stub generation for the gRPC surface.
// Output lands under gen/plate/v1, mirroring the ent layout.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/autocare/platetrack --go-grpc_out=.. --go-grpc_opt=module=github.com/autocare/platetrack plate/v1/plate.proto
