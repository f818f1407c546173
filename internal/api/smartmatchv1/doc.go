// Package smartmatchv1 holds the generated matching.v1 API (messages,
// SmartMatchService server and client). Edit proto/matching/v1/smartmatch.proto
// and regenerate; do not edit the .pb.go files by hand.
package smartmatchv1

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/oggyb/muzz-smartmatch --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oggyb/muzz-smartmatch matching/v1/smartmatch.proto
