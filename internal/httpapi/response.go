package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	svcErr "github.com/oggyb/muzz-smartmatch/internal/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError maps err through the shared error mapper so HTTP and gRPC
// report the same failure the same way.
func RespondError(c *gin.Context, err error) {
	code, msg := svcErr.HTTPStatus(err)
	c.JSON(code, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    status.Code(svcErr.Map(err)).String(),
		},
	})
}

// protoJSON renders API messages with their proto field names and keeps
// empty lists and zero values in the body.
var protoJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func RespondOK(c *gin.Context, msg proto.Message) {
	body, err := protoJSON.Marshal(msg)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
