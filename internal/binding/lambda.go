package binding

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// HandleHTTP serves API Gateway HTTP API route keys "POST /mean",
// "POST /crosscorr" and "POST /lags".
func HandleHTTP(_ context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method, path, ok := strings.Cut(req.RouteKey, " ")
	if !ok || method != http.MethodPost {
		return respond(http.StatusNotFound, errorBody{Error: "not found"}), nil
	}

	op, err := ParseOp(strings.TrimPrefix(path, "/"))
	if err != nil {
		return respond(http.StatusNotFound, errorBody{Error: err.Error()}), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return respond(http.StatusBadRequest, errorBody{Error: err.Error()}), nil
		}
	}

	in, err := DecodeRequest(body)
	if err != nil {
		return respond(http.StatusBadRequest, errorBody{Error: err.Error()}), nil
	}

	resp, err := Evaluate(op, in)
	if err != nil {
		return respond(StatusCode(err), errorBody{Error: err.Error()}), nil
	}

	return respond(http.StatusOK, resp), nil
}

func respond(status int, v any) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"encoding failed"}`)
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(body),
	}
}
