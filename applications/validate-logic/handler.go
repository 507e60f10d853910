package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// handler is invoked directly with the event object.
func handler(ctx context.Context, req Request) (Response, error) {
	resp := Validate(req)
	log := requestLogger(ctx)

	// the raw value is unbounded, so it is only logged at debug
	log.Debug("input value", zap.Any("input", resp.Input))
	log.Info("validated input",
		zap.String("input_type", fmt.Sprintf("%T", resp.Input)),
		zap.Bool("is_valid", resp.IsValid),
	)

	return resp, nil
}

// httpHandler serves API Gateway HTTP API and Function URL events. The JSON
// body is the event object.
func httpHandler(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	log := requestLogger(ctx)

	body := request.Body
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			log.Warn("base64 decode error", zap.Error(err))
			return errorResponse(http.StatusBadRequest, "request body is not valid base64"), nil
		}
		body = string(decoded)
	}

	// an empty body is an empty event
	var req Request
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			log.Warn("JSON parse error", zap.Error(err))
			return errorResponse(http.StatusBadRequest, "request body must be a JSON object"), nil
		}
		// "null" decodes without error but is not an object
		if req == nil {
			log.Warn("request body is null")
			return errorResponse(http.StatusBadRequest, "request body must be a JSON object"), nil
		}
	}

	resp, err := handler(ctx, req)
	if err != nil {
		log.Error("handler error", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "internal error"), nil
	}

	out, err := json.Marshal(resp)
	if err != nil {
		log.Error("failed to marshal response", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "internal error"), nil
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(out),
	}, nil
}

// errorResponse builds a JSON error body such as {"error": "..."}.
func errorResponse(status int, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(body),
	}
}
