package server

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler serves the feed behind API Gateway with the same contract as Handler
func LambdaHandler(builder FeedBuilder) func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp := respond(ctx, builder, req.HTTPMethod)
		return events.APIGatewayProxyResponse{
			StatusCode: resp.status,
			Headers:    map[string]string{"Content-Type": resp.contentType},
			Body:       resp.body,
		}, nil
	}
}
