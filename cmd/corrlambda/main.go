// Command corrlambda runs the correlation routines as an AWS Lambda behind an
// API Gateway HTTP API with routes POST /mean, POST /crosscorr and POST /lags.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/cwbudde/algo-corr/internal/binding"
)

func main() {
	lambda.Start(binding.HandleHTTP)
}
